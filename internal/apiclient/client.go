package apiclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "webpilot API client"

const defaultTimeout = 30 * time.Second

// Client talks to the application backend during tests: seeding data,
// asserting side effects and cleaning up. It speaks JSON by default.
type Client struct {
	*resty.Client

	// BaseURI is prefixed to every request path, e.g. /api/v1.
	BaseURI string
}

// New builds a client with JSON defaults applied, then the given
// options.
func New(cfs ...ClientFunc) *Client {
	r := resty.New()
	r.SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetTimeout(defaultTimeout)

	c := &Client{
		Client: r,
	}

	for _, cf := range cfs {
		cf(c)
	}

	return c
}

func (c *Client) Get(url string, rfs ...RequestFunc) (*resty.Response, error) {
	return c.Do(resty.MethodGet, url, rfs...)
}

func (c *Client) Post(url string, rfs ...RequestFunc) (*resty.Response, error) {
	return c.Do(resty.MethodPost, url, rfs...)
}

func (c *Client) Put(url string, rfs ...RequestFunc) (*resty.Response, error) {
	return c.Do(resty.MethodPut, url, rfs...)
}

func (c *Client) Patch(url string, rfs ...RequestFunc) (*resty.Response, error) {
	return c.Do(resty.MethodPatch, url, rfs...)
}

func (c *Client) Delete(url string, rfs ...RequestFunc) (*resty.Response, error) {
	return c.Do(resty.MethodDelete, url, rfs...)
}

// Do executes one request. Transport failures come back as-is; non-2xx
// responses come back as a typed *Error carrying the body.
func (c *Client) Do(method, url string, rfs ...RequestFunc) (*resty.Response, error) {
	if c.BaseURI != "" {
		url = c.BaseURI + url
	}
	r := c.R()

	for _, rf := range rfs {
		rf(r)
	}

	return wrapError(r.Execute(method, url))
}
