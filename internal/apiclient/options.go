package apiclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientFunc configures the client at construction time.
type ClientFunc func(*Client)

func SetHostURL(url string) ClientFunc {
	return func(c *Client) {
		c.Client.SetBaseURL(url)
	}
}

func SetBaseURI(uri string) ClientFunc {
	return func(c *Client) {
		c.BaseURI = uri
	}
}

func SetAuthToken(token string) ClientFunc {
	return func(c *Client) {
		c.Client.SetAuthToken(token)
	}
}

func SetBasicAuth(username, password string) ClientFunc {
	return func(c *Client) {
		c.Client.SetBasicAuth(username, password)
	}
}

func SetTimeout(d time.Duration) ClientFunc {
	return func(c *Client) {
		c.Client.SetTimeout(d)
	}
}

func SetRetryCount(count int) ClientFunc {
	return func(c *Client) {
		c.Client.SetRetryCount(count)
	}
}

func SetClientHeader(header, value string) ClientFunc {
	return func(c *Client) {
		c.Client.SetHeader(header, value)
	}
}

// RequestFunc configures a single request.
type RequestFunc func(*resty.Request)

func SetContext(ctx context.Context) RequestFunc {
	return func(r *resty.Request) {
		r.SetContext(ctx)
	}
}

func SetBody(body interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetBody(body)
	}
}

// SetResult decodes a successful JSON response into res.
func SetResult(res interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetResult(res)
	}
}

func SetQueryParam(param, value string) RequestFunc {
	return func(r *resty.Request) {
		r.SetQueryParam(param, value)
	}
}

func SetQueryParams(params map[string]string) RequestFunc {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

func SetHeader(header, value string) RequestFunc {
	return func(r *resty.Request) {
		r.SetHeader(header, value)
	}
}
