package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Error is the typed failure for non-2xx backend responses. The raw
// body is kept so callers can decode service-specific payloads, and
// Duration carries the request timing so slow failures stay visible.
type Error struct {
	Method   string
	URL      string
	Code     int
	Status   string
	Body     []byte
	Duration time.Duration
}

func (e *Error) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("%s %s returned %s: %s", e.Method, e.URL, e.Status, detail)
	}
	return fmt.Sprintf("%s %s returned %s", e.Method, e.URL, e.Status)
}

// Detail extracts the human-readable message from the body. Services
// commonly wrap it in a message or error field; fall back to the raw
// body when neither is present.
func (e *Error) Detail() string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return string(e.Body)
}

// StatusOf returns the HTTP status code carried by err, or 0 when err
// is not a backend response error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}

func wrapError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return nil, err
	}

	if res.IsError() {
		return nil, &Error{
			Method:   res.Request.Method,
			URL:      res.Request.URL,
			Code:     res.StatusCode(),
			Status:   res.Status(),
			Body:     res.Body(),
			Duration: res.Time(),
		}
	}

	return res, nil
}
