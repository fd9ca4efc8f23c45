package tangerine

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from Tangerine.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func newAPIError(method, endpoint string, res *resty.Response) *APIError {
	body := string(res.Body())
	if len(body) > 256 {
		body = body[:256]
	}

	return &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: res.StatusCode(),
		Body:       body,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tangerine %s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}
