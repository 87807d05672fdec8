package swc

import (
	"fmt"
	"net/http"
)

// APIError is returned for any response the SDK does not recognize as a
// success. It carries the status code and body for diagnostics, plus the
// raw response. Retryable failures surface the last APIError seen once the
// backoff budget is exhausted.
type APIError struct {
	Message     string
	StatusCode  int
	Body        string
	RawResponse *http.Response
}

func (e *APIError) Error() string {
	body := ""
	if len(e.Body) > 0 {
		body = "\n" + e.Body
	}
	return fmt.Sprintf("%s: status %d%s", e.Message, e.StatusCode, body)
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	return &APIError{
		Message:     "error response from the SWC API",
		StatusCode:  resp.StatusCode,
		Body:        string(body),
		RawResponse: resp,
	}
}
