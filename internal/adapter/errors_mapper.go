package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError returns nil for 2xx responses. Anything else becomes an error
// wrapping both ErrServerRejected and the status sentinel, with the trimmed
// response body as detail.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	sentinel, ok := statusSentinels[resp.StatusCode()]
	if !ok {
		return fmt.Errorf("%w: %w: http %d: %s", ErrServerRejected, ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: %s", ErrServerRejected, sentinel, body)
}
