package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/biz-records/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// A body that is not an error document becomes the detail verbatim.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: ErrUnexpectedStatus}
	if kind, ok := statusErrors[resp.StatusCode()]; ok {
		apiErr.kind = kind
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
		apiErr.Errors = body.Errors
		return apiErr
	}

	apiErr.Detail = strings.TrimSpace(string(resp.Body()))
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode())
	}

	return apiErr
}
