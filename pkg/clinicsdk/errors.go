package clinicsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/clinicdesk/pkg/httpx"
)

// Error codes returned in the "error" field of an error response.
const (
	ErrorCodeValidation     = httpx.CodeValidation
	ErrorCodeInvalidRequest = httpx.CodeInvalidRequest
	ErrorCodeUnauthorized   = httpx.CodeUnauthorized
	ErrorCodeForbidden      = httpx.CodeForbidden
	ErrorCodeNotFound       = httpx.CodeNotFound
	ErrorCodeConflict       = httpx.CodeConflict
	ErrorCodeRateLimited    = httpx.CodeRateLimited
	ErrorCodeServerError    = httpx.CodeServerError
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is matches on status code so callers can write errors.Is(err, ErrNotFound).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode && (t.Code == "" || t.Code == e.Code)
}

var (
	ErrValidation   = &APIError{StatusCode: http.StatusBadRequest, Code: ErrorCodeValidation}
	ErrBadRequest   = &APIError{StatusCode: http.StatusBadRequest}
	ErrUnauthorized = &APIError{StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &APIError{StatusCode: http.StatusForbidden}
	ErrNotFound     = &APIError{StatusCode: http.StatusNotFound}
	ErrConflict     = &APIError{StatusCode: http.StatusConflict}
	ErrRateLimited  = &APIError{StatusCode: http.StatusTooManyRequests}
)

// parseErrorResponse turns an error body into an *APIError. Bodies that are
// not the JSON error envelope still produce an APIError carrying the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       http.StatusText(resp.StatusCode),
			Message:    string(body),
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       er.Error,
		Message:    er.Message,
		Details:    er.Details,
	}
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
