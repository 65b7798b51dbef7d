package core

import "net/http"

// HTTPError is a failure with a caller-intended status and message. Its
// status and message pass through the normalizer unchanged; every other
// error collapses to a generic internal error.
type HTTPError struct {
	Code    int    // HTTP status code
	Message string // caller-facing message
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Not found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Message: "Conflict"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewHTTPError creates a custom HTTP error with the given status code and
// caller-facing message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
