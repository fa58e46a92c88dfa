package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients. Each operation fails with one of
// these; handlers translate Status into the HTTP response code.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeInvalidProfile        = "INVALID_PROFILE"
	CodeUnsupportedFileType   = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge          = "FILE_TOO_LARGE"
	CodeDuplicateApplication  = "DUPLICATE_APPLICATION"
	CodeDuplicateSave         = "DUPLICATE_SAVE"
	CodeDuplicateSlug         = "DUPLICATE_SLUG"
	CodeJobNotFound           = "JOB_NOT_FOUND"
	CodeDraftNotFound         = "DRAFT_NOT_FOUND"
	CodeNotFound              = "NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeIllegalTransition     = "ILLEGAL_TRANSITION"
	CodeAlreadySubmitted      = "ALREADY_SUBMITTED"
	CodeIncompleteApplication = "INCOMPLETE_APPLICATION"
	CodeDeliveryFailed        = "DELIVERY_FAILED"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation problems are caller-recoverable 400s, conflicts 409, state
// violations 422.

func Validation(code, format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, code, fmt.Errorf(format, args...))
}

func Conflict(code, format string, args ...interface{}) *Error {
	return New(http.StatusConflict, code, fmt.Errorf(format, args...))
}

func NotFound(code, format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, code, fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusForbidden, CodeUnauthorized, fmt.Errorf(format, args...))
}

func State(code, format string, args ...interface{}) *Error {
	return New(http.StatusUnprocessableEntity, code, fmt.Errorf(format, args...))
}

// Transport wraps a collaborator failure (delivery, blob storage). These are
// logged by the caller and never surfaced to the triggering request.
func Transport(format string, args ...interface{}) *Error {
	return New(http.StatusBadGateway, CodeDeliveryFailed, fmt.Errorf(format, args...))
}

// Code returns the API code carried by err, or "" for plain errors.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func IsCode(err error, code string) bool {
	return Code(err) == code
}
