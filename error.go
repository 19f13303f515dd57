package webrag

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic enough to cross service boundaries while
// still mapping cleanly onto the failure taxonomy of the ingestion and
// retrieval pipeline.
const (
	ECONFLICT     = "conflict"     // conflicting state, e.g. embedding dimension mismatch
	EEXTRACT      = "extract"      // content extraction produced no usable text
	EINTERNAL     = "internal"     // internal error
	EINVALID      = "invalid"      // validation failed, e.g. malformed URL
	ENOTFOUND     = "not_found"    // entity does not exist
	EUNAUTHORIZED = "unauthorized" // provider rejected credentials
	EUNREACHABLE  = "unreachable"  // network or HTTP failure fetching a URL
	EUNSUPPORTED  = "unsupported"  // unsupported content type
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webrag error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
