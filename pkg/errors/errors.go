package errors

import (
	"errors"
	"fmt"
)

// Error codes, one per failure kind of a download run.
const (
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeMediaNotFound        = "MEDIA_NOT_FOUND"
	CodeNoVideoVariant       = "NO_VIDEO_VARIANT"
	CodeNoMediaVariant       = "NO_MEDIA_VARIANT"
	CodeTransferFailed       = "TRANSFER_FAILED"
	CodeInvalidInput         = "INVALID_INPUT"
)

// ErrInvalidInput marks input the user typed that cannot be used.
var ErrInvalidInput = errors.New("invalid input")

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// NewWithCode creates a new error with a code and message
func NewWithCode(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the first non-empty code found in err's chain
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsAuthenticationFailed returns true if the error is a login failure
func IsAuthenticationFailed(err error) bool {
	return GetCode(err) == CodeAuthenticationFailed
}

// IsMediaNotFound returns true if the lookup returned no media record
func IsMediaNotFound(err error) bool {
	return GetCode(err) == CodeMediaNotFound
}

// IsNoVideoVariant returns true if a reel record carried no video
func IsNoVideoVariant(err error) bool {
	return GetCode(err) == CodeNoVideoVariant
}

// IsNoMediaVariant returns true if a story record carried neither video nor image
func IsNoMediaVariant(err error) bool {
	return GetCode(err) == CodeNoMediaVariant
}

// IsTransferFailed returns true if the error happened while streaming to disk
func IsTransferFailed(err error) bool {
	return GetCode(err) == CodeTransferFailed
}

// IsInvalidInput returns true if the error is an input error
func IsInvalidInput(err error) bool {
	return GetCode(err) == CodeInvalidInput || errors.Is(err, ErrInvalidInput)
}
