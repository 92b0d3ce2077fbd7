// Package errors defines the stable error codes reported by setup-overleaf-sync.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Code is a stable error code string.
type Code string

const (
	EUsage           Code = "E_USAGE"
	EPathNotFound    Code = "E_PATH_NOT_FOUND"
	ENotARepo        Code = "E_NOT_A_REPO"
	ETemplateMissing Code = "E_TEMPLATE_MISSING"
	EInstallFailed   Code = "E_INSTALL_FAILED"
	ECommandFailed   Code = "E_COMMAND_FAILED"
	EMalformedRemote Code = "E_MALFORMED_REMOTE"
	EConfig          Code = "E_CONFIG"
	EInternal        Code = "E_INTERNAL"
)

// SetupError is the standard error type returned by setup operations.
type SetupError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string

	// ExitStatus, when non-zero, is used as the process exit code.
	ExitStatus int
}

// Error returns "CODE: message".
func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *SetupError) Unwrap() error {
	return e.Cause
}

// New creates a new SetupError with the given code and message.
func New(code Code, msg string) error {
	return &SetupError{Code: code, Msg: msg}
}

// Wrap creates a new SetupError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &SetupError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new SetupError wrapping err with details.
// The details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &SetupError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from err, or "" if err is not a SetupError.
func GetCode(err error) Code {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsSetupError returns (*SetupError, true) if err is or wraps a SetupError.
func AsSetupError(err error) (*SetupError, bool) {
	var se *SetupError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the process exit code for err.
// 0 for nil, 2 for E_USAGE, the carried ExitStatus when set, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	se, ok := AsSetupError(err)
	if !ok {
		return 1
	}
	if se.Code == EUsage {
		return 2
	}
	if se.ExitStatus > 0 {
		return se.ExitStatus
	}
	return 1
}

// Print writes err to w as:
//
//	Error: <message>
//	<detail key>: <detail value>
//	...
//
// Details are printed in key order. Values spanning several lines are kept verbatim.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	se, ok := AsSetupError(err)
	if !ok {
		fmt.Fprintf(w, "Error: %s\n", err.Error())
		return
	}

	msg := se.Msg
	if se.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, se.Cause)
	}
	fmt.Fprintf(w, "Error: %s\n", msg)

	keys := make([]string, 0, len(se.Details))
	for k := range se.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, se.Details[k])
	}
}
