package problem

import (
	"fmt"
	"runtime"
)

// framesToCapture bounds how much of the call stack each Error records.
const framesToCapture = 32

// Frame is one captured call-stack record. The shape is deliberately small:
// enough for a diagnostic consumer to locate the failure, nothing more.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error is the structured error object a Descriptor can wrap. It carries a
// client-safe message, a numeric code a Descriptor resolves its status from,
// an optional cause of the same shape, and the stack frames captured where
// the error was constructed.
//
// Error values are immutable after construction; the Descriptor reads them,
// never writes them.
type Error struct {
	message string
	code    int
	cause   *Error
	frames  []Frame
}

// NewError creates an Error with the given code and message, capturing the
// caller's stack frames. A zero code is legal and means "no usable code";
// a Descriptor wrapping such an error resolves its status to DefaultStatus.
func NewError(code int, message string) *Error {
	return &Error{
		message: message,
		code:    code,
		frames:  captureFrames(3),
	}
}

// WrapError creates an Error that records cause as its causal predecessor.
// The cause is preserved for chain walking and for errors.Is / errors.As via
// Unwrap.
func WrapError(code int, message string, cause *Error) *Error {
	return &Error{
		message: message,
		code:    code,
		cause:   cause,
		frames:  captureFrames(3),
	}
}

// Error implements the error interface. It returns a compact, dev-friendly
// string; clients should read fields or consume a Descriptor instead.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s (%d): %v", e.message, e.code, e.cause)
	}
	return fmt.Sprintf("%s (%d)", e.message, e.code)
}

// Unwrap returns the underlying cause, implementing the unwrap interface
// for error chains.
func (e *Error) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// Message returns the client-safe message.
func (e *Error) Message() string { return e.message }

// Code returns the numeric code. Zero means no code was supplied.
func (e *Error) Code() int { return e.code }

// Cause returns the causal predecessor, or nil when this error is the root.
func (e *Error) Cause() *Error { return e.cause }

// Frames returns a defensive copy of the captured stack frames; the internal
// slice is never handed out.
func (e *Error) Frames() []Frame {
	if len(e.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(e.frames))
	copy(out, e.frames)
	return out
}

func captureFrames(skip int) []Frame {
	pcs := make([]uintptr, framesToCapture)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	var out []Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		out = append(out, Frame{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		})
		if !more {
			break
		}
	}
	return out
}
