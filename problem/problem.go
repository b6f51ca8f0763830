// Package problem provides a normalized, read-only representation of an API
// error payload: an HTTP status code plus a human-readable detail string,
// resolved lazily from either a literal message or a structured error object.
//
// The package is designed to sit between application code and whatever
// renderer turns errors into a wire format. It offers several key features:
//
//   - A Descriptor value object with a closed attribute surface (status, errors)
//   - Lazy resolution: values are re-derived from the underlying source on
//     every read, never cached at construction
//   - Structured error objects with numeric codes, causal chains and
//     captured stack frames
//   - Controlled exposure of diagnostic detail via a single flag
//   - Integrated logging with zap
//
// Basic usage:
//
//	// Literal detail
//	d := problem.New(http.StatusBadRequest, "Bad input")
//	d.Status() // 400
//	d.Errors() // "Bad input"
//
//	// Structured error object; status derives from the object's code
//	err := problem.NewError(http.StatusNotFound, "order not found")
//	d = problem.FromError(http.StatusBadRequest, err)
//	d.Status() // 404
//
// Serialization, transport and routing are deliberately out of scope; a
// renderer consumes Mapping() and, if it wants default titles, the status
// package's title table.
package problem

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultLogger is the default zap logger instance used throughout the package.
// It is initialized to a production configuration but can be overridden using SetLogger.
var DefaultLogger *zap.Logger

func init() {
	var err error
	DefaultLogger, err = zap.NewProduction()
	if err != nil {
		DefaultLogger = zap.NewNop()
	}
}

// SetLogger allows setting a custom zap logger instance.
// If nil is provided, the function will do nothing to prevent
// accidentally disabling logging.
func SetLogger(logger *zap.Logger) {
	if logger != nil {
		DefaultLogger = logger
	}
}

// DefaultStatus is the status a Descriptor falls back to when its error
// object carries no usable numeric code.
const DefaultStatus = 500

// sourceKind discriminates the two shapes a Descriptor's error source can
// take. The variant is fixed at construction and never inferred from the
// stored value afterwards.
type sourceKind int

const (
	// sourceLiteral holds a plain string supplied directly as the detail.
	sourceLiteral sourceKind = iota

	// sourceObject holds a structured *Error with code, message and an
	// optional causal chain.
	sourceObject
)

// Descriptor wraps a status value and an error source and resolves both on
// demand. It is the sole entity of this package: construct it once, toggle
// stack-trace exposure if needed, then read status and errors any number of
// times. Each read re-derives its value from the stored source.
//
// A Descriptor holds the caller's *Error by reference and never mutates it.
// The descriptor itself carries one mutable flag, so share an instance across
// goroutines only once the flag has settled.
type Descriptor struct {
	status  int
	kind    sourceKind
	literal string
	obj     *Error

	includeStackTrace bool
}

// New creates a Descriptor whose detail is a literal string. The status is
// stored verbatim; no validation or normalization happens until read time.
func New(status int, detail string) *Descriptor {
	return &Descriptor{
		status:  status,
		kind:    sourceLiteral,
		literal: detail,
	}
}

// FromError creates a Descriptor backed by a structured error object. The
// status passed here is kept only as a construction record: once an error
// object is present, status resolution always derives from the object's code.
func FromError(status int, err *Error) *Descriptor {
	return &Descriptor{
		status: status,
		kind:   sourceObject,
		obj:    err,
	}
}

// SetIncludeStackTrace controls whether diagnostic detail (the causal chain
// with captured stack frames) may be exposed. It returns the receiver so
// calls can be chained onto construction:
//
//	d := problem.FromError(500, err).SetIncludeStackTrace(true)
func (d *Descriptor) SetIncludeStackTrace(flag bool) *Descriptor {
	d.includeStackTrace = flag
	return d
}

// Get reads one of the descriptor's public attributes by name,
// case-insensitively. The attribute surface is a closed allow-list:
//
//	"status" -> resolved status (int)
//	"errors" -> resolved detail (string)
//
// Any other name fails with *InvalidAttributeError. Internal state such as
// the raw error object or the stack-trace flag is not reachable through this
// path.
func (d *Descriptor) Get(name string) (any, error) {
	switch strings.ToLower(name) {
	case "status":
		return d.Status(), nil
	case "errors":
		return d.Errors(), nil
	default:
		return nil, &InvalidAttributeError{Name: name}
	}
}

// Status resolves the status code. When the source is an error object, the
// object's code wins over whatever status was passed at construction; a
// zero code falls back to DefaultStatus. A literal source returns the
// construction status unchanged.
func (d *Descriptor) Status() int {
	switch d.kind {
	case sourceObject:
		if d.obj != nil && d.obj.code != 0 {
			return d.obj.code
		}
		return DefaultStatus
	default:
		return d.status
	}
}

// Errors resolves the human-readable detail. A literal source is returned
// exactly as given. An error-object source yields the trimmed top-level
// message; when stack-trace exposure is on, the causal chain is walked and
// collected as well, but it is surfaced through Chain, not here — the
// client-facing detail stays the top-level message.
func (d *Descriptor) Errors() string {
	switch d.kind {
	case sourceObject:
		if d.obj == nil {
			return ""
		}
		msg := strings.TrimSpace(d.obj.message)
		if d.includeStackTrace {
			d.collectChain()
		}
		return msg
	default:
		return d.literal
	}
}

// Mapping is the snapshot a renderer consumes: the two resolved attributes
// in their canonical order (status first, then errors).
type Mapping struct {
	Status int    `json:"status"`
	Errors string `json:"errors"`
}

// Mapping resolves both attributes once and returns them together. It is
// equivalent to calling Status and Errors independently.
func (d *Descriptor) Mapping() Mapping {
	return Mapping{
		Status: d.Status(),
		Errors: d.Errors(),
	}
}

// InvalidAttributeError reports a read of an attribute name outside the
// descriptor's allow-list. It is the only error kind raised by this package
// and is never recovered internally.
type InvalidAttributeError struct {
	// Name is the offending attribute name, exactly as the caller gave it.
	Name string
}

// Error implements the error interface.
func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("problem: invalid attribute %q (valid attributes are \"status\" and \"errors\")", e.Name)
}

// Is implements error matching for errors.Is, allowing attribute errors to
// be matched by kind while ignoring the offending name.
func (e *InvalidAttributeError) Is(target error) bool {
	_, ok := target.(*InvalidAttributeError)
	return ok
}
