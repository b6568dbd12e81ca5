// Package errors provides structured error types for ragchat.
// These errors carry the operation that failed and a coarse category so
// callers can decide how to report them without string matching.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for ragchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Join is errors.Join, re-exported so callers need only this package.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// File selection errors
func NoMatch(pattern string) error {
	return E(Op("files.Resolve"), KindNotFound, fmt.Sprintf("no files match %q", pattern))
}

func BadPattern(pattern string, err error) error {
	return E(Op("files.Resolve"), KindInvalid, fmt.Sprintf("bad pattern %q", pattern), err)
}

func NotRegularFile(path string) error {
	return E(Op("files.Describe"), KindInvalid, fmt.Sprintf("%s is not a regular file", path))
}

func StatFailed(path string, err error) error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return E(Op("files.Describe"), kind, fmt.Sprintf("cannot read %s", path), err)
}

// Clipboard errors
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "clipboard unavailable", err)
}

func NothingToCopy() error {
	return E(Op("clipboard.WriteText"), KindInvalid, "nothing to copy")
}
