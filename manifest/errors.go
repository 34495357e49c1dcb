// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package manifest

import "fmt"

// ErrorKind categorizes manifest extraction errors.
type ErrorKind uint8

const (
	// ErrInvalidReflection indicates the reflection graph is absent or
	// malformed. Raised before any classification begins.
	ErrInvalidReflection ErrorKind = iota

	// ErrUnsupportedAccess indicates a resource access mode outside
	// read/read-write/write.
	ErrUnsupportedAccess

	// ErrUnsupportedShape indicates a resource base shape the binding
	// taxonomy cannot express.
	ErrUnsupportedShape

	// ErrUnsupportedStage indicates an entry-point stage with no engine
	// equivalent.
	ErrUnsupportedStage

	// ErrMultiplePushConstants indicates an entry point declared more
	// than one push-constant-eligible parameter.
	ErrMultiplePushConstants
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidReflection:
		return "InvalidReflection"
	case ErrUnsupportedAccess:
		return "UnsupportedAccess"
	case ErrUnsupportedShape:
		return "UnsupportedShape"
	case ErrUnsupportedStage:
		return "UnsupportedStage"
	case ErrMultiplePushConstants:
		return "MultiplePushConstants"
	default:
		return "Unknown"
	}
}

// Error is a fatal manifest extraction error. Any Error aborts the whole
// invocation; there is no partial or best-effort manifest.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("manifest %s: %s", e.Kind, e.Message)
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
