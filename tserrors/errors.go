// Package tserrors provides structured error types for typeschema.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ConfigError: invalid configuration, malformed raw overrides, conflicting
//     constraint overrides. Fatal: aborts the current Convert call.
//   - GraphError: structural problems in the input snapshot (dangling type
//     references, missing root). Fatal: the snapshot cannot be walked.
//   - UnsupportedShapeError: shapes the engine cannot express (unsupported
//     dictionary keys, depth-limit hits, unclassifiable types). Non-fatal by
//     design: the engine records them and emits marker fragments.
//   - InternalError: engine invariant violations such as an unresolved name
//     collision in the definition registry. Fatal and never swallowed.
//
// # Usage with errors.Is
//
//	doc, err := generator.Convert(g)
//	if err != nil {
//	    var cfgErr *tserrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        // Inspect cfgErr.TypeID / cfgErr.Member for the offending node.
//	    }
//	}
package tserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration or override.
	ErrConfig = errors.New("configuration error")

	// ErrGraph indicates a structurally invalid input snapshot.
	ErrGraph = errors.New("graph error")

	// ErrUnsupportedShape indicates a shape the engine cannot express.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrInternal indicates an engine invariant violation.
	ErrInternal = errors.New("internal error")
)

// ConfigError represents an invalid configuration option or a bad
// declarative override attached to a type or member. This includes
// malformed raw-schema payloads and conflicting range overrides
// (for example minimum greater than maximum).
type ConfigError struct {
	// TypeID is the identity of the type carrying the bad input, if any.
	TypeID string
	// Member is the member name carrying the bad input, if any.
	Member string
	// Option is the configuration option or override field at fault.
	Option string
	// Message describes the configuration error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.TypeID != "" {
		msg += " for " + e.TypeID
		if e.Member != "" {
			msg += "." + e.Member
		}
	}
	if e.Option != "" {
		msg += " (" + e.Option + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// GraphError represents a structurally invalid type-graph snapshot,
// such as a member referencing a type identity that is not present in
// the snapshot, or a snapshot without a resolvable root type.
type GraphError struct {
	// TypeID is the identity of the offending type, if known.
	TypeID string
	// Ref is the unresolved type identity, if the error is a dangling edge.
	Ref string
	// Message describes the structural problem.
	Message string
}

// Error returns a human-readable error message.
func (e *GraphError) Error() string {
	msg := "graph error"
	if e.TypeID != "" {
		msg += " at " + e.TypeID
	}
	if e.Ref != "" {
		msg += fmt.Sprintf(" (unresolved reference %q)", e.Ref)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as GraphError has no underlying cause.
func (e *GraphError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *GraphError) Is(target error) bool {
	return target == ErrGraph
}

// UnsupportedShapeError records a node the engine could not express as a
// real schema constraint. These are collected on the conversion result
// rather than returned: the builder emits a marker fragment for the
// offending occurrence site and continues the walk.
type UnsupportedShapeError struct {
	// TypeID is the identity of the unsupported type.
	TypeID string
	// Member is the member name at the occurrence site, if any.
	Member string
	// Path is the occurrence path from the root (for example
	// "Order.lines[].discounts").
	Path string
	// Depth is the traversal depth at the occurrence site.
	Depth int
	// Reason describes why the shape is unsupported. Common values:
	// "non-string dictionary key", "maximum depth exceeded",
	// "unclassifiable type".
	Reason string
}

// Error returns a human-readable error message.
func (e *UnsupportedShapeError) Error() string {
	msg := "unsupported shape"
	if e.TypeID != "" {
		msg += " " + e.TypeID
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Depth > 0 {
		msg += fmt.Sprintf(" (depth %d)", e.Depth)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns nil as UnsupportedShapeError has no underlying cause.
func (e *UnsupportedShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

// InternalError represents an engine invariant violation. Seeing one of
// these means a bug in the engine itself, not bad input: for example the
// definition registry producing two entries for one type identity.
type InternalError struct {
	// TypeID is the identity involved in the violation, if known.
	TypeID string
	// Message describes the violated invariant.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *InternalError) Error() string {
	msg := "internal error"
	if e.TypeID != "" {
		msg += " at " + e.TypeID
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}
