package uproot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrorKind is the closed taxonomy of fatal decode/plan errors.
type ErrorKind int

const (
	// UnknownType: no factory matched a schema node.
	UnknownType ErrorKind = iota
	// FramingError: the cursor did not land on a declared byte-count span,
	// entry boundary, or jagged-array end; or a byte-count's top bit was
	// missing.
	FramingError
	// ModeMismatch: a container was planned object-wise but the wire
	// indicates member-wise, or vice versa.
	ModeMismatch
	// SchemaInconsistency: fArrayDim>0 without fMaxIndex, a zero flat-size
	// product, an unparsable map/sequence type string, and similar.
	SchemaInconsistency
	// OverflowError: the cursor under/overflowed the buffer.
	OverflowError
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownType:
		return "UnknownType"
	case FramingError:
		return "FramingError"
	case ModeMismatch:
		return "ModeMismatch"
	case SchemaInconsistency:
		return "SchemaInconsistency"
	case OverflowError:
		return "OverflowError"
	default:
		return "UnknownError"
	}
}

// Error is returned by planning (PlanBranch, PlanChild) and decoding
// (ReadBranch, Reader methods). It is never recoverable: the caller may fall
// back to a different reader or surface it to the user, but this package
// never retries.
//
// Session carries a per-ReadBranch-call identifier (see branch.go) so that a
// fatal error surfaced while many baskets decode concurrently, each in its
// own Reader tree, can be correlated back to the basket that produced it.
type Error struct {
	Kind ErrorKind
	// Path is, for a planning error, the dot-separated item path of the
	// node being planned. For a decode error it is the name of the
	// innermost reader that stamped the error (withContext keeps a Path
	// that is already set); it is not the full chain of reader names from
	// the root.
	Path string
	// Pos is the cursor position relative to the start of the entry being
	// decoded when the error was raised, or -1 when not applicable (e.g.
	// during planning).
	Pos int
	// Session correlates this error with one ReadBranch call; zero value
	// when raised during planning, before any decode session exists.
	Session uuid.UUID

	msg string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Pos >= 0 {
		fmt.Fprintf(&b, " (cursor@%d)", e.Pos)
	}
	if e.msg != "" {
		b.WriteString(": ")
		b.WriteString(e.msg)
	}
	if e.Session != uuid.Nil {
		fmt.Fprintf(&b, " [session %s]", e.Session)
	}
	return b.String()
}

// nilSession is passed to withContext by reader code below branch.go's
// ReadBranch entry point, which mints the session uuid.
var nilSession = uuid.Nil

func newPlanError(kind ErrorKind, path, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Path: path, Pos: -1, msg: fmt.Sprintf(format, args...)}
}

func newUnknownTypeError(path, typeName string) *Error {
	return newPlanError(UnknownType, path, "no factory matched type %q", typeName)
}

func newSchemaError(path, format string, args ...interface{}) *Error {
	return newPlanError(SchemaInconsistency, path, format, args...)
}

// newFramingError is used by cursor/reader code that has no reader-name path
// or session handy; withContext below enriches it with both once caught by
// an enclosing reader or by ReadBranch.
func newFramingError(format string, args ...interface{}) *Error {
	return &Error{Kind: FramingError, Pos: -1, msg: fmt.Sprintf(format, args...)}
}

func newModeMismatchError(name string, want, got string) *Error {
	return &Error{Kind: ModeMismatch, Path: name, Pos: -1,
		msg: fmt.Sprintf("expected %s reading but wire indicated %s", want, got)}
}

func newOverflowError(pos, n, size int) *Error {
	return &Error{Kind: OverflowError, Pos: pos,
		msg: fmt.Sprintf("need %d bytes at offset %d, buffer has %d", n, pos, size)}
}

// withContext stamps path/pos/session onto an *Error if it doesn't already
// carry them, or wraps a non-Error as a FramingError. Used by Decode and
// read-many/read-until wrappers that are closer to the failure than the
// original raiser.
func withContext(err error, path string, pos int, session uuid.UUID) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Kind: FramingError, Pos: -1, msg: err.Error()}
	}
	if e.Path == "" {
		e.Path = path
	}
	if e.Pos < 0 {
		e.Pos = pos
	}
	if e.Session == uuid.Nil {
		e.Session = session
	}
	return e
}
