package gid

import "fmt"

// ErrorKind names one of the validation failures a collection operation can
// report. Every failure is a caller error, never a transient condition, so
// there is no retry semantics attached to any kind.
type ErrorKind string

const (
	// KindEmptyIdentifierSpace: a GID list was supplied before any node was
	// created in the current run.
	KindEmptyIdentifierSpace ErrorKind = "empty identifier space"
	// KindUnknownIdentifier: a supplied GID is not registered with the kernel.
	KindUnknownIdentifier ErrorKind = "unknown identifier"
	// KindIndexOutOfRange: an index fell outside the collection after
	// negative-index normalization.
	KindIndexOutOfRange ErrorKind = "index out of range"
	// KindUnsupportedSliceDirection: a slice was requested with step <= 0.
	KindUnsupportedSliceDirection ErrorKind = "unsupported slice direction"
	// KindUnsupportedCombination: a strided view over a multi-block
	// collection was used as a "+" operand.
	KindUnsupportedCombination ErrorKind = "unsupported combination"
	// KindOverlappingIdentifiers: the same GID appeared twice in a "+"
	// result or in an explicit GID list.
	KindOverlappingIdentifiers ErrorKind = "overlapping identifiers"
)

// Error is the single tagged error type of this package. Kind selects the
// failure; GID and Index carry the offending value where one exists.
type Error struct {
	Kind  ErrorKind
	GID   GID // offending identifier, 0 if not applicable
	Index int // offending index or step, 0 if not applicable
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownIdentifier, KindOverlappingIdentifiers:
		return fmt.Sprintf("%s: GID %d", e.Kind, e.GID)
	case KindIndexOutOfRange:
		return fmt.Sprintf("%s: index %d", e.Kind, e.Index)
	case KindUnsupportedSliceDirection:
		return fmt.Sprintf("%s: step %d", e.Kind, e.Index)
	default:
		return string(e.Kind)
	}
}

// Is matches errors by Kind so callers can write
// errors.Is(err, gid.ErrIndexOutOfRange) without caring about the offending
// value carried by the concrete error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is.
var (
	ErrEmptyIdentifierSpace      = &Error{Kind: KindEmptyIdentifierSpace}
	ErrUnknownIdentifier         = &Error{Kind: KindUnknownIdentifier}
	ErrIndexOutOfRange           = &Error{Kind: KindIndexOutOfRange}
	ErrUnsupportedSliceDirection = &Error{Kind: KindUnsupportedSliceDirection}
	ErrUnsupportedCombination    = &Error{Kind: KindUnsupportedCombination}
	ErrOverlappingIdentifiers    = &Error{Kind: KindOverlappingIdentifiers}
)
