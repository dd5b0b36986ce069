package mapper

import (
	"errors"
	"fmt"
)

// ErrMissingReference is returned when a cross-reference cannot be resolved
// while mapping, e.g. a participant without identity or an event pointing at
// a participant index that is not in the id map.
var ErrMissingReference = errors.New("missing reference")

// MissingReferenceError names the reference that could not be resolved
type MissingReferenceError struct {
	Kind  string // "identity", "stat", "timeline", "role", "lane", "participant"
	Index int    // per-match participant index from the source payload
	Where string // optional context, e.g. "event CHAMPION_KILL at 61234ms"
}

func (e *MissingReferenceError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("%s: no %s for participant %d (%s)", ErrMissingReference, e.Kind, e.Index, e.Where)
	}
	return fmt.Sprintf("%s: no %s for participant %d", ErrMissingReference, e.Kind, e.Index)
}

func (e *MissingReferenceError) Unwrap() error { return ErrMissingReference }

func missing(kind string, index int) *MissingReferenceError {
	return &MissingReferenceError{Kind: kind, Index: index}
}
