/*
errors.go - Error types for the allocation engine

PURPOSE:
  The allocation itself never fails: division by a zero weight sum and
  not-a-number results are substituted with zero. The few error paths left
  are caller mistakes (bad slot index) and rule construction from untyped
  input, which lives in the factory package and wraps these sentinels.

USAGE:
  if err := engine.ReplaceParticipant(7, p); errors.Is(err, generic.ErrIndexOutOfRange) {
      ...
  }
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIndexOutOfRange is returned when a participant slot does not exist.
	ErrIndexOutOfRange = errors.New("participant index out of range")

	// ErrUnknownRuleKind is returned when an untyped rule names no known kind.
	ErrUnknownRuleKind = errors.New("unknown rule kind")

	// ErrInvalidRuleValue is returned when a rule payload has the wrong type.
	ErrInvalidRuleValue = errors.New("invalid rule value")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// IndexError reports a slot outside the participant list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("participant index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsRuleError returns true if err came from rule construction.
func IsRuleError(err error) bool {
	return errors.Is(err, ErrUnknownRuleKind) || errors.Is(err, ErrInvalidRuleValue)
}
