package zipkit

import (
	"fmt"

	"go.llib.dev/zipkit/internal/errorkitlite"
)

// MismatchReason tells in which way the length of the offending source deviated from the rest.
type MismatchReason string

const (
	// TooShort marks that the offending source was exhausted while an earlier source still produced a value.
	TooShort MismatchReason = "too short"
	// TooLong marks that the offending source still had a pending element after the leading source was exhausted.
	TooLong MismatchReason = "too long"
)

// LengthMismatchError is the error yielded by a strict zip
// whose sources turned out to be unequal in length.
// Tuples yielded before the mismatch was confirmed remain valid.
type LengthMismatchError struct {
	// Position is the 1-based argument position of the offending source.
	Position int
	// Reason tells whether the offending source was TooShort or TooLong.
	Reason MismatchReason
}

func (err LengthMismatchError) Error() string {
	return fmt.Sprintf("zip argument %d is %s", err.Position, err.Reason)
}

func LookupLengthMismatch(err error) (LengthMismatchError, bool) {
	return errorkitlite.As[LengthMismatchError](err)
}
