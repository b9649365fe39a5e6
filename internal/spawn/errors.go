package spawn

import (
	"errors"
	"fmt"
)

var (
	// ErrWaveSumMismatch matches any *WaveSumMismatchError via errors.Is.
	ErrWaveSumMismatch = errors.New("wave distribution sum mismatch")

	// ErrStageCountMismatch is reported by Plan.Validate when the stage totals
	// and wave distributions have different lengths. The generator itself
	// ignores the unpaired tail.
	ErrStageCountMismatch = errors.New("stage count and wave distribution count differ")

	// ErrMalformedToken is returned by ParseSchedule for a token that is not
	// of the form {enemy}{stage}-{time}.
	ErrMalformedToken = errors.New("malformed spawn token")
)

// WaveSumMismatchError reports a stage whose waves do not add up to its
// declared enemy count.
type WaveSumMismatchError struct {
	Stage    int
	Declared int
	Sum      int
}

func (e *WaveSumMismatchError) Error() string {
	return fmt.Sprintf("the sum of enemies per wave for stage %d does not match the total enemies specified (waves sum to %d, stage declares %d)",
		e.Stage, e.Sum, e.Declared)
}

// Is lets errors.Is(err, ErrWaveSumMismatch) succeed.
func (e *WaveSumMismatchError) Is(target error) bool {
	return target == ErrWaveSumMismatch
}
