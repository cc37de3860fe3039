package colgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colgo/runs"
)

var (
	// ErrInvalidRuns is returned when a run list violates the kernel's
	// caller contract at a validated boundary: counts that do not sum to
	// the target row count, a zero count, or an out-of-bounds index.
	ErrInvalidRuns = errors.New("invalid run list")
)

// ErrMalformedEntry indicates a batch entry holding neither or both of a
// scalar and a column.
type ErrMalformedEntry struct {
	Entry int
}

func (e *ErrMalformedEntry) Error() string {
	return fmt.Sprintf("entry %d must hold exactly one of a scalar or a column", e.Entry)
}

// ErrEntryRows indicates a column entry whose row count disagrees with the
// batch row count.
type ErrEntryRows struct {
	Entry int
	Got   int
	Want  int
}

func (e *ErrEntryRows) Error() string {
	return fmt.Sprintf("entry %d has %d rows, batch has %d", e.Entry, e.Got, e.Want)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Run-list contract unification.
	var cm *runs.ErrCountMismatch
	if errors.As(err, &cm) {
		return fmt.Errorf("%w: %w", ErrInvalidRuns, err)
	}
	var zc *runs.ErrZeroCount
	if errors.As(err, &zc) {
		return fmt.Errorf("%w: %w", ErrInvalidRuns, err)
	}
	var ob *runs.ErrIndexOutOfBounds
	if errors.As(err, &ob) {
		return fmt.Errorf("%w: %w", ErrInvalidRuns, err)
	}

	return err
}
