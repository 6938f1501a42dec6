// Package lemke: sentinel error set and structured error types.
//
// Error policy (mirrors the teacher's matrix/errors.go convention):
//   - Sentinel variables are exposed for errors.Is branching.
//   - Structured variants (BadCoveringVectorError, PivotLimitError) carry
//     context and implement Unwrap/Is so errors.Is still matches the
//     corresponding sentinel.
//   - Internal invariant violations (a ratio test that never reduces to
//     one candidate, a variable-map consistency break) are programmer
//     errors: they panic with a diagnostic and are never returned as one
//     of these sentinels.
package lemke

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when q is empty, or when M's row
	// count or len(d) doesn't agree with len(q). A row of M with the wrong
	// column count is reported as ErrNonSquareMatrix instead.
	ErrDimensionMismatch = errors.New("lemke: dimension mismatch")

	// ErrNonSquareMatrix is returned when M is not square.
	ErrNonSquareMatrix = errors.New("lemke: matrix is not square")

	// ErrBadCoveringVector is the sentinel matched by BadCoveringVectorError.
	ErrBadCoveringVector = errors.New("lemke: bad covering vector")

	// ErrRayTermination indicates the complementary path escaped to
	// infinity: the entering column had no positive entries.
	ErrRayTermination = errors.New("lemke: ray termination")

	// ErrPivotLimitReached is the sentinel matched by PivotLimitError.
	ErrPivotLimitReached = errors.New("lemke: pivot limit reached")
)

// BadCoveringVectorError reports which component of d violated the
// covering-vector precondition, and why.
type BadCoveringVectorError struct {
	Index  int
	Reason string
}

func (e *BadCoveringVectorError) Error() string {
	return fmt.Sprintf("lemke: bad covering vector at index %d: %s", e.Index, e.Reason)
}

func (e *BadCoveringVectorError) Unwrap() error { return ErrBadCoveringVector }

// PivotLimitError reports the configured budget that was exhausted and,
// for debugging, how many pivots actually ran before the driver stopped.
type PivotLimitError struct {
	MaxPivots int
	PivotsRun int
}

func (e *PivotLimitError) Error() string {
	return fmt.Sprintf("lemke: pivot limit (%d) reached after %d pivots", e.MaxPivots, e.PivotsRun)
}

func (e *PivotLimitError) Unwrap() error { return ErrPivotLimitReached }
