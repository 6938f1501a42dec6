// Package tableau: sentinel error set.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// A pivot on a zero entry is reported as ErrZeroPivot. Internal invariant
// violations (a fraction-free division with nonzero remainder) are
// programmer errors and panic with a diagnostic instead of being surfaced
// as one of these sentinels — they must never be silently masked.
package tableau

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested tableau has n <= 0.
	ErrInvalidDimensions = errors.New("tableau: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("tableau: index out of range")

	// ErrZeroPivot is returned by Pivot when the chosen entry is zero.
	ErrZeroPivot = errors.New("tableau: pivot element is zero")
)
