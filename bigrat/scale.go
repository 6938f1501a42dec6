package bigrat

import "math/big"

// GCD returns the greatest common divisor of a and b (always
// non-negative), using Euclid's algorithm on absolute values.
//
// The loop condition is "while b != 0" — the inverted condition
// (looping while b *is* zero) would return a unchanged for any nonzero b
// and divide by zero otherwise; see SPEC_FULL.md §11 for why this is
// worth calling out explicitly.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)

	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}

	return x
}

// LCM returns the least common multiple of a and b. Returns zero if
// either argument is zero.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}

	g := GCD(a, b)
	q := new(big.Int).Div(new(big.Int).Abs(a), g)

	return q.Mul(q, new(big.Int).Abs(b))
}

// ScaleFactor returns the LCM of the denominators of column, the
// integer σ such that every r in column satisfies r * σ ∈ ℤ. An empty
// column has scale factor 1.
func ScaleFactor(column []*big.Rat) *big.Int {
	scale := big.NewInt(1)
	for _, r := range column {
		scale = LCM(scale, r.Denom())
	}

	return scale
}

// ScaleColumn multiplies every rational in column by scale and returns
// the resulting big.Int values; ScaleFactor(column) guarantees the
// division is always exact.
func ScaleColumn(column []*big.Rat, scale *big.Int) []*big.Int {
	out := make([]*big.Int, len(column))
	for i, r := range column {
		numer := new(big.Int).Mul(r.Num(), scale)
		out[i] = numer.Div(numer, r.Denom())
	}

	return out
}
