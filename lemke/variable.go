package lemke

import "fmt"

// Variable is a symbolic name drawn from the disjoint union
// {z0, z1, ..., zn} ∪ {w1, ..., wn}, encoded as a compact index.
//
// idx == 0 is z0; 1..n are z1..zn; n+1..2n are w1..wn. Variable is a
// plain value type — no object identity, no pointers — so it can be
// copied and compared freely.
type Variable struct {
	idx int
	n   int
}

// IsZ reports whether v is one of z0..zn.
func (v Variable) IsZ() bool { return v.idx <= v.n }

// IsW reports whether v is one of w1..wn.
func (v Variable) IsW() bool { return v.idx > v.n }

// IsZ0 reports whether v is the artificial variable z0.
func (v Variable) IsZ0() bool { return v.idx == 0 }

// Complement returns zi's complement wi and vice versa, i >= 1.
// Complement(z0) is a programmer error — z0 has no complement — and panics.
func (v Variable) Complement() Variable {
	if v.idx == 0 {
		panic("lemke: z0 has no complement")
	}
	if v.IsZ() {
		return Variable{idx: v.idx + v.n, n: v.n}
	}

	return Variable{idx: v.idx - v.n, n: v.n}
}

// Equal reports whether v and other name the same variable.
func (v Variable) Equal(other Variable) bool { return v.idx == other.idx && v.n == other.n }

// String renders v as "z<i>" or "w<i>", matching the conventional LCP
// notation used throughout spec.md.
func (v Variable) String() string {
	if v.IsZ() {
		return fmt.Sprintf("z%d", v.idx)
	}

	return fmt.Sprintf("w%d", v.idx-v.n)
}
