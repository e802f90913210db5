// Package boomerang computes difference-distribution statistics for small bijective S-boxes: the Boomerang
// Connectivity Table (BCT), the Boomerang Difference Table (BDT), the Differential Distribution Table (DDT), and the
// Linear Approximation Table (LAT). These tables are the raw material of boomerang, differential, and linear
// cryptanalysis of SPN ciphers.
//
// All tables are computed by exhaustive enumeration over the S-box domain. The S-boxes of interest here are tiny (8 or
// 16 entries), so every computation is effectively free; no attempt is made to share work between cells.
//
// The package ships the two reference S-boxes used throughout: a 3-bit toy S-box and the 4-bit PRESENT S-box.
package boomerang

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNotPowerOfTwo is returned when an S-box's length is not a power of two greater than one.
var ErrNotPowerOfTwo = errors.New("boomerang: s-box length must be a power of two")

// ErrNotInverse is returned when the declared inverse S-box does not actually invert the S-box over its full domain.
var ErrNotInverse = errors.New("boomerang: inverse s-box does not invert s-box")

// An SBox is a mapping from [0, N) to [0, N). It is only meaningful as part of a Pair, which guarantees bijectivity.
type SBox []int

// A Pair is a bijective S-box together with its inverse, validated so that each truly inverts the other. The zero
// value is not usable; construct pairs with NewPair, ToyPair, or PresentPair.
type Pair struct {
	s, inv SBox
}

// NewPair returns a validated S-box pair. It fails with ErrNotPowerOfTwo if the length is not a power of two greater
// than one, and with ErrNotInverse if s and inv are not mutual inverses over the full domain. The slices are copied;
// callers may reuse their arguments.
func NewPair(s, inv []int) (Pair, error) {
	n := len(s)
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return Pair{}, fmt.Errorf("%w, got %d entries", ErrNotPowerOfTwo, n)
	}
	if len(inv) != n {
		return Pair{}, fmt.Errorf("%w: s-box has %d entries, inverse has %d", ErrNotInverse, n, len(inv))
	}

	for v := 0; v < n; v++ {
		if s[v] < 0 || s[v] >= n || inv[v] < 0 || inv[v] >= n {
			return Pair{}, fmt.Errorf("%w: entry out of range at %d", ErrNotInverse, v)
		}
	}

	// Checking both compositions proves bijectivity as well: a non-injective s cannot satisfy inv[s[v]] == v for
	// every v.
	for v := 0; v < n; v++ {
		if s[inv[v]] != v || inv[s[v]] != v {
			return Pair{}, fmt.Errorf("%w at value %d", ErrNotInverse, v)
		}
	}

	p := Pair{s: make(SBox, n), inv: make(SBox, n)}
	copy(p.s, s)
	copy(p.inv, inv)
	return p, nil
}

// Size returns N, the number of entries in the S-box.
func (p Pair) Size() int {
	return len(p.s)
}

// SBox returns a copy of the forward S-box.
func (p Pair) SBox() SBox {
	out := make(SBox, len(p.s))
	copy(out, p.s)
	return out
}

// Inverse returns a copy of the inverse S-box.
func (p Pair) Inverse() SBox {
	out := make(SBox, len(p.inv))
	copy(out, p.inv)
	return out
}

// ToyPair returns the 3-bit S-box used in the toy Gimli-style SPN and its inverse.
func ToyPair() Pair {
	return Pair{
		s:   SBox{7, 4, 6, 1, 0, 5, 2, 3},
		inv: SBox{4, 3, 6, 7, 1, 5, 2, 0},
	}
}

// PresentPair returns the 4-bit PRESENT S-box and its inverse.
func PresentPair() Pair {
	return Pair{
		s:   SBox{12, 5, 6, 11, 9, 0, 10, 13, 3, 14, 15, 8, 4, 7, 1, 2},
		inv: SBox{5, 14, 15, 8, 12, 1, 2, 13, 11, 4, 6, 3, 0, 7, 9, 10},
	}
}
