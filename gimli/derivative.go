package gimli

import (
	"errors"
	"fmt"
)

// MaxOrder is the highest supported derivative order. 2^MaxOrder permutation calls per query keeps every derivative
// effectively free.
const MaxOrder = 4

// ErrWordIndex is returned when a word index is outside [0, Words).
var ErrWordIndex = errors.New("gimli: word index out of range")

// ErrOrder is returned when a derivative order is outside [1, MaxOrder].
var ErrOrder = errors.New("gimli: derivative order out of range")

// ErrSubspace is returned when a zero-sum subspace description is empty or too large to enumerate.
var ErrSubspace = errors.New("gimli: invalid subspace")

// Derivative computes the order-th GF(2) derivative of output word `word` of the reduced-round permutation with
// respect to input word `word` at base, using DefaultRounds rounds.
func Derivative(base State, word, order int) (uint32, error) {
	return DerivativeRounds(base, word, order, DefaultRounds)
}

// DerivativeRounds is Derivative with an explicit round count.
//
// The derivative directions are the single-bit masks 1<<0 .. 1<<(order-1) of the chosen word. The result is the XOR
// of the permutation's output word over all 2^order subset-perturbations of base — the Boolean-hypercube form of the
// order-th finite difference. A zero result means the permutation's algebraic degree in that direction is below
// order; a nonzero result witnesses nonlinearity the derivative can still see.
func DerivativeRounds(base State, word, order, rounds int) (uint32, error) {
	if word < 0 || word >= Words {
		return 0, fmt.Errorf("%w: %d", ErrWordIndex, word)
	}
	if order < 1 || order > MaxOrder {
		return 0, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	var acc uint32
	for subset := 0; subset < 1<<order; subset++ {
		st := base
		for i := 0; i < order; i++ {
			if subset&(1<<i) != 0 {
				st[word] ^= 1 << i
			}
		}
		st.Permute(rounds)
		acc ^= st[word]
	}
	return acc, nil
}

// A DerivativeSet holds the derivative of every state word for each order from 1 to MaxOrder, indexed
// [word][order-1].
type DerivativeSet [Words][MaxOrder]uint32

// Derivatives computes the full derivative set of base over the given round count: every word, every order from 1 to
// MaxOrder.
func Derivatives(base State, rounds int) DerivativeSet {
	var set DerivativeSet
	for word := 0; word < Words; word++ {
		for order := 1; order <= MaxOrder; order++ {
			d, _ := DerivativeRounds(base, word, order, rounds)
			set[word][order-1] = d
		}
	}
	return set
}

// SubspaceSum XOR-accumulates every output word of the permutation over the affine subspace obtained by ranging the
// low `bits` bits of the chosen input words over all values, keeping the high bits of base. The total enumeration is
// 2^(bits×len(words)) permutation calls and is capped at 2^24; larger requests fail with ErrSubspace, as do an empty
// or repeated word list and a bit count outside [1, 32].
//
// An all-zero result is a zero-sum: the subspace saturates the permutation's algebraic degree at that round count.
func SubspaceSum(base State, words []int, bitCount, rounds int) (State, error) {
	if bitCount < 1 || bitCount > 32 {
		return State{}, fmt.Errorf("%w: %d bits per word", ErrSubspace, bitCount)
	}
	if len(words) == 0 {
		return State{}, fmt.Errorf("%w: no words to vary", ErrSubspace)
	}
	seen := make(map[int]bool, len(words))
	for _, w := range words {
		if w < 0 || w >= Words {
			return State{}, fmt.Errorf("%w: %d", ErrWordIndex, w)
		}
		if seen[w] {
			return State{}, fmt.Errorf("%w: word %d repeated", ErrSubspace, w)
		}
		seen[w] = true
	}
	dim := bitCount * len(words)
	if dim > 24 {
		return State{}, fmt.Errorf("%w: 2^%d points is too many", ErrSubspace, dim)
	}

	var mask uint32 = 1<<bitCount - 1
	var acc State
	for v := 0; v < 1<<dim; v++ {
		st := base
		for i, w := range words {
			st[w] = (st[w] &^ mask) | (uint32(v>>(i*bitCount)) & mask)
		}
		st.Permute(rounds)
		for i := range acc {
			acc[i] ^= st[i]
		}
	}
	return acc, nil
}
