// Package gimli implements a word-level, round-count-parameterized variant of the Gimli permutation, together with
// higher-order GF(2) derivative and zero-sum diagnostics over it. The reduced default round count exists to make the
// permutation's algebraic degree low enough for those diagnostics to say something interesting; Permute with 24
// rounds is the full Gimli permutation.
package gimli

import "math/bits"

const (
	// Words is the number of 32-bit words in a Gimli state.
	Words = 12

	// FullRounds is the round count of the full Gimli permutation.
	FullRounds = 24

	// DefaultRounds is the reduced round count used for derivative experiments.
	DefaultRounds = 4
)

// A State is a Gimli state of twelve 32-bit words, laid out as a 3×4 matrix in row-major order: words 0-3 are the top
// row, words 4-7 the middle, words 8-11 the bottom.
type State [Words]uint32

// Permute applies the given number of Gimli rounds to s in place. The round counter runs from rounds down to 1, so
// the swap and constant-injection schedule matches the tail of the full permutation. Callers that need the pre-image
// must keep their own copy; State is a value type, so plain assignment suffices.
func (s *State) Permute(rounds int) {
	for round := rounds; round > 0; round-- {
		// SP-box applied to each column
		for col := 0; col < 4; col++ {
			x := bits.RotateLeft32(s[col], 24)
			y := bits.RotateLeft32(s[4+col], 9)
			z := s[8+col]

			s[8+col] = x ^ (z << 1) ^ ((y & z) << 2)
			s[4+col] = y ^ x ^ ((x | z) << 1)
			s[col] = z ^ y ^ ((x & y) << 3)
		}

		// Linear mixing layer
		if (round & 3) == 0 { // Small swap
			s[0], s[1] = s[1], s[0]
			s[2], s[3] = s[3], s[2]
		}
		if (round & 3) == 2 { // Big swap
			s[0], s[2] = s[2], s[0]
			s[1], s[3] = s[3], s[1]
		}

		// Constant addition
		if (round & 3) == 0 {
			s[0] ^= 0x9e377900 | uint32(round) //nolint:gosec // round is always [1,24]
		}
	}
}
