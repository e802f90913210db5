package boomerang

// A Mismatch identifies a (Δ0, ∇0) pair for which the BDT's marginal sum over Δ1 disagrees with the BCT, along with
// both values for inspection.
type Mismatch struct {
	D0, Nabla0 int
	Sum, BCT   int
}

// A Consistency summarizes an exhaustive check of the BCT/BDT sum identity. Valid counts the (Δ0, ∇0) pairs for which
// the identity holds, out of Total = N² pairs.
type Consistency struct {
	Valid      int
	Total      int
	Mismatches []Mismatch
}

// OK reports whether every pair satisfied the identity.
func (c Consistency) OK() bool {
	return len(c.Mismatches) == 0
}

// Verify exhaustively checks that for every (Δ0, ∇0) pair, summing BDT[Δ0][Δ1][∇0] over all Δ1 yields BCT[Δ0][∇0].
// Equality is exact. A mismatch is evidence of a table-construction bug and is reported as data rather than an error;
// Verify never modifies its arguments.
func Verify(bct [][]int, bdt [][][]int) Consistency {
	n := len(bct)
	res := Consistency{Total: n * n}
	for d0 := 0; d0 < n; d0++ {
		for n0 := 0; n0 < n; n0++ {
			sum := 0
			for d1 := 0; d1 < n; d1++ {
				sum += bdt[d0][d1][n0]
			}
			if sum == bct[d0][n0] {
				res.Valid++
			} else {
				res.Mismatches = append(res.Mismatches, Mismatch{D0: d0, Nabla0: n0, Sum: sum, BCT: bct[d0][n0]})
			}
		}
	}
	return res
}
