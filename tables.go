package boomerang

import "math/bits"

// BCT returns the N×N Boomerang Connectivity Table. Cell (a, b) counts the x in [0, N) for which
//
//	inv[s[x]^b] ^ inv[s[x^a]^b] == a
//
// i.e. the number of boomerang quartets connecting input difference a to output difference b. Row a=0 and column b=0
// are always N: a zero difference on either face always comes back.
func (p Pair) BCT() [][]int {
	n := p.Size()
	bct := newTable(n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			count := 0
			for x := 0; x < n; x++ {
				y1 := p.inv[p.s[x]^b]
				y2 := p.inv[p.s[x^a]^b]
				if y1^y2 == a {
					count++
				}
			}
			bct[a][b] = count
		}
	}
	return bct
}

// BDT returns the N×N×N Boomerang Difference Table, indexed [Δ0][Δ1][∇0]. Cell (d0, d1, n0) counts the x in [0, N)
// for which the upper-trail differential holds and the boomerang comes back:
//
//	s[x] ^ s[x^d0] == d1  and  inv[s[x]^n0] ^ inv[s[x^d0]^n0] == d0
//
// Summing a cell's count over all d1 recovers the BCT: the d1 condition partitions the BCT's solution set. Verify
// checks that identity exhaustively.
func (p Pair) BDT() [][][]int {
	n := p.Size()
	bdt := make([][][]int, n)
	for d0 := 0; d0 < n; d0++ {
		bdt[d0] = newTable(n)
		for d1 := 0; d1 < n; d1++ {
			for n0 := 0; n0 < n; n0++ {
				count := 0
				for x := 0; x < n; x++ {
					if p.s[x]^p.s[x^d0] != d1 {
						continue
					}
					y1 := p.inv[p.s[x]^n0]
					y2 := p.inv[p.s[x^d0]^n0]
					if y1^y2 == d0 {
						count++
					}
				}
				bdt[d0][d1][n0] = count
			}
		}
	}
	return bdt
}

// DDT returns the N×N Differential Distribution Table. Cell (a, b) counts the x in [0, N) with s[x] ^ s[x^a] == b.
// Every row sums to N.
func (p Pair) DDT() [][]int {
	n := p.Size()
	ddt := newTable(n)
	for a := 0; a < n; a++ {
		for x := 0; x < n; x++ {
			ddt[a][p.s[x]^p.s[x^a]]++
		}
	}
	return ddt
}

// LAT returns the N×N Linear Approximation Table in bias form. Cell (u, v) is
//
//	#{x : parity(u&x) == parity(v&s[x])} − N/2
//
// so a perfectly unbiased mask pair scores zero and the trivial pair (0, 0) scores N/2.
func (p Pair) LAT() [][]int {
	n := p.Size()
	lat := newTable(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			count := 0
			for x := 0; x < n; x++ {
				if parity(u&x) == parity(v&p.s[x]) {
					count++
				}
			}
			lat[u][v] = count - n/2
		}
	}
	return lat
}

func newTable(n int) [][]int {
	t := make([][]int, n)
	for i := range t {
		t[i] = make([]int, n)
	}
	return t
}

func parity(v int) int {
	return bits.OnesCount(uint(v)) & 1
}
