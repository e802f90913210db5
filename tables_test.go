package boomerang_test

import (
	"slices"
	"testing"

	"github.com/codahale/boomerang"
)

func TestBCT_Toy(t *testing.T) {
	bct := boomerang.ToyPair().BCT()

	want := [][]int{
		{8, 8, 8, 8, 8, 8, 8, 8},
		{8, 2, 0, 2, 0, 2, 0, 2},
		{8, 2, 2, 0, 0, 2, 2, 0},
		{8, 0, 2, 2, 0, 0, 2, 2},
		{8, 2, 2, 0, 2, 0, 0, 2},
		{8, 0, 2, 2, 2, 2, 0, 0},
		{8, 0, 0, 0, 2, 2, 2, 2},
		{8, 2, 0, 2, 2, 0, 2, 0},
	}
	for a := range want {
		if !slices.Equal(bct[a], want[a]) {
			t.Errorf("BCT row %d = %v, want %v", a, bct[a], want[a])
		}
	}
}

func TestBCT_Boundaries(t *testing.T) {
	for _, tc := range []struct {
		name string
		pair boomerang.Pair
	}{
		{"toy", boomerang.ToyPair()},
		{"present", boomerang.PresentPair()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.pair.Size()
			bct := tc.pair.BCT()
			for i := 0; i < n; i++ {
				if bct[0][i] != n {
					t.Errorf("BCT[0][%d] = %d, want %d", i, bct[0][i], n)
				}
				if bct[i][0] != n {
					t.Errorf("BCT[%d][0] = %d, want %d", i, bct[i][0], n)
				}
			}
		})
	}
}

func TestBCT_Present(t *testing.T) {
	bct := boomerang.PresentPair().BCT()

	if got, want := bct[1], []int{16, 0, 4, 4, 0, 16, 4, 4, 4, 4, 0, 0, 4, 4, 0, 0}; !slices.Equal(got, want) {
		t.Errorf("BCT row 1 = %v, want %v", got, want)
	}
	if got, want := bct[2], []int{16, 0, 0, 6, 0, 4, 6, 0, 0, 0, 2, 0, 2, 2, 2, 0}; !slices.Equal(got, want) {
		t.Errorf("BCT row 2 = %v, want %v", got, want)
	}
}

func TestBDT_Toy(t *testing.T) {
	bdt := boomerang.ToyPair().BDT()

	// A zero input difference propagates to a zero output difference for every x and comes back for every ∇0.
	for n0 := 0; n0 < 8; n0++ {
		if bdt[0][0][n0] != 8 {
			t.Errorf("BDT[0][0][%d] = %d, want 8", n0, bdt[0][0][n0])
		}
	}

	want := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{2, 2, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 2, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 2, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 2},
	}
	for d1 := range want {
		if !slices.Equal(bdt[1][d1], want[d1]) {
			t.Errorf("BDT[1][%d] = %v, want %v", d1, bdt[1][d1], want[d1])
		}
	}
}

func TestDDT_Toy(t *testing.T) {
	ddt := boomerang.ToyPair().DDT()

	want := [][]int{
		{8, 0, 0, 0, 0, 0, 0, 0},
		{0, 2, 0, 2, 0, 2, 0, 2},
		{0, 2, 2, 0, 0, 2, 2, 0},
		{0, 0, 2, 2, 0, 0, 2, 2},
		{0, 2, 2, 0, 2, 0, 0, 2},
		{0, 0, 2, 2, 2, 2, 0, 0},
		{0, 0, 0, 0, 2, 2, 2, 2},
		{0, 2, 0, 2, 2, 0, 2, 0},
	}
	for a := range want {
		if !slices.Equal(ddt[a], want[a]) {
			t.Errorf("DDT row %d = %v, want %v", a, ddt[a], want[a])
		}
	}
}

func TestDDT_RowSums(t *testing.T) {
	for _, tc := range []struct {
		name string
		pair boomerang.Pair
	}{
		{"toy", boomerang.ToyPair()},
		{"present", boomerang.PresentPair()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.pair.Size()
			for a, row := range tc.pair.DDT() {
				sum := 0
				for _, c := range row {
					sum += c
				}
				if sum != n {
					t.Errorf("DDT row %d sums to %d, want %d", a, sum, n)
				}
			}
		})
	}
}

func TestLAT_Toy(t *testing.T) {
	lat := boomerang.ToyPair().LAT()

	// The trivial mask pair always agrees; every other zero-input-mask pair is unbiased.
	if lat[0][0] != 4 {
		t.Errorf("LAT[0][0] = %d, want 4", lat[0][0])
	}
	for v := 1; v < 8; v++ {
		if lat[0][v] != 0 {
			t.Errorf("LAT[0][%d] = %d, want 0", v, lat[0][v])
		}
	}

	if got, want := lat[1], []int{0, 2, -2, 0, 0, 2, 2, 0}; !slices.Equal(got, want) {
		t.Errorf("LAT row 1 = %v, want %v", got, want)
	}
}

func BenchmarkBCT(b *testing.B) {
	pair := boomerang.PresentPair()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pair.BCT()
	}
}

func BenchmarkBDT(b *testing.B) {
	pair := boomerang.PresentPair()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pair.BDT()
	}
}
