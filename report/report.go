// Package report renders completed analysis results as text. It consumes finished tables and derivative sets from
// the boomerang and gimli packages and performs no computation of its own, so alternative sinks (JSON, CSV) can be
// written against the same in-memory structures.
package report

import (
	"fmt"
	"io"

	"github.com/codahale/boomerang"
	"github.com/codahale/boomerang/gimli"
)

// WriteBCT renders a Boomerang Connectivity Table as a hex-indexed matrix.
func WriteBCT(w io.Writer, bct [][]int) error {
	return writeMatrix(w, "Boomerang Connectivity Table (BCT)", bct)
}

// WriteDDT renders a Differential Distribution Table as a hex-indexed matrix.
func WriteDDT(w io.Writer, ddt [][]int) error {
	return writeMatrix(w, "Differential Distribution Table (DDT)", ddt)
}

// WriteLAT renders a Linear Approximation Table (bias form) as a hex-indexed matrix.
func WriteLAT(w io.Writer, lat [][]int) error {
	return writeMatrix(w, "Linear Approximation Table (bias)", lat)
}

// WriteBDT renders a Boomerang Difference Table layer by layer: one Δ1×∇0 matrix per value of Δ0.
func WriteBDT(w io.Writer, bdt [][][]int) error {
	if err := writeTitle(w, "Boomerang Difference Table (BDT)"); err != nil {
		return err
	}
	for d0, layer := range bdt {
		if _, err := fmt.Fprintf(w, "\n-- For Δ0 = %X --\n", d0); err != nil {
			return err
		}
		if err := writeCells(w, layer); err != nil {
			return err
		}
	}
	return nil
}

// WriteConsistency renders the result of a BCT/BDT sum-identity check, one line per (Δ0, ∇0) pair in the style of
// the verification report, followed by the valid-pair tally.
func WriteConsistency(w io.Writer, bct [][]int, res boomerang.Consistency) error {
	if err := writeTitle(w, "Verification: BCT(Δ0,∇0) = ΣΔ1 BDT(Δ0,Δ1,∇0)"); err != nil {
		return err
	}

	bad := make(map[[2]int]boomerang.Mismatch, len(res.Mismatches))
	for _, m := range res.Mismatches {
		bad[[2]int{m.D0, m.Nabla0}] = m
	}

	n := len(bct)
	for d0 := 0; d0 < n; d0++ {
		for n0 := 0; n0 < n; n0++ {
			if m, ok := bad[[2]int{d0, n0}]; ok {
				if _, err := fmt.Fprintf(w, "Mismatch: Δ0=%X, ∇0=%X  (Sum=%d, BCT=%d)\n", d0, n0, m.Sum, m.BCT); err != nil {
					return err
				}
				continue
			}
			// For a valid pair the marginal sum equals the BCT cell.
			if _, err := fmt.Fprintf(w, "Valid: Δ0=%X, ∇0=%X  (Sum=%d, BCT=%d)\n", d0, n0, bct[d0][n0], bct[d0][n0]); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nTotal valid entries: %d / %d\n", res.Valid, res.Total); err != nil {
		return err
	}
	if res.OK() {
		_, err := fmt.Fprintln(w, "All entries verified successfully.")
		return err
	}
	_, err := fmt.Fprintf(w, "%d mismatching entries found.\n", len(res.Mismatches))
	return err
}

// WriteDerivatives renders a derivative set, one block per state word with one line per order.
func WriteDerivatives(w io.Writer, set gimli.DerivativeSet) error {
	if err := writeTitle(w, "Higher-Order Derivatives"); err != nil {
		return err
	}
	for word := 0; word < gimli.Words; word++ {
		if _, err := fmt.Fprintf(w, "\n--- Word %d ---\n", word); err != nil {
			return err
		}
		for order := 1; order <= gimli.MaxOrder; order++ {
			if _, err := fmt.Fprintf(w, "order %d: 0x%08X\n", order, set[word][order-1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteState renders a 12-word Gimli state on a single line of hex words.
func WriteState(w io.Writer, label string, s gimli.State) error {
	if _, err := fmt.Fprintf(w, "%s:", label); err != nil {
		return err
	}
	for _, v := range s {
		if _, err := fmt.Fprintf(w, " %08X", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n==============================\n%s\n==============================\n", title)
	return err
}

func writeMatrix(w io.Writer, title string, table [][]int) error {
	if err := writeTitle(w, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeCells(w, table)
}

func writeCells(w io.Writer, table [][]int) error {
	if _, err := fmt.Fprint(w, "    "); err != nil {
		return err
	}
	for j := 0; j < len(table); j++ {
		if _, err := fmt.Fprintf(w, "%3X ", j); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n---%s\n", dashes(len(table))); err != nil {
		return err
	}
	for i, row := range table {
		if _, err := fmt.Fprintf(w, "%2X | ", i); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "%3d ", cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func dashes(n int) string {
	b := make([]byte, 4*n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
