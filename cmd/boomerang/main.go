// Command boomerang prints differential/boomerang tables for the built-in S-boxes and higher-order derivative
// diagnostics for the reduced-round Gimli permutation.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/codahale/boomerang"
	"github.com/codahale/boomerang/gimli"
	"github.com/codahale/boomerang/report"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "boomerang",
		Usage: "differential and boomerang analysis of small S-boxes and reduced-round Gimli",
		Commands: []*cli.Command{
			sboxCommand(&log),
			derivativeCommand(&log),
			zerosumCommand(&log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

func sboxCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "sbox",
		Usage: "print BCT, BDT, and the sum-identity verification for a built-in S-box",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sbox", Value: "toy", Usage: "S-box to analyze: toy (3-bit) or present (4-bit)"},
			&cli.BoolFlag{Name: "ddt", Usage: "also print the differential distribution table"},
			&cli.BoolFlag{Name: "lat", Usage: "also print the linear approximation table"},
		},
		Action: func(c *cli.Context) error {
			pair, err := lookupPair(c.String("sbox"))
			if err != nil {
				return err
			}
			log.Info().Str("sbox", c.String("sbox")).Int("size", pair.Size()).Msg("computing tables")

			bct := pair.BCT()
			bdt := pair.BDT()
			if err := report.WriteBCT(c.App.Writer, bct); err != nil {
				return err
			}
			if err := report.WriteBDT(c.App.Writer, bdt); err != nil {
				return err
			}
			if c.Bool("ddt") {
				if err := report.WriteDDT(c.App.Writer, pair.DDT()); err != nil {
					return err
				}
			}
			if c.Bool("lat") {
				if err := report.WriteLAT(c.App.Writer, pair.LAT()); err != nil {
					return err
				}
			}

			res := boomerang.Verify(bct, bdt)
			if !res.OK() {
				log.Warn().Int("mismatches", len(res.Mismatches)).Msg("BCT/BDT sum identity violated")
			}
			return report.WriteConsistency(c.App.Writer, bct, res)
		},
	}
}

func derivativeCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "derivative",
		Usage: "print order 1..4 derivatives of every word of the reduced-round Gimli permutation",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rounds", Value: gimli.DefaultRounds, Usage: "number of Gimli rounds"},
		},
		Action: func(c *cli.Context) error {
			base := gimli.State{1}
			rounds := c.Int("rounds")
			log.Info().Int("rounds", rounds).Msg("computing derivative set")

			if err := report.WriteState(c.App.Writer, "Initial state", base); err != nil {
				return err
			}
			return report.WriteDerivatives(c.App.Writer, gimli.Derivatives(base, rounds))
		},
	}
}

func zerosumCommand(log *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "zerosum",
		Usage: "XOR-accumulate the permutation over a low-bit subspace of chosen words",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{Name: "words", Value: cli.NewIntSlice(0), Usage: "state words to vary"},
			&cli.IntFlag{Name: "bits", Value: 4, Usage: "low bits per word to range over"},
			&cli.IntFlag{Name: "rounds", Value: gimli.DefaultRounds, Usage: "number of Gimli rounds"},
		},
		Action: func(c *cli.Context) error {
			words := c.IntSlice("words")
			bits, rounds := c.Int("bits"), c.Int("rounds")
			log.Info().Ints("words", words).Int("bits", bits).Int("rounds", rounds).Msg("accumulating subspace")

			acc, err := gimli.SubspaceSum(gimli.State{1}, words, bits, rounds)
			if err != nil {
				return err
			}
			if err := report.WriteState(c.App.Writer, "XOR accumulation", acc); err != nil {
				return err
			}
			if acc == (gimli.State{}) {
				_, err = fmt.Fprintln(c.App.Writer, "Zero-sum: subspace saturates the permutation's degree.")
			}
			return err
		},
	}
}

func lookupPair(name string) (boomerang.Pair, error) {
	switch name {
	case "toy":
		return boomerang.ToyPair(), nil
	case "present":
		return boomerang.PresentPair(), nil
	default:
		return boomerang.Pair{}, fmt.Errorf("unknown s-box %q (want toy or present)", name)
	}
}
