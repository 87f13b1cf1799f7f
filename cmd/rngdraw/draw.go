package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/zeebo/rng"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print draws from one engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newEngine(viper.GetString("engine"), viper.GetString("seed"))
		if err != nil {
			return err
		}

		count := viper.GetInt("count")
		format := viper.GetString("format")
		log.Debug().
			Str("engine", g.Kind().String()).
			Int("count", count).
			Str("format", format).
			Msg("drawing")

		out := bufio.NewWriter(cmd.OutOrStdout())
		for i := 0; i < count; i++ {
			switch format {
			case "hex":
				_, err = fmt.Fprintf(out, "%#x\n", g.Uint64())
			case "dec":
				_, err = fmt.Fprintf(out, "%d\n", g.Uint64())
			case "float":
				_, err = fmt.Fprintf(out, "%v\n", g.Float64())
			default:
				return errs.New("unknown format %q", format)
			}
			if err != nil {
				return errs.Wrap(err)
			}
		}
		if viper.GetBool("state") {
			st := g.State()
			fmt.Fprintf(out, "state kind=%v index=%d words=%d\n", st.Kind, st.Index, len(st.Words))
		}
		return errs.Wrap(out.Flush())
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	flags := drawCmd.Flags()
	flags.StringP("engine", "e", "Pcg128_64", "engine name")
	flags.StringP("seed", "s", "", "integer or text seed (default is the clock)")
	flags.IntP("count", "n", 10, "number of draws")
	flags.StringP("format", "f", "hex", "output format: hex, dec or float")
	flags.Bool("state", false, "print a state summary after drawing")
}

// newEngine builds the named engine. An integer seed is used as is, any other
// non-empty seed is hashed, and an empty seed reads the clock.
func newEngine(name, seed string) (rng.Generator, error) {
	kind, ok := rng.ParseKind(name)
	if !ok {
		return nil, errs.New("unknown engine %q", name)
	}

	if seed == "" {
		g, err := rng.NewKind(kind)
		return g, errs.Wrap(err)
	}

	if v, err := strconv.ParseInt(seed, 0, 64); err == nil {
		g, err := rng.NewSeeded(kind, uint64(v))
		return g, errs.Wrap(err)
	}
	if v, err := strconv.ParseUint(seed, 0, 64); err == nil {
		g, err := rng.NewSeeded(kind, v)
		return g, errs.Wrap(err)
	}

	g, err := rng.NewSeeded(kind, 0)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	rng.SeedString(g, seed)
	return g, nil
}
