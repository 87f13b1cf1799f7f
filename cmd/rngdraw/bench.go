package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/zeebo/rng"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time draws from every engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := rng.Kinds()
		if name := viper.GetString("engine"); name != "" {
			kind, ok := rng.ParseKind(name)
			if !ok {
				return errs.New("unknown engine %q", name)
			}
			kinds = []rng.Kind{kind}
		}

		count := viper.GetInt("count")
		if count <= 0 {
			return errs.New("count must be positive, got %d", count)
		}

		for _, kind := range kinds {
			g, err := rng.NewKind(kind)
			if err != nil {
				return errs.Wrap(err)
			}

			var sink uint64
			start := time.Now()
			for i := 0; i < count; i++ {
				sink += g.Uint64()
			}
			elapsed := time.Since(start)

			log.Info().
				Str("engine", kind.String()).
				Uint("bits", kind.Bits()).
				Int("draws", count).
				Dur("elapsed", elapsed).
				Float64("ns_per_draw", float64(elapsed.Nanoseconds())/float64(count)).
				Uint64("sink", sink).
				Msg("bench")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	flags := benchCmd.Flags()
	flags.StringP("engine", "e", "", "engine name (default is every engine)")
	flags.IntP("count", "n", 1000000, "draws per engine")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List engine names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range rng.Kinds() {
			cmd.Printf("%-14s %3d bits\n", kind, kind.Bits())
		}
	},
}

func init() { rootCmd.AddCommand(listCmd) }
