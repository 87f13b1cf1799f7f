package main

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

var (
	cfgFile string
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rngdraw",
	Short: "Draw values from pseudo-random engines.",
	Long: `Draw values from pseudo-random engines, For example:
  rngdraw draw --engine=pcg128_64 --seed=1 --count=5
  rngdraw bench --count=10000000
  RNGDRAW_ENGINE=cwg64 rngdraw draw --format=float`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd); err != nil {
			return err
		}
		return initLogger()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("rngdraw failed")
		os.Exit(1)
	}
}

func init() {
	log = newLogger(zerolog.InfoLevel)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.String("log-level", "info", "log level")
}

// initConfig binds the command's flags to viper so that every flag can also
// come from an RNGDRAW_ environment variable or the config file.
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("rngdraw")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return errs.Wrap(err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errs.Wrap(err)
		}
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
		return nil
	}

	// otherwise $HOME/.rngdraw.* is optional
	home, err := homedir.Dir()
	if err != nil {
		return errs.Wrap(err)
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".rngdraw")

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return errs.Wrap(err)
	}
	return nil
}

func initLogger() error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return errs.Wrap(err)
	}
	log = newLogger(level)
	return nil
}

func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).Level(level).With().Timestamp().Logger()
}
