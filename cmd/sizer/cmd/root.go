package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/config"
	"github.com/rustyeddy/sizer/prefs"
	"github.com/rustyeddy/sizer/render"
)

var (
	cfgFile  string
	logLevel string

	// Resolved by the persistent pre-run; every command reads from here.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sizer",
	Short: "A position-size and risk/reward calculator for stock trades",
	Long: `Sizer turns a risk budget into a position plan.

Give it the most you are willing to lose, your entry price, your stop-loss
price and (optionally) a target price, and it derives:
  - How many shares to buy
  - The total capital required
  - The loss realized if the stop is hit
  - The stop distance in percent
  - Risk/reward ratio, potential profit and gain (with a target)

Use "sizer form" for an interactive session or "sizer calc" for one-shot
scripted use. The last max loss you enter is remembered between runs.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sizer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	return nil
}

// openStore opens the preference store, falling back to an in-memory store
// when the file cannot be opened. The calculator keeps working either way;
// the value just is not remembered.
func openStore() prefs.Store {
	path := cfg.Store.Path
	if path == "" {
		path = config.DefaultStorePath()
	}

	store, err := prefs.NewSQLite(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("preference store unavailable, nothing will be saved")
		return prefs.NewMemory()
	}
	return store
}

// renderOptions maps the display config onto the render package.
func renderOptions() render.Options {
	return render.Options{
		CurrencySymbol: cfg.Display.CurrencySymbol,
		FavorableRR:    cfg.Display.FavorableRR,
		Color:          cfg.Display.Color,
	}
}
