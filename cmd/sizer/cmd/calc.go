package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/numeric"
	"github.com/rustyeddy/sizer/position"
	"github.com/rustyeddy/sizer/render"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a position plan from flags",
	Long: `Compute a position plan in one shot.

Flag values pass through the same sanitizer as interactive input, so
"$1,234.56" and "1234.56" are both accepted. When --max-loss is omitted the
last saved value is used.

Examples:
  sizer calc --max-loss 500 --entry 100 --stop 95
  sizer calc --max-loss 500 --entry 100 --stop 95 --target 120
  sizer calc --entry 100 --stop 95 --format json`,
	RunE: runCalc,
}

var (
	calcMaxLoss string
	calcEntry   string
	calcStop    string
	calcTarget  string
	calcFormat  string
	calcNoSave  bool
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVar(&calcMaxLoss, "max-loss", "", "max allowable loss (default: last saved value)")
	calcCmd.Flags().StringVar(&calcEntry, "entry", "", "entry price (required)")
	calcCmd.Flags().StringVar(&calcStop, "stop", "", "stop-loss price (required)")
	calcCmd.Flags().StringVar(&calcTarget, "target", "", "target price (optional)")
	calcCmd.Flags().StringVar(&calcFormat, "format", "text", "output format: text, csv, json")
	calcCmd.Flags().BoolVar(&calcNoSave, "no-save", false, "do not remember the max loss")
	calcCmd.MarkFlagRequired("entry")
	calcCmd.MarkFlagRequired("stop")
}

func runCalc(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	in := position.Inputs{
		MaxLoss:    numeric.Parse(calcMaxLoss),
		EntryPrice: numeric.Parse(calcEntry),
		StopLoss:   numeric.Parse(calcStop),
	}
	if calcMaxLoss == "" {
		if saved, ok, err := store.LastMaxLoss(); err == nil && ok {
			log.Debug().Float64("max_loss", saved).Msg("using saved max loss")
			in.MaxLoss = saved
		}
	}
	if numeric.Sanitize(calcTarget) != "" {
		t := numeric.Parse(calcTarget)
		in.Target = &t
	}

	out := position.Check(in)
	if !out.OK() {
		fmt.Fprintln(os.Stderr, render.Problems(out, renderOptions()))
		return fmt.Errorf("invalid input")
	}

	res := position.Calculate(in)

	switch calcFormat {
	case "text":
		fmt.Println(render.Card(res, renderOptions()))
	case "csv":
		if err := render.WriteCSV(os.Stdout, res); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	case "json":
		if err := render.EncodeJSON(os.Stdout, res); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want text, csv or json)", calcFormat)
	}

	if !calcNoSave {
		if err := store.SaveMaxLoss(in.MaxLoss); err != nil {
			log.Warn().Err(err).Msg("could not save max loss")
		}
	}
	return nil
}
