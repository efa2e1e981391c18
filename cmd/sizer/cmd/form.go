package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/sizer/numeric"
	"github.com/rustyeddy/sizer/position"
	"github.com/rustyeddy/sizer/prefs"
	"github.com/rustyeddy/sizer/render"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Interactive position planning session",
	Long: `Start an interactive session that prompts for the four trade
parameters, validates each answer as you type it, and renders the position
plan. The max loss you enter is offered back as the default next time.

Leave the target price blank to skip the reward-side metrics.`,
	RunE: runForm,
}

const (
	menuAgain = "Calculate another position"
	menuClear = "Clear the saved max loss"
	menuQuit  = "Quit"
)

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	logger := log.With().Str("session", ulid.Make().String()).Logger()

	store := openStore()
	defer store.Close()

	for {
		in, err := askInputs(store, logger)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		res := position.Calculate(in)
		fmt.Println(render.Card(res, renderOptions()))

		if err := store.SaveMaxLoss(in.MaxLoss); err != nil {
			logger.Warn().Err(err).Msg("could not save max loss")
		}

		var next string
		prompt := &survey.Select{
			Message: "What next?",
			Options: []string{menuAgain, menuClear, menuQuit},
		}
		if err := survey.AskOne(prompt, &next); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch next {
		case menuClear:
			if err := store.Clear(); err != nil {
				return fmt.Errorf("clear preference: %w", err)
			}
			fmt.Println("✓ Cleared saved max loss")
		case menuQuit:
			return nil
		}
	}
}

// askInputs prompts for the four fields in order. Every answer runs through
// the sanitizer before validation, so each field re-prompts with its own
// message until it passes; the assembled Inputs always satisfy Check.
func askInputs(store prefs.Store, logger zerolog.Logger) (position.Inputs, error) {
	var in position.Inputs

	maxLossPrompt := &survey.Input{
		Message: "Max allowable loss:",
		Help:    "The most you are willing to lose on this trade, in account currency.",
	}
	if saved, ok, err := store.LastMaxLoss(); err == nil && ok {
		maxLossPrompt.Default = strconv.FormatFloat(saved, 'f', -1, 64)
		logger.Debug().Float64("max_loss", saved).Msg("offering saved max loss")
	}
	if err := askNumber(maxLossPrompt, &in.MaxLoss, position.CheckMaxLoss); err != nil {
		return in, err
	}

	entryPrompt := &survey.Input{
		Message: "Entry price:",
		Help:    "The price you plan to buy at.",
	}
	if err := askNumber(entryPrompt, &in.EntryPrice, position.CheckEntryPrice); err != nil {
		return in, err
	}

	stopPrompt := &survey.Input{
		Message: "Stop-loss price:",
		Help:    "Your exit price if the trade goes against you. Must be below the entry.",
	}
	check := func(v float64) *position.Violation {
		return position.CheckStopLoss(v, in.EntryPrice)
	}
	if err := askNumber(stopPrompt, &in.StopLoss, check); err != nil {
		return in, err
	}

	targetPrompt := &survey.Input{
		Message: "Target price (blank to skip):",
		Help:    "Where you plan to take profit. Must be above the entry.",
	}
	var raw string
	err := survey.AskOne(targetPrompt, &raw, survey.WithValidator(func(val interface{}) error {
		s := numeric.Sanitize(val.(string))
		if s == "" {
			return nil
		}
		t := numeric.Parse(s)
		if v := position.CheckTarget(&t, in.EntryPrice); v != nil {
			return errors.New(v.Msg)
		}
		return nil
	}))
	if err != nil {
		return in, err
	}
	if s := numeric.Sanitize(raw); s != "" {
		t := numeric.Parse(s)
		in.Target = &t
	}

	return in, nil
}

// askNumber asks one numeric question, enforcing the field's own check
// inside the prompt so invalid answers re-prompt instead of failing later.
func askNumber(prompt *survey.Input, dst *float64, check func(float64) *position.Violation) error {
	var raw string
	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		if v := check(numeric.Parse(val.(string))); v != nil {
			return errors.New(v.Msg)
		}
		return nil
	}))
	if err != nil {
		return err
	}
	*dst = numeric.Parse(raw)
	return nil
}
