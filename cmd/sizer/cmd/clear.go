package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved max loss",
	Long: `Remove the remembered max loss from the preference store.

The next form session starts with an empty max loss field.`,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear preference: %w", err)
	}

	fmt.Println("✓ Cleared saved max loss")
	return nil
}
