package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjndr/catena/internal/irt"
	"github.com/arjndr/catena/internal/itembank"
	"github.com/arjndr/catena/internal/store"
	"github.com/arjndr/catena/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [bank.json]",
	Short: "Take an adaptive test interactively",
	Long:  "Runs an interactive attempt against the given item bank, or the built-in sample bank when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	bank, err := loadBankArg(args)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return tui.Run(bank, irt.NewEstimator(), st.AttemptRepo())
}

// loadBankArg loads the bank file named in args, or the sample bank.
func loadBankArg(args []string) (*itembank.Bank, error) {
	if len(args) == 0 {
		return itembank.SampleBank(), nil
	}
	bank, err := itembank.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", args[0], err)
	}
	return bank, nil
}
