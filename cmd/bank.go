package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arjndr/catena/internal/itembank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate item banks",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <bank.json>",
	Short: "Validate an item bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := itembank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%q, %d items)\n", args[0], bank.Name, len(bank.Items))
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [bank.json]",
	Short: "List a bank's items with their difficulty scale",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBankArg(args)
		if err != nil {
			return err
		}

		fmt.Printf("%q (%s), %d items\n\n", bank.Name, bank.FormatVersion, len(bank.Items))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "id\tlevel\tdifficulty\tb")
		for _, it := range bank.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%+.1f\n", it.ID, it.Level, it.Difficulty, it.Scale())
		}
		return w.Flush()
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
