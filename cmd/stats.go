package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arjndr/catena/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent attempts",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of attempts to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	records, err := st.AttemptRepo().Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No attempts recorded yet. Run `catena play` to take a test.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "finished\tbank\tθ\tSE\tband\tanswered\tcorrect")
	for _, rec := range records {
		se := "∞"
		if !math.IsInf(rec.StandardError, 1) {
			se = fmt.Sprintf("%.2f", rec.StandardError)
		}
		fmt.Fprintf(w, "%s\t%s\t%+.2f\t%s\t%s\t%d\t%d\n",
			rec.FinishedAt.Format("2006-01-02 15:04"), rec.Bank,
			rec.Theta, se, rec.Band, rec.TotalResponses, rec.CorrectCount,
		)
	}
	return w.Flush()
}
