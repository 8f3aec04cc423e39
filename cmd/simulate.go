package cmd

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arjndr/catena/internal/engine"
	"github.com/arjndr/catena/internal/irt"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [bank.json]",
	Short: "Run a headless simulated attempt",
	Long: `Simulates a test taker with a known ability against the bank and prints
the estimate trajectory. Useful for checking how quickly the engine
converges on different banks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64("ability", 0, "True ability of the simulated test taker")
	simulateCmd.Flags().Float64("alpha", irt.DefaultLearningRate, "Estimator learning rate")
	simulateCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	bank, err := loadBankArg(args)
	if err != nil {
		return err
	}

	ability, _ := cmd.Flags().GetFloat64("ability")
	alpha, _ := cmd.Flags().GetFloat64("alpha")
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	est := irt.NewEstimator()
	est.LearningRate = alpha

	eng := engine.New(bank, est)
	item, err := eng.Start()
	if err != nil {
		return err
	}

	fmt.Printf("bank %q, %d items, true ability %+.2f, seed %d\n\n", bank.Name, len(bank.Items), ability, seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "step\titem\tb\tanswer\tθ\tSE")

	for step := 1; item != nil; step++ {
		b := item.Scale()
		correct := rng.Float64() < irt.Probability(ability, b)

		next, err := eng.Record(item.ID, correct, 0)
		if err != nil {
			return err
		}

		mark := "✗"
		if correct {
			mark = "✓"
		}
		se := "∞"
		if !math.IsInf(eng.StandardError(), 1) {
			se = fmt.Sprintf("%.3f", eng.StandardError())
		}
		fmt.Fprintf(w, "%d\t%s\t%+.2f\t%s\t%+.3f\t%s\n", step, item.ID, b, mark, eng.Theta(), se)

		item = next
	}
	w.Flush()

	if err := eng.Finish(); err != nil {
		return err
	}

	s := eng.Summary()
	fmt.Printf("\nfinal θ %+.3f (true %+.2f), band %q, converged %t\n", s.Theta, ability, s.Band, s.Converged)
	fmt.Printf("answered %d, correct %d (%.0f%%)\n", s.TotalResponses, s.CorrectCount, s.AccuracyPct)
	return nil
}
