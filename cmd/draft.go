package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjndr/catena/internal/itembank"
	"github.com/arjndr/catena/internal/itemgen"
	"github.com/arjndr/catena/internal/llm"
	"github.com/arjndr/catena/internal/store"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft candidate items with an LLM",
	Long: `Drafts multiple-choice items for a topic using the configured LLM
provider and prints them as JSON. Drafted items are proposals for a
bank author to review, not finished bank entries.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().String("topic", "", "Topic the items should cover (required)")
	draftCmd.Flags().String("level", string(itembank.LevelRecall), "Cognitive level: recall, comprehension, or application")
	draftCmd.Flags().String("difficulty", string(itembank.DifficultyMedium), "Difficulty label: easy, medium, or hard")
	draftCmd.Flags().IntP("count", "n", 1, "Number of items to draft")
	_ = draftCmd.MarkFlagRequired("topic")
}

func runDraft(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	topic, _ := cmd.Flags().GetString("topic")
	levelStr, _ := cmd.Flags().GetString("level")
	diffStr, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	level, err := itembank.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	difficulty, err := itembank.ParseDifficulty(diffStr)
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

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	drafter := itemgen.New(provider, itemgen.DefaultConfig())

	input := itemgen.DraftInput{
		Topic:      topic,
		Level:      level,
		Difficulty: difficulty,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for i := 0; i < count; i++ {
		it, err := drafter.Draft(ctx, input)
		if err != nil {
			return fmt.Errorf("draft %d of %d: %w", i+1, count, err)
		}
		if err := enc.Encode(it); err != nil {
			return err
		}
		// Later drafts must not repeat earlier ones.
		input.Existing = append(input.Existing, it.Question)
	}
	return nil
}
