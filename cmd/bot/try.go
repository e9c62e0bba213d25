package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/wonderland-bot/internal/config"
	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/repository"
	"github.com/aliskhannn/wonderland-bot/internal/service"
)

type tryFlags struct {
	phrase   int
	score    float64
	seed     int64
	hasSeed  bool
	phrases  string
	feedback string
}

func newTryCmd() *cobra.Command {
	f := &tryFlags{}

	cmd := &cobra.Command{
		Use:   "try <answer>",
		Short: "Score one answer offline without Telegram or a database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.hasSeed = cmd.Flags().Changed("seed")
			return runTry(cmd.OutOrStdout(), strings.Join(args, " "), f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.phrase, "phrase", 0, "Phrase index")
	flags.Float64Var(&f.score, "score", entities.InitialScore, "Score before the answer, between 0 and 1")
	flags.Int64Var(&f.seed, "seed", 0, "Random seed for reproducible deltas")
	flags.StringVar(&f.phrases, "phrases", "", "Phrases JSON file (default: from config)")
	flags.StringVar(&f.feedback, "feedback", "", "Feedback YAML file (default: from config)")

	return cmd
}

func runTry(w io.Writer, answer string, f *tryFlags) error {
	if f.score < 0 || f.score > 1 {
		return exitError(2, "score must be between 0 and 1, got %v", f.score)
	}

	phrasesPath, feedbackPath := f.phrases, f.feedback
	if phrasesPath == "" || feedbackPath == "" {
		cfg, err := config.LoadFiles()
		if err != nil {
			return exitError(2, "failed to load config: %v", err)
		}
		if phrasesPath == "" {
			phrasesPath = cfg.PhrasesPath
		}
		if feedbackPath == "" {
			feedbackPath = cfg.FeedbackPath
		}
	}

	phrases, err := repository.NewPhraseRepository(phrasesPath)
	if err != nil {
		return exitError(3, "failed to load phrases: %v", err)
	}
	catalog, err := repository.LoadFeedbackCatalog(feedbackPath)
	if err != nil {
		return exitError(3, "failed to load feedback: %v", err)
	}

	phrase, err := phrases.GetByIndex(context.Background(), f.phrase)
	if err != nil {
		return exitError(2, "phrase %d: %v (have %d)", f.phrase, err, phrases.Count())
	}

	seed := time.Now().UnixNano()
	if f.hasSeed {
		seed = f.seed
	}
	rnd := rand.New(rand.NewSource(seed))

	eval, err := service.NewScoreEngine(rnd).Evaluate(answer, phrase, f.score)
	if err != nil {
		return exitError(2, "%v", err)
	}
	category := service.CategoryFor(eval.Delta)

	fmt.Fprintf(w, "phrase:   %s\n", phrase.Question)
	fmt.Fprintf(w, "answer:   %s\n", answer)
	fmt.Fprintf(w, "tier:     %s\n", eval.Tier)
	fmt.Fprintf(w, "delta:    %+.4f\n", eval.Delta)
	fmt.Fprintf(w, "score:    %.4f -> %.4f\n", f.score, eval.Score)
	fmt.Fprintf(w, "category: %s\n", category)
	if fb := service.NewFeedbackPicker(catalog, rnd).Pick(category); fb != "" {
		fmt.Fprintf(w, "feedback: %s\n", fb)
	}

	return nil
}
