package service

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
)

// ErrEmptyInput is returned when the answer is blank after normalization.
var ErrEmptyInput = errors.New("empty input")

// Delta ranges and weights of the score engine.
const (
	exactDeltaMin      = 0.07
	exactDeltaMax      = 0.15
	acceptableDeltaMin = -0.05
	acceptableDeltaMax = 0.05

	overlapWeight    = 0.6
	closenessWeight  = 0.4
	similarityScale  = 0.5
	similarityOffset = 0.4
	similarityCap    = 0.05

	bigChangeThreshold = 0.10
)

// RandomSource supplies uniform random numbers. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource returns a time-seeded source for production use.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Evaluation is the outcome of scoring one answer.
type Evaluation struct {
	Tier  entities.Tier
	Delta float64
	Score float64 // new score, clamped to [0,1]
}

// ScoreEngine classifies answers against a phrase and computes score deltas.
//
// The engine holds no session state: the previous score goes in and the new
// score comes out. Tiers 1 and 2 draw from the random source; the similarity
// tier is deterministic.
type ScoreEngine struct {
	rnd RandomSource
}

// NewScoreEngine creates a new ScoreEngine.
func NewScoreEngine(rnd RandomSource) *ScoreEngine {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &ScoreEngine{rnd: rnd}
}

// Evaluate scores userAnswer against phrase starting from previousScore.
// The similarity tier needs at least one word in the phrase lists to be
// meaningful; with none it falls back to similarity 0 and never fails.
func (e *ScoreEngine) Evaluate(userAnswer string, phrase *entities.Phrase, previousScore float64) (Evaluation, error) {
	answer := normalize(userAnswer)
	if answer == "" {
		return Evaluation{}, ErrEmptyInput
	}

	var (
		tier  entities.Tier
		delta float64
	)

	switch {
	case containsNormalized(phrase.CorrectWords, answer):
		tier = entities.TierExact
		delta = e.uniform(exactDeltaMin, exactDeltaMax)
	case containsNormalized(phrase.KindaOKWords, answer):
		tier = entities.TierAcceptable
		delta = e.uniform(acceptableDeltaMin, acceptableDeltaMax)
	default:
		tier = entities.TierSimilarity
		delta = SimilarityDelta(answer, phrase.Targets())
	}

	return Evaluation{
		Tier:  tier,
		Delta: delta,
		Score: Clamp(previousScore+delta, 0, 1),
	}, nil
}

func (e *ScoreEngine) uniform(lo, hi float64) float64 {
	return lo + e.rnd.Float64()*(hi-lo)
}

// SimilarityDelta computes the fallback-tier delta for a normalized answer.
// The result is capped at +0.05 and has no lower bound.
func SimilarityDelta(answer string, targets []string) float64 {
	best := 0.0
	for _, t := range targets {
		if s := Similarity(answer, normalize(t)); s > best {
			best = s
		}
	}

	return min(best*similarityScale-similarityOffset, similarityCap)
}

// Similarity is a character-overlap heuristic in [0,1]:
// 0.6 * distinct-character overlap + 0.4 * length closeness.
// Characters are Unicode code points.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)

	setA, setB := runeSet(ra), runeSet(rb)
	overlap := 0.0
	if maxSet := max(len(setA), len(setB)); maxSet > 0 {
		common := 0
		for r := range setA {
			if _, ok := setB[r]; ok {
				common++
			}
		}
		overlap = float64(common) / float64(maxSet)
	}

	closeness := 0.0
	if maxLen := max(len(ra), len(rb)); maxLen > 0 {
		diff := len(ra) - len(rb)
		if diff < 0 {
			diff = -diff
		}
		closeness = 1 - float64(diff)/float64(maxLen)
	}

	return overlapWeight*overlap + closenessWeight*closeness
}

// CategoryFor maps a delta to its feedback category.
func CategoryFor(delta float64) entities.FeedbackCategory {
	switch {
	case delta > bigChangeThreshold:
		return entities.FeedbackBigIncrease
	case delta < -bigChangeThreshold:
		return entities.FeedbackBigDecrease
	default:
		return entities.FeedbackSmallChange
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalize lowercases and trims an answer for comparison.
func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

func containsNormalized(words []string, answer string) bool {
	return slices.ContainsFunc(words, func(w string) bool {
		return normalize(w) == answer
	})
}

func runeSet(rs []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}
