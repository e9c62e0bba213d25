package telegram

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	reflowtruncate "github.com/muesli/reflow/truncate"

	"github.com/aliskhannn/wonderland-bot/internal/domain/entities"
	"github.com/aliskhannn/wonderland-bot/internal/service"
)

const progressBarLength = 20

// renderPhrase shows the question with the hidden word highlighted.
func renderPhrase(p *entities.Phrase) string {
	return strings.Replace(esc(p.Question), entities.PhrasePlaceholder, "<b>"+entities.PhrasePlaceholder+"</b>", 1)
}

// renderResult shows the new score, the progress bar and the feedback line.
func renderResult(res *service.SubmitResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: <b>%d%%</b> (%s)\n", msgScoreTitle, percent(res.Evaluation.Score), formatDelta(res.Evaluation.Delta))
	b.WriteString(buildProgressBar(percent(res.Evaluation.Score), 100, progressBarLength))

	if res.Feedback != "" {
		b.WriteString("\n\n<i>")
		b.WriteString(esc(res.Feedback))
		b.WriteString("</i>")
	}

	return b.String()
}

// renderSummary shows the running score and tier counters of a session.
func renderSummary(s *entities.GameSession) string {
	return fmt.Sprintf(
		"%s: <b>%d%%</b>\n%s\n\n✅ Exactas: %d\n👌 Aceptables: %d\n🤔 Otras: %d\n📝 Respuestas: %d",
		msgScoreTitle,
		percent(s.Score),
		buildProgressBar(percent(s.Score), 100, progressBarLength),
		s.TierCounts[entities.TierExact],
		s.TierCounts[entities.TierAcceptable],
		s.TierCounts[entities.TierSimilarity],
		s.Attempts,
	)
}

// renderWords lists one picked word per category.
func renderWords(picks []entities.WordPick) string {
	if len(picks) == 0 {
		return msgNoWords
	}

	var b strings.Builder
	b.WriteString("<b>" + msgWordsTitle + "</b>\n")
	for _, p := range picks {
		fmt.Fprintf(&b, "\n<b>%s:</b> %s", esc(capitalizeFirst(p.Category)), esc(p.Word))
	}
	return b.String()
}

// renderStats lists the hardest phrases with their average score change.
func renderStats(stats []entities.PhraseStats, question func(index int) string) string {
	if len(stats) == 0 {
		return msgNoStats
	}

	var b strings.Builder
	b.WriteString("<b>" + msgStatsTitle + "</b>\n")
	for i, s := range stats {
		fmt.Fprintf(&b, "\n%d. %s\n   intentos: %d, exactas: %d, promedio: %s",
			i+1, esc(truncate(question(s.PhraseIndex), 60)), s.Attempts, s.ExactCount, formatDelta(s.AverageDelta))
	}
	return b.String()
}

// renderPrompt wraps the generated prompt in a preformatted block.
func renderPrompt(prompt string) string {
	return msgPromptPrefix + "\n<pre>" + esc(prompt) + "</pre>"
}

func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

func percent(score float64) int {
	return int(math.Round(score * 100))
}

// formatDelta renders a score change in percentage points with an explicit sign.
func formatDelta(delta float64) string {
	points := int(math.Round(delta * 100))
	if points > 0 {
		return fmt.Sprintf("+%d", points)
	}
	return fmt.Sprintf("%d", points)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncate shortens s to limit display columns, ending with "...".
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return reflowtruncate.StringWithTail(s, uint(limit), "...")
}
