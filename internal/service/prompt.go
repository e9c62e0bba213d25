package service

import (
	"strings"
)

// PromptPlaceholder is returned when every section is empty.
const PromptPlaceholder = "Comienza a escribir en las secciones de la izquierda para generar tu prompt..."

// PromptSections holds the labeled parts of a prompt.
type PromptSections struct {
	Idea         string
	Details      string
	Examples     string
	Instructions string
}

// BuildPrompt concatenates the non-empty sections under markdown headers.
// Sections are emitted as Idea General, Detalles, Ejemplos, Instrucciones.
func BuildPrompt(s PromptSections) string {
	sections := []struct {
		header string
		body   string
	}{
		{"Idea General", s.Idea},
		{"Detalles", s.Details},
		{"Ejemplos", s.Examples},
		{"Instrucciones", s.Instructions},
	}

	var b strings.Builder
	for _, sec := range sections {
		body := strings.TrimSpace(sec.body)
		if body == "" {
			continue
		}
		b.WriteString("# ")
		b.WriteString(sec.header)
		b.WriteString("\n\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if b.Len() == 0 {
		return PromptPlaceholder
	}
	return b.String()
}

// ParsePromptSections reads labeled text such as
//
//	idea: a story about a cat
//	detalles: short
//	more details
//
// Labels are case-insensitive; unlabeled lines continue the current section.
// Text before the first label is ignored.
func ParsePromptSections(text string) PromptSections {
	var s PromptSections
	var current *string

	labels := map[string]*string{
		"idea":          &s.Idea,
		"detalles":      &s.Details,
		"ejemplos":      &s.Examples,
		"instrucciones": &s.Instructions,
	}

	for _, line := range strings.Split(text, "\n") {
		if label, rest, ok := strings.Cut(line, ":"); ok {
			if dst, found := labels[strings.ToLower(strings.TrimSpace(label))]; found {
				current = dst
				appendLine(current, strings.TrimSpace(rest))
				continue
			}
		}
		if current != nil {
			appendLine(current, line)
		}
	}

	return s
}

func appendLine(dst *string, line string) {
	if *dst == "" {
		*dst = line
		return
	}
	*dst += "\n" + line
}
