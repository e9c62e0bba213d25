package service

import "testing"

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name string
		in   PromptSections
		want string
	}{
		{"all empty", PromptSections{}, PromptPlaceholder},
		{"whitespace only", PromptSections{Idea: "  ", Details: "\n"}, PromptPlaceholder},
		{
			"fixed order regardless of field order",
			PromptSections{Instructions: "Sé breve.", Idea: "Un cuento", Examples: "Había una vez"},
			"# Idea General\n\nUn cuento\n\n# Ejemplos\n\nHabía una vez\n\n# Instrucciones\n\nSé breve.\n\n",
		},
		{
			"trims bodies",
			PromptSections{Details: "  gato azul \n"},
			"# Detalles\n\ngato azul\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPrompt(tt.in); got != tt.want {
				t.Errorf("BuildPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePromptSections(t *testing.T) {
	text := "ignored preamble\nIdea: un gato\nDETALLES: azul\ny grande\nejemplos:\nuno\ninstrucciones: breve"

	got := ParsePromptSections(text)
	want := PromptSections{
		Idea:         "un gato",
		Details:      "azul\ny grande",
		Examples:     "uno",
		Instructions: "breve",
	}
	if got != want {
		t.Errorf("ParsePromptSections() = %+v, want %+v", got, want)
	}
}

func TestParsePromptSectionsKeepsUnknownLabels(t *testing.T) {
	got := ParsePromptSections("idea: hora: 10:30")
	if got.Idea != "hora: 10:30" {
		t.Errorf("Idea = %q, want %q", got.Idea, "hora: 10:30")
	}

	got = ParsePromptSections("detalles: x\nnota: y")
	if got.Details != "x\nnota: y" {
		t.Errorf("Details = %q", got.Details)
	}
}
