package entities

// PhrasePlaceholder marks the hidden word inside a phrase question.
const PhrasePlaceholder = "_____"

// Phrase is one quiz question with its accepted and partially accepted answers.
type Phrase struct {
	Index        int      `json:"-"`              // position in the phrase list
	Question     string   `json:"question"`       // text with one PhrasePlaceholder
	CorrectWords []string `json:"correct_words"`  // answers scored as exact matches
	KindaOKWords []string `json:"kinda_ok_words"` // answers scored as acceptable
}

// Targets returns every word the answer can be compared against.
func (p *Phrase) Targets() []string {
	targets := make([]string, 0, len(p.CorrectWords)+len(p.KindaOKWords))
	targets = append(targets, p.CorrectWords...)
	targets = append(targets, p.KindaOKWords...)
	return targets
}
