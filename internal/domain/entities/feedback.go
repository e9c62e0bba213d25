package entities

// FeedbackCategory groups feedback templates by the size of a score change.
type FeedbackCategory string

const (
	FeedbackBigIncrease FeedbackCategory = "big_increase"
	FeedbackSmallChange FeedbackCategory = "small_change"
	FeedbackBigDecrease FeedbackCategory = "big_decrease"
)

func (c FeedbackCategory) Valid() bool {
	switch c {
	case FeedbackBigIncrease, FeedbackSmallChange, FeedbackBigDecrease:
		return true
	}
	return false
}

// FeedbackCatalog maps each category to its ordered list of templates.
type FeedbackCatalog map[FeedbackCategory][]string
