package entities

// WordCategory is a named list of words for the random picker.
type WordCategory struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// WordPick is the word chosen for one category.
type WordPick struct {
	Category string
	Word     string
}
