package models

// WordPair is one discrimination pair from the word-pair content file
type WordPair struct {
	ID              string       `yaml:"id" json:"id"`
	Word1           string       `yaml:"word1" json:"word1"`
	Word2           string       `yaml:"word2" json:"word2"`
	AudioPrompt1    string       `yaml:"audioPrompt1" json:"audioPrompt1"`
	AudioPrompt2    string       `yaml:"audioPrompt2" json:"audioPrompt2"`
	Image1          string       `yaml:"image1" json:"image1"`
	Image2          string       `yaml:"image2" json:"image2"`
	ContrastType    ContrastType `yaml:"contrastType" json:"contrastType"`
	DifficultyLevel int          `yaml:"difficultyLevel" json:"difficultyLevel"`
}

// ContrastTypeInfo describes a contrast category in the content file
type ContrastTypeInfo struct {
	ID          ContrastType `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
}

// WordPairsData is the full word-pair content document
type WordPairsData struct {
	ContrastTypes []ContrastTypeInfo `yaml:"contrastTypes" json:"contrastTypes"`
	WordPairs     []WordPair         `yaml:"wordPairs" json:"wordPairs"`
}
