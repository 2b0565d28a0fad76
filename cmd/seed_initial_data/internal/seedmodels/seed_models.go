package seedmodels

// SeedCategory is one category from the seed file with its starter
// questions.
type SeedCategory struct {
	Name      string         `json:"name"`
	Questions []SeedQuestion `json:"questions"`
}

// SeedQuestion is one starter question from the seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}
