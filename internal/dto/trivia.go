package dto

// QuestionPayload is a single question as it appears on the wire. The
// field names match the legacy client contract ("category" carries the
// category id).
type QuestionPayload struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestionRequest is the body of POST /questions/add. All four
// fields are required.
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// SearchRequest is the body of POST /questions/search.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory selects the scope of a quiz draw. An ID of zero or below
// is the "all categories" sentinel.
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuizRequest is the body of POST /play. PreviousQuestions is the
// caller-owned exclusion set; the server never stores it.
type QuizRequest struct {
	PreviousQuestions []int64       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoriesResponse is the payload of GET /categories.
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse is the payload of GET /questions.
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []QuestionPayload `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int64]string  `json:"categories"`
	CurrentCategory *int64            `json:"current_category"`
}

// SearchResponse is the payload of POST /questions/search.
// TotalQuestions counts every match, not just the returned page.
type SearchResponse struct {
	Success        bool              `json:"success"`
	Questions      []QuestionPayload `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// CategoryQuestionsResponse is the payload of GET /categories/:id/questions.
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []QuestionPayload `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int64             `json:"current_category"`
}

// CreateQuestionResponse is the payload of POST /questions/add.
type CreateQuestionResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

// DeleteQuestionResponse is the payload of DELETE /questions/:id.
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// QuizResponse is the payload of POST /play. Question is omitted when
// the eligible candidate set is exhausted.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *QuestionPayload `json:"question,omitempty"`
}
