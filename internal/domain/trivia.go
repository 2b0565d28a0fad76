package domain

import "context"

// Category is a trivia category. Categories are seeded at initialization
// and read-only through the API surface.
type Category struct {
	ID   int64
	Name string
}

// Question is a single trivia question. A question always belongs to
// exactly one category and is immutable after creation.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	CategoryID int64
	Difficulty int
}

// Validate checks the invariants a question must satisfy before it is
// persisted.
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.Question == "" {
		errs = append(errs, NewMissingFieldError("question"))
	}
	if q.Answer == "" {
		errs = append(errs, NewMissingFieldError("answer"))
	}
	if q.CategoryID <= 0 {
		errs = append(errs, NewMissingFieldError("category"))
	}
	if q.Difficulty <= 0 {
		errs = append(errs, NewMissingFieldError("difficulty"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuestionFilter narrows a question lookup. Zero values mean "no
// restriction" for their clause.
type QuestionFilter struct {
	CategoryID   *int64
	ExcludedIDs  []int64
	TextContains string
}

// CategoryRepository is the storage contract for categories.
type CategoryRepository interface {
	// GetAllCategories returns every category ordered by id ascending.
	GetAllCategories(ctx context.Context) ([]Category, error)
	// GetCategory returns the category with the given id, or nil when it
	// does not exist.
	GetCategory(ctx context.Context, id int64) (*Category, error)
}

// QuestionRepository is the storage contract for questions.
type QuestionRepository interface {
	// GetAllQuestions returns every question ordered by id ascending.
	GetAllQuestions(ctx context.Context) ([]Question, error)
	// GetQuestionByID returns the question with the given id, or nil when
	// it does not exist.
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	// FindQuestions returns the questions matching the filter, ordered by
	// id ascending.
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]Question, error)
	// InsertQuestion persists the question and returns its assigned id.
	InsertQuestion(ctx context.Context, question *Question) (int64, error)
	// DeleteQuestion removes the question and reports whether a row was
	// actually deleted.
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}
