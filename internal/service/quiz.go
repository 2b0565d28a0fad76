package service

import (
	"context"
	"math/rand"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService draws the next question for a play session. It is
// stateless: the caller supplies the exclusion set on every call and is
// responsible for growing it with each returned question.
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	intn       func(n int) int
}

// NewQuizService creates a new instance of quizService. intn must return
// a uniform value in [0, n); pass rand.Intn outside of tests.
func NewQuizService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	intn func(n int) int,
) QuizService {
	if intn == nil {
		intn = rand.Intn
	}
	return &quizService{
		questions:  questions,
		categories: categories,
		intn:       intn,
	}
}

// NextQuestion implements QuizService. A category id of zero or below is
// the "all categories" scope. The draw happens only when at least two
// eligible candidates remain; a single survivor reports exhaustion. The
// legacy client depends on that boundary.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil {
		return nil, domain.NewUnprocessableError("Quiz category is required", nil)
	}

	filter := domain.QuestionFilter{ExcludedIDs: req.PreviousQuestions}
	if req.QuizCategory.ID > 0 {
		category, err := s.categories.GetCategory(ctx, req.QuizCategory.ID)
		if err != nil {
			return nil, domain.NewUnprocessableError("Failed to resolve quiz category", err)
		}
		if category == nil {
			return nil, domain.NewUnprocessableError("Quiz category does not exist", nil)
		}
		filter.CategoryID = &category.ID
	}

	candidates, err := s.questions.FindQuestions(ctx, filter)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to load quiz candidates", err)
	}

	maxIndex := len(candidates) - 1
	if maxIndex < 1 {
		logger.Get().Debug("Quiz scope exhausted",
			zap.Int64("category_id", req.QuizCategory.ID),
			zap.Int("excluded", len(req.PreviousQuestions)),
		)
		return &dto.QuizResponse{Success: true}, nil
	}

	drawn := candidates[s.intn(maxIndex+1)]
	return &dto.QuizResponse{
		Success: true,
		Question: &dto.QuestionPayload{
			ID:         drawn.ID,
			Question:   drawn.Question,
			Answer:     drawn.Answer,
			Category:   drawn.CategoryID,
			Difficulty: drawn.Difficulty,
		},
	}, nil
}
