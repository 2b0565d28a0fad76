package service

import (
	"context"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// CategoryProvider yields the id-to-name category mapping. The cached
// implementation lives in category_cache.go; the catalog only cares that
// the mapping arrives.
type CategoryProvider interface {
	Categories(ctx context.Context) (map[int64]string, error)
}

// CatalogService defines the question bank operations: pagination,
// search, category-scoped listing, and create/delete.
type CatalogService interface {
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchResponse, error)
	ListByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
}

// catalogService implements CatalogService
type catalogService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	provider   CategoryProvider
	pageSize   int
}

// NewCatalogService creates a new instance of catalogService. pageSize is
// the fixed page length for every listing operation.
func NewCatalogService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	provider CategoryProvider,
	pageSize int,
) CatalogService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &catalogService{
		questions:  questions,
		categories: categories,
		provider:   provider,
		pageSize:   pageSize,
	}
}

// ListCategories implements CatalogService
func (s *catalogService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.provider.Categories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("No categories exist")
	}

	return &dto.CategoriesResponse{
		Success:    true,
		Categories: categories,
	}, nil
}

// ListQuestions implements CatalogService. A page addressing an offset
// past the last question is an error, not an empty page.
func (s *catalogService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	questions, err := s.questions.GetAllQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	pageQuestions := paginate(questions, page, s.pageSize)
	if len(pageQuestions) == 0 {
		return nil, domain.NewNotFoundError("No questions exist at the requested page")
	}

	categories, err := s.provider.Categories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      toQuestionPayloads(pageQuestions),
		TotalQuestions: len(questions),
		Categories:     categories,
		// No category scope is active for the unfiltered listing.
		CurrentCategory: nil,
	}, nil
}

// SearchQuestions implements CatalogService. An empty term yields no
// results rather than all questions.
func (s *catalogService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewNotFoundError("Empty search term")
	}

	matches, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{TextContains: term})
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}

	return &dto.SearchResponse{
		Success:        true,
		Questions:      toQuestionPayloads(paginate(matches, page, s.pageSize)),
		TotalQuestions: len(matches),
	}, nil
}

// ListByCategory implements CatalogService. A missing category is a
// caller input error; a category without questions is an empty result.
func (s *catalogService) ListByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewUnprocessableError("Category does not exist", nil)
	}

	questions, err := s.questions.FindQuestions(ctx, domain.QuestionFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions for category", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("No questions in this category")
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       toQuestionPayloads(paginate(questions, page, s.pageSize)),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// CreateQuestion implements CatalogService. Validation happens before any
// write; any storage failure during the insert is an unprocessable
// outcome for the caller.
func (s *catalogService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	question := &domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: req.Difficulty,
	}
	if err := question.Validate(); err != nil {
		return nil, domain.NewUnprocessableError("Missing required question fields", err)
	}

	category, err := s.categories.GetCategory(ctx, question.CategoryID)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to resolve category", err)
	}
	if category == nil {
		return nil, domain.NewUnprocessableError("Category does not exist", nil)
	}

	id, err := s.questions.InsertQuestion(ctx, question)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("id", id),
		zap.Int64("category_id", question.CategoryID),
	)

	return &dto.CreateQuestionResponse{
		Success: true,
		Created: id,
	}, nil
}

// DeleteQuestion implements CatalogService. A missing question and a
// failed delete surface identically; the client contract does not
// distinguish them.
func (s *catalogService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to look up question", err)
	}
	if question == nil {
		return nil, domain.NewUnprocessableError("Question does not exist", nil)
	}

	deleted, err := s.questions.DeleteQuestion(ctx, id)
	if err != nil || !deleted {
		return nil, domain.NewUnprocessableError("Failed to delete question", err)
	}

	logger.Get().Info("Question deleted", zap.Int64("id", id))

	return &dto.DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	}, nil
}

// paginate slices questions down to the requested page. Pages are
// 1-based; a page below 1 means page 1. An offset past the end yields an
// empty slice.
func paginate(questions []domain.Question, page, pageSize int) []domain.Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(questions) {
		return nil
	}
	end := start + pageSize
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

func toQuestionPayloads(questions []domain.Question) []dto.QuestionPayload {
	payloads := make([]dto.QuestionPayload, 0, len(questions))
	for _, q := range questions {
		payloads = append(payloads, dto.QuestionPayload{
			ID:         q.ID,
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   q.CategoryID,
			Difficulty: q.Difficulty,
		})
	}
	return payloads
}
