package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles the catalog HTTP requests: category listing,
// question listing, search, create and delete.
type QuestionHandler struct {
	catalog   service.CatalogService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(catalog service.CatalogService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		catalog:   catalog,
		validator: validator,
	}
}

// GetCategories godoc
// @Summary Get all trivia categories
// @Description Returns the id-to-name mapping of every category
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *QuestionHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListQuestions godoc
// @Summary List questions, paginated
// @Description Returns one page of questions with the total count and categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number, defaults to 1"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	resp, err := h.catalog.ListQuestions(c.Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a new question
// @Description Persists a question; all four fields are required
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question fields"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/add [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateCreateQuestionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.catalog.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question by id
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewInvalidInputError("Question id must be an integer")
	}

	resp, err := h.catalog.DeleteQuestion(c.Context(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions by substring
// @Description Case-insensitive substring match on question text
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	page := c.QueryInt("page", 1)

	resp, err := h.catalog.SearchQuestions(c.Context(), req.SearchTerm, page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListByCategory godoc
// @Summary List questions in one category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number, defaults to 1"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *QuestionHandler) ListByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewInvalidInputError("Category id must be an integer")
	}
	page := c.QueryInt("page", 1)

	resp, err := h.catalog.ListByCategory(c.Context(), int64(id), page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
