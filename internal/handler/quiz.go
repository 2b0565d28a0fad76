package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles the quiz play requests
type QuizHandler struct {
	quiz      service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quiz service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quiz:      quiz,
		validator: validator,
	}
}

// NextQuestion godoc
// @Summary Draw the next quiz question
// @Description Draws one random question from the requested scope, skipping previously served ids. Returns no question when fewer than two candidates remain.
// @Tags quiz
// @Accept json
// @Produce json
// @Param play body dto.QuizRequest true "Scope and exclusion set"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /play [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.quiz.NextQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
