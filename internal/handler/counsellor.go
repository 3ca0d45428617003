package handler

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/service"
	"career-compass/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CounsellorHandler handles questionnaire and evaluation HTTP requests
type CounsellorHandler struct {
	service   service.CounsellorService
	validator *validation.Validator
}

// NewCounsellorHandler creates a new CounsellorHandler instance
func NewCounsellorHandler(service service.CounsellorService) *CounsellorHandler {
	return &CounsellorHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetQuestionnaire godoc
// @Summary Get the questionnaire
// @Description Returns the question catalog in authored order
// @Tags questionnaire
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Router /questionnaire [get]
func (h *CounsellorHandler) GetQuestionnaire(c *fiber.Ctx) error {
	return c.JSON(h.service.GetQuestionnaire())
}

// Evaluate godoc
// @Summary Evaluate questionnaire responses
// @Description Resolves a learner's answers into a career recommendation report
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Learner responses"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ValidationErrorResponse
// @Router /evaluate [post]
func (h *CounsellorHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse evaluate request body", zap.Error(err))
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateEvaluateRequest(req.LearnerName, req.Responses); len(errs) > 0 {
		return errs // Rendered by the central error handler
	}

	response, err := h.service.Evaluate(c.Context(), &req)
	if err != nil {
		return err
	}

	logger.Get().Info("Evaluation completed",
		zap.String("report_id", response.ReportID),
		zap.String("lead_recommendation", response.Recommendation.Title),
	)
	return c.JSON(response)
}
