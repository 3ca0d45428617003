package handler_test

import (
	"bytes"
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/handler"
	"career-compass/internal/middleware"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// --- Manual Mocks ---

// MockCounsellorService
type MockCounsellorService struct {
	GetQuestionnaireFunc func() []dto.QuestionResponse
	EvaluateFunc         func(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error)
}

func (m *MockCounsellorService) GetQuestionnaire() []dto.QuestionResponse {
	if m.GetQuestionnaireFunc != nil {
		return m.GetQuestionnaireFunc()
	}
	panic("MockCounsellorService.GetQuestionnaireFunc not implemented")
}

func (m *MockCounsellorService) Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, req)
	}
	panic("MockCounsellorService.EvaluateFunc not implemented")
}

func newTestApp(svc *MockCounsellorService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewCounsellorHandler(svc)
	app.Get("/questionnaire", h.GetQuestionnaire)
	app.Post("/evaluate", h.Evaluate)
	return app
}

func TestCounsellorHandler_GetQuestionnaire(t *testing.T) {
	mockSvc := &MockCounsellorService{
		GetQuestionnaireFunc: func() []dto.QuestionResponse {
			return []dto.QuestionResponse{
				{
					ID:             "strength",
					Prompt:         "Which statement best describes your current strengths?",
					AllowedAnswers: []string{"analytical", "creative", "supportive", "practical"},
					Options: []dto.OptionResponse{
						{ID: "analytical", Label: "I enjoy solving complex problems and working with data."},
					},
				},
			}
		},
	}
	app := newTestApp(mockSvc)

	req := httptest.NewRequest("GET", "/questionnaire", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []dto.QuestionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&questions))
	assert.Len(t, questions, 1)
	assert.Equal(t, "strength", questions[0].ID)
	assert.Equal(t, []string{"analytical", "creative", "supportive", "practical"}, questions[0].AllowedAnswers)
}

func TestCounsellorHandler_Evaluate(t *testing.T) {
	validBody := dto.EvaluateRequest{
		LearnerName: "Avery",
		Responses: map[string]string{
			"strength":    "analytical",
			"values":      "innovation",
			"environment": "independent",
			"learning":    "courses",
		},
	}

	t.Run("Success", func(t *testing.T) {
		var receivedReq *dto.EvaluateRequest
		mockSvc := &MockCounsellorService{
			EvaluateFunc: func(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
				receivedReq = req
				return &dto.EvaluationResponse{
					ReportID:      "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
					LearnerName:   req.LearnerName,
					Headline:      "Avery, your top trait is analytical (2.9) and you're well suited for Data & AI Explorer.",
					NarrativeText: "Hey Avery, ...",
					Recommendation: dto.RecommendationResponse{
						Title: "Data & AI Explorer",
					},
				}, nil
			},
		}
		app := newTestApp(mockSvc)

		bodyBytes, _ := json.Marshal(validBody)
		req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var response dto.EvaluationResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
		assert.Equal(t, "Avery", response.LearnerName)
		assert.Equal(t, "Data & AI Explorer", response.Recommendation.Title)
		assert.Equal(t, "Avery", receivedReq.LearnerName)
	})

	t.Run("MalformedJSONBody", func(t *testing.T) {
		app := newTestApp(&MockCounsellorService{})

		req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var errResp middleware.ErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, string(domain.ErrInvalidInput), errResp.Error)
	})

	t.Run("MissingLearnerName", func(t *testing.T) {
		// The request never reaches the service
		app := newTestApp(&MockCounsellorService{})

		body := validBody
		body.LearnerName = ""
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

		var errResp middleware.ValidationErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, string(domain.ErrValidation), errResp.Error)
		assert.Contains(t, errResp.Detail, "learner_name")
	})

	t.Run("ServiceValidationError", func(t *testing.T) {
		mockSvc := &MockCounsellorService{
			EvaluateFunc: func(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
				return nil, domain.ValidationErrors{domain.NewMissingFieldError("strength")}
			},
		}
		app := newTestApp(mockSvc)

		body := validBody
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

		var errResp middleware.ValidationErrorResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Contains(t, errResp.Detail, "strength")
		assert.Len(t, errResp.Fields, 1)
		assert.Equal(t, "strength", errResp.Fields[0].Field)
	})

	t.Run("ServiceInternalError", func(t *testing.T) {
		mockSvc := &MockCounsellorService{
			EvaluateFunc: func(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
				return nil, domain.NewInternalError("something broke", nil)
			},
		}
		app := newTestApp(mockSvc)

		bodyBytes, _ := json.Marshal(validBody)
		req := httptest.NewRequest("POST", "/evaluate", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
