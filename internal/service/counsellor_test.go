package service_test

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockEvaluationCacheService
type MockEvaluationCacheService struct {
	PutFunc func(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error
	GetFunc func(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error)
}

func (m *MockEvaluationCacheService) Put(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, fingerprint, result)
	}
	return nil
}

func (m *MockEvaluationCacheService) Get(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, fingerprint)
	}
	return nil, service.ErrEvaluationNotCached
}

func newCounsellorService(cache service.EvaluationCacheService) service.CounsellorService {
	if cache == nil {
		cache = &MockEvaluationCacheService{}
	}
	return service.NewCounsellorService(domain.NewQuestionnaire(), domain.NewCareerLibrary(), cache)
}

func validEvaluateRequest() *dto.EvaluateRequest {
	return &dto.EvaluateRequest{
		LearnerName: "Avery",
		Responses: map[string]string{
			"strength":    "analytical",
			"values":      "innovation",
			"environment": "independent",
			"learning":    "courses",
		},
	}
}

func TestCounsellorService_GetQuestionnaire(t *testing.T) {
	svc := newCounsellorService(nil)

	questions := svc.GetQuestionnaire()
	assert.Len(t, questions, 4)
	assert.Equal(t, "strength", questions[0].ID)
	assert.Equal(t, []string{"analytical", "creative", "supportive", "practical"}, questions[0].AllowedAnswers)
	assert.Len(t, questions[0].Options, 4)
	assert.Equal(t, "analytical", questions[0].Options[0].ID)
	assert.NotEmpty(t, questions[0].Options[0].Label)
}

func TestCounsellorService_Evaluate(t *testing.T) {
	svc := newCounsellorService(nil)
	ctx := context.Background()

	response, err := svc.Evaluate(ctx, validEvaluateRequest())
	assert.NoError(t, err)
	assert.NotNil(t, response)

	assert.NotEmpty(t, response.ReportID)
	assert.Equal(t, "Avery", response.LearnerName)
	assert.Equal(t, "Data & AI Explorer", response.Recommendation.Title)
	assert.Equal(t, []string{"analytical", "technical"}, response.Recommendation.MatchedTraits)
	assert.Empty(t, response.Recommendation.ConfidenceNote)
	assert.Equal(t, "analytical>technical>practical", response.TraitSignature)
	assert.InDelta(t, 2.9, response.TraitScores["analytical"], 0.0001)

	assert.Len(t, response.Recommendations, 3)
	assert.Equal(t, "Data & AI Explorer", response.Recommendations[0].Title)
	assert.Equal(t, "Product Innovator", response.Recommendations[1].Title)
	assert.Equal(t, "Sustainable Builder", response.Recommendations[2].Title)

	assert.Contains(t, response.Headline, "Avery")
	assert.Contains(t, response.Headline, "analytical")
	assert.Contains(t, response.NarrativeText, "Avery")
	assert.Contains(t, response.NarrativeText, "Option 1: Data & AI Explorer")

	assert.Len(t, response.ReflectionQuestions, 4)
	assert.Contains(t, response.ReflectionQuestions[3], "Data & AI Explorer")
}

func TestCounsellorService_EvaluateDeterministic(t *testing.T) {
	svc := newCounsellorService(nil)
	ctx := context.Background()

	first, err := svc.Evaluate(ctx, validEvaluateRequest())
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := svc.Evaluate(ctx, validEvaluateRequest())
		assert.NoError(t, err)
		// The report id is per-response metadata; everything derived from
		// the answers must be identical.
		assert.Equal(t, first.Headline, next.Headline)
		assert.Equal(t, first.TraitScores, next.TraitScores)
		assert.Equal(t, first.TraitSignature, next.TraitSignature)
		assert.Equal(t, first.Recommendation, next.Recommendation)
		assert.Equal(t, first.Recommendations, next.Recommendations)
		assert.Equal(t, first.NarrativeText, next.NarrativeText)
	}
}

func TestCounsellorService_EvaluateValidation(t *testing.T) {
	svc := newCounsellorService(nil)
	ctx := context.Background()

	t.Run("MissingLearnerName", func(t *testing.T) {
		req := validEvaluateRequest()
		req.LearnerName = "   "

		response, err := svc.Evaluate(ctx, req)
		assert.Nil(t, response)

		var errs domain.ValidationErrors
		assert.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.Fields(), "learner_name")
	})

	t.Run("MissingQuestion", func(t *testing.T) {
		req := validEvaluateRequest()
		delete(req.Responses, "strength")

		response, err := svc.Evaluate(ctx, req)
		assert.Nil(t, response)

		var errs domain.ValidationErrors
		assert.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.Fields(), "strength")
	})

	t.Run("InvalidOption", func(t *testing.T) {
		req := validEvaluateRequest()
		req.Responses["strength"] = "nonexistent_value"

		response, err := svc.Evaluate(ctx, req)
		assert.Nil(t, response)

		var errs domain.ValidationErrors
		assert.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.Fields(), "strength")
		assert.Contains(t, errs.Error(), "nonexistent_value")
	})

	t.Run("UnknownQuestionID", func(t *testing.T) {
		req := validEvaluateRequest()
		req.Responses["zodiac"] = "libra"

		response, err := svc.Evaluate(ctx, req)
		assert.Nil(t, response)

		var errs domain.ValidationErrors
		assert.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.Fields(), "zodiac")
	})
}

func TestCounsellorService_EvaluateServesFromCache(t *testing.T) {
	cached := &dto.EvaluationResponse{
		ReportID:    "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		LearnerName: "Avery",
		Headline:    "cached headline",
	}
	getCalled := 0
	mockCache := &MockEvaluationCacheService{
		GetFunc: func(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error) {
			getCalled++
			return cached, nil
		},
		PutFunc: func(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error {
			t.Fatal("Put must not be called on a cache hit")
			return nil
		},
	}
	svc := newCounsellorService(mockCache)

	response, err := svc.Evaluate(context.Background(), validEvaluateRequest())
	assert.NoError(t, err)
	assert.Equal(t, cached, response)
	assert.Equal(t, 1, getCalled)
}

func TestCounsellorService_EvaluateCachesResult(t *testing.T) {
	var putFingerprint string
	var putResult *dto.EvaluationResponse
	mockCache := &MockEvaluationCacheService{
		PutFunc: func(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error {
			putFingerprint = fingerprint
			putResult = result
			return nil
		},
	}
	svc := newCounsellorService(mockCache)

	response, err := svc.Evaluate(context.Background(), validEvaluateRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, putFingerprint)
	assert.Equal(t, response, putResult)
}
