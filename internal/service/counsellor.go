package service

import (
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/util"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// recommendationLimit caps how many career paths an evaluation reports.
const recommendationLimit = 3

// CounsellorService defines the core counselling operations
type CounsellorService interface {
	// GetQuestionnaire returns the question catalog in authored order
	GetQuestionnaire() []dto.QuestionResponse

	// Evaluate validates a learner's responses, resolves them against the
	// career library and returns the full narrative report
	Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error)
}

// counsellorService implements CounsellorService
type counsellorService struct {
	questionnaire *domain.Questionnaire
	library       *domain.CareerLibrary
	evalCache     EvaluationCacheService
	group         singleflight.Group
}

// NewCounsellorService creates a new instance of counsellorService
func NewCounsellorService(
	questionnaire *domain.Questionnaire,
	library *domain.CareerLibrary,
	evalCache EvaluationCacheService,
) CounsellorService {
	return &counsellorService{
		questionnaire: questionnaire,
		library:       library,
		evalCache:     evalCache,
	}
}

// GetQuestionnaire implements CounsellorService
func (s *counsellorService) GetQuestionnaire() []dto.QuestionResponse {
	questions := s.questionnaire.Questions()
	result := make([]dto.QuestionResponse, len(questions))
	for i, question := range questions {
		options := make([]dto.OptionResponse, len(question.Options))
		for j, option := range question.Options {
			options[j] = dto.OptionResponse{ID: option.ID, Label: option.Label}
		}
		result[i] = dto.QuestionResponse{
			ID:             question.ID,
			Prompt:         question.Prompt,
			AllowedAnswers: question.AllowedAnswers(),
			Options:        options,
		}
	}
	return result
}

// Evaluate implements CounsellorService
func (s *counsellorService) Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
	learnerName := strings.TrimSpace(req.LearnerName)
	if learnerName == "" {
		return nil, domain.ValidationErrors{domain.NewRequiredFieldError("learner_name")}
	}

	if err := s.questionnaire.Validate(req.Responses); err != nil {
		return nil, err
	}

	fingerprint := util.ResponsesFingerprint(learnerName, req.Responses)
	if cached, err := s.evalCache.Get(ctx, fingerprint); err == nil {
		logger.Get().Debug("Serving evaluation from cache", zap.String("fingerprint", fingerprint))
		return cached, nil
	}

	// Identical requests arriving concurrently share one computation.
	result, err, _ := s.group.Do(fingerprint, func() (interface{}, error) {
		response := s.evaluate(learnerName, req.Responses)
		if err := s.evalCache.Put(ctx, fingerprint, response); err != nil {
			// A cache write failure never fails the request.
			logger.Get().Warn("Failed to cache evaluation", zap.Error(err), zap.String("fingerprint", fingerprint))
		}
		return response, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.EvaluationResponse), nil
}

// evaluate is the deterministic resolution core: responses are already
// validated, so no failure path remains.
func (s *counsellorService) evaluate(learnerName string, responses map[string]string) *dto.EvaluationResponse {
	profile := s.questionnaire.TraitScores(responses)
	recommendations := s.resolve(profile)
	headline := composeHeadline(learnerName, profile, recommendations)

	evaluation := &domain.Evaluation{
		LearnerName:         learnerName,
		Headline:            headline,
		Traits:              profile,
		Recommendations:     recommendations,
		ReflectionQuestions: reflectionPrompts(recommendations),
	}

	recommendationDTOs := make([]dto.RecommendationResponse, len(recommendations))
	for i, rec := range recommendations {
		recommendationDTOs[i] = toRecommendationResponse(rec)
	}

	return &dto.EvaluationResponse{
		ReportID:            util.NewULID(),
		LearnerName:         learnerName,
		Headline:            headline,
		TraitScores:         profile.Scores,
		TraitSignature:      profile.Signature(),
		Recommendation:      recommendationDTOs[0],
		Recommendations:     recommendationDTOs,
		ReflectionQuestions: evaluation.ReflectionQuestions,
		NarrativeText:       ComposeReport(evaluation),
	}
}

// resolve ranks the library against the profile. When no path scores above
// zero the designated default entry is returned with a confidence note.
func (s *counsellorService) resolve(profile domain.TraitProfile) []domain.Recommendation {
	ranked := s.library.Rank(profile)
	if len(ranked) == 0 || ranked[0].MatchScore(profile) <= 0 {
		fallback := s.library.Default()
		return []domain.Recommendation{{
			Path:           fallback,
			MatchScore:     0,
			MatchedTraits:  nil,
			ConfidenceNote: "None of the career paths matched your trait profile strongly, so this is a broad starting point rather than a tailored fit.",
		}}
	}

	if len(ranked) > recommendationLimit {
		ranked = ranked[:recommendationLimit]
	}
	recommendations := make([]domain.Recommendation, len(ranked))
	for i, path := range ranked {
		recommendations[i] = domain.Recommendation{
			Path:          path,
			MatchScore:    path.MatchScore(profile),
			MatchedTraits: path.MatchedTraits(profile),
		}
	}
	return recommendations
}

func toRecommendationResponse(rec domain.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		Title:           rec.Path.Title,
		Summary:         rec.Path.Summary,
		StarterProjects: rec.Path.StarterProjects,
		Resources:       rec.Path.LearningResources,
		MatchedTraits:   rec.MatchedTraits,
		ConfidenceNote:  rec.ConfidenceNote,
	}
}

func composeHeadline(learnerName string, profile domain.TraitProfile, recommendations []domain.Recommendation) string {
	lead := "new paths"
	if len(recommendations) > 0 {
		lead = recommendations[0].Path.Title
	}
	top := profile.TopTraits(1)
	if len(top) == 0 {
		return fmt.Sprintf("%s, you're well suited for %s.", learnerName, lead)
	}
	return fmt.Sprintf("%s, your top trait is %s (%.1f) and you're well suited for %s.",
		learnerName, top[0].Trait, top[0].Score, lead)
}

func reflectionPrompts(recommendations []domain.Recommendation) []string {
	prompts := []string{
		"What parts of the recommended roles excite you the most and why?",
		"How do these paths align with the impact you want to have on others?",
		"What is one experiment you could run this month to learn more?",
	}
	if len(recommendations) > 0 {
		prompts = append(prompts, fmt.Sprintf(
			"Who could you reach out to for an informational chat about %s?",
			recommendations[0].Path.Title))
	}
	return prompts
}
