package dto

// OptionResponse represents a question option in the API response
type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuestionResponse represents a questionnaire item in the API response
// @Description Questionnaire item with its allowed answers
type QuestionResponse struct {
	ID             string           `json:"id"`
	Prompt         string           `json:"prompt"`
	AllowedAnswers []string         `json:"allowed_answers"`
	Options        []OptionResponse `json:"options"`
}

// EvaluateRequest represents a learner's answers in the API request
// @Description Request body for evaluating questionnaire responses
type EvaluateRequest struct {
	LearnerName string            `json:"learner_name"`
	Responses   map[string]string `json:"responses"`
}

// RecommendationResponse represents a resolved career recommendation
type RecommendationResponse struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	StarterProjects []string `json:"starter_projects"`
	Resources       []string `json:"resources"`
	MatchedTraits   []string `json:"matched_traits"`
	ConfidenceNote  string   `json:"confidence_note,omitempty"`
}

// EvaluationResponse represents the full evaluation report in the API response
type EvaluationResponse struct {
	ReportID            string                   `json:"report_id"`
	LearnerName         string                   `json:"learner_name"`
	Headline            string                   `json:"headline"`
	TraitScores         map[string]float64       `json:"trait_scores"`
	TraitSignature      string                   `json:"trait_signature"`
	Recommendation      RecommendationResponse   `json:"recommendation"`
	Recommendations     []RecommendationResponse `json:"recommendations"`
	ReflectionQuestions []string                 `json:"reflection_questions"`
	NarrativeText       string                   `json:"narrative_text"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
