package domain

// Option represents a multiple-choice option of a question.
// Weights holds the per-trait contribution selecting this option adds to a
// learner's trait scores.
type Option struct {
	ID      string
	Label   string
	Weights map[string]float64
}

// Question represents a questionnaire item with its ordered options.
type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// AllowedAnswers returns the valid option ids in order.
func (q Question) AllowedAnswers() []string {
	ids := make([]string, len(q.Options))
	for i, opt := range q.Options {
		ids[i] = opt.ID
	}
	return ids
}

// OptionByID returns the option with the given id, or false when the id is
// not one of the question's options.
func (q Question) OptionByID(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Questionnaire is the immutable question catalog. It is built once at
// process start and never mutated afterwards, so it is safe to share across
// concurrent requests.
type Questionnaire struct {
	questions []Question
	byID      map[string]Question
}

// NewQuestionnaire creates the catalog with the built-in question set.
func NewQuestionnaire() *Questionnaire {
	questions := buildQuestions()
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Questionnaire{questions: questions, byID: byID}
}

// Questions returns the questions in their authored order.
func (q *Questionnaire) Questions() []Question {
	return q.questions
}

// QuestionIDs returns the stable question identifiers in order.
func (q *Questionnaire) QuestionIDs() []string {
	ids := make([]string, len(q.questions))
	for i, question := range q.questions {
		ids[i] = question.ID
	}
	return ids
}

// Validate checks that responses answer every question with a known option.
// Every response key must be a question id and every value one of that
// question's option ids. All problems are reported at once.
func (q *Questionnaire) Validate(responses map[string]string) error {
	var errs ValidationErrors

	for _, question := range q.questions {
		answer, ok := responses[question.ID]
		if !ok {
			errs = append(errs, NewMissingFieldError(question.ID))
			continue
		}
		if _, ok := question.OptionByID(answer); !ok {
			errs = append(errs, NewInvalidOptionError(question.ID, answer))
		}
	}

	for key := range responses {
		if _, ok := q.byID[key]; !ok {
			errs = append(errs, NewUnknownQuestionError(key))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func buildQuestions() []Question {
	return []Question{
		{
			ID:     "strength",
			Prompt: "Which statement best describes your current strengths?",
			Options: []Option{
				{
					ID:      "analytical",
					Label:   "I enjoy solving complex problems and working with data.",
					Weights: map[string]float64{"analytical": 1.0, "technical": 0.5},
				},
				{
					ID:      "creative",
					Label:   "I like creating content, telling stories, or designing experiences.",
					Weights: map[string]float64{"creative": 1.0, "communication": 0.5},
				},
				{
					ID:      "supportive",
					Label:   "I thrive when helping others grow and collaborating on teams.",
					Weights: map[string]float64{"social": 1.0, "communication": 0.5},
				},
				{
					ID:      "practical",
					Label:   "I prefer hands-on work where I can see tangible results quickly.",
					Weights: map[string]float64{"practical": 1.0, "technical": 0.5},
				},
			},
		},
		{
			ID:     "values",
			Prompt: "What motivates you most in a future career?",
			Options: []Option{
				{
					ID:      "impact",
					Label:   "Making a positive impact on society and individuals.",
					Weights: map[string]float64{"social": 0.8, "creative": 0.4},
				},
				{
					ID:      "innovation",
					Label:   "Inventing new solutions or working with cutting-edge technology.",
					Weights: map[string]float64{"technical": 0.8, "analytical": 0.6},
				},
				{
					ID:      "security",
					Label:   "Having stability, clear expectations, and predictable routines.",
					Weights: map[string]float64{"practical": 0.9},
				},
				{
					ID:      "expression",
					Label:   "Having the freedom to express myself and explore ideas.",
					Weights: map[string]float64{"creative": 0.8, "communication": 0.4},
				},
			},
		},
		{
			ID:     "environment",
			Prompt: "What environment do you picture yourself thriving in?",
			Options: []Option{
				{
					ID:      "team",
					Label:   "Collaborating in cross-functional teams with lots of communication.",
					Weights: map[string]float64{"social": 0.9, "communication": 0.7},
				},
				{
					ID:      "independent",
					Label:   "Working independently where I can focus deeply for long periods.",
					Weights: map[string]float64{"analytical": 0.7, "technical": 0.6},
				},
				{
					ID:      "dynamic",
					Label:   "Fast-paced spaces where priorities can change often.",
					Weights: map[string]float64{"technical": 0.5, "practical": 0.6},
				},
				{
					ID:      "studio",
					Label:   "Creative studios or workshops where I build and experiment.",
					Weights: map[string]float64{"creative": 0.7, "practical": 0.6},
				},
			},
		},
		{
			ID:     "learning",
			Prompt: "How do you prefer to learn new skills?",
			Options: []Option{
				{
					ID:      "courses",
					Label:   "Structured courses with clear milestones and feedback.",
					Weights: map[string]float64{"analytical": 0.6, "practical": 0.4},
				},
				{
					ID:      "projects",
					Label:   "Working on personal projects that let me explore on my own.",
					Weights: map[string]float64{"creative": 0.5, "technical": 0.6},
				},
				{
					ID:      "people",
					Label:   "Learning through conversations, mentorship, or coaching others.",
					Weights: map[string]float64{"social": 0.7, "communication": 0.6},
				},
				{
					ID:      "hands-on",
					Label:   "Trying things out physically and iterating quickly.",
					Weights: map[string]float64{"practical": 0.7, "technical": 0.4},
				},
			},
		},
	}
}
