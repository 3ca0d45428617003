package service

import (
	"career-compass/internal/domain"
	"fmt"
	"strings"
)

// ComposeReport renders the evaluation as a multi-paragraph narrative. The
// templates are fixed; only learner data is substituted, so the output is
// fully determined by the evaluation.
func ComposeReport(evaluation *domain.Evaluation) string {
	intro := strings.Join([]string{
		fmt.Sprintf("Hey %s,", evaluation.LearnerName),
		"Here's a quick look at how your strengths and motivations can shape your next steps.",
		evaluation.Headline,
	}, "\n")

	topTraits := evaluation.Traits.TopTraits(3)
	traitParts := make([]string, len(topTraits))
	for i, ts := range topTraits {
		traitParts[i] = fmt.Sprintf("%s (%.1f)", ts.Trait, ts.Score)
	}
	traitLine := "Top strengths: " + strings.Join(traitParts, ", ")

	sections := []string{intro, traitLine}
	for i, recommendation := range evaluation.Recommendations {
		sections = append(sections, describeRecommendation(i+1, recommendation))
	}

	reflection := "Reflection prompts:\n- " + strings.Join(evaluation.ReflectionQuestions, "\n- ")
	sections = append(sections, reflection)

	return strings.Join(sections, "\n\n")
}

func describeRecommendation(position int, recommendation domain.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Option %d: %s\n", position, recommendation.Path.Title)
	if recommendation.ConfidenceNote != "" {
		fmt.Fprintf(&b, "%s\n", recommendation.ConfidenceNote)
	}
	b.WriteString("Why it fits:\n")
	writeBullets(&b, recommendation.Path.StrengthsAlignment)
	b.WriteString("Try this next:\n")
	writeBullets(&b, recommendation.Path.StarterProjects)
	b.WriteString("Keep exploring with:\n")
	writeBullets(&b, recommendation.Path.LearningResources)
	return strings.TrimRight(b.String(), "\n")
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "    - %s\n", item)
	}
}
