package domain

import (
	"sort"
	"strings"
)

// TraitScore pairs a trait name with its aggregated score.
type TraitScore struct {
	Trait string
	Score float64
}

// TraitProfile holds the aggregated trait scores for a learner.
type TraitProfile struct {
	Scores map[string]float64
}

// TopTraits returns the dominant traits sorted by descending score. Ties
// break alphabetically so the same responses always produce the same order.
func (p TraitProfile) TopTraits(limit int) []TraitScore {
	ranked := p.ranked()
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// Signature renders the trait ordering as a stable derived key, e.g.
// "analytical>technical>practical".
func (p TraitProfile) Signature() string {
	ranked := p.ranked()
	parts := make([]string, len(ranked))
	for i, ts := range ranked {
		parts[i] = ts.Trait
	}
	return strings.Join(parts, ">")
}

func (p TraitProfile) ranked() []TraitScore {
	ranked := make([]TraitScore, 0, len(p.Scores))
	for trait, score := range p.Scores {
		ranked = append(ranked, TraitScore{Trait: trait, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Trait < ranked[j].Trait
	})
	return ranked
}

// TraitScores aggregates the per-option trait weights of the selected
// answers. Responses must have passed Validate first; unanswered or unknown
// entries are skipped rather than scored.
func (q *Questionnaire) TraitScores(responses map[string]string) TraitProfile {
	scores := make(map[string]float64)
	for _, question := range q.questions {
		answer, ok := responses[question.ID]
		if !ok {
			continue
		}
		option, ok := question.OptionByID(answer)
		if !ok {
			continue
		}
		for trait, weight := range option.Weights {
			scores[trait] += weight
		}
	}
	return TraitProfile{Scores: scores}
}

// CareerPath is a pre-authored career recommendation record. Traits holds
// the weight vector the path is matched against.
type CareerPath struct {
	Title              string
	Traits             map[string]float64
	Summary            string
	StrengthsAlignment []string
	StarterProjects    []string
	LearningResources  []string
}

// MatchScore is the dot product of the path's trait weights with the
// learner's trait scores.
func (p CareerPath) MatchScore(profile TraitProfile) float64 {
	var score float64
	for trait, weight := range p.Traits {
		score += profile.Scores[trait] * weight
	}
	return score
}

// MatchedTraits returns the path traits the learner actually scored on,
// ordered by descending contribution.
func (p CareerPath) MatchedTraits(profile TraitProfile) []string {
	type contribution struct {
		trait string
		value float64
	}
	var contributions []contribution
	for trait, weight := range p.Traits {
		if v := profile.Scores[trait] * weight; v > 0 {
			contributions = append(contributions, contribution{trait: trait, value: v})
		}
	}
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].value != contributions[j].value {
			return contributions[i].value > contributions[j].value
		}
		return contributions[i].trait < contributions[j].trait
	})
	traits := make([]string, len(contributions))
	for i, c := range contributions {
		traits[i] = c.trait
	}
	return traits
}

// Recommendation is a per-request resolution result. ConfidenceNote is set
// only when the library had no positive match and the default path was used.
type Recommendation struct {
	Path           CareerPath
	MatchScore     float64
	MatchedTraits  []string
	ConfidenceNote string
}

// Evaluation is the full per-request result handed to the narrative
// formatter. It is discarded once the response is serialized.
type Evaluation struct {
	LearnerName         string
	Headline            string
	Traits              TraitProfile
	Recommendations     []Recommendation
	ReflectionQuestions []string
}

// CareerLibrary is the immutable set of authored career paths plus the
// designated fallback. Built once at process start.
type CareerLibrary struct {
	paths    []CareerPath
	fallback CareerPath
}

// NewCareerLibrary creates the library with the built-in path catalog.
func NewCareerLibrary() *CareerLibrary {
	return &CareerLibrary{
		paths:    buildCareerPaths(),
		fallback: buildFallbackPath(),
	}
}

// Paths returns the authored paths in library order.
func (l *CareerLibrary) Paths() []CareerPath {
	return l.paths
}

// Default returns the fallback path used when nothing matches.
func (l *CareerLibrary) Default() CareerPath {
	return l.fallback
}

// Rank orders the library by descending match score against the profile.
// The sort is stable, so score ties keep library order and resolution stays
// deterministic.
func (l *CareerLibrary) Rank(profile TraitProfile) []CareerPath {
	ranked := make([]CareerPath, len(l.paths))
	copy(ranked, l.paths)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore(profile) > ranked[j].MatchScore(profile)
	})
	return ranked
}

func buildCareerPaths() []CareerPath {
	return []CareerPath{
		{
			Title:  "Data & AI Explorer",
			Traits: map[string]float64{"analytical": 0.8, "technical": 0.7},
			Summary: "You enjoy uncovering patterns and using technology to make sense of complex problems. " +
				"Roles like data analyst, machine learning engineer, or AI ethicist can let you blend " +
				"curiosity with impact.",
			StrengthsAlignment: []string{
				"You naturally spot trends and question the status quo.",
				"You enjoy independent deep work and thoughtful experimentation.",
				"You like transforming messy information into useful insights.",
			},
			StarterProjects: []string{
				"Analyze open datasets (climate, education) and publish a short insight report.",
				"Build a simple machine learning model that solves a real-world student problem.",
				"Join a hackathon focused on ethical AI or social good.",
			},
			LearningResources: []string{
				"Intro to Data Science with Python (Coursera)",
				"Kaggle Learn: Intro to Machine Learning",
				"AI Ethics case studies from the Montreal AI Ethics Institute",
			},
		},
		{
			Title:  "Digital Storyteller",
			Traits: map[string]float64{"creative": 0.9, "communication": 0.7},
			Summary: "You bring ideas to life through words, visuals, or interactive media. " +
				"Careers in content strategy, UX writing, or multimedia journalism help you build " +
				"narratives that inspire action.",
			StrengthsAlignment: []string{
				"You connect with audiences and translate complex topics into engaging stories.",
				"You experiment with formats, from podcasts to design mockups, to find the right voice.",
				"You notice the emotions behind people's experiences and reflect them back.",
			},
			StarterProjects: []string{
				"Launch a storytelling newsletter exploring student journeys in various fields.",
				"Prototype a multimedia portfolio site highlighting causes you care about.",
				"Volunteer with a local nonprofit to amplify their mission through social media.",
			},
			LearningResources: []string{
				"Google UX Writing Fundamentals",
				"Storytelling for Influence (IDEO U)",
				"Build a Personal Brand on Social Media (LinkedIn Learning)",
			},
		},
		{
			Title:  "Community Impact Navigator",
			Traits: map[string]float64{"social": 0.8, "communication": 0.6},
			Summary: "You thrive when empowering others and building supportive spaces. " +
				"Roles in community management, education, or talent development let you guide " +
				"people toward growth.",
			StrengthsAlignment: []string{
				"You facilitate discussions that help peers discover their strengths.",
				"You design inclusive experiences where everyone feels seen.",
				"You excel at translating feedback into programs that drive impact.",
			},
			StarterProjects: []string{
				"Start a peer mentoring circle focused on goal setting and accountability.",
				"Design a workshop to help classmates explore future career paths.",
				"Coordinate a service project that addresses a local need.",
			},
			LearningResources: []string{
				"Coaching Skills for Leaders (edX)",
				"Community Management Fundamentals (CMX)",
				"Designing Learning Experiences (IDEO U)",
			},
		},
		{
			Title:  "Product Innovator",
			Traits: map[string]float64{"technical": 0.7, "practical": 0.6},
			Summary: "You enjoy turning ideas into tangible solutions and iterating quickly. " +
				"Product management, innovation strategy, or entrepreneurship paths help you " +
				"launch meaningful products.",
			StrengthsAlignment: []string{
				"You balance big-picture vision with pragmatic experimentation.",
				"You love mapping user needs and crafting solutions that evolve with feedback.",
				"You are energized by dynamic environments and collaborative building.",
			},
			StarterProjects: []string{
				"Design a lean canvas for a product addressing a student life challenge.",
				"Join a product sprint or startup weekend to practice rapid prototyping.",
				"Build a low-code MVP and test it with potential users.",
			},
			LearningResources: []string{
				"Product Strategy by Reforge",
				"Lean Startup principles (Eric Ries)",
				"Figma Community for prototyping inspiration",
			},
		},
		{
			Title:  "Sustainable Builder",
			Traits: map[string]float64{"practical": 0.8, "creative": 0.5},
			Summary: "You like working with your hands and seeing real-world change. " +
				"Careers in sustainable engineering, urban planning, or environmental design " +
				"combine tangible impact with creativity.",
			StrengthsAlignment: []string{
				"You think in systems and care about long-term impact on people and planet.",
				"You enjoy learning by doing and iterating on physical or spatial prototypes.",
				"You balance functionality with aesthetics when solving problems.",
			},
			StarterProjects: []string{
				"Prototype a sustainable product or service for your campus.",
				"Volunteer with an urban garden or green building initiative.",
				"Document how local infrastructure could become more climate resilient.",
			},
			LearningResources: []string{
				"Introduction to Sustainable Design (Coursera)",
				"Open Source Ecology projects",
				"Sustainable Cities MOOC (edX)",
			},
		},
	}
}

// buildFallbackPath is only reachable when the catalogs are re-authored in a
// way that leaves some answer combination without a positive match; the
// shipped questionnaire weights every option, so every valid answer set
// matches at least one path.
func buildFallbackPath() CareerPath {
	return CareerPath{
		Title:  "Open Path Explorer",
		Traits: map[string]float64{},
		Summary: "Your answers did not point strongly toward a single direction yet, and that is " +
			"a fine place to be. Sampling short experiences across several fields is the fastest " +
			"way to find the work that energizes you.",
		StrengthsAlignment: []string{
			"You keep your options open instead of committing before you have evidence.",
			"You can approach several fields with genuine curiosity.",
		},
		StarterProjects: []string{
			"Shadow three people working in fields you are curious about.",
			"Keep a two-week journal of tasks that energized or drained you.",
			"Take one short introductory course in a field you have never tried.",
		},
		LearningResources: []string{
			"Designing Your Life (Burnett & Evans)",
			"80,000 Hours career guide",
			"So Good They Can't Ignore You (Cal Newport)",
		},
	}
}
