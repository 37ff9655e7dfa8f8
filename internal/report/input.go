package report

import (
	"github.com/abhisek/mindload/internal/prompt"
	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/sanitize"
	"github.com/abhisek/mindload/internal/scoring"
)

// DeepPrompt builds the system and user prompts of the long-form report.
// Every user-supplied field is sanitized before interpolation.
func DeepPrompt(scores *scoring.Scores, responses questionnaire.Responses, threshold float64) (system, user string) {
	switch scores.Model {
	case scoring.ModelGrowth:
		c := questionnaire.GrowthCatalog()
		in := prompt.GrowthInput{
			Scores:            scores,
			AgeGroup:          sanitize.ForAI(optionLabel(c, questionnaire.GrowthQAgeGroup, responses), sanitize.MaxLabelRunes),
			StuckDuration:     sanitize.ForAI(optionLabel(c, questionnaire.GrowthQStuckDuration, responses), sanitize.MaxLabelRunes),
			ChangeExpectation: sanitize.ForAI(optionLabel(c, questionnaire.GrowthQChangeExpectation, responses), sanitize.MaxLongLabelRunes),
			Satisfaction:      sanitize.Satisfaction(scoring.Resolve(c, questionnaire.GrowthQSatisfaction, responses[questionnaire.GrowthQSatisfaction])),
			LimitingVoice:     openAnswer(responses, questionnaire.GrowthQLimitingVoice),
			Fear:              openAnswer(responses, questionnaire.GrowthQFear),
			IdealFuture:       openAnswer(responses, questionnaire.GrowthQIdealFuture),
			HighScoreSummary:  summary(c, responses, threshold),
		}
		if area := sanitize.ForAI(optionLabel(c, questionnaire.GrowthQFocusArea, responses), sanitize.MaxLabelRunes); area != "" {
			in.FocusAreas = []string{area}
		}
		return prompt.GrowthSystem, prompt.Growth(in)
	default:
		c := questionnaire.DrainCatalog()
		return prompt.DrainSystem, prompt.Drain(prompt.DrainInput{
			Scores:           scores,
			Breakdown:        openAnswer(responses, questionnaire.DrainQBreakdown),
			Vacation:         openAnswer(responses, questionnaire.DrainQVacation),
			Status:           openAnswer(responses, questionnaire.DrainQStatus),
			HighScoreSummary: summary(c, responses, threshold),
		})
	}
}

// OpenAnswers returns the sanitized open answers as labeled lines for the
// brief prompt.
func OpenAnswers(model scoring.ModelID, responses questionnaire.Responses) []string {
	if model == scoring.ModelGrowth {
		return prompt.GrowthAnswerLines(
			openAnswer(responses, questionnaire.GrowthQLimitingVoice),
			openAnswer(responses, questionnaire.GrowthQFear),
			openAnswer(responses, questionnaire.GrowthQIdealFuture),
		)
	}
	return prompt.DrainAnswerLines(
		openAnswer(responses, questionnaire.DrainQBreakdown),
		openAnswer(responses, questionnaire.DrainQVacation),
		openAnswer(responses, questionnaire.DrainQStatus),
	)
}

func openAnswer(r questionnaire.Responses, id int) string {
	return sanitize.ForAI(r.Text(id), sanitize.MaxAnswerRunes)
}

func summary(c *questionnaire.Catalog, r questionnaire.Responses, threshold float64) string {
	return sanitize.ForAI(prompt.HighScoreSummary(c, r, threshold), sanitize.MaxSummaryRunes)
}

// optionLabel returns the label of the chosen option, or "" when the
// question is unanswered or the answer does not resolve.
func optionLabel(c *questionnaire.Catalog, id int, r questionnaire.Responses) string {
	q, ok := c.Question(id)
	if !ok {
		return ""
	}
	idx, ok := scoring.OptionIndex(r[id])
	if !ok {
		return ""
	}
	opt, ok := q.OptionAt(idx)
	if !ok {
		return ""
	}
	return opt.Label
}
