package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/scoring"
)

// DefaultHighScoreThreshold is the minimum option value worth quoting back.
const DefaultHighScoreThreshold = 2

// NoHighScores is returned by HighScoreSummary when nothing qualifies.
const NoHighScores = "暂无显著高分项"

// HighScoreSummary lists every answered CHOICE question whose resolved value
// reaches threshold, with the chosen option label and its score against the
// question's maximum.
func HighScoreSummary(c *questionnaire.Catalog, responses questionnaire.Responses, threshold float64) string {
	var b strings.Builder
	for _, q := range c.Questions() {
		if q.Type != questionnaire.TypeChoice {
			continue
		}
		raw, ok := responses[q.ID]
		if !ok || raw == nil {
			continue
		}
		score := scoring.Resolve(c, q.ID, raw)
		if score < threshold {
			continue
		}
		fmt.Fprintf(&b, "\nQ%d: %s\n你的选择：%s\n得分：%s/%s\n",
			q.ID, q.Text, ChoiceLabel(&q, raw), num(score), num(q.MaxValue()))
	}
	if b.Len() == 0 {
		return NoHighScores
	}
	return b.String()
}

// ChoiceLabel returns the label of the option a CHOICE answer points at, or
// "未选择" when the answer does not resolve to an option.
func ChoiceLabel(q *questionnaire.Question, raw any) string {
	if idx, ok := scoring.OptionIndex(raw); ok {
		if opt, ok := q.OptionAt(idx); ok {
			return opt.Label
		}
	}
	return "未选择"
}
