package scoring

import (
	"math"

	"github.com/abhisek/mindload/internal/questionnaire"
)

// Resolve converts the stored answer of one question into its numeric
// contribution. It never fails: unanswered, unknown or malformed entries
// contribute 0.
//
// CHOICE answers are option indices and are always re-resolved through the
// catalog; SCALE answers are their own value; OPEN answers are not scored.
func Resolve(c *questionnaire.Catalog, questionID int, raw any) float64 {
	if raw == nil {
		return 0
	}
	q, ok := c.Question(questionID)
	if !ok {
		return 0
	}

	switch q.Type {
	case questionnaire.TypeChoice:
		idx, ok := OptionIndex(raw)
		if !ok {
			return 0
		}
		opt, ok := q.OptionAt(idx)
		if !ok {
			return 0
		}
		return opt.Value
	case questionnaire.TypeScale:
		return orZero(toNumber(raw), 0)
	default:
		return 0
	}
}

// OptionIndex coerces a stored CHOICE answer to an option index. Only
// integral values are indices; range checking is left to the question.
func OptionIndex(raw any) (int, bool) {
	if raw == nil {
		return 0, false
	}
	idx := toNumber(raw)
	if math.IsNaN(idx) || math.Abs(idx) > math.MaxInt32 || idx != math.Trunc(idx) {
		return 0, false
	}
	return int(idx), true
}
