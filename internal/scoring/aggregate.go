package scoring

import "github.com/abhisek/mindload/internal/questionnaire"

// Aggregate sums the resolved answers of every question assigned to each
// dimension of a partition. Every dimension is present in the result, even
// when none of its questions were answered.
func Aggregate(c *questionnaire.Catalog, responses questionnaire.Responses, p *questionnaire.Partition) map[string]float64 {
	out := make(map[string]float64, len(p.Dimensions))
	for _, d := range p.Dimensions {
		sum := 0.0
		for _, id := range d.QuestionIDs {
			sum += Resolve(c, id, responses[id])
		}
		out[d.Name] = sum
	}
	return out
}
