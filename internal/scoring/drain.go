package scoring

import "github.com/abhisek/mindload/internal/questionnaire"

const maxDrainScore = 100.0

type drainModel struct{}

func (drainModel) ID() ModelID                     { return ModelDrain }
func (drainModel) Catalog() *questionnaire.Catalog { return questionnaire.DrainCatalog() }

func (m drainModel) Score(responses questionnaire.Responses) *Scores {
	c := m.Catalog()
	p := c.MustPartition(questionnaire.PartitionDrain)

	raw := Aggregate(c, responses, p)
	pct := NormalizeAll(raw, p, ScalePercent)

	sum := 0.0
	for _, d := range p.Dimensions {
		sum += raw[d.Name]
	}
	total := clamp(jsRound(sum), 0, maxDrainScore)

	return &Scores{
		Model:            ModelDrain,
		OverallIndex:     total,
		TotalScore:       total,
		Level:            DrainLevel(total),
		TopDimension:     topOf(p.Names(), pct),
		DimensionScores:  raw,
		DimensionDisplay: pct,
		BeatPercent:      BeatPercent(total),
		DimensionOrder:   p.Names(),
	}
}

// BeatPercent estimates the share of people with a higher drain score. It is
// piecewise linear within each level band and falls from 100 to 0 as the
// score rises.
func BeatPercent(total float64) int {
	var v float64
	switch {
	case total <= 25:
		v = 100 - total/25*12
	case total <= 50:
		v = 88 - (total-26)/24*26
	case total <= 75:
		v = 62 - (total-51)/24*47
	default:
		v = 15 - (total-76)/24*15
	}
	return int(clamp(jsRound(v), 0, 100))
}
