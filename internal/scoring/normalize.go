package scoring

import "github.com/abhisek/mindload/internal/questionnaire"

// Scale is a display scale for normalized dimension scores.
type Scale int

const (
	ScaleFive    Scale = iota // 0-5, two decimals
	ScalePercent              // 0-100, integer
	ScaleTen                  // 0-10, one decimal
)

// Normalize converts a raw total into the target scale, dividing by the
// dimension's catalog-derived maximum. A non-positive max yields 0.
func Normalize(raw, maxScore float64, scale Scale) float64 {
	if maxScore <= 0 {
		return 0
	}
	switch scale {
	case ScalePercent:
		return jsRound(raw / maxScore * 100)
	case ScaleTen:
		return toFixed(raw/maxScore*10, 1)
	default:
		return toFixed(raw/maxScore*5, 2)
	}
}

// NormalizeAll applies Normalize to every dimension of a partition.
func NormalizeAll(raw map[string]float64, p *questionnaire.Partition, scale Scale) map[string]float64 {
	out := make(map[string]float64, len(p.Dimensions))
	for _, d := range p.Dimensions {
		out[d.Name] = Normalize(raw[d.Name], d.MaxScore, scale)
	}
	return out
}
