package scoring

import (
	"fmt"

	"github.com/abhisek/mindload/internal/questionnaire"
)

// ModelID identifies a scoring model.
type ModelID string

const (
	ModelGrowth ModelID = "growth"
	ModelDrain  ModelID = "drain"
)

// Model is a scoring strategy bound to one question catalog.
type Model interface {
	ID() ModelID
	Catalog() *questionnaire.Catalog
	Score(responses questionnaire.Responses) *Scores
}

// Scores is the full result of scoring one response set.
type Scores struct {
	Model        ModelID `json:"model"`
	OverallIndex float64 `json:"overall_index"`
	TotalScore   float64 `json:"total_score,omitempty"`
	Level        Level   `json:"level"`
	TopDimension string  `json:"top_dimension"`

	DimensionScores  map[string]float64 `json:"dimension_scores"`
	DimensionDisplay map[string]float64 `json:"dimension_display"`

	BehaviorScores  map[string]float64 `json:"behavior_scores,omitempty"`
	BehaviorDisplay map[string]float64 `json:"behavior_display,omitempty"`
	BehaviorLevels  map[string]string  `json:"behavior_levels,omitempty"`

	Classification *Classification `json:"classification,omitempty"`
	BeatPercent    int             `json:"beat_percent,omitempty"`

	DimensionOrder []string `json:"dimension_order"`
	BehaviorOrder  []string `json:"behavior_order,omitempty"`
}

var models = map[ModelID]Model{
	ModelGrowth: growthModel{},
	ModelDrain:  drainModel{},
}

// ModelFor returns the registered model with the given id.
func ModelFor(id ModelID) (Model, error) {
	m, ok := models[id]
	if !ok {
		return nil, fmt.Errorf("unknown scoring model %q (want %q or %q)", id, ModelGrowth, ModelDrain)
	}
	return m, nil
}

// ModelIDs returns the registered model ids in a stable order.
func ModelIDs() []ModelID {
	return []ModelID{ModelGrowth, ModelDrain}
}
