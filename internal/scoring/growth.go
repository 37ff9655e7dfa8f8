package scoring

import (
	"math"

	"github.com/abhisek/mindload/internal/questionnaire"
)

// beliefWeights are applied to raw belief totals in catalog order. With the
// growth catalog maxima, the weighted maximum is exactly beliefDivisor.
var beliefWeights = map[string]float64{
	questionnaire.BeliefMoney:        0.12,
	questionnaire.BeliefSelfWorth:    0.20,
	questionnaire.BeliefCapability:   0.15,
	questionnaire.BeliefRelationship: 0.13,
	questionnaire.BeliefTime:         0.08,
	questionnaire.BeliefRisk:         0.12,
	questionnaire.BeliefWorldview:    0.08,
	questionnaire.BeliefPerfection:   0.12,
}

const (
	beliefDivisor   = 12.12
	behaviorDivisor = 75.0

	beliefMix   = 0.55
	behaviorMix = 0.45

	maxGrowthIndex      = 10.0
	defaultSatisfaction = 5.0
)

// durationMultipliers are keyed by the stored Q3 answer (an option index).
var durationMultipliers = map[string]float64{
	"0": 1.0,
	"1": 1.1,
	"2": 1.2,
	"3": 1.3,
}

type growthModel struct{}

func (growthModel) ID() ModelID                     { return ModelGrowth }
func (growthModel) Catalog() *questionnaire.Catalog { return questionnaire.GrowthCatalog() }

func (m growthModel) Score(responses questionnaire.Responses) *Scores {
	c := m.Catalog()
	beliefs := c.MustPartition(questionnaire.PartitionBeliefs)
	behaviors := c.MustPartition(questionnaire.PartitionBehaviors)

	beliefRaw := Aggregate(c, responses, beliefs)
	behaviorRaw := Aggregate(c, responses, behaviors)

	levels := make(map[string]string, len(behaviors.Dimensions))
	for _, d := range behaviors.Dimensions {
		levels[d.Name] = BehaviorLevel(behaviorRaw[d.Name], d.MaxScore)
	}

	index := GrowthIndex(beliefs, beliefRaw, behaviors, behaviorRaw, responses)
	class := classifyGrowth(beliefs.Names(), beliefRaw, behaviors.Names(), behaviorRaw)

	return &Scores{
		Model:            ModelGrowth,
		OverallIndex:     index,
		Level:            GrowthLevel(index),
		TopDimension:     class.PrimaryBlock,
		DimensionScores:  beliefRaw,
		DimensionDisplay: NormalizeAll(beliefRaw, beliefs, ScaleFive),
		BehaviorScores:   behaviorRaw,
		BehaviorDisplay:  NormalizeAll(behaviorRaw, behaviors, ScaleFive),
		BehaviorLevels:   levels,
		Classification:   class,
		DimensionOrder:   beliefs.Names(),
		BehaviorOrder:    behaviors.Names(),
	}
}

// GrowthIndex computes the 0-10 composite growth-obstacle index from raw
// belief and behavior totals, scaled by how long the user has been stuck and
// how dissatisfied they are. The result has one decimal and is clamped to
// [0, 10].
func GrowthIndex(beliefs *questionnaire.Partition, beliefRaw map[string]float64, behaviors *questionnaire.Partition, behaviorRaw map[string]float64, responses questionnaire.Responses) float64 {
	weighted := 0.0
	for _, d := range beliefs.Dimensions {
		weighted += beliefRaw[d.Name] * beliefWeights[d.Name]
	}
	behaviorTotal := 0.0
	for _, d := range behaviors.Dimensions {
		behaviorTotal += behaviorRaw[d.Name]
	}

	base := (weighted/beliefDivisor*beliefMix + behaviorTotal/behaviorDivisor*behaviorMix) * 10

	multiplier, ok := durationMultipliers[toKey(responses[questionnaire.GrowthQStuckDuration])]
	if !ok {
		multiplier = 1.0
	}

	satisfaction := orZero(toNumber(responses[questionnaire.GrowthQSatisfaction]), defaultSatisfaction)
	factor := 1 + (10-satisfaction)*0.02

	index := toFixed(base*multiplier*factor, 1)
	if math.IsNaN(index) {
		return 0
	}
	return clamp(index, 0, maxGrowthIndex)
}
