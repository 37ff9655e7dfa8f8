package scoring

import (
	"slices"

	"github.com/abhisek/mindload/internal/questionnaire"
)

// Pattern types reported by the growth classifier.
const (
	PatternCorrelated = "强关联型"
	PatternScattered  = "多点型"
)

// Classification describes the dominant growth blockers.
type Classification struct {
	PrimaryBlock   string  `json:"primary_block"`
	SecondaryBlock string  `json:"secondary_block"`
	KeyBehavior    string  `json:"key_behavior"`
	PatternType    string  `json:"pattern_type"`
	SeverityBoost  float64 `json:"severity_boost"`
}

// beliefBehaviors lists, for a belief dimension, the behavior patterns it
// typically drives.
var beliefBehaviors = map[string][]string{
	questionnaire.BeliefSelfWorth:    {questionnaire.BehaviorSelfSabotage, questionnaire.BehaviorOvercompensate},
	questionnaire.BeliefPerfection:   {questionnaire.BehaviorProcrastination, questionnaire.BehaviorEnergyDrain, questionnaire.BehaviorPerfection},
	questionnaire.BeliefCapability:   {questionnaire.BehaviorProcrastination, questionnaire.BehaviorSelfSabotage},
	questionnaire.BeliefRisk:         {questionnaire.BehaviorProcrastination, questionnaire.BehaviorOverdefend},
	questionnaire.BeliefRelationship: {questionnaire.BehaviorOvercompensate, questionnaire.BehaviorOverdefend},
}

// rankDesc returns names ordered by descending score. Ties keep the input
// order, so the first-declared dimension wins.
func rankDesc(names []string, scores map[string]float64) []string {
	out := slices.Clone(names)
	slices.SortStableFunc(out, func(a, b string) int {
		sa, sb := scores[a], scores[b]
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// topOf returns the highest scoring name, or "" for an empty list.
func topOf(names []string, scores map[string]float64) string {
	ranked := rankDesc(names, scores)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0]
}

// classifyGrowth picks the two strongest beliefs and the strongest behavior
// from raw totals and checks whether they are known to reinforce each other.
func classifyGrowth(beliefOrder []string, beliefs map[string]float64, behaviorOrder []string, behaviors map[string]float64) *Classification {
	ranked := rankDesc(beliefOrder, beliefs)
	c := &Classification{
		PatternType:   PatternScattered,
		SeverityBoost: 1.0,
	}
	if len(ranked) > 0 {
		c.PrimaryBlock = ranked[0]
	}
	if len(ranked) > 1 {
		c.SecondaryBlock = ranked[1]
	}
	c.KeyBehavior = topOf(behaviorOrder, behaviors)

	if slices.Contains(beliefBehaviors[c.PrimaryBlock], c.KeyBehavior) {
		c.PatternType = PatternCorrelated
		c.SeverityBoost = 1.2
	}
	return c
}
