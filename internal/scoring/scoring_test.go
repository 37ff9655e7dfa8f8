package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindload/internal/questionnaire"
)

// topIndex returns the option index holding the question's highest value.
func topIndex(q *questionnaire.Question) int {
	best := 0
	for i, o := range q.Options {
		if o.Value > q.Options[best].Value {
			best = i
		}
	}
	return best
}

// answerDims answers every question of the named dimensions with pick(q).
func answerDims(t *testing.T, c *questionnaire.Catalog, partition string, dims []string, r questionnaire.Responses, pick func(*questionnaire.Question) int) {
	t.Helper()
	p := c.MustPartition(partition)
	for _, name := range dims {
		d, ok := p.Lookup(name)
		require.True(t, ok, name)
		for _, id := range d.QuestionIDs {
			q, ok := c.Question(id)
			require.True(t, ok)
			r[id] = pick(q)
		}
	}
}

func fixed(i int) func(*questionnaire.Question) int {
	return func(*questionnaire.Question) int { return i }
}

func mustModel(t *testing.T, id ModelID) Model {
	t.Helper()
	m, err := ModelFor(id)
	require.NoError(t, err)
	return m
}

func TestModelFor(t *testing.T) {
	for _, id := range ModelIDs() {
		m := mustModel(t, id)
		assert.Equal(t, id, m.ID())
		assert.NotNil(t, m.Catalog())
	}
	_, err := ModelFor("vibes")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	drain := questionnaire.DrainCatalog()
	growth := questionnaire.GrowthCatalog()

	tests := []struct {
		name string
		c    *questionnaire.Catalog
		id   int
		raw  any
		want float64
	}{
		{"choice index", drain, 1, 2, 2},
		{"choice fractional option", drain, 9, 1, 0.5},
		{"choice index as string", drain, 1, "3", 3},
		{"choice index as float", drain, 1, 1.0, 1},
		{"choice non-integer index", drain, 1, 1.5, 0},
		{"choice out of range", drain, 1, 7, 0},
		{"choice negative", drain, 1, -1, 0},
		{"choice garbage", drain, 1, "lots", 0},
		{"unanswered", drain, 1, nil, 0},
		{"unknown question", drain, 99, 2, 0},
		{"open question", drain, questionnaire.DrainQBreakdown, "累了", 0},
		{"scale", growth, questionnaire.GrowthQSatisfaction, "7", 7},
		{"scale garbage", growth, questionnaire.GrowthQSatisfaction, "?", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.c, tt.id, tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 2.31, Normalize(6, 13, ScaleFive))
	assert.Equal(t, 2.5, Normalize(6, 12, ScaleFive))
	assert.Equal(t, 67.0, Normalize(2, 3, ScalePercent))
	assert.Equal(t, 6.7, Normalize(2, 3, ScaleTen))
	assert.Equal(t, 0.0, Normalize(5, 0, ScalePercent))
}

func TestDrain_SingleDimensionAtMax(t *testing.T) {
	m := mustModel(t, ModelDrain)
	r := questionnaire.Responses{}
	answerDims(t, m.Catalog(), questionnaire.PartitionDrain, []string{questionnaire.DrainThinking}, r, topIndex)
	answerDims(t, m.Catalog(), questionnaire.PartitionDrain,
		[]string{questionnaire.DrainEmotion, questionnaire.DrainAction, questionnaire.DrainRelation}, r, fixed(0))

	s := m.Score(r)
	assert.Equal(t, 100.0, s.DimensionDisplay[questionnaire.DrainThinking])
	assert.Equal(t, 0.0, s.DimensionDisplay[questionnaire.DrainEmotion])
	assert.Equal(t, 28.0, s.TotalScore)
	assert.Equal(t, 28.0, s.OverallIndex)
	assert.Equal(t, "轻度内耗型", s.Level.Label)
	assert.Equal(t, questionnaire.DrainThinking, s.TopDimension)
	assert.Equal(t, 86, s.BeatPercent)
	assert.Equal(t, []string{questionnaire.DrainThinking, questionnaire.DrainEmotion, questionnaire.DrainAction, questionnaire.DrainRelation}, s.DimensionOrder)
	assert.Nil(t, s.Classification)

	assert.Equal(t, "我的内耗指数是 28 分，属于「轻度内耗型」🌤️，最大的能量黑洞是「思维内耗」。你是怎么做到的？快来挑战我！", ShareText(s))
}

func TestDrain_AllMaxIsHundredPercentEverywhere(t *testing.T) {
	m := mustModel(t, ModelDrain)
	r := questionnaire.Responses{}
	p := m.Catalog().MustPartition(questionnaire.PartitionDrain)
	answerDims(t, m.Catalog(), questionnaire.PartitionDrain, p.Names(), r, topIndex)

	s := m.Score(r)
	for _, name := range p.Names() {
		assert.Equal(t, 100.0, s.DimensionDisplay[name], name)
	}
	assert.Equal(t, 99.0, s.TotalScore)
	assert.Equal(t, "重度内耗型", s.Level.Label)
	assert.Equal(t, 1, s.BeatPercent)
}

func TestDrain_EmptyResponses(t *testing.T) {
	s := mustModel(t, ModelDrain).Score(nil)
	assert.Equal(t, 0.0, s.TotalScore)
	assert.Equal(t, "能量自由型", s.Level.Label)
	assert.Equal(t, 100, s.BeatPercent)
	assert.Equal(t, questionnaire.DrainThinking, s.TopDimension, "ties go to the first dimension")
}

func TestGrowth_ZeroAnswersFloor(t *testing.T) {
	m := mustModel(t, ModelGrowth)
	c := m.Catalog()

	for _, stuck := range []any{nil, 0, 1, 2, 3, "3"} {
		for _, sat := range []any{nil, 1, 5, 10, "x"} {
			r := questionnaire.Responses{}
			answerDims(t, c, questionnaire.PartitionBeliefs, c.MustPartition(questionnaire.PartitionBeliefs).Names(), r, fixed(0))
			answerDims(t, c, questionnaire.PartitionBehaviors, c.MustPartition(questionnaire.PartitionBehaviors).Names(), r, fixed(0))
			r[questionnaire.GrowthQStuckDuration] = stuck
			r[questionnaire.GrowthQSatisfaction] = sat

			s := m.Score(r)
			assert.Equal(t, 0.0, s.OverallIndex, "stuck=%v sat=%v", stuck, sat)
			assert.Equal(t, "绿灯区 (轻度阻碍)", s.Level.Label)
		}
	}
}

func TestGrowth_MidScenario(t *testing.T) {
	m := mustModel(t, ModelGrowth)
	c := m.Catalog()
	r := questionnaire.Responses{
		questionnaire.GrowthQStuckDuration: 1,
		questionnaire.GrowthQSatisfaction:  6,
	}
	answerDims(t, c, questionnaire.PartitionBeliefs, c.MustPartition(questionnaire.PartitionBeliefs).Names(), r, fixed(2))
	answerDims(t, c, questionnaire.PartitionBehaviors, c.MustPartition(questionnaire.PartitionBehaviors).Names(), r, fixed(2))

	s := m.Score(r)
	assert.Equal(t, 5.8, s.OverallIndex)
	assert.Equal(t, "橙灯区 (中重度阻碍)", s.Level.Label)
	assert.Equal(t, 6.0, s.DimensionScores[questionnaire.BeliefPerfection])
	assert.Equal(t, 2.5, s.DimensionDisplay[questionnaire.BeliefMoney])
	assert.Equal(t, 2.31, s.DimensionDisplay[questionnaire.BeliefPerfection])
	assert.Equal(t, 2.31, s.BehaviorDisplay[questionnaire.BehaviorSelfSabotage])
	assert.Equal(t, BehaviorModerate, s.BehaviorLevels[questionnaire.BehaviorProcrastination])
	assert.Len(t, s.DimensionOrder, 8)
	assert.Len(t, s.BehaviorOrder, 6)
}

func TestGrowth_CorrelatedPatternDoesNotBoostIndex(t *testing.T) {
	m := mustModel(t, ModelGrowth)
	c := m.Catalog()
	r := questionnaire.Responses{}
	answerDims(t, c, questionnaire.PartitionBeliefs, []string{questionnaire.BeliefSelfWorth}, r, topIndex)
	answerDims(t, c, questionnaire.PartitionBehaviors, []string{questionnaire.BehaviorSelfSabotage}, r, topIndex)

	s := m.Score(r)
	require.NotNil(t, s.Classification)
	assert.Equal(t, questionnaire.BeliefSelfWorth, s.Classification.PrimaryBlock)
	assert.Equal(t, questionnaire.BeliefMoney, s.Classification.SecondaryBlock)
	assert.Equal(t, questionnaire.BehaviorSelfSabotage, s.Classification.KeyBehavior)
	assert.Equal(t, PatternCorrelated, s.Classification.PatternType)
	assert.Equal(t, 1.2, s.Classification.SeverityBoost)
	assert.Equal(t, questionnaire.BeliefSelfWorth, s.TopDimension)

	// 2.056 unboosted; applying the boost would give 2.5.
	assert.Equal(t, 2.1, s.OverallIndex)
	assert.Equal(t, BehaviorSevere, s.BehaviorLevels[questionnaire.BehaviorSelfSabotage])
}

func TestGrowth_EmptyClassification(t *testing.T) {
	s := mustModel(t, ModelGrowth).Score(questionnaire.Responses{})
	require.NotNil(t, s.Classification)
	assert.Equal(t, questionnaire.BeliefMoney, s.Classification.PrimaryBlock)
	assert.Equal(t, questionnaire.BeliefSelfWorth, s.Classification.SecondaryBlock)
	assert.Equal(t, questionnaire.BehaviorProcrastination, s.Classification.KeyBehavior)
	assert.Equal(t, PatternScattered, s.Classification.PatternType)
	assert.Equal(t, 1.0, s.Classification.SeverityBoost)
}

func TestGrowth_Bounded(t *testing.T) {
	m := mustModel(t, ModelGrowth)
	c := m.Catalog()

	for _, sat := range []any{-1000, 1, "1e6", "NaN", "-Infinity", 0} {
		r := questionnaire.Responses{questionnaire.GrowthQStuckDuration: 3, questionnaire.GrowthQSatisfaction: sat}
		answerDims(t, c, questionnaire.PartitionBeliefs, c.MustPartition(questionnaire.PartitionBeliefs).Names(), r, topIndex)
		answerDims(t, c, questionnaire.PartitionBehaviors, c.MustPartition(questionnaire.PartitionBehaviors).Names(), r, topIndex)

		s := m.Score(r)
		assert.GreaterOrEqual(t, s.OverallIndex, 0.0, "sat=%v", sat)
		assert.LessOrEqual(t, s.OverallIndex, 10.0, "sat=%v", sat)
	}

	r := questionnaire.Responses{questionnaire.GrowthQStuckDuration: 3, questionnaire.GrowthQSatisfaction: 1}
	answerDims(t, c, questionnaire.PartitionBeliefs, c.MustPartition(questionnaire.PartitionBeliefs).Names(), r, topIndex)
	answerDims(t, c, questionnaire.PartitionBehaviors, c.MustPartition(questionnaire.PartitionBehaviors).Names(), r, topIndex)
	s := m.Score(r)
	assert.Equal(t, 10.0, s.OverallIndex)
	assert.Equal(t, "紧急区 (极重度阻碍)", s.Level.Label)
	for _, name := range s.DimensionOrder {
		assert.Equal(t, 5.0, s.DimensionDisplay[name], name)
	}
}

func TestScore_Deterministic(t *testing.T) {
	for _, id := range ModelIDs() {
		m := mustModel(t, id)
		r := questionnaire.Responses{}
		for _, q := range m.Catalog().Questions() {
			if q.Type == questionnaire.TypeChoice {
				r[q.ID] = q.ID % len(q.Options)
			}
		}
		assert.Equal(t, m.Score(r), m.Score(r), string(id))
	}
}

func TestScore_MonotonicInEachAnswer(t *testing.T) {
	for _, id := range ModelIDs() {
		m := mustModel(t, id)
		c := m.Catalog()

		base := questionnaire.Responses{}
		for _, q := range c.Questions() {
			if q.Type == questionnaire.TypeChoice {
				base[q.ID] = 1
			}
		}

		for _, name := range c.PartitionNames() {
			for _, d := range c.MustPartition(name).Dimensions {
				for _, qid := range d.QuestionIDs {
					q, _ := c.Question(qid)
					prev := -1.0
					// Walk options in value order so raising the answer never lowers its value.
					for _, idx := range optionsByValue(q) {
						r := clone(base)
						r[qid] = idx
						got := m.Score(r).OverallIndex
						assert.GreaterOrEqual(t, got, prev, "%s q%d option %d", id, qid, idx)
						prev = got
					}
				}
			}
		}
	}
}

func optionsByValue(q *questionnaire.Question) []int {
	idx := make([]int, len(q.Options))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && q.Options[idx[j]].Value < q.Options[idx[j-1]].Value; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}

func clone(r questionnaire.Responses) questionnaire.Responses {
	out := make(questionnaire.Responses, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
