package questionnaire

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthCatalog_Shape(t *testing.T) {
	c := GrowthCatalog()
	assert.Equal(t, 50, c.Len())
	assert.Equal(t, []string{PartitionBeliefs, PartitionBehaviors}, c.PartitionNames())

	open := c.OpenQuestions()
	require.Len(t, open, 3)
	assert.Equal(t, GrowthQLimitingVoice, open[0].ID)
	assert.Equal(t, GrowthQIdealFuture, open[2].ID)

	q, ok := c.Question(GrowthQSatisfaction)
	require.True(t, ok)
	assert.Equal(t, TypeScale, q.Type)
}

func TestGrowthCatalog_DerivedMaxima(t *testing.T) {
	c := GrowthCatalog()

	beliefs := c.MustPartition(PartitionBeliefs)
	require.Len(t, beliefs.Dimensions, 8)
	for _, d := range beliefs.Dimensions {
		want := 12.0
		if d.Name == BeliefPerfection {
			want = 13
		}
		assert.Equal(t, want, d.MaxScore, d.Name)
		assert.Equal(t, d.NominalMax, d.MaxScore, d.Name)
	}

	behaviors := c.MustPartition(PartitionBehaviors)
	require.Len(t, behaviors.Dimensions, 6)
	total := 0.0
	for _, d := range behaviors.Dimensions {
		assert.Equal(t, d.NominalMax, d.MaxScore, d.Name)
		total += d.MaxScore
	}
	assert.Equal(t, 75.0, total, "behavior divisor must match the catalog")
}

func TestGrowthCatalog_PartitionsCoverSameAnswerSetOnce(t *testing.T) {
	c := GrowthCatalog()
	for _, name := range c.PartitionNames() {
		seen := map[int]bool{}
		for _, d := range c.MustPartition(name).Dimensions {
			for _, id := range d.QuestionIDs {
				assert.False(t, seen[id], "question %d counted twice in %s", id, name)
				seen[id] = true
			}
		}
	}
}

func TestDrainCatalog_DerivedMaxima(t *testing.T) {
	c := DrainCatalog()
	assert.Equal(t, 38, c.Len())

	p := c.MustPartition(PartitionDrain)
	assert.Equal(t, []string{DrainThinking, DrainEmotion, DrainAction, DrainRelation}, p.Names())

	tests := []struct {
		name    string
		max     float64
		nominal float64
	}{
		{DrainThinking, 28, 28},
		{DrainEmotion, 28, 28},
		{DrainAction, 24, 24},
		// Q29-Q33 top out at 3 and Q34-Q35 at 2, one short of the documented 20.
		{DrainRelation, 19, 20},
	}
	for _, tt := range tests {
		d, ok := p.Lookup(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.max, d.MaxScore, tt.name)
		assert.Equal(t, tt.nominal, d.NominalMax, tt.name)
	}
}

func TestValidateCatalog_ReportsAllProblems(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "a", Type: TypeChoice},
		{ID: 1, Text: "b", Type: TypeOpen},
		{ID: 3, Text: "c", Type: TypeScale, Options: []Option{{Value: 1}}},
		{ID: 4, Text: "d", Type: "MULTI"},
	}
	_, err := newCatalog("broken", questions, Partition{
		Name: "p",
		Dimensions: []Dimension{
			{Name: "x", QuestionIDs: []int{1, 9}},
			{Name: "y", QuestionIDs: []int{1}},
			{Name: "z"},
		},
	})
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"duplicate question ID: 1",
		"choice question 1 has no options",
		"scale question 3 must not declare options",
		"unknown type \"MULTI\"",
		"nonexistent question 9",
		"assigned to both",
		"dimension \"z\" has no questions",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestValidateCatalog_NominalMaxBelowCatalog(t *testing.T) {
	questions := []Question{
		{ID: 1, Text: "a", Type: TypeChoice, Options: []Option{{Value: 0}, {Value: 3}}},
	}
	_, err := newCatalog("drift", questions, Partition{
		Name:       "p",
		Dimensions: []Dimension{{Name: "x", QuestionIDs: []int{1}, NominalMax: 2}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog max 3 exceeds nominal max 2")
}

func TestResponses_UnmarshalJSON(t *testing.T) {
	var r Responses
	err := json.Unmarshal([]byte(`{"6": 2, "5": "7", "48": "我不行", "9": null}`), &r)
	require.NoError(t, err)

	assert.Equal(t, json.Number("2"), r[6])
	assert.Equal(t, "7", r[5])
	assert.Equal(t, "我不行", r.Text(48))
	assert.Nil(t, r[9])
	assert.Equal(t, "", r.Text(6))

	err = json.Unmarshal([]byte(`{"q6": 2}`), &r)
	assert.Error(t, err)
}

func TestResponses_UnmarshalJSON_NonCanonicalKeysIgnored(t *testing.T) {
	data := []byte(`{"1": 0, "01": 3, " 1": 1, "+1": 2, "2": 1}`)
	for range 50 {
		var r Responses
		require.NoError(t, json.Unmarshal(data, &r))
		assert.Len(t, r, 2)
		assert.Equal(t, json.Number("0"), r[1])
		assert.Equal(t, json.Number("1"), r[2])
	}

	var r Responses
	require.NoError(t, json.Unmarshal([]byte(`{"007": "x"}`), &r))
	assert.Empty(t, r)
}

func TestQuestion_OptionAt(t *testing.T) {
	q, ok := DrainCatalog().Question(9)
	require.True(t, ok)

	opt, ok := q.OptionAt(1)
	require.True(t, ok)
	assert.Equal(t, 0.5, opt.Value)

	_, ok = q.OptionAt(4)
	assert.False(t, ok)
	_, ok = q.OptionAt(-1)
	assert.False(t, ok)
	assert.Equal(t, 2.0, q.MaxValue())
}
