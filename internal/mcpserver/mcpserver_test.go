package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/store"
)

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, r)
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no text content")
	return ""
}

type fakeSubmitter struct {
	calls int
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, model scoring.ModelID, r questionnaire.Responses) (*report.Submission, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	m, _ := scoring.ModelFor(model)
	return &report.Submission{
		Assessment: &store.Assessment{ID: "saved-1", Model: string(model)},
		Scores:     m.Score(r),
		Reused:     f.calls > 1,
	}, nil
}

func TestListQuestions_Definition(t *testing.T) {
	def := ListQuestionsTool{}.Definition()
	assert.Equal(t, "list_questions", def.Name)
	assert.Contains(t, def.InputSchema.Properties, "model")
	assert.Contains(t, def.InputSchema.Required, "model")
}

func TestListQuestions_Handle(t *testing.T) {
	res, err := ListQuestionsTool{}.Handle(context.Background(), makeReq(map[string]any{"model": "drain"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var qs []questionnaire.Question
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &qs))
	assert.Len(t, qs, questionnaire.DrainCatalog().Len())
}

func TestListQuestions_UnknownModel(t *testing.T) {
	res, err := ListQuestionsTool{}.Handle(context.Background(), makeReq(map[string]any{"model": "mood"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestScoreTool_Definition(t *testing.T) {
	def := NewScoreTool(nil).Definition()
	assert.Equal(t, "score_assessment", def.Name)
	for _, p := range []string{"model", "responses", "save"} {
		assert.Contains(t, def.InputSchema.Properties, p)
	}
	assert.ElementsMatch(t, []string{"model", "responses"}, def.InputSchema.Required)
}

func TestScoreTool_ScoresObjectAndString(t *testing.T) {
	tool := NewScoreTool(nil)
	want := mustScore(t, questionnaire.Responses{1: 3, 2: 3})

	for name, responses := range map[string]any{
		"object": map[string]any{"1": float64(3), "2": float64(3)},
		"string": `{"1": 3, "2": 3}`,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(map[string]any{
				"model":     "drain",
				"responses": responses,
			}))
			require.NoError(t, err)
			require.False(t, res.IsError, resultText(t, res))

			var got scoreResult
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
			assert.Equal(t, want.TotalScore, got.Scores.TotalScore)
			assert.Equal(t, scoring.ShareText(want), got.Share)
			assert.Empty(t, got.AssessmentID)
		})
	}
}

func mustScore(t *testing.T, r questionnaire.Responses) *scoring.Scores {
	t.Helper()
	m, err := scoring.ModelFor(scoring.ModelDrain)
	require.NoError(t, err)
	return m.Score(r)
}

func TestScoreTool_BadArguments(t *testing.T) {
	tool := NewScoreTool(nil)
	tests := map[string]map[string]any{
		"unknown model":     {"model": "mood", "responses": map[string]any{}},
		"missing responses": {"model": "drain"},
		"array responses":   {"model": "drain", "responses": []any{1, 2}},
		"bad question id":   {"model": "drain", "responses": map[string]any{"q1": 1}},
		"save unavailable":  {"model": "drain", "responses": map[string]any{}, "save": true},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestScoreTool_Save(t *testing.T) {
	sub := &fakeSubmitter{}
	tool := NewScoreTool(sub)
	args := map[string]any{"model": "growth", "responses": map[string]any{"5": float64(8)}, "save": true}

	res, err := tool.Handle(context.Background(), makeReq(args))
	require.NoError(t, err)
	var got scoreResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, "saved-1", got.AssessmentID)
	assert.False(t, got.Reused)
	assert.Equal(t, scoring.ModelGrowth, got.Scores.Model)

	res, err = tool.Handle(context.Background(), makeReq(args))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.True(t, got.Reused)
	assert.Equal(t, 2, sub.calls)
}

func TestScoreTool_SaveError(t *testing.T) {
	tool := NewScoreTool(&fakeSubmitter{err: errors.New("disk full")})
	res, err := tool.Handle(context.Background(), makeReq(map[string]any{
		"model": "drain", "responses": map[string]any{}, "save": true,
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "disk full")
}

func TestNew_RegistersTools(t *testing.T) {
	s := New("test", nil)
	tools := s.ListTools()
	assert.Contains(t, tools, "list_questions")
	assert.Contains(t, tools, "score_assessment")
}
