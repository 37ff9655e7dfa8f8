package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk, timeout int
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	require.NoError(t, s.DB().QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 1, fk)
	assert.Equal(t, 5000, timeout)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.CreateAssessment(context.Background(), &Assessment{Model: "drain"}))
	require.NoError(t, s1.Close())

	s2, err := OpenContext(context.Background(), path)
	require.NoError(t, err)
	defer s2.Close()
	assert.Equal(t, path, s2.Path())

	list, err := s2.ListAssessments(context.Background(), ListOpts{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateAndGetAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := &Assessment{
		Model:     "growth",
		Responses: json.RawMessage(`{"1":2,"3":"1"}`),
		Scores:    json.RawMessage(`{"overall_index":5.8}`),
	}
	require.NoError(t, s.CreateAssessment(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, a.ResponsesHash)
	assert.Equal(t, AIPending, a.AIStatus)

	got, err := s.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "growth", got.Model)
	assert.JSONEq(t, `{"1":2,"3":"1"}`, string(got.Responses))
	assert.JSONEq(t, `{"overall_index":5.8}`, string(got.Scores))
	assert.Equal(t, AIPending, got.AIStatus)
	assert.Equal(t, a.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())
	assert.True(t, got.CompletedAt.IsZero())
}

func TestGetAssessmentNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetAssessment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAssessments(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, model := range []string{"growth", "drain", "drain"} {
		require.NoError(t, s.CreateAssessment(ctx, &Assessment{
			ID:        string(rune('a' + i)),
			Model:     model,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.ListAssessments(ctx, ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID, "newest first")

	drain, err := s.ListAssessments(ctx, ListOpts{Model: "drain", Limit: 1})
	require.NoError(t, err)
	require.Len(t, drain, 1)
	assert.Equal(t, "c", drain[0].ID)
}

func TestFindByHash(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	responses := json.RawMessage(`{"1":0,"2":1}`)
	a := &Assessment{Model: "drain", Responses: responses}
	require.NoError(t, s.CreateAssessment(ctx, a))

	got, err := s.FindByHash(ctx, "drain", HashResponses("drain", responses))
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = s.FindByHash(ctx, "growth", HashResponses("growth", responses))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHashResponses(t *testing.T) {
	r := json.RawMessage(`{"1":0}`)
	assert.Equal(t, HashResponses("drain", r), HashResponses("drain", r))
	assert.NotEqual(t, HashResponses("drain", r), HashResponses("growth", r))
	assert.NotEqual(t, HashResponses("drain", r), HashResponses("drain", json.RawMessage(`{"1":1}`)))
}

func TestAIStatusLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := &Assessment{Model: "drain"}
	require.NoError(t, s.CreateAssessment(ctx, a))

	require.NoError(t, s.SetAIStatus(ctx, a.ID, AIGenerating, "ignored"))
	got, err := s.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, AIGenerating, got.AIStatus)
	assert.Empty(t, got.AIError)

	require.NoError(t, s.SetAIStatus(ctx, a.ID, AIFailed, "timeout"))
	got, err = s.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, AIFailed, got.AIStatus)
	assert.Equal(t, "timeout", got.AIError)

	require.NoError(t, s.CompleteAI(ctx, a.ID, "报告正文", 4))
	got, err = s.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, AICompleted, got.AIStatus)
	assert.Equal(t, "报告正文", got.AIAnalysis)
	assert.Equal(t, 4, got.AIWordCount)
	assert.Empty(t, got.AIError)
	assert.False(t, got.CompletedAt.IsZero())
}

func TestAIStatusUnknownAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.SetAIStatus(ctx, "missing", AIGenerating, ""), ErrNotFound)
	assert.ErrorIs(t, s.CompleteAI(ctx, "missing", "x", 1), ErrNotFound)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []LLMRequestEventData{
		{AssessmentID: "a", Provider: "deepseek-chat", Model: "deepseek-chat", Purpose: "deep-report", Streamed: true, InputTokens: 100, OutputTokens: 900, LatencyMs: 3000, Success: true, RequestBody: "req", ResponseBody: "resp"},
		{AssessmentID: "b", Provider: "deepseek-chat", Model: "deepseek-chat", Purpose: "brief-report", InputTokens: 50, OutputTokens: 20, LatencyMs: 1000, Success: true},
		{AssessmentID: "a", Provider: "deepseek-chat", Model: "deepseek-chat", Purpose: "deep-report", LatencyMs: 1000, Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, s.AppendLLMRequest(ctx, e))
	}

	all, err := s.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "boom", all[0].ErrorMessage, "newest first")

	deep, err := s.QueryLLMEvents(ctx, QueryOpts{Purpose: "deep-report"})
	require.NoError(t, err)
	assert.Len(t, deep, 2)

	forB, err := s.QueryLLMEvents(ctx, QueryOpts{AssessmentID: "b", Limit: 5})
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, "brief-report", forB[0].Purpose)

	first, err := s.GetLLMEvent(ctx, all[2].ID)
	require.NoError(t, err)
	assert.True(t, first.Streamed)
	assert.True(t, first.Success)
	assert.Equal(t, "req", first.RequestBody)
	assert.Equal(t, "resp", first.ResponseBody)

	_, err = s.GetLLMEvent(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "deepseek-chat", Purpose: "deep-report", InputTokens: 100, OutputTokens: 900, LatencyMs: 3000, Success: true},
		{Model: "deepseek-chat", Purpose: "deep-report", InputTokens: 100, OutputTokens: 100, LatencyMs: 1000, Success: true},
		{Model: "gpt-4o-mini", Purpose: "brief-report", InputTokens: 50, OutputTokens: 20, LatencyMs: 500, Success: true},
	} {
		require.NoError(t, s.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := s.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{Purpose: "brief-report", Calls: 1, InputTokens: 50, OutputTokens: 20, AvgLatencyMs: 500}, byPurpose[0])
	assert.Equal(t, LLMUsageStats{Purpose: "deep-report", Calls: 2, InputTokens: 200, OutputTokens: 1000, AvgLatencyMs: 2000}, byPurpose[1])

	byModel, err := s.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, LLMModelUsage{Model: "deepseek-chat", Calls: 2, InputTokens: 200, OutputTokens: 1000}, byModel[0])
}

func TestLLMUsageEmpty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MINDLOAD_DB", filepath.Join(dir, "nested", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "nested"))

	t.Setenv("MINDLOAD_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mindload", "mindload.db"), p)
}
