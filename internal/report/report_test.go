package report

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/prompt"
	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/store"
)

func newTestService(t *testing.T, provider llm.Provider, mutate ...func(*Options)) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	opts := DefaultOptions()
	for _, m := range mutate {
		m(&opts)
	}
	svc, err := NewService(st, provider, opts)
	require.NoError(t, err)
	return svc, st
}

func drainResponses() questionnaire.Responses {
	return questionnaire.Responses{
		1:  3,
		2:  2,
		11: 1,
		36: "昨晚\x07加班到十点，回家后哭了",
		37: "一周什么都不想",
	}
}

func submit(t *testing.T, svc *Service, model scoring.ModelID, r questionnaire.Responses) *Submission {
	t.Helper()
	sub, err := svc.Submit(context.Background(), model, r)
	require.NoError(t, err)
	return sub
}

func TestSubmitStoresAndReuses(t *testing.T) {
	svc, st := newTestService(t, nil)
	ctx := context.Background()

	first := submit(t, svc, scoring.ModelDrain, drainResponses())
	assert.False(t, first.Reused)
	assert.Equal(t, store.AIPending, first.Assessment.AIStatus)
	assert.Equal(t, scoring.ModelDrain, first.Scores.Model)

	second := submit(t, svc, scoring.ModelDrain, drainResponses())
	assert.True(t, second.Reused)
	assert.Equal(t, first.Assessment.ID, second.Assessment.ID)

	other := submit(t, svc, scoring.ModelDrain, questionnaire.Responses{1: 0})
	assert.NotEqual(t, first.Assessment.ID, other.Assessment.ID)

	list, err := st.ListAssessments(ctx, store.ListOpts{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSubmitUnknownModel(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Submit(context.Background(), "vibes", questionnaire.Responses{})
	assert.ErrorContains(t, err, "unknown scoring model")
}

func TestLoadRecomputesScores(t *testing.T) {
	svc, _ := newTestService(t, nil)
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	_, responses, scores, err := svc.Load(context.Background(), sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.Scores.TotalScore, scores.TotalScore)
	assert.Equal(t, sub.Scores.DimensionScores, scores.DimensionScores)
	assert.Equal(t, "一周什么都不想", responses.Text(37))
}

func TestDeepCompletesAssessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("# 你的能量去哪了\n正文"))
	svc, st := newTestService(t, mock)
	ctx := context.Background()
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	rep, err := svc.Deep(ctx, sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, "# 你的能量去哪了\n正文", rep.Content)
	assert.Equal(t, 12, rep.WordCount)
	assert.False(t, rep.Cached)

	a, err := st.GetAssessment(ctx, sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, store.AICompleted, a.AIStatus)
	assert.Equal(t, rep.Content, a.AIAnalysis)
	assert.Equal(t, 12, a.AIWordCount)
	assert.False(t, a.CompletedAt.IsZero())

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, prompt.DrainSystem, req.System)
	assert.Equal(t, 0.8, req.Temperature)
	assert.Equal(t, 8000, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "昨晚加班到十点，回家后哭了")
	assert.NotContains(t, req.Messages[0].Content, "\x07")
}

func TestDeepFailureMarksAssessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc, st := newTestService(t, mock)
	ctx := context.Background()
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	_, err := svc.Deep(ctx, sub.Assessment.ID)
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)

	a, err := st.GetAssessment(ctx, sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, store.AIFailed, a.AIStatus)
	assert.Contains(t, a.AIError, "down")
}

func TestDeepEmptyReportFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText(""))
	svc, st := newTestService(t, mock)
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	_, err := svc.Deep(context.Background(), sub.Assessment.ID)
	require.Error(t, err)

	a, err := st.GetAssessment(context.Background(), sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, store.AIFailed, a.AIStatus)
}

func TestDeepUnknownAssessment(t *testing.T) {
	svc, _ := newTestService(t, llm.NewMockProvider())

	_, err := svc.Deep(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeepWithoutProvider(t *testing.T) {
	svc, _ := newTestService(t, nil)
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	_, err := svc.Deep(context.Background(), sub.Assessment.ID)
	assert.Error(t, err)
}

func TestDeepStreamDeliversFragments(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("第一段。第二段。"))
	mock.StreamChunk = 3
	svc, _ := newTestService(t, mock)
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	var fragments []string
	rep, err := svc.DeepStream(context.Background(), sub.Assessment.ID, func(s string) {
		fragments = append(fragments, s)
	})
	require.NoError(t, err)
	assert.Greater(t, len(fragments), 1)
	assert.Equal(t, rep.Content, strings.Join(fragments, ""))
}

func TestDeepUsesCache(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("报告"), llm.MockText("不应出现"))
	svc, _ := newTestService(t, mock)
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())
	ctx := context.Background()

	_, err := svc.Deep(ctx, sub.Assessment.ID)
	require.NoError(t, err)

	var streamed string
	rep, err := svc.DeepStream(ctx, sub.Assessment.ID, func(s string) { streamed += s })
	require.NoError(t, err)
	assert.True(t, rep.Cached)
	assert.Equal(t, "报告", rep.Content)
	assert.Equal(t, "报告", streamed)
	assert.Equal(t, 1, mock.CallCount())
}

func TestDeepCacheDisabled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("一"), llm.MockText("二"))
	svc, _ := newTestService(t, mock, func(o *Options) { o.CacheSize = 0 })
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())
	ctx := context.Background()

	_, err := svc.Deep(ctx, sub.Assessment.ID)
	require.NoError(t, err)
	rep, err := svc.Deep(ctx, sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, "二", rep.Content)
	assert.Equal(t, 2, mock.CallCount())
}

func TestDeepRecordsLLMEvent(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer st.Close()

	provider := llm.WithLogging(llm.NewMockProvider(llm.MockText("报告")), st)
	svc, err := NewService(st, provider, DefaultOptions())
	require.NoError(t, err)

	sub := submit(t, svc, scoring.ModelDrain, drainResponses())
	_, err = svc.DeepStream(context.Background(), sub.Assessment.ID, nil)
	require.NoError(t, err)

	events, err := st.QueryLLMEvents(context.Background(), store.QueryOpts{AssessmentID: sub.Assessment.ID})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, llm.PurposeDeepReport, events[0].Purpose)
	assert.True(t, events[0].Streamed)
	assert.True(t, events[0].Success)
}

func TestDeepPromptGrowth(t *testing.T) {
	c := questionnaire.GrowthCatalog()
	r := questionnaire.Responses{
		questionnaire.GrowthQAgeGroup:      1,
		questionnaire.GrowthQFocusArea:     2,
		questionnaire.GrowthQSatisfaction:  0,
		questionnaire.GrowthQLimitingVoice: "你不配",
	}
	scores, err := scoring.ModelFor(scoring.ModelGrowth)
	require.NoError(t, err)

	system, user := DeepPrompt(scores.Score(r), r, prompt.DefaultHighScoreThreshold)
	assert.Equal(t, prompt.GrowthSystem, system)

	age, _ := c.Question(questionnaire.GrowthQAgeGroup)
	focus, _ := c.Question(questionnaire.GrowthQFocusArea)
	assert.Contains(t, user, "年龄段："+age.Options[1].Label)
	assert.Contains(t, user, "关注领域："+focus.Options[2].Label)
	assert.Contains(t, user, "被卡住时长：未填写")
	assert.Contains(t, user, "生活满意度：5/10")
	assert.Contains(t, user, "你不配")
}

func TestOpenAnswers(t *testing.T) {
	lines := OpenAnswers(scoring.ModelDrain, drainResponses())
	assert.Equal(t, []string{
		"最近一次崩溃: 昨晚加班到十点，回家后哭了",
		"想给自己放的假: 一周什么都不想",
		"现在与理想的状态: 无",
	}, lines)

	lines = OpenAnswers(scoring.ModelGrowth, questionnaire.Responses{questionnaire.GrowthQFear: " 怕失败 "})
	assert.Equal(t, "突破渴望与恐惧: 怕失败", lines[1])
}

// brokenStream delivers one fragment and then drops the connection.
type brokenStream struct{ llm.Provider }

func (brokenStream) Stream(_ context.Context, _ llm.Request, onDelta func(string)) (*llm.Response, error) {
	onDelta("你的内耗")
	return nil, &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}
}

func TestDeepStreamInterrupted(t *testing.T) {
	inner := brokenStream{Provider: llm.NewMockProvider()}
	provider := llm.WithRetry(inner, llm.RetryConfig{MaxAttempts: 3, Multiplier: 2})
	svc, st := newTestService(t, provider, func(o *Options) { o.CacheSize = 0 })
	sub := submit(t, svc, scoring.ModelDrain, drainResponses())

	var shown string
	_, err := svc.DeepStream(context.Background(), sub.Assessment.ID, func(s string) { shown += s })

	var cut *llm.ErrStreamInterrupted
	require.ErrorAs(t, err, &cut)
	assert.Equal(t, "你的内耗", cut.Partial)
	assert.Equal(t, "你的内耗", shown, "partial text is delivered once")

	a, err := st.GetAssessment(context.Background(), sub.Assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, store.AIFailed, a.AIStatus)
	assert.Contains(t, a.AIError, "stream interrupted")
}
