// Package report scores submissions and turns them into LLM-written
// reports.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/prompt"
	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/store"
)

// Repository is the persistence the service needs.
type Repository interface {
	CreateAssessment(ctx context.Context, a *store.Assessment) error
	GetAssessment(ctx context.Context, id string) (*store.Assessment, error)
	FindByHash(ctx context.Context, model, hash string) (*store.Assessment, error)
	SetAIStatus(ctx context.Context, id string, status store.AIStatus, errMsg string) error
	CompleteAI(ctx context.Context, id, analysis string, wordCount int) error
}

// Options tunes report generation.
type Options struct {
	Temperature        float64
	MaxTokens          int
	BriefTemperature   float64
	BriefMaxTokens     int
	HighScoreThreshold float64
	CacheSize          int
	Timeout            time.Duration // 0 = no deadline beyond the caller's
}

// DefaultOptions returns the generation settings reports were tuned with.
func DefaultOptions() Options {
	return Options{
		Temperature:        0.8,
		MaxTokens:          8000,
		BriefTemperature:   0.7,
		BriefMaxTokens:     2000,
		HighScoreThreshold: prompt.DefaultHighScoreThreshold,
		CacheSize:          64,
		Timeout:            5 * time.Minute,
	}
}

// Service orchestrates scoring, persistence and report generation.
type Service struct {
	repo     Repository
	provider llm.Provider
	opts     Options
	cache    *reportCache
}

// NewService creates a Service. provider may be nil when only Submit is
// used.
func NewService(repo Repository, provider llm.Provider, opts Options) (*Service, error) {
	cache, err := newReportCache(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	return &Service{repo: repo, provider: provider, opts: opts, cache: cache}, nil
}

// Submission is the outcome of Submit.
type Submission struct {
	Assessment *store.Assessment
	Scores     *scoring.Scores

	// Reused is set when an identical earlier submission was returned
	// instead of creating a new assessment.
	Reused bool
}

// Submit scores responses under model and stores them as an assessment.
// Identical responses for the same model reuse the earlier assessment.
func (s *Service) Submit(ctx context.Context, model scoring.ModelID, responses questionnaire.Responses) (*Submission, error) {
	m, err := scoring.ModelFor(model)
	if err != nil {
		return nil, err
	}
	scores := m.Score(responses)

	rawResponses, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("encode responses: %w", err)
	}

	hash := store.HashResponses(string(model), rawResponses)
	existing, err := s.repo.FindByHash(ctx, string(model), hash)
	switch {
	case err == nil:
		return &Submission{Assessment: existing, Scores: scores, Reused: true}, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	rawScores, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}

	a := &store.Assessment{
		Model:         string(model),
		Responses:     rawResponses,
		Scores:        rawScores,
		ResponsesHash: hash,
	}
	if err := s.repo.CreateAssessment(ctx, a); err != nil {
		return nil, err
	}
	slog.Debug("assessment stored", "id", a.ID, "model", model)
	return &Submission{Assessment: a, Scores: scores}, nil
}

// Load returns a stored assessment with its responses decoded and its
// scores recomputed from the catalog.
func (s *Service) Load(ctx context.Context, id string) (*store.Assessment, questionnaire.Responses, *scoring.Scores, error) {
	a, err := s.repo.GetAssessment(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := scoring.ModelFor(scoring.ModelID(a.Model))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("assessment %s: %w", id, err)
	}

	var responses questionnaire.Responses
	if err := json.Unmarshal(a.Responses, &responses); err != nil {
		return nil, nil, nil, fmt.Errorf("assessment %s: %w", id, err)
	}
	return a, responses, m.Score(responses), nil
}

// DeepReport is a finished long-form report.
type DeepReport struct {
	AssessmentID string `json:"assessment_id"`
	Content      string `json:"content"`
	WordCount    int    `json:"word_count"`
	Cached       bool   `json:"cached"`
}

// Deep generates the long-form report of an assessment and stores it.
// The assessment moves to generating, then to completed or failed.
func (s *Service) Deep(ctx context.Context, id string) (*DeepReport, error) {
	return s.deep(ctx, id, nil)
}

// DeepStream is Deep, forwarding text fragments to onDelta as they arrive
// when the provider can stream. Otherwise onDelta receives the whole report
// once.
func (s *Service) DeepStream(ctx context.Context, id string, onDelta func(string)) (*DeepReport, error) {
	if onDelta == nil {
		onDelta = func(string) {}
	}
	return s.deep(ctx, id, onDelta)
}

func (s *Service) deep(ctx context.Context, id string, onDelta func(string)) (*DeepReport, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	_, responses, scores, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	system, user := DeepPrompt(scores, responses, s.opts.HighScoreThreshold)

	if err := s.repo.SetAIStatus(ctx, id, store.AIGenerating, ""); err != nil {
		return nil, err
	}

	key := cacheKey(llm.PurposeDeepReport, s.provider.ModelID(), system, user)
	if text, ok := s.cache.get(key); ok {
		if onDelta != nil {
			onDelta(text)
		}
		return s.finish(ctx, id, text, true)
	}

	req := llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}

	genCtx := llm.WithAssessment(llm.WithPurpose(ctx, llm.PurposeDeepReport), id)
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(genCtx, s.opts.Timeout)
		defer cancel()
	}

	var resp *llm.Response
	if onDelta != nil {
		resp, err = llm.StreamOrGenerate(genCtx, s.provider, req, onDelta)
	} else {
		resp, err = s.provider.Generate(genCtx, req)
	}
	if err == nil && resp.Text() == "" {
		err = &llm.ErrInvalidResponse{Err: errors.New("empty report")}
	}
	if err != nil {
		s.fail(ctx, id, err)
		return nil, fmt.Errorf("generate report: %w", err)
	}

	text := resp.Text()
	s.cache.add(key, text)
	return s.finish(ctx, id, text, false)
}

func (s *Service) finish(ctx context.Context, id, text string, cached bool) (*DeepReport, error) {
	words := utf8.RuneCountInString(text)
	if err := s.repo.CompleteAI(ctx, id, text, words); err != nil {
		return nil, err
	}
	slog.Info("report completed", "assessment", id, "words", words, "cached", cached)
	return &DeepReport{AssessmentID: id, Content: text, WordCount: words, Cached: cached}, nil
}

// fail records a failed generation. It uses a context detached from ctx
// so the status is written even after cancellation.
func (s *Service) fail(ctx context.Context, id string, cause error) {
	slog.Warn("report generation failed", "assessment", id, "error", cause)
	if err := s.repo.SetAIStatus(context.WithoutCancel(ctx), id, store.AIFailed, cause.Error()); err != nil {
		slog.Warn("failed to record report failure", "assessment", id, "error", err)
	}
}
