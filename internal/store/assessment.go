package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// AIStatus tracks the lifecycle of the long-form report of an assessment.
type AIStatus string

const (
	AIPending    AIStatus = "pending"
	AIGenerating AIStatus = "generating"
	AICompleted  AIStatus = "completed"
	AIFailed     AIStatus = "failed"
)

// Assessment is one scored submission. Responses and Scores are opaque
// JSON documents owned by the scoring layer.
type Assessment struct {
	ID            string          `json:"id"`
	Model         string          `json:"model"`
	Responses     json.RawMessage `json:"responses"`
	Scores        json.RawMessage `json:"scores"`
	ResponsesHash string          `json:"responses_hash"`
	AIStatus      AIStatus        `json:"ai_status"`
	AIAnalysis    string          `json:"ai_analysis,omitempty"`
	AIWordCount   int             `json:"ai_word_count"`
	AIError       string          `json:"ai_error,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CompletedAt   time.Time       `json:"completed_at,omitzero"` // zero until the report completes
}

// ListOpts filters ListAssessments.
type ListOpts struct {
	Model string // empty = all models
	Limit int    // 0 = unlimited
}

var assessmentColumns = []string{
	"id", "model", "responses", "scores", "responses_hash", "ai_status",
	"ai_analysis", "ai_word_count", "ai_error", "created_at", "completed_at",
}

// CreateAssessment inserts a. Missing ID, hash and creation time are filled
// in, and the report status starts as pending.
func (s *Store) CreateAssessment(ctx context.Context, a *Assessment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.ResponsesHash == "" {
		a.ResponsesHash = HashResponses(a.Model, a.Responses)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	if a.AIStatus == "" {
		a.AIStatus = AIPending
	}
	if len(a.Scores) == 0 {
		a.Scores = json.RawMessage("{}")
	}
	if len(a.Responses) == 0 {
		a.Responses = json.RawMessage("{}")
	}

	query, args := s.builder.Insert("assessments").
		Columns(assessmentColumns...).
		Values(
			a.ID, a.Model, string(a.Responses), string(a.Scores), a.ResponsesHash,
			string(a.AIStatus), a.AIAnalysis, a.AIWordCount, a.AIError,
			a.CreatedAt.UnixMilli(), nullMillis(a.CompletedAt),
		).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// GetAssessment returns the assessment with the given id or ErrNotFound.
func (s *Store) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	query, args := s.builder.Select(assessmentColumns...).
		From(s.builder.Table("assessments")).
		Where(entsql.EQ("id", id)).
		Query()

	a, err := scanAssessment(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

// ListAssessments returns assessments newest first.
func (s *Store) ListAssessments(ctx context.Context, opts ListOpts) ([]*Assessment, error) {
	sel := s.builder.Select(assessmentColumns...).
		From(s.builder.Table("assessments")).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if opts.Model != "" {
		sel.Where(entsql.EQ("model", opts.Model))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindByHash returns the newest assessment of model whose responses hash
// matches, or ErrNotFound.
func (s *Store) FindByHash(ctx context.Context, model, hash string) (*Assessment, error) {
	query, args := s.builder.Select(assessmentColumns...).
		From(s.builder.Table("assessments")).
		Where(entsql.And(entsql.EQ("model", model), entsql.EQ("responses_hash", hash))).
		OrderBy(entsql.Desc("created_at")).
		Limit(1).
		Query()

	a, err := scanAssessment(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find assessment by hash: %w", err)
	}
	return a, nil
}

// SetAIStatus moves the report of an assessment to status. errMsg is kept
// only for AIFailed.
func (s *Store) SetAIStatus(ctx context.Context, id string, status AIStatus, errMsg string) error {
	if status != AIFailed {
		errMsg = ""
	}
	query, args := s.builder.Update("assessments").
		Set("ai_status", string(status)).
		Set("ai_error", errMsg).
		Where(entsql.EQ("id", id)).
		Query()
	return s.execOne(ctx, id, query, args)
}

// CompleteAI stores the finished report and marks it completed.
func (s *Store) CompleteAI(ctx context.Context, id, analysis string, wordCount int) error {
	query, args := s.builder.Update("assessments").
		Set("ai_status", string(AICompleted)).
		Set("ai_analysis", analysis).
		Set("ai_word_count", wordCount).
		Set("ai_error", "").
		Set("completed_at", time.Now().UnixMilli()).
		Where(entsql.EQ("id", id)).
		Query()
	return s.execOne(ctx, id, query, args)
}

func (s *Store) execOne(ctx context.Context, id, query string, args []any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*Assessment, error) {
	var (
		a                 Assessment
		responses, scores string
		status            string
		createdAt         int64
		completedAt       sql.NullInt64
	)
	err := row.Scan(
		&a.ID, &a.Model, &responses, &scores, &a.ResponsesHash, &status,
		&a.AIAnalysis, &a.AIWordCount, &a.AIError, &createdAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Responses = json.RawMessage(responses)
	a.Scores = json.RawMessage(scores)
	a.AIStatus = AIStatus(status)
	a.CreatedAt = time.UnixMilli(createdAt)
	if completedAt.Valid {
		a.CompletedAt = time.UnixMilli(completedAt.Int64)
	}
	return &a, nil
}

func nullMillis(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixMilli()
}
