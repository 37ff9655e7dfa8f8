package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Timestamps are stored as Unix milliseconds.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id             TEXT PRIMARY KEY,
		model          TEXT NOT NULL,
		responses      TEXT NOT NULL,
		scores         TEXT NOT NULL,
		responses_hash TEXT NOT NULL,
		ai_status      TEXT NOT NULL DEFAULT 'pending',
		ai_analysis    TEXT NOT NULL DEFAULT '',
		ai_word_count  INTEGER NOT NULL DEFAULT 0,
		ai_error       TEXT NOT NULL DEFAULT '',
		created_at     INTEGER NOT NULL,
		completed_at   INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS assessments_model_hash ON assessments (model, responses_hash)`,
	`CREATE INDEX IF NOT EXISTS assessments_created_at ON assessments (created_at)`,
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp     INTEGER NOT NULL,
		assessment_id TEXT NOT NULL DEFAULT '',
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		streamed      INTEGER NOT NULL DEFAULT 0,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_assessment ON llm_request_events (assessment_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, stmt := range migrations {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return tx.Commit()
}
