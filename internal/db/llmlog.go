package db

import (
	"context"
	"database/sql"

	"roomreport/internal/model/llmcall"
)

// CallLogSink persists LLM call records to Postgres. It implements
// llmlog.Sink.
type CallLogSink struct {
	DB *sql.DB
}

// NewCallLogSink constructs a CallLogSink from an existing sql.DB.
func NewCallLogSink(db *sql.DB) *CallLogSink { return &CallLogSink{DB: db} }

// Write inserts one audit record.
func (s *CallLogSink) Write(ctx context.Context, rec llmcall.Record) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO llm_call_logs
            (id, provider, model, endpoint, room_id, prompt_length,
             response_length, tokens_used, duration_ms, status, error, created_at)
         VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, NULLIF($11, ''), $12)`,
		rec.ID, rec.Provider, rec.Model, rec.Endpoint, rec.RoomID, rec.PromptLength,
		rec.ResponseLength, rec.TokensUsed, rec.DurationMs, string(rec.Status), rec.Error, rec.CreatedAt)
	return err
}
