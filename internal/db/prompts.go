package db

import (
	"context"
	"database/sql"
	"errors"

	"roomreport/internal/model/prompt"
)

// PromptStore reads report prompt configuration from Postgres. It implements
// prompt.Store.
type PromptStore struct {
	DB *sql.DB
}

// NewPromptStore constructs a PromptStore from an existing sql.DB.
func NewPromptStore(db *sql.DB) *PromptStore { return &PromptStore{DB: db} }

// Active returns the active record for the (scope, room) pair. System-scope
// records are the rows without a room id.
func (s *PromptStore) Active(ctx context.Context, scope prompt.Scope, roomID string) (prompt.Record, bool, error) {
	var (
		content string
		err     error
	)

	switch scope {
	case prompt.ScopeRoom:
		err = s.DB.QueryRowContext(ctx,
			`SELECT prompt_content
             FROM report_prompts
             WHERE prompt_type = 'room'
               AND room_id = $1
               AND is_active
             LIMIT 1`, roomID).Scan(&content)
	default:
		err = s.DB.QueryRowContext(ctx,
			`SELECT prompt_content
             FROM report_prompts
             WHERE prompt_type = 'system'
               AND room_id IS NULL
               AND is_active
             LIMIT 1`).Scan(&content)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return prompt.Record{}, false, nil
	}
	if err != nil {
		return prompt.Record{}, false, err
	}

	return prompt.Record{Scope: scope, RoomID: roomID, Content: content, Active: true}, true, nil
}
