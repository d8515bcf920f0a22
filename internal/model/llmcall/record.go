package llmcall

import "time"

// Status marks where a record sits in the lifecycle of one invocation
// attempt: exactly one start entry, then exactly one terminal entry.
type Status string

const (
	StatusStart   Status = "start"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Record is one write-only audit entry for an LLM invocation.
type Record struct {
	ID             string    `json:"id,omitempty"`
	Provider       string    `json:"provider"`
	Model          string    `json:"model"`
	Endpoint       string    `json:"endpoint"`
	RoomID         string    `json:"room_id,omitempty"`
	PromptLength   int       `json:"prompt_length"`
	ResponseLength int       `json:"response_length,omitempty"`
	TokensUsed     int       `json:"tokens_used,omitempty"`
	DurationMs     int64     `json:"duration_ms,omitempty"`
	Status         Status    `json:"status"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}
