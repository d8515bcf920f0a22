package prompt

import "context"

// Scope says whether an instruction record applies to every room or one room.
type Scope string

const (
	ScopeSystem Scope = "system"
	ScopeRoom   Scope = "room"
)

// Record is one instruction row from the prompt configuration store.
type Record struct {
	Scope   Scope  `json:"scope"`
	RoomID  string `json:"room_id,omitempty"`
	Content string `json:"content"`
	Active  bool   `json:"active"`
}

// Store exposes prompt lookup for the report pipeline. Implementations return
// ok=false when no active record matches the (scope, room) pair.
type Store interface {
	Active(ctx context.Context, scope Scope, roomID string) (Record, bool, error)
}
