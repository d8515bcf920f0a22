package message

// RoomSummary aggregates archive activity for one room, for the room picker.
type RoomSummary struct {
	RoomID       string `json:"room_id"`
	MessageCount int    `json:"message_count"`
	LastActivity int64  `json:"last_activity"`
}
