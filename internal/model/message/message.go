package message

// Matrix msgtype values that carry media payloads.
const (
	MsgTypeImage = "m.image"
	MsgTypeVideo = "m.video"
	MsgTypeAudio = "m.audio"
	MsgTypeFile  = "m.file"
)

// Content carries the event payload as archived from the homeserver. A nil
// Content means the event had no payload at all. Empty strings stand in for
// absent fields.
type Content struct {
	Body     string `json:"body,omitempty"`
	Msgtype  string `json:"msgtype,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Message is one archived room event. Batches are ordered ascending by
// Timestamp and treated as a read-only snapshot for the duration of a report.
type Message struct {
	EventID           string   `json:"event_id"`
	RoomID            string   `json:"room_id,omitempty"`
	Sender            string   `json:"sender"`
	SenderDisplayName string   `json:"sender_display_name,omitempty"`
	Timestamp         int64    `json:"timestamp"`
	Content           *Content `json:"content"`
}
