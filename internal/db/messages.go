package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"roomreport/internal/model/message"
	"roomreport/internal/model/report"
)

// MessageStore reads archived room messages from Postgres.
type MessageStore struct {
	DB *sql.DB
}

// NewMessageStore constructs a MessageStore from an existing sql.DB. The
// caller owns the connection lifecycle.
func NewMessageStore(db *sql.DB) *MessageStore { return &MessageStore{DB: db} }

// ListByRoom returns up to limit messages for the room within the half-open
// time range, ascending by timestamp.
func (s *MessageStore) ListByRoom(ctx context.Context, roomID string, tr report.TimeRange, limit int) ([]message.Message, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT event_id, room_id, sender, sender_display_name, timestamp, content
         FROM messages
         WHERE room_id = $1
           AND timestamp >= $2
           AND timestamp < $3
         ORDER BY timestamp ASC
         LIMIT $4`,
		roomID, tr.Start, tr.End, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		var (
			m           message.Message
			displayName sql.NullString
			rawContent  []byte
		)
		if err := rows.Scan(&m.EventID, &m.RoomID, &m.Sender, &displayName, &m.Timestamp, &rawContent); err != nil {
			return nil, err
		}
		if displayName.Valid {
			m.SenderDisplayName = displayName.String
		}
		if len(rawContent) > 0 {
			var content message.Content
			if err := json.Unmarshal(rawContent, &content); err != nil {
				return nil, fmt.Errorf("malformed content for event %s: %w", m.EventID, err)
			}
			m.Content = &content
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ListRooms summarizes archive activity per room, most recent first.
func (s *MessageStore) ListRooms(ctx context.Context) ([]message.RoomSummary, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT room_id, COUNT(*), MAX(timestamp)
         FROM messages
         GROUP BY room_id
         ORDER BY MAX(timestamp) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []message.RoomSummary
	for rows.Next() {
		var r message.RoomSummary
		if err := rows.Scan(&r.RoomID, &r.MessageCount, &r.LastActivity); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}
