package report

import (
	"fmt"
	"strings"
	"time"

	"roomreport/internal/model/message"
)

// FormatTranscript renders a message batch as one line per message for LLM
// consumption, preserving the chronological input order.
func FormatTranscript(messages []message.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, formatLine(msg))
	}
	return strings.Join(lines, "\n")
}

func formatLine(msg message.Message) string {
	timestamp := formatTimestamp(msg.Timestamp)
	sender := senderName(msg)

	if msg.Content == nil {
		return fmt.Sprintf("[%s] %s: [no content]", timestamp, sender)
	}

	indicator := mediaIndicator(msg.Content.Msgtype, msg.Content.Filename)
	body := msg.Content.Body

	if indicator != "" {
		if body != "" && body != msg.Content.Filename {
			return fmt.Sprintf("[%s] %s: %s %s", timestamp, sender, indicator, body)
		}
		return fmt.Sprintf("[%s] %s: %s", timestamp, sender, indicator)
	}

	if body == "" {
		body = "[no text]"
	}
	return fmt.Sprintf("[%s] %s: %s", timestamp, sender, body)
}

// formatTimestamp renders epoch milliseconds as UTC at minute precision.
func formatTimestamp(ts int64) string {
	return time.UnixMilli(ts).UTC().Format("2006-01-02 15:04")
}

// senderName prefers the display name when it is non-blank; otherwise it
// derives a readable name from the Matrix user ID, dropping the bridge
// prefix for WhatsApp users.
func senderName(msg message.Message) string {
	if strings.TrimSpace(msg.SenderDisplayName) != "" {
		return msg.SenderDisplayName
	}

	sender := msg.Sender
	if strings.HasPrefix(sender, "@") {
		local := sender[1:]
		if idx := strings.Index(local, ":"); idx >= 0 {
			local = local[:idx]
		}
		return strings.TrimPrefix(local, "whatsapp_")
	}
	return sender
}

func mediaIndicator(msgtype, filename string) string {
	var kind string
	switch msgtype {
	case message.MsgTypeImage:
		kind = "IMAGE"
	case message.MsgTypeVideo:
		kind = "VIDEO"
	case message.MsgTypeAudio:
		kind = "AUDIO"
	case message.MsgTypeFile:
		kind = "FILE"
	default:
		return ""
	}

	if filename != "" {
		return fmt.Sprintf("[%s: %s]", kind, filename)
	}
	return "[" + kind + "]"
}
