package report

import (
	"strings"
	"testing"
	"time"

	"roomreport/internal/model/message"
)

var testTimestamp = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC).UnixMilli()

const testTimePrefix = "[2024-01-02 03:04]"

func TestFormatTranscriptWhatsAppSender(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@whatsapp_12345:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{Body: "hello"},
	}})

	want := testTimePrefix + " 12345: hello"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptMatrixSender(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{Body: "hi"},
	}})

	want := testTimePrefix + " alice: hi"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptDisplayNamePreferred(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:            "@whatsapp_12345:example.com",
		SenderDisplayName: "Alice",
		Timestamp:         testTimestamp,
		Content:           &message.Content{Body: "hi"},
	}})

	want := testTimePrefix + " Alice: hi"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptBlankDisplayNameIgnored(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:            "@bob:example.com",
		SenderDisplayName: "   ",
		Timestamp:         testTimestamp,
		Content:           &message.Content{Body: "hi"},
	}})

	want := testTimePrefix + " bob: hi"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptMediaFilenameEqualsBody(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{Msgtype: message.MsgTypeImage, Filename: "cat.png", Body: "cat.png"},
	}})

	want := testTimePrefix + " alice: [IMAGE: cat.png]"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptMediaWithCaption(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{Msgtype: message.MsgTypeImage, Filename: "cat.png", Body: "look at this"},
	}})

	want := testTimePrefix + " alice: [IMAGE: cat.png] look at this"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptMediaWithoutFilename(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{Msgtype: message.MsgTypeVideo},
	}})

	want := testTimePrefix + " alice: [VIDEO]"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptNilContent(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
	}})

	if !strings.HasSuffix(got, "[no content]") {
		t.Fatalf("expected [no content] suffix, got %q", got)
	}
}

func TestFormatTranscriptEmptyBody(t *testing.T) {
	got := FormatTranscript([]message.Message{{
		Sender:    "@alice:example.com",
		Timestamp: testTimestamp,
		Content:   &message.Content{},
	}})

	want := testTimePrefix + " alice: [no text]"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatTranscriptPreservesOrder(t *testing.T) {
	got := FormatTranscript([]message.Message{
		{Sender: "@a:x", Timestamp: testTimestamp, Content: &message.Content{Body: "first"}},
		{Sender: "@b:x", Timestamp: testTimestamp + 60_000, Content: &message.Content{Body: "second"}},
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "first") || !strings.HasSuffix(lines[1], "second") {
		t.Fatalf("order not preserved: %q", got)
	}
}
