package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"roomreport/internal/model/llmcall"
	"roomreport/internal/model/message"
	"roomreport/internal/model/prompt"
	reportModel "roomreport/internal/model/report"
	reportservice "roomreport/internal/service/report"
)

type fakeMessages struct {
	messages []message.Message
	err      error
}

func (f *fakeMessages) ListByRoom(context.Context, string, reportModel.TimeRange, int) ([]message.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(context.Context, string) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return f.text, 0, nil
}

type recordingLogger struct {
	records []llmcall.Record
}

func (l *recordingLogger) Log(rec llmcall.Record) {
	l.records = append(l.records, rec)
}

func setupRouter(msgs reportservice.MessageReader, gen reportservice.Generator, logger reportservice.CallLogger) *chi.Mux {
	svc := reportservice.NewService(prompt.NewMemoryStore(nil), msgs, gen, logger)
	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r
}

func sampleMessages() []message.Message {
	now := time.Now().Add(-time.Hour).UnixMilli()
	return []message.Message{
		{EventID: "$1", Sender: "@alice:example.com", Timestamp: now, Content: &message.Content{Body: "hi"}},
	}
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestReportMissingRoomID(t *testing.T) {
	r := setupRouter(&fakeMessages{}, &fakeGenerator{}, &recordingLogger{})

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Missing room_id parameter" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestReportNoMessages(t *testing.T) {
	logger := &recordingLogger{}
	r := setupRouter(&fakeMessages{}, &fakeGenerator{text: "unused"}, logger)

	req := httptest.NewRequest(http.MethodGet, "/report?room_id=%21room%3Aexample.com", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["report"] != "No messages found for the last 7 days." {
		t.Fatalf("unexpected report: %v", body["report"])
	}
	if _, ok := body["messagesUsed"]; ok {
		t.Fatal("messagesUsed should be absent for the no-messages response")
	}
	if len(logger.records) != 0 {
		t.Fatalf("expected no call-log records, got %d", len(logger.records))
	}
}

func TestReportFetchFailure(t *testing.T) {
	r := setupRouter(&fakeMessages{err: errors.New("db down")}, &fakeGenerator{}, &recordingLogger{})

	req := httptest.NewRequest(http.MethodGet, "/report?room_id=%21room%3Aexample.com", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Failed to fetch messages" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestReportNotConfigured(t *testing.T) {
	logger := &recordingLogger{}
	r := setupRouter(&fakeMessages{messages: sampleMessages()}, nil, logger)

	req := httptest.NewRequest(http.MethodGet, "/report?room_id=%21room%3Aexample.com", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "AI service not configured" {
		t.Fatalf("unexpected error body: %v", body)
	}
	if len(logger.records) != 0 {
		t.Fatalf("expected no call-log records, got %d", len(logger.records))
	}
}

func TestReportGenerationFailure(t *testing.T) {
	r := setupRouter(&fakeMessages{messages: sampleMessages()}, &fakeGenerator{err: errors.New("timeout")}, &recordingLogger{})

	req := httptest.NewRequest(http.MethodGet, "/report?room_id=%21room%3Aexample.com", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Failed to generate report" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestReportSuccess(t *testing.T) {
	logger := &recordingLogger{}
	r := setupRouter(&fakeMessages{messages: sampleMessages()}, &fakeGenerator{text: "Summary text."}, logger)

	req := httptest.NewRequest(http.MethodGet, "/report?room_id=%21room%3Aexample.com&period=7days&language=en", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	body := decodeBody(t, resp)
	if body["report"] != "Summary text." {
		t.Fatalf("unexpected report: %v", body["report"])
	}
	if body["messageCount"] != float64(1) {
		t.Fatalf("unexpected message count: %v", body["messageCount"])
	}
	if body["period"] != "the last 7 days" {
		t.Fatalf("unexpected period: %v", body["period"])
	}
	used, ok := body["messagesUsed"].([]any)
	if !ok || len(used) != 1 {
		t.Fatalf("unexpected messagesUsed: %v", body["messagesUsed"])
	}

	if len(logger.records) != 2 {
		t.Fatalf("expected start+success records, got %d", len(logger.records))
	}
}
