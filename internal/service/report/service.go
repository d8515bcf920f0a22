package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"roomreport/internal/model/llmcall"
	"roomreport/internal/model/message"
	"roomreport/internal/model/prompt"
	"roomreport/internal/model/report"
)

// MessageLimit caps how many messages one report may consume.
const MessageLimit = 500

var (
	ErrMissingRoomID = errors.New("room id is required")
	ErrFetchMessages = errors.New("failed to fetch messages")
	ErrNotConfigured = errors.New("ai service not configured")
	ErrGeneration    = errors.New("failed to generate report")
)

// MessageReader returns up to limit time-filtered records for a room in
// ascending time order.
type MessageReader interface {
	ListByRoom(ctx context.Context, roomID string, tr report.TimeRange, limit int) ([]message.Message, error)
}

// Generator produces text from an assembled prompt, returning the total
// token usage when the provider reports it.
type Generator interface {
	Generate(ctx context.Context, promptText string) (text string, tokensUsed int, err error)
}

// CallLogger records LLM invocation metadata. Implementations must never
// block the pipeline or surface their own failures.
type CallLogger interface {
	Log(rec llmcall.Record)
}

// Service coordinates one report request end to end: resolve the period,
// fetch prompts and messages, assemble the prompt, invoke the model.
type Service struct {
	prompts  prompt.Store
	messages MessageReader
	gen      Generator
	calls    CallLogger
	now      func() time.Time
}

// NewService wires the pipeline dependencies. gen may be nil when no model
// credential is configured; requests then fail with ErrNotConfigured.
func NewService(prompts prompt.Store, messages MessageReader, gen Generator, calls CallLogger) *Service {
	return &Service{
		prompts:  prompts,
		messages: messages,
		gen:      gen,
		calls:    calls,
		now:      time.Now,
	}
}

// Generate runs the report pipeline for one request. An empty message set is
// not an error: the result carries the "no messages" notice, MessageCount
// zero, and no model call is made.
func (s *Service) Generate(ctx context.Context, req report.Request) (*report.Result, error) {
	if req.RoomID == "" {
		return nil, ErrMissingRoomID
	}

	timeRange := ResolveTimeRange(req.Period, s.now())
	label := PeriodLabel(req.Period)

	// Prompt lookups are best-effort: a miss or a store error degrades to
	// the built-in fallback instead of failing the request.
	systemPrompt := s.lookupPrompt(ctx, prompt.ScopeSystem, "")
	roomPrompt := s.lookupPrompt(ctx, prompt.ScopeRoom, req.RoomID)

	messages, err := s.messages.ListByRoom(ctx, req.RoomID, timeRange, MessageLimit)
	if err != nil {
		log.Printf("[report] failed to fetch messages for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchMessages, err)
	}

	if len(messages) == 0 {
		return &report.Result{
			Report:      fmt.Sprintf("No messages found for %s.", label),
			PeriodLabel: label,
		}, nil
	}

	transcript := FormatTranscript(messages)
	promptText := BuildPrompt(systemPrompt, roomPrompt, req.Language, label, transcript, len(messages))

	if s.gen == nil {
		return nil, ErrNotConfigured
	}

	s.calls.Log(llmcall.Record{
		RoomID:       req.RoomID,
		PromptLength: len(promptText),
		Status:       llmcall.StatusStart,
	})

	started := s.now()
	text, tokensUsed, err := s.gen.Generate(ctx, promptText)
	durationMs := s.now().Sub(started).Milliseconds()

	if err != nil {
		s.calls.Log(llmcall.Record{
			RoomID:       req.RoomID,
			PromptLength: len(promptText),
			DurationMs:   durationMs,
			Status:       llmcall.StatusError,
			Error:        err.Error(),
		})
		log.Printf("[report] generation failed for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	s.calls.Log(llmcall.Record{
		RoomID:         req.RoomID,
		PromptLength:   len(promptText),
		ResponseLength: len(text),
		TokensUsed:     tokensUsed,
		DurationMs:     durationMs,
		Status:         llmcall.StatusSuccess,
	})

	return &report.Result{
		Report:       text,
		Messages:     messages,
		MessageCount: len(messages),
		PeriodLabel:  label,
	}, nil
}

func (s *Service) lookupPrompt(ctx context.Context, scope prompt.Scope, roomID string) string {
	rec, ok, err := s.prompts.Active(ctx, scope, roomID)
	if err != nil {
		log.Printf("[report] prompt lookup failed scope=%s room=%s: %v", scope, roomID, err)
		return ""
	}
	if !ok {
		return ""
	}
	return rec.Content
}
