package llmlog

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"roomreport/internal/model/llmcall"
)

const (
	queueSize    = 64
	writeTimeout = 5 * time.Second
)

// Sink persists call records. Implementations may fail; the Logger swallows
// those failures so observability can never break the pipeline.
type Sink interface {
	Write(ctx context.Context, rec llmcall.Record) error
}

// Info identifies the provider behind every record written by a Logger.
type Info struct {
	Provider string
	Model    string
	Endpoint string
}

// Logger records LLM invocation metadata on a best-effort basis. Records are
// handed to a background writer; Log never blocks the caller.
type Logger struct {
	sink  Sink
	info  Info
	queue chan llmcall.Record
	done  chan struct{}
}

// NewLogger starts the background writer over the given sink.
func NewLogger(sink Sink, info Info) *Logger {
	l := &Logger{
		sink:  sink,
		info:  info,
		queue: make(chan llmcall.Record, queueSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

// Log enqueues a record, stamping identity, timestamp and provider defaults.
// When the queue is full the record is dropped rather than blocking.
func (l *Logger) Log(rec llmcall.Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Provider == "" {
		rec.Provider = l.info.Provider
	}
	if rec.Model == "" {
		rec.Model = l.info.Model
	}
	if rec.Endpoint == "" {
		rec.Endpoint = l.info.Endpoint
	}

	select {
	case l.queue <- rec:
	default:
		log.Printf("[llmlog] queue full, dropping %s record for room=%s", rec.Status, rec.RoomID)
	}
}

func (l *Logger) run() {
	defer close(l.done)
	for rec := range l.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := l.sink.Write(ctx, rec); err != nil {
			log.Printf("[llmlog] failed to write %s record: %v", rec.Status, err)
		}
		cancel()
	}
}

// Close drains pending records and stops the writer.
func (l *Logger) Close() {
	close(l.queue)
	<-l.done
}
