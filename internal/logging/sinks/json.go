package sinks

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"

	"soccer_ai/internal/logging"
)

// JSON emits newline-delimited structured events.
type JSON struct {
	mu      sync.Mutex
	writer  *bufio.Writer
	encoder *json.Encoder
	closer  io.Closer
}

// NewJSON constructs a JSON sink writing to w. When w is also an io.Closer it
// is closed together with the sink.
func NewJSON(w io.Writer) *JSON {
	if w == nil {
		w = io.Discard
	}
	buf := bufio.NewWriter(w)
	sink := &JSON{writer: buf, encoder: json.NewEncoder(buf)}
	if c, ok := w.(io.Closer); ok {
		sink.closer = c
	}
	return sink
}

// Write satisfies logging.Sink.
func (s *JSON) Write(event logging.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wire := map[string]any{
		"type":     event.Type,
		"cycle":    event.Cycle,
		"severity": event.Severity.String(),
		"category": event.Category,
		"actor":    event.Actor,
		"message":  event.Message,
		"payload":  event.Payload,
		"extra":    event.Extra,
	}
	return s.encoder.Encode(wire)
}

// Close flushes buffers.
func (s *JSON) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writer.Flush(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
