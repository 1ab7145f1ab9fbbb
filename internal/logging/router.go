package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

type NamedSink struct {
	Name string
	Sink Sink
}

// Router fans events out to its sinks on the caller's goroutine. The agent
// publishes from one goroutine per cycle, so there is no queue; the mutex
// only serialises batch runs sharing one router.
type Router struct {
	mu          sync.Mutex
	sinks       []NamedSink
	fallback    *log.Logger
	minSeverity Severity
	fields      map[string]any
	closed      atomic.Bool

	eventsTotal  atomic.Uint64
	droppedTotal atomic.Uint64
	failedTotal  atomic.Uint64
}

type RouterStats struct {
	EventsTotal  uint64
	DroppedTotal uint64
	FailedTotal  uint64
}

func NewRouter(cfg Config, namedSinks []NamedSink) *Router {
	r := &Router{
		fallback:    log.New(os.Stderr, "[logging] ", log.LstdFlags),
		minSeverity: cfg.MinimumSeverity,
		fields:      cfg.CloneFields(),
	}
	for _, named := range namedSinks {
		if named.Sink == nil {
			continue
		}
		r.sinks = append(r.sinks, named)
	}
	return r
}

func (r *Router) Publish(_ context.Context, event Event) {
	if event.Type == "" {
		return
	}
	if r.closed.Load() || event.Severity < r.minSeverity {
		r.droppedTotal.Add(1)
		return
	}
	event = withFields(event, r.fields)
	r.eventsTotal.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, named := range r.sinks {
		if err := named.Sink.Write(event); err != nil {
			r.failedTotal.Add(1)
			r.fallback.Printf("sink %s failed: %v", named.Name, err)
		}
	}
}

func (r *Router) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for _, named := range r.sinks {
		if err := named.Sink.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) Stats() RouterStats {
	return RouterStats{
		EventsTotal:  r.eventsTotal.Load(),
		DroppedTotal: r.droppedTotal.Load(),
		FailedTotal:  r.failedTotal.Load(),
	}
}

func (r *Router) Sink(name string) Sink {
	for _, named := range r.sinks {
		if named.Name == name {
			return named.Sink
		}
	}
	return nil
}
