package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soccer_ai/internal/logging"
	"soccer_ai/internal/logging/sinks"
)

type failingSink struct{}

func (failingSink) Write(logging.Event) error   { return errors.New("disk full") }
func (failingSink) Close(context.Context) error { return nil }

func TestRouterFiltersAndDecorates(t *testing.T) {
	mem := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"agent": 9}
	r := logging.NewRouter(cfg, []logging.NamedSink{{Name: "memory", Sink: mem}})
	ctx := context.Background()

	r.Publish(ctx, logging.Event{Type: "a", Severity: logging.SeverityDebug})
	r.Publish(ctx, logging.Event{Type: "b", Severity: logging.SeverityInfo})
	r.Publish(ctx, logging.Event{Type: "c", Severity: logging.SeverityWarn, Extra: map[string]any{"agent": 1}})
	r.Publish(ctx, logging.Event{Severity: logging.SeverityError})

	events := mem.Events()
	require.Len(t, events, 2)
	assert.Equal(t, logging.EventType("b"), events[0].Type)
	assert.Equal(t, 9, events[0].Extra["agent"])
	assert.Equal(t, 1, events[1].Extra["agent"], "event fields win")

	stats := r.Stats()
	assert.Equal(t, uint64(2), stats.EventsTotal)
	assert.Equal(t, uint64(1), stats.DroppedTotal)
	assert.Same(t, mem, r.Sink("memory"))
	assert.Nil(t, r.Sink("console"))
}

func TestRouterSinkFailureAndClose(t *testing.T) {
	mem := sinks.NewMemorySink()
	r := logging.NewRouter(logging.DefaultConfig(), []logging.NamedSink{
		{Name: "broken", Sink: failingSink{}},
		{Name: "memory", Sink: mem},
		{Name: "nil"},
	})
	ctx := context.Background()

	r.Publish(ctx, logging.Event{Type: "x", Severity: logging.SeverityInfo})
	assert.Len(t, mem.Events(), 1, "other sinks still receive the event")
	assert.Equal(t, uint64(1), r.Stats().FailedTotal)

	require.NoError(t, r.Close(ctx))
	require.NoError(t, r.Close(ctx))
	r.Publish(ctx, logging.Event{Type: "y", Severity: logging.SeverityError})
	assert.Len(t, mem.Events(), 1)
	assert.Equal(t, uint64(1), r.Stats().DroppedTotal)
}

func TestWithFields(t *testing.T) {
	mem := sinks.NewMemorySink()
	pub := logging.WithFields(mem, map[string]any{"run": 3})
	src := logging.Event{Type: "x", Extra: map[string]any{"k": "v"}}
	pub.Publish(context.Background(), src)

	events := mem.Events()
	require.Len(t, events, 1)
	assert.Equal(t, 3, events[0].Extra["run"])
	assert.Equal(t, "v", events[0].Extra["k"])
	assert.NotContains(t, src.Extra, "run", "caller's map untouched")

	assert.NotNil(t, logging.WithFields(nil, nil))
}

func TestSeverity(t *testing.T) {
	s, ok := logging.ParseSeverity("warn")
	require.True(t, ok)
	assert.Equal(t, logging.SeverityWarn, s)
	assert.Equal(t, "warn", s.String())

	_, ok = logging.ParseSeverity("loud")
	assert.False(t, ok)
	assert.Equal(t, "unknown", logging.Severity(42).String())
}

func TestConfigHasSink(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.True(t, cfg.HasSink("console"))
	assert.False(t, cfg.HasSink("json"))
	assert.Nil(t, cfg.CloneFields())
}
