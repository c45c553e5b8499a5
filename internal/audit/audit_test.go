package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	return NewLogger(filepath.Join(t.TempDir(), "events.jsonl"))
}

func TestLogger_LogAndEvents(t *testing.T) {
	logger := newTestLogger(t)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventCreate, Sandbox: "web"},
		{Timestamp: now.Add(time.Second), Type: EventInstall, Sandbox: "web", Details: "lens mtl"},
		{Timestamp: now.Add(2 * time.Second), Type: EventMix, Sandbox: "web", Details: "project=/code/app packages=3"},
		{Timestamp: now.Add(3 * time.Second), Type: EventClean, Details: "project=/code/app packages=3"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if e.Type != events[i].Type {
			t.Errorf("event %d: type = %q, want %q", i, e.Type, events[i].Type)
		}
		if e.Sandbox != events[i].Sandbox {
			t.Errorf("event %d: sandbox = %q, want %q", i, e.Sandbox, events[i].Sandbox)
		}
		if e.Details != events[i].Details {
			t.Errorf("event %d: details = %q, want %q", i, e.Details, events[i].Details)
		}
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	logger := newTestLogger(t)

	result, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_LogEvent(t *testing.T) {
	logger := newTestLogger(t)

	if err := logger.LogEvent(EventCreate, "web", ""); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	events, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Type != EventCreate {
		t.Errorf("type = %q, want %q", e.Type, EventCreate)
	}
	if e.Sandbox != "web" {
		t.Errorf("sandbox = %q, want %q", e.Sandbox, "web")
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestLogger_EventsFor(t *testing.T) {
	logger := newTestLogger(t)

	logger.LogEvent(EventCreate, "web", "")
	logger.LogEvent(EventCreate, "data", "")
	logger.LogEvent(EventInstall, "web", "lens")
	logger.LogEvent(EventDestroy, "data", "")

	events, err := logger.EventsFor("web")
	if err != nil {
		t.Fatalf("EventsFor failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != EventCreate || events[1].Type != EventInstall {
		t.Errorf("events = [%s %s], want [create install]", events[0].Type, events[1].Type)
	}

	events, err = logger.EventsFor("missing")
	if err != nil {
		t.Fatalf("EventsFor failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events for unknown sandbox, want 0", len(events))
	}
}

func TestLogger_EventOrder(t *testing.T) {
	logger := newTestLogger(t)

	base := time.Now()
	for i := 0; i < 5; i++ {
		logger.Log(Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Type:      EventInstall,
			Sandbox:   "order-test",
			Details:   string(rune('A' + i)),
		})
	}

	events, _ := logger.Events()
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}

	// Events should be in chronological order (append-only)
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("event %d timestamp before event %d", i, i-1)
		}
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	logger := newTestLogger(t)

	logger.LogEvent(EventCreate, "web", "")

	f, err := os.OpenFile(logger.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	f.WriteString("not json\n\n")
	f.Close()

	logger.LogEvent(EventDestroy, "web", "")

	events, err := logger.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
}
