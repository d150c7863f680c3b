package event

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/membank-oss/membank/internal/config"
)

func TestShellHook_Matches(t *testing.T) {
	hook := NewShellHook("test", "echo hi", []EventType{DocumentIngested, ContextAssembled}, false)

	if !hook.Matches(DocumentIngested) {
		t.Error("should match DocumentIngested")
	}
	if !hook.Matches(ContextAssembled) {
		t.Error("should match ContextAssembled")
	}
	if hook.Matches(ContextRetrieved) {
		t.Error("should not match ContextRetrieved")
	}
}

func TestHook_EmptyFilterMatchesAll(t *testing.T) {
	hook := NewLogHook("trace", nil, &testLogger{}, "info")
	if !hook.Matches(DocumentIngestFailed) {
		t.Error("hook without event filter should match every event")
	}
}

func TestShellHook_Execute(t *testing.T) {
	hook := NewShellHook("test", "true", []EventType{DocumentIngested}, false)

	ev := NewEvent(DocumentIngested, map[string]interface{}{"title": "a.txt"})
	if err := hook.Handle(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShellHook_Failure(t *testing.T) {
	hook := NewShellHook("test", "false", []EventType{DocumentIngested}, true)

	if err := hook.Handle(NewEvent(DocumentIngested, nil)); err == nil {
		t.Fatal("expected error from failed shell command")
	}
}

func TestWebhookHook_Execute(t *testing.T) {
	var received struct {
		mu   sync.Mutex
		body []byte
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received.mu.Lock()
		received.body = body
		received.mu.Unlock()
		w.WriteHeader(200)
	}))
	defer server.Close()

	hook := NewWebhookHook("test", server.URL, []EventType{ContextAssembled}, true)
	ev := NewEvent(ContextAssembled, map[string]interface{}{"entries": 2})
	if err := hook.Handle(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	received.mu.Lock()
	defer received.mu.Unlock()

	var payload Event
	if err := json.Unmarshal(received.body, &payload); err != nil {
		t.Fatalf("failed to parse webhook payload: %v", err)
	}
	if payload.Type != ContextAssembled {
		t.Errorf("expected ContextAssembled, got %s", payload.Type)
	}
}

func TestWebhookHook_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer server.Close()

	hook := NewWebhookHook("test", server.URL, []EventType{DocumentIngestFailed}, true)
	if err := hook.Handle(NewEvent(DocumentIngestFailed, nil)); err == nil {
		t.Fatal("expected error from 500 status")
	}
}

func TestLogHook_Execute(t *testing.T) {
	logger := &testLogger{}
	hook := NewLogHook("test", []EventType{DocumentIngested}, logger, "info")

	ev := NewEvent(DocumentIngested, map[string]interface{}{"title": "a.txt"})
	if err := hook.Handle(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logger.infoCalls) != 1 {
		t.Errorf("expected 1 info log, got %d", len(logger.infoCalls))
	}
}

func TestBusFromConfig(t *testing.T) {
	cfg := &config.HooksConfig{
		Enabled: true,
		Hooks: []config.HookConfig{
			{Name: "notify", Type: "shell", Command: "true", Events: []string{"document.ingested"}},
			{Name: "trace", Type: "log"},
		},
	}

	bus, err := BusFromConfig(cfg, &testLogger{})
	if err != nil {
		t.Fatal(err)
	}
	if bus == nil {
		t.Fatal("expected a bus for enabled hooks")
	}
	if len(bus.hooks) != 2 {
		t.Errorf("expected 2 hooks, got %d", len(bus.hooks))
	}
}

func TestBusFromConfig_Disabled(t *testing.T) {
	bus, err := BusFromConfig(&config.HooksConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if bus != nil {
		t.Error("expected nil bus when hooks are disabled")
	}
	// nil bus must be safe to use
	if err := bus.Emit(NewEvent(DocumentIngested, nil)); err != nil {
		t.Errorf("nil bus emit should be a no-op: %v", err)
	}
}

func TestBusFromConfig_UnknownType(t *testing.T) {
	cfg := &config.HooksConfig{
		Enabled: true,
		Hooks:   []config.HookConfig{{Name: "x", Type: "pager"}},
	}
	if _, err := BusFromConfig(cfg, nil); err == nil {
		t.Fatal("expected error for unknown hook type")
	}
}
