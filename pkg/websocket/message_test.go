package websocket

import (
	"context"
	"encoding/json"
	"testing"
)

func TestNewResponseRoundTrip(t *testing.T) {
	msg, err := NewResponse("req-1", "board.get", map[string]string{"title": "Sprint"})
	if err != nil {
		t.Fatalf("NewResponse failed: %v", err)
	}
	if msg.Type != MessageTypeResponse || msg.ID != "req-1" || msg.Action != "board.get" {
		t.Errorf("unexpected envelope: %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	var payload map[string]string
	if err := msg.ParsePayload(&payload); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if payload["title"] != "Sprint" {
		t.Errorf("payload = %v", payload)
	}
}

func TestNewNotificationHasNoID(t *testing.T) {
	msg, err := NewNotification("board.changed", map[string]interface{}{"event_type": "list.created"})
	if err != nil {
		t.Fatalf("NewNotification failed: %v", err)
	}
	if msg.ID != "" {
		t.Errorf("notification carries an id: %s", msg.ID)
	}
	if msg.Type != MessageTypeNotification {
		t.Errorf("type = %s", msg.Type)
	}
}

func TestNewErrorPayload(t *testing.T) {
	msg, err := NewError("req-2", "card.get", ErrorCodeNotFound, "card not found", map[string]interface{}{"card_id": "card-1"})
	if err != nil {
		t.Fatalf("NewError failed: %v", err)
	}
	if msg.Type != MessageTypeError {
		t.Errorf("type = %s", msg.Type)
	}

	var payload ErrorPayload
	if err := msg.ParsePayload(&payload); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if payload.Code != ErrorCodeNotFound || payload.Message != "card not found" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Details["card_id"] != "card-1" {
		t.Errorf("details = %v", payload.Details)
	}
}

func TestParsePayloadNil(t *testing.T) {
	msg := &Message{Action: "x"}
	var out map[string]interface{}
	if err := msg.ParsePayload(&out); err != nil {
		t.Errorf("nil payload should parse as no-op: %v", err)
	}
}

func TestDispatcherRoutesByAction(t *testing.T) {
	d := NewDispatcher()
	d.RegisterFunc("board.get", func(ctx context.Context, msg *Message) (*Message, error) {
		return NewResponse(msg.ID, msg.Action, map[string]string{"ok": "yes"})
	})

	if !d.HasHandler("board.get") {
		t.Error("handler not registered")
	}
	if d.HasHandler("board.delete") {
		t.Error("unexpected handler registered")
	}

	req, _ := NewRequest("req-3", "board.get", nil)
	resp, err := d.Dispatch(context.Background(), req)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if resp.Type != MessageTypeResponse || resp.ID != "req-3" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDispatcherUnknownAction(t *testing.T) {
	d := NewDispatcher()

	req, _ := NewRequest("req-4", "nope.action", nil)
	resp, err := d.Dispatch(context.Background(), req)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if resp.Type != MessageTypeError {
		t.Errorf("type = %s", resp.Type)
	}

	var payload ErrorPayload
	if err := resp.ParsePayload(&payload); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if payload.Code != ErrorCodeUnknownAction {
		t.Errorf("code = %s", payload.Code)
	}
}

func TestMessageJSONShape(t *testing.T) {
	msg, _ := NewRequest("req-5", "list.create", map[string]string{"title": "Todo"})
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"id", "type", "action", "payload", "timestamp"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing %q in wire form", key)
		}
	}
}
