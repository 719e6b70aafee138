package taegis

import (
	"context"
	"testing"
)

func TestMockClient_PageScript(t *testing.T) {
	mock := &MockClient{
		Pages: []EventPage{
			{Events: []Event{DecodeEvent(map[string]any{"sensor_id": "a"})}, Next: "X"},
			{Events: []Event{DecodeEvent(map[string]any{"sensor_id": "b"})}},
		},
	}

	page, err := mock.SubmitEventQuery(context.Background(), "q", "tenant", QueryOptions{})
	if err != nil {
		t.Fatalf("SubmitEventQuery failed: %v", err)
	}
	if page.Next != "X" {
		t.Fatalf("Next = %q, want X", page.Next)
	}

	// Presenting the wrong token is rejected.
	if _, err := mock.FetchEventPage(context.Background(), "wrong"); err == nil {
		t.Error("expected error for mismatched page token")
	}

	page, err = mock.FetchEventPage(context.Background(), "X")
	if err != nil {
		t.Fatalf("FetchEventPage failed: %v", err)
	}
	if page.Next != "" {
		t.Errorf("Next = %q, want empty", page.Next)
	}

	if mock.SubmitCalls != 1 || mock.PageCalls != 2 {
		t.Errorf("calls = %d submit / %d page, want 1 / 2", mock.SubmitCalls, mock.PageCalls)
	}
}

func TestMockClient_Empty(t *testing.T) {
	mock := &MockClient{}

	page, err := mock.SubmitEventQuery(context.Background(), "q", "tenant", QueryOptions{})
	if err != nil {
		t.Fatalf("SubmitEventQuery failed: %v", err)
	}
	if len(page.Events) != 0 || page.Next != "" {
		t.Errorf("got %d events, next %q; want empty page", len(page.Events), page.Next)
	}
}
