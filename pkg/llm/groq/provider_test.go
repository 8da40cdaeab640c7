package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profile-chat-be/pkg/llm"
)

func TestChat(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}

		fmt.Fprint(w, `{"choices":[{"message":{"content":"Cory builds software."}}]}`)
	}))
	defer server.Close()

	p := NewGroqProvider("test-key", server.URL, "llama-3.1-8b-instant")

	answer, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "What does Cory do?"}},
		llm.WithTemperature(0.3),
		llm.WithTopP(0.9),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if answer != "Cory builds software." {
		t.Errorf("answer = %q", answer)
	}

	if gotReq.Model != "llama-3.1-8b-instant" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("buffered call must not set stream")
	}
	if gotReq.Temperature != 0.3 || gotReq.TopP != 0.9 || gotReq.MaxTokens != 500 {
		t.Errorf("options not forwarded: %+v", gotReq)
	}
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error status", status: 429, body: `{"error":{"message":"rate limited"}}`},
		{name: "api error payload", status: 200, body: `{"error":{"message":"model decommissioned"}}`},
		{name: "no choices", status: 200, body: `{"choices":[]}`},
		{name: "garbage body", status: 200, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			p := NewGroqProvider("k", server.URL, "m")
			if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "q"}}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestChatStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !req.Stream {
			t.Error("stream call must set stream")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Cory \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"builds \"}}]}\n\n")
		fmt.Fprint(w, "data: this frame is broken\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"software.\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"never seen\"}}]}\n\n")
	}))
	defer server.Close()

	p := NewGroqProvider("k", server.URL, "m")

	fragments, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "q"}})
	if err != nil {
		t.Fatalf("ChatStream: %v", err)
	}

	var full string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case fragment, ok := <-fragments:
			if !ok {
				if full != "Cory builds software." {
					t.Errorf("streamed text = %q", full)
				}
				return
			}
			full += fragment
		case <-timeout:
			t.Fatal("stream never closed")
		}
	}
}

func TestChatStreamStartFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
	defer server.Close()

	p := NewGroqProvider("bad-key", server.URL, "m")
	if _, err := p.ChatStream(context.Background(), []llm.Message{{Role: "user", Content: "q"}}); err == nil {
		t.Fatal("expected error when the stream cannot start")
	}
}
