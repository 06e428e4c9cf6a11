package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-roadmap-be/pkg/llm"
)

func completionServer(t *testing.T, content string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			http.Error(w, "bad key", http.StatusUnauthorized)
			return
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func newTestProvider(srv *httptest.Server) *OpenAIProvider {
	p := NewOpenAIProvider("test-key", "gpt-4o-mini")
	p.BaseURL = srv.URL
	return p
}

func TestChat(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, `{"recommended": []}`, &captured)
	defer srv.Close()

	p := newTestProvider(srv)
	got, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "you rank qualifications"},
		{Role: "model", Content: "ok"},
		{Role: "user", Content: "rank them"},
	},
		llm.WithModel("gpt-4o"),
		llm.WithTemperature(0.3),
		llm.WithJSONOutput(),
	)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if got != `{"recommended": []}` {
		t.Errorf("Chat() = %q", got)
	}

	if captured.Model != "gpt-4o" {
		t.Errorf("model = %q, want the option override", captured.Model)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", captured.Temperature)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v, want json_object", captured.ResponseFormat)
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(captured.Messages))
	}
	// The generic "model" role maps to OpenAI's "assistant".
	if captured.Messages[1].Role != "assistant" {
		t.Errorf("messages[1].Role = %q, want assistant", captured.Messages[1].Role)
	}
}

func TestChatDefaultModel(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, "ok", &captured)
	defer srv.Close()

	p := newTestProvider(srv)
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want the provider default", captured.Model)
	}
	if captured.ResponseFormat != nil {
		t.Errorf("response_format should be absent by default, got %+v", captured.ResponseFormat)
	}
}

func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(srv)
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected an error from a 429 response")
	}
}

func TestChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p := newTestProvider(srv)
	if _, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected an error on empty choices")
	}
}

func TestGenerateWrapsChat(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, "answer", &captured)
	defer srv.Close()

	p := newTestProvider(srv)
	got, err := p.Generate(context.Background(), "single prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "answer" {
		t.Errorf("Generate() = %q", got)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want a single user message", captured.Messages)
	}
}
