package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func TestOpenAIGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "test-model" || len(payload.Messages) != 1 || payload.Messages[0].Content != "summarize this" {
			t.Fatalf("unexpected payload %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"SUMMARY:\nok"}}]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL + "/", Model: "test-model"})

	out, err := client.Generate(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if out != "SUMMARY:\nok" {
		t.Fatalf("unexpected content %q", out)
	}
}

func TestOpenAIGenerate_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: ts.URL})

	_, err := client.Generate(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestOpenAIGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: ts.URL})

	if _, err := client.Generate(context.Background(), "x"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
