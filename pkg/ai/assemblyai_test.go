package ai

import (
	"strings"
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func TestTranscriptText_Completed(t *testing.T) {
	text, err := transcriptText(aai.Transcript{
		Status: aai.TranscriptStatusCompleted,
		Text:   aai.String("hello world"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestTranscriptText_Error(t *testing.T) {
	_, err := transcriptText(aai.Transcript{
		Status: aai.TranscriptStatusError,
		Error:  aai.String("audio too short"),
	})
	if err == nil || !strings.Contains(err.Error(), "audio too short") {
		t.Fatalf("expected transcript error, got %v", err)
	}
}

func TestTranscriptText_NoText(t *testing.T) {
	text, err := transcriptText(aai.Transcript{Status: aai.TranscriptStatusCompleted})
	if err != nil || text != "" {
		t.Fatalf("expected empty text, got %q, %v", text, err)
	}
}

func TestNewAssemblyAIClient_EnvFallback(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "env-key")

	if c := NewAssemblyAIClient(&config.AssemblyAIConfig{}); c.client == nil {
		t.Fatal("expected sdk client")
	}
	if c := NewAssemblyAIClient(nil); c.client == nil {
		t.Fatal("expected sdk client for nil config")
	}
}
