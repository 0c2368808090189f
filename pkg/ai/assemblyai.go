package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// AssemblyAIClient transcribes audio with the official AssemblyAI SDK
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAIClient{
		client: aai.NewClient(apiKey),
	}
}

// Transcribe uploads the audio and blocks until AssemblyAI finishes the transcript
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, nil)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	return transcriptText(transcript)
}

// transcriptText extracts the text of a finished transcript
func transcriptText(t aai.Transcript) (string, error) {
	if t.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if t.Error != nil {
			msg = *t.Error
		}
		return "", fmt.Errorf("assemblyai transcript failed: %s", msg)
	}
	if t.Text == nil {
		return "", nil
	}
	return *t.Text, nil
}
