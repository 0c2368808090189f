package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

const transcribePrompt = "Generate a verbatim transcript of the audio."

// GeminiClient talks to the Gemini API for both transcription and text generation
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. An empty API key lets the SDK
// read GEMINI_API_KEY / GOOGLE_API_KEY from the environment.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	model := "gemini-2.5-flash"
	clientCfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if cfg != nil {
		clientCfg.APIKey = cfg.APIKey
		if cfg.Model != "" {
			model = cfg.Model
		}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Transcribe uploads the audio through the Files API and asks the model for a verbatim transcript
func (g *GeminiClient) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	file, err := g.client.Files.Upload(ctx, audio, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio to gemini: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePrompt),
			genai.NewPartFromURI(file.URI, file.MIMEType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini transcription failed: %w", err)
	}
	return responseText(resp), nil
}

// Generate runs a single-prompt text generation
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return responseText(resp), nil
}

// responseText returns the response text, or the encoded raw response when
// the model produced no text parts
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if text := resp.Text(); text != "" {
		return text
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", *resp)
	}
	return string(raw)
}
