package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// DefaultMaxPoints is the summary bullet limit used when none is configured
const DefaultMaxPoints = 6

// SimpleSummaryMaxPoints bounds the fallback summary, both in the prompt and in the lines kept
const SimpleSummaryMaxPoints = 5

const (
	summarizeWithTagsPrompt = "Given a transcript, return plain text sections:\n" +
		"SUMMARY: up to %d bullet points\n" +
		"PEOPLE: list attendees and mentioned people\n" +
		"ACTION_ITEMS: list clear action items\n" +
		"Use plain text only, with headers: SUMMARY:, PEOPLE:, ACTION_ITEMS:"

	simpleSummaryPrompt = "You are given a transcript. Produce at most %d concise bullet points. Plain text only."
)

// Transcriber turns recorded audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)
}

// TextGenerator answers a single text prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gateway wraps the transcription and summarization calls to the AI providers
type Gateway struct {
	transcriber Transcriber
	generator   TextGenerator
	logger      *zap.Logger
}

// NewGateway creates a new AI gateway
func NewGateway(transcriber Transcriber, generator TextGenerator, logger *zap.Logger) *Gateway {
	return &Gateway{
		transcriber: transcriber,
		generator:   generator,
		logger:      logger,
	}
}

// Transcribe returns a verbatim transcript of the audio. Any failure is a *TranscriptionError.
func (g *Gateway) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	if g.transcriber == nil {
		return "", &TranscriptionError{Err: errors.New("transcriber not configured")}
	}

	text, err := g.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	return text, nil
}

// SummarizeWithTags asks for SUMMARY, PEOPLE and ACTION_ITEMS sections in one
// call. A missing or empty SUMMARY falls back to SimpleSummarize. Any failed
// call is a *SummarizationError.
func (g *Gateway) SummarizeWithTags(ctx context.Context, transcript, attendees string, maxPoints int) (Sections, error) {
	if g.generator == nil {
		return Sections{}, &SummarizationError{Err: errors.New("text generator not configured")}
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	prompt := fmt.Sprintf(summarizeWithTagsPrompt, maxPoints) +
		"\nATTENDEES: " + strings.Join(SplitAttendees(attendees), ", ") +
		"\nTRANSCRIPT:\n" + transcript

	out, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		return Sections{}, &SummarizationError{Err: err}
	}

	sections := ParseSections(out)
	if sections.Summary == nil || *sections.Summary == "" {
		if g.logger != nil {
			g.logger.Info("summary section missing, using simple summary",
				zap.Bool("header_present", sections.Summary != nil),
			)
		}
		summary, err := g.SimpleSummarize(ctx, transcript, SimpleSummaryMaxPoints)
		if err != nil {
			return Sections{}, err
		}
		sections.Summary = &summary
	}

	return sections, nil
}

// SimpleSummarize asks for at most maxPoints bullets and keeps at most
// maxPoints non-blank lines
func (g *Gateway) SimpleSummarize(ctx context.Context, transcript string, maxPoints int) (string, error) {
	if g.generator == nil {
		return "", &SummarizationError{Err: errors.New("text generator not configured")}
	}
	if maxPoints <= 0 {
		maxPoints = SimpleSummaryMaxPoints
	}

	out, err := g.generator.Generate(ctx, fmt.Sprintf(simpleSummaryPrompt, maxPoints)+"\n"+transcript)
	if err != nil {
		return "", &SummarizationError{Err: err}
	}

	lines := make([]string, 0, maxPoints)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxPoints {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// SplitAttendees splits a comma separated attendee list, dropping blanks
func SplitAttendees(attendees string) []string {
	var out []string
	for _, a := range strings.Split(attendees, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
