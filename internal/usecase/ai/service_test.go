package ai

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type stubTranscriber struct {
	text     string
	err      error
	gotAudio string
	gotMime  string
}

func (s *stubTranscriber) Transcribe(_ context.Context, audio io.Reader, mimeType string) (string, error) {
	data, _ := io.ReadAll(audio)
	s.gotAudio = string(data)
	s.gotMime = mimeType
	return s.text, s.err
}

type stubGenerator struct {
	responses []string
	errs      []error
	prompts   []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)

	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", nil
}

func TestGateway_Transcribe(t *testing.T) {
	tr := &stubTranscriber{text: "hello world"}
	g := NewGateway(tr, nil, nil)

	text, err := g.Transcribe(context.Background(), strings.NewReader("audio"), "audio/mpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text %q", text)
	}
	if tr.gotAudio != "audio" || tr.gotMime != "audio/mpeg" {
		t.Fatalf("audio not forwarded: %q %q", tr.gotAudio, tr.gotMime)
	}
}

func TestGateway_TranscribeError(t *testing.T) {
	cause := errors.New("quota exceeded")
	g := NewGateway(&stubTranscriber{err: cause}, nil, nil)

	_, err := g.Transcribe(context.Background(), strings.NewReader(""), "audio/mpeg")

	var terr *TranscriptionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TranscriptionError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestGateway_SummarizeWithTags(t *testing.T) {
	gen := &stubGenerator{responses: []string{"SUMMARY:\nDid X\nPEOPLE:\nAlice, Bob\nACTION_ITEMS:\nFollow up"}}
	g := NewGateway(nil, gen, nil)

	s, err := g.SummarizeWithTags(context.Background(), "hello world", " Alice ,, Bob ", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *s.Summary != "Did X" || *s.People != "Alice, Bob" || *s.ActionItems != "Follow up" {
		t.Fatalf("unexpected sections %q %q %q", *s.Summary, *s.People, *s.ActionItems)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generation call, got %d", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	for _, want := range []string{
		"SUMMARY: up to 6 bullet points",
		"Use plain text only, with headers: SUMMARY:, PEOPLE:, ACTION_ITEMS:\nATTENDEES: Alice, Bob\nTRANSCRIPT:\nhello world",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGateway_SummarizeWithTags_FallbackWhenSummaryMissing(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"PEOPLE:\nAlice",
		"- one\n\n- two\n- three\n",
	}}
	g := NewGateway(nil, gen, nil)

	s, err := g.SummarizeWithTags(context.Background(), "transcript", "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Summary == nil || *s.Summary != "- one\n- two\n- three" {
		t.Fatalf("unexpected fallback summary %v", s.Summary)
	}
	if s.People == nil || *s.People != "Alice" {
		t.Fatalf("unexpected people %v", s.People)
	}
	if s.ActionItems != nil {
		t.Fatalf("expected nil action items, got %q", *s.ActionItems)
	}
	if !strings.HasPrefix(gen.prompts[1], "You are given a transcript. Produce at most 5 concise bullet points.") {
		t.Fatalf("unexpected fallback prompt %q", gen.prompts[1])
	}
}

func TestGateway_SummarizeWithTags_FallbackWhenSummaryEmpty(t *testing.T) {
	gen := &stubGenerator{responses: []string{"SUMMARY:\n\nPEOPLE:\nAlice", "fallback line"}}
	g := NewGateway(nil, gen, nil)

	s, err := g.SummarizeWithTags(context.Background(), "transcript", "", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *s.Summary != "fallback line" {
		t.Fatalf("unexpected summary %q", *s.Summary)
	}
}

func TestGateway_SummarizeWithTags_Errors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		gen  *stubGenerator
	}{
		{"primary call fails", &stubGenerator{errs: []error{cause}}},
		{"fallback call fails", &stubGenerator{responses: []string{"no headers"}, errs: []error{nil, cause}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGateway(nil, tt.gen, nil)
			_, err := g.SummarizeWithTags(context.Background(), "t", "", 6)

			var serr *SummarizationError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SummarizationError, got %v", err)
			}
			if !errors.Is(err, cause) {
				t.Fatalf("expected wrapped cause, got %v", err)
			}
		})
	}
}

func TestSimpleSummarize_CapsLines(t *testing.T) {
	gen := &stubGenerator{responses: []string{"  a  \n\nb\nc\nd\n"}}
	g := NewGateway(nil, gen, nil)

	got, err := g.SimpleSummarize(context.Background(), "t", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a\nb\nc" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestGateway_SummarizeWithTags_FallbackKeepsFiveLines(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"PEOPLE:\nAlice",
		"Here are the points:\n- a\n- b\n- c\n- d\n- e",
	}}
	g := NewGateway(nil, gen, nil)

	s, err := g.SummarizeWithTags(context.Background(), "transcript", "", DefaultMaxPoints)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Summary == nil {
		t.Fatal("expected fallback summary")
	}
	if lines := strings.Split(*s.Summary, "\n"); len(lines) != SimpleSummaryMaxPoints {
		t.Fatalf("expected %d lines, got %d: %q", SimpleSummaryMaxPoints, len(lines), *s.Summary)
	}
	if *s.Summary != "Here are the points:\n- a\n- b\n- c\n- d" {
		t.Fatalf("unexpected fallback summary %q", *s.Summary)
	}
}

func TestSimpleSummarize_DefaultLimit(t *testing.T) {
	gen := &stubGenerator{responses: []string{"1\n2\n3\n4\n5\n6\n7"}}
	g := NewGateway(nil, gen, nil)

	got, err := g.SimpleSummarize(context.Background(), "t", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1\n2\n3\n4\n5" {
		t.Fatalf("unexpected summary %q", got)
	}
	if !strings.Contains(gen.prompts[0], "at most 5 concise bullet points") {
		t.Fatalf("unexpected prompt %q", gen.prompts[0])
	}
}

func TestSplitAttendees(t *testing.T) {
	got := SplitAttendees(" Alice, ,Bob ,")
	if strings.Join(got, "|") != "Alice|Bob" {
		t.Fatalf("unexpected attendees %v", got)
	}
	if SplitAttendees("") != nil {
		t.Fatal("expected nil for empty input")
	}
}
