package ai

import "fmt"

// TranscriptionError reports a failed transcription call. The upload is
// aborted and nothing is persisted.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// SummarizationError reports a failed summary call. Callers keep the
// transcript and store the meeting without sections.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}
