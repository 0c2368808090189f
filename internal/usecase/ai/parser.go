package ai

import "strings"

// Section headers expected in a summarize-with-tags response
const (
	HeaderSummary     = "SUMMARY:"
	HeaderPeople      = "PEOPLE:"
	HeaderActionItems = "ACTION_ITEMS:"
)

var sectionHeaders = []string{HeaderSummary, HeaderPeople, HeaderActionItems}

// Sections are the three labeled parts of a summary response. A nil field
// means the header was not present.
type Sections struct {
	Summary     *string
	People      *string
	ActionItems *string
}

// ExtractSection returns the text following the first occurrence of header,
// cut at the earliest occurrence of any other section header and trimmed.
// It returns nil when header does not occur in blob.
//
// A header word repeated inside a section body truncates that section.
func ExtractSection(blob, header string) *string {
	idx := strings.Index(blob, header)
	if idx == -1 {
		return nil
	}
	rest := blob[idx+len(header):]

	for _, h := range sectionHeaders {
		if h == header {
			continue
		}
		if cut := strings.Index(rest, h); cut != -1 {
			rest = rest[:cut]
		}
	}

	text := strings.TrimSpace(rest)
	return &text
}

// ParseSections extracts all three sections from blob
func ParseSections(blob string) Sections {
	return Sections{
		Summary:     ExtractSection(blob, HeaderSummary),
		People:      ExtractSection(blob, HeaderPeople),
		ActionItems: ExtractSection(blob, HeaderActionItems),
	}
}
