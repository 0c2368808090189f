package entities

import (
	"time"
)

// CreatedAtLayout is the text layout of Meeting.CreatedAt
const CreatedAtLayout = "2006-01-02T15:04:05.000000"

// Meeting is one processed recording with its transcript and AI sections.
// Summary, People and ActionItems are nil when the model produced nothing for them.
type Meeting struct {
	ID          int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Filename    string  `json:"filename" gorm:"column:filename;not null"`
	Attendees   string  `json:"attendees" gorm:"column:attendees"`
	Transcript  string  `json:"transcript" gorm:"column:transcript"`
	Summary     *string `json:"summary" gorm:"column:summary"`
	People      *string `json:"people" gorm:"column:people"`
	ActionItems *string `json:"action_items" gorm:"column:action_items"`
	CreatedAt   string  `json:"created_at" gorm:"column:created_at;autoCreateTime:false"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting stamped with the current UTC time
func NewMeeting(filename, attendees, transcript string) *Meeting {
	return &Meeting{
		Filename:   filename,
		Attendees:  attendees,
		Transcript: transcript,
		CreatedAt:  FormatCreatedAt(time.Now()),
	}
}

// FormatCreatedAt renders t in the stored created_at layout
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// SummaryText returns the summary or an empty string
func (m *Meeting) SummaryText() string {
	return deref(m.Summary)
}

// PeopleText returns the people section or an empty string
func (m *Meeting) PeopleText() string {
	return deref(m.People)
}

// ActionItemsText returns the action items or an empty string
func (m *Meeting) ActionItemsText() string {
	return deref(m.ActionItems)
}

// MeetingListItem is the listing projection of a meeting
type MeetingListItem struct {
	ID        int64  `json:"id" gorm:"column:id"`
	Filename  string `json:"filename" gorm:"column:filename"`
	Attendees string `json:"attendees" gorm:"column:attendees"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
