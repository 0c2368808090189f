package meeting

// MeetingResponse is the JSON shape of one meeting
type MeetingResponse struct {
	ID          int64   `json:"id"`
	Filename    string  `json:"filename"`
	Attendees   string  `json:"attendees"`
	Transcript  string  `json:"transcript"`
	Summary     *string `json:"summary"`
	People      *string `json:"people"`
	ActionItems *string `json:"action_items"`
	CreatedAt   string  `json:"created_at"`
	AudioURL    string  `json:"audio_url"`
}

// MeetingListItemResponse is the JSON shape of a listed meeting
type MeetingListItemResponse struct {
	ID        int64  `json:"id"`
	Filename  string `json:"filename"`
	Attendees string `json:"attendees"`
	CreatedAt string `json:"created_at"`
}

// MeetingListResponse wraps the meeting listing
type MeetingListResponse struct {
	Meetings []*MeetingListItemResponse `json:"meetings"`
	Total    int                        `json:"total"`
}
