package presenter

import (
	"net/url"

	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// AudioURL returns the route serving a stored upload
func AudioURL(filename string) string {
	return "/uploads/" + url.PathEscape(filename)
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:          m.ID,
		Filename:    m.Filename,
		Attendees:   m.Attendees,
		Transcript:  m.Transcript,
		Summary:     m.Summary,
		People:      m.People,
		ActionItems: m.ActionItems,
		CreatedAt:   m.CreatedAt,
		AudioURL:    AudioURL(m.Filename),
	}
}

// ToMeetingListResponse converts listed meetings to MeetingListResponse
func ToMeetingListResponse(items []*entities.MeetingListItem) *meeting.MeetingListResponse {
	responses := make([]*meeting.MeetingListItemResponse, len(items))
	for i, item := range items {
		responses[i] = &meeting.MeetingListItemResponse{
			ID:        item.ID,
			Filename:  item.Filename,
			Attendees: item.Attendees,
			CreatedAt: item.CreatedAt,
		}
	}

	return &meeting.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}
