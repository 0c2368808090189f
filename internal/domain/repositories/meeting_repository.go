package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// Insert stores a new meeting and returns its assigned id
	Insert(ctx context.Context, meeting *entities.Meeting) (int64, error)
	// ListAll returns every meeting, newest id first
	ListAll(ctx context.Context) ([]*entities.MeetingListItem, error)
	// GetByID returns entities.ErrMeetingNotFound when no row matches
	GetByID(ctx context.Context, id int64) (*entities.Meeting, error)
}
