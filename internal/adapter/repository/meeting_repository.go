package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
)

// MeetingRepository handles meeting data operations
type MeetingRepository struct {
	db *gorm.DB
}

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Insert stores a meeting. The id is assigned by the database and created_at
// is stamped here when the caller left it empty.
func (r *MeetingRepository) Insert(ctx context.Context, meeting *entities.Meeting) (int64, error) {
	if meeting == nil {
		return 0, errors.New("meeting cannot be nil")
	}
	if meeting.CreatedAt == "" {
		meeting.CreatedAt = entities.FormatCreatedAt(r.db.NowFunc())
	}
	meeting.ID = 0

	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return 0, fmt.Errorf("failed to insert meeting: %w", err)
	}
	return meeting.ID, nil
}

// ListAll returns id, filename, attendees and created_at of every meeting, newest first
func (r *MeetingRepository) ListAll(ctx context.Context) ([]*entities.MeetingListItem, error) {
	var items []*entities.MeetingListItem
	if err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("id", "filename", "attendees", "created_at").
		Order("id DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return items, nil
}

// GetByID retrieves a meeting by id
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting %d: %w", id, err)
	}
	return &meeting, nil
}
