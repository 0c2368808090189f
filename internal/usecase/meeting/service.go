package meeting

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-minutes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-minutes/pkg/jobcontext"
)

// AIGateway is the part of the AI gateway the pipeline depends on
type AIGateway interface {
	Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error)
	SummarizeWithTags(ctx context.Context, transcript, attendees string, maxPoints int) (ai.Sections, error)
}

// Validator validates structs; satisfied by pkg/validator.CustomValidator
type Validator interface {
	Validate(i interface{}) error
}

// AudioFile is an uploaded file part
type AudioFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// UploadInput is one upload request. Audio is nil when the request had no file part.
type UploadInput struct {
	Audio     *AudioFile
	Attendees string
}

// audioName is validated against the configured extension allow-list
type audioName struct {
	Name string `validate:"audioext"`
}

var audioMIMETypes = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"m4a":  "audio/mp4",
	"flac": "audio/flac",
	"ogg":  "audio/ogg",
}

// Service runs the upload pipeline and reads stored meetings
type Service struct {
	repo      repositories.MeetingRepository
	store     storage.FileStore
	gateway   AIGateway
	validator Validator
	maxPoints int
	logger    *zap.Logger
}

// NewService creates a new meeting service
func NewService(
	repo repositories.MeetingRepository,
	store storage.FileStore,
	gateway AIGateway,
	validator Validator,
	maxPoints int,
	logger *zap.Logger,
) *Service {
	if maxPoints <= 0 {
		maxPoints = ai.DefaultMaxPoints
	}
	return &Service{
		repo:      repo,
		store:     store,
		gateway:   gateway,
		validator: validator,
		maxPoints: maxPoints,
		logger:    logger,
	}
}

// Process validates and stores the upload, transcribes it, summarizes the
// transcript and inserts the meeting.
//
// Validation errors are the sentinels in internal/usecase/errors. A storage
// failure is a *StorageError and a transcription failure an
// *ai.TranscriptionError; neither writes a row. A failed summary is logged
// and the meeting is stored without sections. A failed insert returns a
// *PersistenceError carrying the unsaved meeting.
func (s *Service) Process(ctx context.Context, in UploadInput) (*entities.Meeting, error) {
	if in.Audio == nil {
		return nil, ucerrors.ErrNoFilePart
	}
	if in.Audio.Name == "" {
		return nil, ucerrors.ErrNoSelectedFile
	}
	if err := s.validator.Validate(audioName{Name: in.Audio.Name}); err != nil {
		return nil, ucerrors.ErrUnsupportedFileType
	}

	filename := storage.SecureFilename(in.Audio.Name)
	if filename == "" {
		return nil, ucerrors.ErrNoSelectedFile
	}

	contentType, err := s.save(ctx, filename, in.Audio)
	if err != nil {
		return nil, err
	}

	transcript, err := s.transcribe(ctx, filename, contentType)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("transcription failed", append(jobcontext.LogFields(ctx),
				zap.String("filename", filename),
				zap.Error(err),
			)...)
		}
		return nil, err
	}

	sections, err := s.gateway.SummarizeWithTags(ctx, transcript, in.Attendees, s.maxPoints)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("summarization failed, storing transcript only", append(jobcontext.LogFields(ctx),
				zap.String("filename", filename),
				zap.Error(err),
			)...)
		}
		sections = ai.Sections{}
	}

	meeting := entities.NewMeeting(filename, in.Attendees, transcript)
	meeting.Summary = sections.Summary
	meeting.People = sections.People
	meeting.ActionItems = sections.ActionItems

	id, err := s.repo.Insert(ctx, meeting)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to insert meeting", append(jobcontext.LogFields(ctx),
				zap.String("filename", filename),
				zap.Error(err),
			)...)
		}
		return nil, &PersistenceError{Meeting: meeting, Err: err}
	}
	meeting.ID = id

	if s.logger != nil {
		s.logger.Info("meeting processed", append(jobcontext.LogFields(ctx),
			zap.Int64("meeting_id", id),
			zap.String("filename", filename),
			zap.Bool("has_summary", meeting.Summary != nil),
		)...)
	}
	return meeting, nil
}

// save writes the upload to the file store and returns its sniffed content type
func (s *Service) save(ctx context.Context, filename string, audio *AudioFile) (string, error) {
	src, err := audio.Open()
	if err != nil {
		return "", &StorageError{Op: "read upload", Err: err}
	}
	defer src.Close()

	contentType, r, err := storage.SniffContentType(src)
	if err != nil {
		return "", &StorageError{Op: "read upload", Err: err}
	}

	if err := s.store.Save(ctx, filename, r, audio.Size, contentType); err != nil {
		return "", &StorageError{Op: "save", Err: err}
	}
	return contentType, nil
}

// transcribe reads the stored file back and sends it to the gateway
func (s *Service) transcribe(ctx context.Context, filename, contentType string) (string, error) {
	obj, err := s.store.Open(ctx, filename)
	if err != nil {
		return "", &StorageError{Op: "open", Err: err}
	}
	defer obj.Close()

	return s.gateway.Transcribe(ctx, obj, audioMIMEType(filename, contentType))
}

// audioMIMEType prefers a sniffed audio type and otherwise guesses from the extension
func audioMIMEType(filename, sniffed string) string {
	if strings.HasPrefix(sniffed, "audio/") {
		return sniffed
	}
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		if mt, ok := audioMIMETypes[strings.ToLower(filename[idx+1:])]; ok {
			return mt
		}
	}
	return sniffed
}

// List returns every meeting, newest first
func (s *Service) List(ctx context.Context) ([]*entities.MeetingListItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return items, nil
}

// Get returns one meeting or entities.ErrMeetingNotFound
func (s *Service) Get(ctx context.Context, id int64) (*entities.Meeting, error) {
	return s.repo.GetByID(ctx, id)
}
