package handler

import (
	stdErrors "errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-minutes/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-minutes/pkg/jobcontext"
)

// MeetingAPI serves the JSON API under /v1
type MeetingAPI struct {
	service *meetingUsecase.Service
	logger  *zap.Logger
}

// NewMeetingAPIHandler creates a new JSON meeting handler
func NewMeetingAPIHandler(service *meetingUsecase.Service, logger *zap.Logger) *MeetingAPI {
	return &MeetingAPI{
		service: service,
		logger:  logger,
	}
}

// ListMeetings handles GET /v1/meetings
// @Summary      List meetings
// @Description  Returns every meeting, newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  meeting.MeetingListResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /v1/meetings [get]
func (h *MeetingAPI) ListMeetings(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list meetings", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(items))
}

// GetMeeting handles GET /v1/meetings/:id
// @Summary      Get a meeting
// @Description  Returns the transcript, summary, people and action items of one meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      400  {object}  common.ErrorResponse  "Invalid meeting ID"
// @Failure      404  {object}  common.ErrorResponse  "Meeting not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /v1/meetings/{id} [get]
func (h *MeetingAPI) GetMeeting(c echo.Context) error {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting id must be a non-negative integer"))
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if stdErrors.Is(err, entities.ErrMeetingNotFound) {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(raw))
	}
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("get meeting", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// CreateMeeting handles POST /v1/meetings
// @Summary      Upload a meeting recording
// @Description  Runs the same pipeline as the upload form and returns the stored meeting
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio      formData  file    true   "Audio file (mp3, wav, m4a, flac, ogg)"
// @Param        attendees  formData  string  false  "Comma separated attendees"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      400  {object}  common.ErrorResponse  "Missing file"
// @Failure      415  {object}  common.ErrorResponse  "Unsupported file type"
// @Failure      500  {object}  common.ErrorResponse  "Storage or persistence failure"
// @Failure      502  {object}  common.ErrorResponse  "Transcription failed"
// @Router       /v1/meetings [post]
func (h *MeetingAPI) CreateMeeting(c echo.Context) error {
	ctx := jobcontext.JobBegin(c.Request().Context(), getRequestID(c), "api_upload")

	audio := audioFromRequest(c, "audio")
	m, err := h.service.Process(ctx, meetingUsecase.UploadInput{
		Audio:     audio,
		Attendees: c.FormValue("attendees"),
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, audio))
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// toAppError maps pipeline errors onto API errors
func toAppError(err error, audio *meetingUsecase.AudioFile) error {
	var (
		persistErr *meetingUsecase.PersistenceError
		storageErr *meetingUsecase.StorageError
		transErr   *ai.TranscriptionError
	)
	switch {
	case stdErrors.Is(err, ucerrors.ErrNoFilePart):
		return errors.ErrNoFilePart()
	case stdErrors.Is(err, ucerrors.ErrNoSelectedFile):
		return errors.ErrNoSelectedFile()
	case stdErrors.Is(err, ucerrors.ErrUnsupportedFileType):
		name := ""
		if audio != nil {
			name = audio.Name
		}
		return errors.ErrUnsupportedFileType(name)
	case stdErrors.As(err, &transErr):
		return errors.ErrAITranscriptionFailed(transErr.Err)
	case stdErrors.As(err, &storageErr):
		return errors.ErrStorageFailed(storageErr.Op, storageErr.Err)
	case stdErrors.As(err, &persistErr):
		return errors.ErrMeetingPersistFailed(persistErr.Err)
	}
	return errors.ErrInternal(err)
}
