package handler

import (
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-minutes/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-minutes/internal/usecase/errors"
	meetingUsecase "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-minutes/pkg/jobcontext"
	pkgmw "github.com/johnquangdev/meeting-minutes/pkg/middleware"
)

// Flash texts shown to the user
const (
	flashNoFilePart       = "No file part"
	flashNoSelectedFile   = "No selected file"
	flashUnsupportedType  = "Unsupported file type"
	flashMeetingNotFound  = "Meeting not found"
	flashTranscriptionErr = "Error during transcription: %v"
	flashSaveErr          = "Error saving file: %v"
	flashUnexpectedErr    = "Unexpected error: %v"
)

// Meeting handles the HTML pages of the application
type Meeting struct {
	service *meetingUsecase.Service
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// Index renders the upload form
func (h *Meeting) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", PageData{
		Flashes: middleware.ConsumeFlashes(c),
	})
}

// Upload handles POST /upload
// @Summary      Upload a meeting recording
// @Description  Stores the audio, transcribes it, extracts summary, people and action items, then redirects to the meeting page. Failures flash a message and redirect to the form.
// @Tags         Pages
// @Accept       multipart/form-data
// @Produce      html
// @Param        audio      formData  file    true   "Audio file (mp3, wav, m4a, flac, ogg)"
// @Param        attendees  formData  string  false  "Comma separated attendees"
// @Success      200  {string}  string  "Results rendered inline when the meeting could not be saved"
// @Success      302  {string}  string  "Redirect to /meetings/{id} or back to /"
// @Router       /upload [post]
func (h *Meeting) Upload(c echo.Context) error {
	ctx := jobcontext.JobBegin(c.Request().Context(), getRequestID(c), "upload")

	m, err := h.service.Process(ctx, meetingUsecase.UploadInput{
		Audio:     audioFromRequest(c, "audio"),
		Attendees: c.FormValue("attendees"),
	})
	if err == nil {
		return c.Redirect(http.StatusFound, fmt.Sprintf("/meetings/%d", m.ID))
	}

	var (
		persistErr *meetingUsecase.PersistenceError
		storageErr *meetingUsecase.StorageError
		transErr   *ai.TranscriptionError
	)
	switch {
	case stdErrors.As(err, &persistErr):
		return c.Render(http.StatusOK, "index.html", PageData{
			Flashes: middleware.ConsumeFlashes(c),
			Result:  persistErr.Meeting,
		})
	case stdErrors.Is(err, ucerrors.ErrNoFilePart):
		middleware.AddFlash(c, flashNoFilePart)
	case stdErrors.Is(err, ucerrors.ErrNoSelectedFile):
		middleware.AddFlash(c, flashNoSelectedFile)
	case stdErrors.Is(err, ucerrors.ErrUnsupportedFileType):
		middleware.AddFlash(c, flashUnsupportedType)
	case stdErrors.As(err, &transErr):
		middleware.AddFlash(c, fmt.Sprintf(flashTranscriptionErr, transErr.Err))
	case stdErrors.As(err, &storageErr):
		middleware.AddFlash(c, fmt.Sprintf(flashSaveErr, storageErr.Err))
	default:
		if h.logger != nil {
			h.logger.Error("upload failed", zap.Error(err))
		}
		middleware.AddFlash(c, fmt.Sprintf(flashUnexpectedErr, err))
	}
	return c.Redirect(http.StatusFound, "/")
}

// audioFromRequest returns the named file part, an AudioFile with an empty
// name when the part was sent without a filename, or nil when it is missing
func audioFromRequest(c echo.Context, field string) *meetingUsecase.AudioFile {
	fh, err := c.FormFile(field)
	if err == nil {
		return &meetingUsecase.AudioFile{
			Name: fh.Filename,
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}
	}

	// Parts without a filename are parsed as plain form values
	if form := c.Request().MultipartForm; form != nil {
		if _, ok := form.Value[field]; ok {
			return &meetingUsecase.AudioFile{}
		}
	}
	return nil
}

// List renders every meeting, newest first
// @Summary      List meetings page
// @Tags         Pages
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "meetings.html", PageData{
		Flashes:  middleware.ConsumeFlashes(c),
		Meetings: items,
	})
}

// View renders one meeting
// @Summary      Meeting detail page
// @Tags         Pages
// @Produce      html
// @Param        id   path  int  true  "Meeting ID"
// @Success      200  {string}  string  "HTML page"
// @Success      302  {string}  string  "Redirect to /meetings when not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) View(c echo.Context) error {
	m, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	return c.Render(http.StatusOK, "view_meeting.html", PageData{
		Flashes: middleware.ConsumeFlashes(c),
		Meeting: m,
	})
}

// DownloadTranscript returns the transcript as a text attachment
// @Summary      Download transcript
// @Tags         Pages
// @Produce      plain
// @Param        id   path  int  true  "Meeting ID"
// @Success      200  {string}  string  "transcript_{id}.txt"
// @Success      302  {string}  string  "Redirect to /meetings when not found"
// @Router       /meetings/{id}/download_transcript [get]
func (h *Meeting) DownloadTranscript(c echo.Context) error {
	m, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	return attachment(c, fmt.Sprintf("transcript_%d.txt", m.ID), m.Transcript)
}

// DownloadActions returns the action items as a text attachment
// @Summary      Download action items
// @Tags         Pages
// @Produce      plain
// @Param        id   path  int  true  "Meeting ID"
// @Success      200  {string}  string  "actions_{id}.txt"
// @Success      302  {string}  string  "Redirect to /meetings when not found"
// @Router       /meetings/{id}/download_actions [get]
func (h *Meeting) DownloadActions(c echo.Context) error {
	m, ok, err := h.lookup(c)
	if !ok {
		return err
	}
	return attachment(c, fmt.Sprintf("actions_%d.txt", m.ID), m.ActionItemsText())
}

// lookup loads the meeting named by the path. When ok is false the response
// has been decided and err is what the handler must return.
func (h *Meeting) lookup(c echo.Context) (*entities.Meeting, bool, error) {
	id, found := pkgmw.GetMeetingID(c)
	if !found {
		return nil, false, echo.ErrNotFound
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if stdErrors.Is(err, entities.ErrMeetingNotFound) {
		middleware.AddFlash(c, flashMeetingNotFound)
		return nil, false, c.Redirect(http.StatusFound, "/meetings")
	}
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to load meeting",
				zap.Int64("meeting_id", id),
				zap.Error(err),
			)
		}
		return nil, false, err
	}
	return m, true, nil
}

func attachment(c echo.Context, filename, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
