package handler

import (
	stdErrors "errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/storage"
)

// Uploads serves stored audio files
type Uploads struct {
	store  storage.FileStore
	logger *zap.Logger
}

// NewUploadsHandler creates a new uploads handler
func NewUploadsHandler(store storage.FileStore, logger *zap.Logger) *Uploads {
	return &Uploads{
		store:  store,
		logger: logger,
	}
}

// Serve streams a stored file
// @Summary      Download an uploaded recording
// @Tags         Pages
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored file name"
// @Success      200  {file}    file    "Audio content"
// @Failure      404  {string}  string  "File not found"
// @Router       /uploads/{filename} [get]
func (h *Uploads) Serve(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return echo.ErrNotFound
	}

	obj, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		if stdErrors.Is(err, storage.ErrFileNotFound) {
			return echo.ErrNotFound
		}
		if h.logger != nil {
			h.logger.Error("failed to open upload",
				zap.String("filename", name),
				zap.Error(err),
			)
		}
		return err
	}
	defer obj.Close()

	if obj.Size >= 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}
	return c.Stream(http.StatusOK, obj.ContentType, obj)
}
