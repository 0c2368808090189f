package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-minutes/errors"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
	pkgmw "github.com/johnquangdev/meeting-minutes/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	db             *gorm.DB
	meetingHandler *Meeting
	apiHandler     *MeetingAPI
	uploadsHandler *Uploads
	session        *middleware.SessionMiddleware
	logger         *zap.Logger
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	meetingHandler *Meeting,
	apiHandler *MeetingAPI,
	uploadsHandler *Uploads,
	session *middleware.SessionMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:            cfg,
		db:             db,
		meetingHandler: meetingHandler,
		apiHandler:     apiHandler,
		uploadsHandler: uploadsHandler,
		session:        session,
		logger:         logger,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.HTTPErrorHandler = rt.errorHandler(e.DefaultHTTPErrorHandler)

	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// HTML pages share the flash session
	rt.setupPageRoutes(e.Group("", rt.session.Handle))

	// API v1 group
	rt.setupAPIRoutes(e.Group("/v1"))
}

// setupPageRoutes configures the upload form and meeting pages
func (rt *Router) setupPageRoutes(g *echo.Group) {
	g.GET("/", rt.meetingHandler.Index)
	g.POST("/upload", rt.meetingHandler.Upload)
	g.GET("/uploads/*", rt.uploadsHandler.Serve)
	g.GET("/meetings", rt.meetingHandler.List)

	byID := g.Group("/meetings/:id", pkgmw.RequireMeetingID())
	byID.GET("", rt.meetingHandler.View)
	byID.GET("/download_transcript", rt.meetingHandler.DownloadTranscript)
	byID.GET("/download_actions", rt.meetingHandler.DownloadActions)
}

// setupAPIRoutes configures the JSON meeting routes
func (rt *Router) setupAPIRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")
	meetingGroup.GET("", rt.apiHandler.ListMeetings)
	meetingGroup.POST("", rt.apiHandler.CreateMeeting)
	meetingGroup.GET("/:id", rt.apiHandler.GetMeeting)
}

// errorHandler renders unmatched /v1 routes with the API error envelope and
// leaves everything else to echo
func (rt *Router) errorHandler(fallback echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed || !strings.HasPrefix(c.Request().URL.Path, "/v1/") {
			fallback(err, c)
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) && he.Code == http.StatusNotFound {
			_ = HandleError(rt.logger, c, errors.ErrNotFound("route"))
			return
		}
		_ = HandleError(rt.logger, c, err)
	}
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Failure      503  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Database:    "ok",
	}

	status := http.StatusOK
	if sqlDB, err := rt.db.DB(); err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}
