package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-minutes/pkg/jwt"
)

const (
	// SessionCookieName is the cookie carrying the signed session token
	SessionCookieName = "session"

	sessionContextKey = "session"
)

// Session is the flash-message session bound to one browser
type Session struct {
	ID     string
	store  cache.FlashStore
	logger *zap.Logger
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(ctx context.Context, message string) {
	if err := s.store.Push(ctx, s.ID, message); err != nil && s.logger != nil {
		s.logger.Error("failed to store flash message",
			zap.String("session_id", s.ID),
			zap.Error(err),
		)
	}
}

// Flashes returns and clears the queued messages
func (s *Session) Flashes(ctx context.Context) []string {
	messages, err := s.store.Pop(ctx, s.ID)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to read flash messages",
				zap.String("session_id", s.ID),
				zap.Error(err),
			)
		}
		return nil
	}
	return messages
}

// SessionMiddleware attaches a flash session to every request, issuing a
// new signed cookie when the request carries none or an invalid one
type SessionMiddleware struct {
	store  cache.FlashStore
	tokens *jwt.Manager
	secure bool
	logger *zap.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store cache.FlashStore, tokens *jwt.Manager, secure bool, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:  store,
		tokens: tokens,
		secure: secure,
		logger: logger,
	}
}

// Handle returns the echo middleware function
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if sid, err := m.tokens.ValidateSessionToken(cookie.Value); err == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sessionID = jwt.NewSessionID()
			token, err := m.tokens.GenerateSessionToken(sessionID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to start session")
			}
			c.SetCookie(&http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionContextKey, &Session{ID: sessionID, store: m.store, logger: m.logger})
		return next(c)
	}
}

// GetSession returns the session set by SessionMiddleware, or nil
func GetSession(c echo.Context) *Session {
	s, _ := c.Get(sessionContextKey).(*Session)
	return s
}

// AddFlash queues a message on the request's session, if any
func AddFlash(c echo.Context, message string) {
	if s := GetSession(c); s != nil {
		s.Flash(c.Request().Context(), message)
	}
}

// ConsumeFlashes returns and clears the request session's messages
func ConsumeFlashes(c echo.Context) []string {
	if s := GetSession(c); s != nil {
		return s.Flashes(c.Request().Context())
	}
	return nil
}
