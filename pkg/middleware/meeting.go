package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MeetingIDKey is the echo context key holding the parsed meeting id
const MeetingIDKey = "meeting_id"

// RequireMeetingID parses the :id path parameter as a positive integer and
// stores it under MeetingIDKey. Anything else is a 404, as if no route matched.
func RequireMeetingID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil || id < 0 {
				return echo.ErrNotFound
			}
			c.Set(MeetingIDKey, id)
			return next(c)
		}
	}
}

// GetMeetingID returns the id stored by RequireMeetingID
func GetMeetingID(c echo.Context) (int64, bool) {
	id, ok := c.Get(MeetingIDKey).(int64)
	return id, ok
}
