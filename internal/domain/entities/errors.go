package entities

import "errors"

// ErrMeetingNotFound is returned when no meeting has the requested id
var ErrMeetingNotFound = errors.New("meeting not found")
