package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultAudioExtensions is the allow-list used when none is configured
var DefaultAudioExtensions = []string{"mp3", "wav", "m4a", "flac", "ogg"}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// AudioExtTag is the struct tag checked against the extension allow-list
const AudioExtTag = "audioext"

// New creates a new CustomValidator instance. The "audioext" tag accepts
// filenames whose extension is in allowedExtensions. It panics if the tag
// cannot be registered.
func New(allowedExtensions []string) *CustomValidator {
	cv, err := newWithTag(AudioExtTag, allowedExtensions)
	if err != nil {
		panic(err)
	}
	return cv
}

func newWithTag(tag string, allowedExtensions []string) (*CustomValidator, error) {
	if len(allowedExtensions) == 0 {
		allowedExtensions = DefaultAudioExtensions
	}
	v := validator.New()
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return AllowedFile(fl.Field().String(), allowedExtensions)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register %q validation: %w", tag, err)
	}
	return &CustomValidator{v: v}, nil
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// AllowedFile reports whether filename has an extension from allowed.
// Only the text after the last dot counts and the comparison ignores case.
func AllowedFile(filename string, allowed []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
