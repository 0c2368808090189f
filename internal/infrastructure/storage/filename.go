package storage

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SecureFilename returns a version of name that is safe to store on a
// regular file system: unicode is folded to ASCII, path separators and
// whitespace become underscores, characters outside [A-Za-z0-9_.-] are
// dropped, and leading or trailing dots and underscores are stripped.
// The result may be empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var ascii strings.Builder
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			ascii.WriteRune(r)
		}
	}

	spaced := strings.NewReplacer("/", " ", "\\", " ").Replace(ascii.String())
	joined := strings.Join(strings.Fields(spaced), "_")

	var out strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == '_', r == '.', r == '-':
			out.WriteRune(r)
		}
	}

	return strings.Trim(out.String(), "._")
}
