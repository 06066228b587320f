package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer formats catalog messages for one request's language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T formats key through loc. Without a localizer string keys are formatted
// as-is so components still render in tests.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	format, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
