// Package i18n defines the locales the application ships and the helpers
// used to resolve a requested language to one of them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{
		language.MustParse("en-US"),
		language.MustParse("ar-AE"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// SupportedTags returns a copy of the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and reports whether it matches a supported tag
// with at least high confidence.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// MatchTags returns the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}

// IsRTL reports whether tag is written right to left.
func IsRTL(tag language.Tag) bool {
	base, _ := tag.Base()
	switch base.String() {
	case "ar", "fa", "he", "ur":
		return true
	default:
		return false
	}
}
