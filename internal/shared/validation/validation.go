// Package validation provides the input gates applied to every
// user-supplied string before it reaches the identity provider or the
// store: shape/length predicates plus HTML sanitization for the two
// display contexts (limited rich text vs. plain text).
package validation

import (
	"html"
	"net/url"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Configured bounds. Names cover Latin letters, digits and the Arabic
// block so bilingual display names validate the same way.
const (
	MaxEmailLength    = 100
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 8
	MaxMessageLength  = 1000
	MaxSlugLength     = 80
	MinTitleLength    = 2
	MaxTitleLength    = 200
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Latin letters, digits, the Arabic block (U+0600–U+06FF),
	// whitespace, hyphen, underscore and period.
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9\x{0600}-\x{06FF}\s_.-]+$`)

	// URL-path safe: lowercase words joined by single hyphens.
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// richText keeps a small allow-list of formatting tags and strips
// everything with an execution vector: script/style elements, inline
// event handlers and javascript: URIs.
var richText = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "em", "strong", "u", "p", "br", "ul", "ol", "li", "blockquote")
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowStandardURLs()
	return p
}()

// ValidEmail reports whether s is a syntactically valid email address
// within the configured length bound.
func ValidEmail(s string) bool {
	return len(s) <= MaxEmailLength && emailPattern.MatchString(s)
}

// ValidName reports whether s is a display name of 2–50 runes drawn
// from the allowed alphabet.
func ValidName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < MinNameLength || n > MaxNameLength {
		return false
	}
	return namePattern.MatchString(s)
}

// ValidPassword reports whether s is at least 8 characters and contains
// at least one letter and one digit.
func ValidPassword(s string) bool {
	if len(s) < MinPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ValidMessage reports whether s is non-empty and within the message
// length bound. Content filtering is the sanitizer's job, not this one's.
func ValidMessage(s string) bool {
	n := utf8.RuneCountInString(s)
	return n > 0 && n <= MaxMessageLength
}

// ValidSlug reports whether s is a URL-path safe identifier within the
// slug length bound.
func ValidSlug(s string) bool {
	return len(s) <= MaxSlugLength && slugPattern.MatchString(s)
}

// ValidTitle reports whether s is a title of 2–200 runes.
func ValidTitle(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= MinTitleLength && n <= MaxTitleLength
}

// ValidURL reports whether s parses as an absolute http or https URL.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SanitizeHTML returns s with all markup removed except the rich-text
// allow-list. Allowed presentational markup survives verbatim; script
// execution vectors do not.
func SanitizeHTML(s string) string {
	return richText.Sanitize(s)
}

// EscapeHTML converts all markup characters to their literal display
// form. No tags survive; use for plain-text display contexts.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
