package security

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxInputLen    = 1000
	maxResponseLen = 10000
)

var (
	injectionChars = regexp.MustCompile("[<>\"'`]")
	jsProtocol     = regexp.MustCompile(`(?i)javascript:`)
	dataProtocol   = regexp.MustCompile(`(?i)data:`)
	vbsProtocol    = regexp.MustCompile(`(?i)vbscript:`)
	scriptTags     = regexp.MustCompile(`(?is)<script\b[^<]*(?:<[^<]*)*?</script>`)
	dataHTMLURL    = regexp.MustCompile(`(?i)data:text/html`)
	eventHandlers  = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeInput cleans raw user text for transmission to the external
// AI service: injection characters and executable protocols removed,
// length capped, whitespace trimmed. An unusable input yields "".
func SanitizeInput(input string) string {
	s := injectionChars.ReplaceAllString(input, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = dataProtocol.ReplaceAllString(s, "")
	s = vbsProtocol.ReplaceAllString(s, "")
	s = truncateRunes(s, maxInputLen)
	return strings.TrimSpace(s)
}

// FilterResponse strips script fragments, executable URLs and inline
// event handlers from an AI response and caps its length. The response
// is untrusted input; this runs before any further parsing.
func FilterResponse(response string) string {
	s := scriptTags.ReplaceAllString(response, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = dataHTMLURL.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	return truncateRunes(s, maxResponseLen)
}

// truncateRunes caps s at n runes, never splitting a multibyte rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
