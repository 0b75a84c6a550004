// Package sanitize cleans free-text player input before it leaves the client.
package sanitize

import (
	"regexp"
	"strings"
)

// DefaultLimit is the maximum command length accepted from the player.
const DefaultLimit = 500

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	protoPattern   = regexp.MustCompile(`(?i)javascript:`)
	handlerPattern = regexp.MustCompile(`(?i)on\w+\s*=`)
	unsafeRunes    = strings.NewReplacer("<", "", ">", "", "'", "", `"`, "", "`", "", ";", "")
)

// Text strips markup fragments and unsafe characters, trims surrounding
// whitespace and truncates the result to maxLen runes. It never fails;
// fully-stripped input yields an empty string.
func Text(input string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultLimit
	}

	out := tagPattern.ReplaceAllString(input, "")
	out = protoPattern.ReplaceAllString(out, "")
	out = handlerPattern.ReplaceAllString(out, "")
	out = unsafeRunes.Replace(out)
	out = strings.TrimSpace(out)

	if runes := []rune(out); len(runes) > maxLen {
		out = string(runes[:maxLen])
	}
	return out
}

// Command sanitizes player command text with the default length limit.
func Command(input string) string {
	return Text(input, DefaultLimit)
}
