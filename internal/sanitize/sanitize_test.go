package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsScriptTags(t *testing.T) {
	out := Command(`<script>alert(1)</script>save the inventor`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<")
	assert.Contains(t, out, "save the inventor")
}

func TestTextStripsProtocolAndHandlers(t *testing.T) {
	cases := map[string]string{
		"javascript:void(0) observe the siege": "javascript:",
		"JAVASCRIPT:steal()":                   "javascript:",
		`img onerror=alert(1) watch`:           "onerror=",
		"onclick = doEvil watch the workshop":  "onclick",
	}
	for input, banned := range cases {
		out := Command(input)
		assert.NotContains(t, strings.ToLower(out), banned, "input %q", input)
	}
}

func TestTextStripsUnsafeCharacters(t *testing.T) {
	out := Command("warn 'Leonardo'; drop \"table\" `now`")
	for _, c := range []string{"<", ">", "'", `"`, "`", ";"} {
		assert.NotContains(t, out, c)
	}
	assert.Contains(t, out, "warn Leonardo")
}

func TestTextTruncatesToLimit(t *testing.T) {
	long := strings.Repeat("a", DefaultLimit*2)
	assert.Len(t, Command(long), DefaultLimit)

	assert.Len(t, Text(long, 10), 10)
}

func TestTextTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "observe", Command("   observe \n"))
}

func TestTextEmptyAfterStripping(t *testing.T) {
	assert.Equal(t, "", Command("<b></b>"))
	assert.Equal(t, "", Command(""))
}
