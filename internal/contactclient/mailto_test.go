package contactclient

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitraj/portfolio/internal/contact"
)

func TestMailtoURL(t *testing.T) {
	got := MailtoURL("owner@example.dev", contact.Submission{Name: "Jane Doe", Email: "jane@x.io", Message: "Hi!\nBye"})

	want := "mailto:owner@example.dev" +
		"?subject=Portfolio%20Contact%20from%20Jane%20Doe" +
		"&body=Name%3A%20Jane%20Doe%0AEmail%3A%20jane%40x.io%0A%0AMessage%3A%0AHi!%0ABye"
	assert.Equal(t, want, got)
}

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"abcXYZ019":     "abcXYZ019",
		"-_.!~*'()":     "-_.!~*'()",
		"a b+c&d=e?f/g": "a%20b%2Bc%26d%3De%3Ff%2Fg",
		"café":          "caf%C3%A9",
		"#%":            "%23%25",
	}
	for in, want := range cases {
		assert.Equal(t, want, encodeURIComponent(in), in)
	}
}

func TestEncodeURIComponent_InvalidUTF8(t *testing.T) {
	assert.Equal(t, "a%EF%BF%BDb", encodeURIComponent("a\xffb"))
	assert.Equal(t, "%EF%BF%BD%EF%BF%BD%EF%BF%BD", encodeURIComponent("\xed\xa0\x80"), "encoded lone surrogate")
	assert.Equal(t, encodeURIComponent("\uFFFD"), encodeURIComponent("\xc3"))
}

func TestMailtoURL_MatchesJSONPayloadForInvalidUTF8(t *testing.T) {
	sub := contact.Submission{Name: "Jo\xffe", Email: "jo@x.io", Message: "hi \xed\xa0\x80"}

	payload, err := json.Marshal(sub)
	require.NoError(t, err)
	var sent contact.Submission
	require.NoError(t, json.Unmarshal(payload, &sent))

	assert.Equal(t, MailtoURL("owner@example.dev", sent), MailtoURL("owner@example.dev", sub))
	assert.True(t, utf8.ValidString(sent.Name))
}
