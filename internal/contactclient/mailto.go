package contactclient

import (
	"strings"
	"unicode/utf8"

	"github.com/ankitraj/portfolio/internal/contact"
)

// MailtoURL builds the fallback link opened when the API is unavailable.
func MailtoURL(recipient string, sub contact.Submission) string {
	subject := "Portfolio Contact from " + sub.Name
	body := "Name: " + sub.Name + "\nEmail: " + sub.Email + "\n\nMessage:\n" + sub.Message
	return "mailto:" + recipient + "?subject=" + encodeURIComponent(subject) + "&body=" + encodeURIComponent(body)
}

// encodeURIComponent matches the JavaScript function of the same name so
// links built here and in the browser are identical. Each invalid UTF-8 byte
// becomes U+FFFD, the same substitution json.Marshal makes in the API
// payload; JavaScript strings cannot carry such bytes at all.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		if r < utf8.RuneSelf && isUnreserved(byte(r)) {
			b.WriteByte(byte(r))
			continue
		}
		n := utf8.EncodeRune(buf[:], r)
		for _, c := range buf[:n] {
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
