package contact

import "regexp"

// emailPattern is deliberately loose: something@something.something with no
// whitespace and a single '@'. The browser form applies the same pattern.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a single contact-form payload. It is never stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks that all fields are present and the email is well formed.
// The returned error is a *ValidationError.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return &ValidationError{Err: ErrMissingFields}
	}
	if !ValidEmail(s.Email) {
		return &ValidationError{Err: ErrInvalidEmail}
	}
	return nil
}

// ValidEmail reports whether addr matches the contact form's email pattern.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}
