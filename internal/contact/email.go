package contact

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// Site identifies the portfolio in outbound email.
type Site struct {
	Name string
	URL  string
}

// RenderedEmail is the transactional email built from one submission.
type RenderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

type emailData struct {
	Submission
	Site Site
}

var templateFuncs = htmltemplate.FuncMap{
	"lines": splitLines,
}

var htmlBody = htmltemplate.Must(htmltemplate.New("contact.html").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%); padding: 30px; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 24px;">New Portfolio Contact</h1>
  </div>
  <div style="background: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; border-top: none;">
    <table style="width: 100%; border-collapse: collapse;">
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;"><strong style="color: #6366f1;">Name:</strong></td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;">{{.Name}}</td>
      </tr>
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;"><strong style="color: #6366f1;">Email:</strong></td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb;"><a href="mailto:{{.Email}}" style="color: #6366f1;">{{.Email}}</a></td>
      </tr>
    </table>
    <div style="margin-top: 20px;">
      <strong style="color: #6366f1;">Message:</strong>
      <div style="background: white; padding: 15px; border-radius: 8px; margin-top: 10px; border-left: 4px solid #6366f1;">
        {{range $i, $line := lines .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}
      </div>
    </div>
  </div>
  <div style="background: #1f2937; padding: 20px; border-radius: 0 0 10px 10px; text-align: center;">
    <p style="color: #9ca3af; margin: 0; font-size: 12px;">
      Sent from <a href="{{.Site.URL}}" style="color: #6366f1;">{{.Site.Name}}</a> contact form
    </p>
  </div>
</body>
</html>
`))

var textBody = texttemplate.Must(texttemplate.New("contact.txt").Parse(`New Portfolio Contact

Name: {{.Name}}
Email: {{.Email}}

Message:
{{.Message}}

---
Sent from {{.Site.Name}}`))

// RenderEmail builds the subject and both bodies for a submission.
func RenderEmail(sub Submission, site Site) (RenderedEmail, error) {
	data := emailData{Submission: sub, Site: site}

	var html bytes.Buffer
	if err := htmlBody.Execute(&html, data); err != nil {
		return RenderedEmail{}, fmt.Errorf("contact: render html: %w", err)
	}
	var text bytes.Buffer
	if err := textBody.Execute(&text, data); err != nil {
		return RenderedEmail{}, fmt.Errorf("contact: render text: %w", err)
	}

	return RenderedEmail{
		Subject: fmt.Sprintf("New Contact from %s - %s", sub.Name, site.Name),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
