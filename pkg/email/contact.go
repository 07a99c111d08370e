package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"portfolio-backend/pkg/sanitizer"
)

// Layout selects how a contact submission is laid out in the notification.
type Layout string

const (
	// LayoutFull lists name, email, subject and message under a heading.
	LayoutFull Layout = "full"
	// LayoutCompact lists name, email and message only.
	LayoutCompact Layout = "compact"
)

const noSubject = "(no subject)"

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// RenderedEmail is the subject and bodies produced for one submission.
type RenderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

type contactLayout struct {
	text     *template.Template
	markdown *template.Template
}

const fullText = `New Contact Form Submission

Name: {{.SenderName}}
Email: {{.SenderEmail}}
Subject: {{.Subject}}

Message:
{{.Message}}
`

const compactText = `Name: {{.SenderName}}
Email: {{.SenderEmail}}

Message:
{{.Message}}
`

const fullMarkdown = `## New Contact Form Submission

**Name:** {{md .SenderName}}
**Email:** {{md .SenderEmail}}
**Subject:** {{md .Subject}}

---

{{md .Message}}
`

const compactMarkdown = `**Name:** {{md .SenderName}}
**Email:** {{md .SenderEmail}}

---

{{md .Message}}
`

// htmlShell wraps the rendered markdown; styles are inline-friendly for mail clients.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .content { padding: 20px; background: #f9f9f9; border-left: 4px solid #0066cc; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="content">{{.Body}}</div>
        <div class="footer">
            <p>Sent from the portfolio contact form. Reply to this email to answer {{.SenderEmail}}.</p>
        </div>
    </div>
</body>
</html>`

var (
	funcs = template.FuncMap{"md": escapeMarkdown}

	layouts = map[Layout]contactLayout{
		LayoutFull: {
			text:     template.Must(template.New("full.txt").Parse(fullText)),
			markdown: template.Must(template.New("full.md").Funcs(funcs).Parse(fullMarkdown)),
		},
		LayoutCompact: {
			text:     template.Must(template.New("compact.txt").Parse(compactText)),
			markdown: template.Must(template.New("compact.md").Funcs(funcs).Parse(compactMarkdown)),
		},
	}

	shell = htmltemplate.Must(htmltemplate.New("shell").Parse(htmlShell))

	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
)

// ParseLayout maps a config value to a Layout.
func ParseLayout(name string) (Layout, error) {
	layout := Layout(strings.ToLower(strings.TrimSpace(name)))
	if layout == "" {
		return LayoutFull, nil
	}
	if _, ok := layouts[layout]; !ok {
		return "", fmt.Errorf("email: unknown contact layout %q", name)
	}
	return layout, nil
}

// RenderContact builds subject, plain-text and HTML bodies for a submission.
func RenderContact(layout Layout, data ContactEmailData) (*RenderedEmail, error) {
	l, ok := layouts[layout]
	if !ok {
		return nil, fmt.Errorf("email: unknown contact layout %q", layout)
	}
	if data.Subject == "" {
		data.Subject = noSubject
	}

	var text bytes.Buffer
	if err := l.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to execute text template: %w", err)
	}

	var md bytes.Buffer
	if err := l.markdown.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("failed to execute markdown template: %w", err)
	}
	var body bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	var page bytes.Buffer
	err := shell.Execute(&page, struct {
		Body        htmltemplate.HTML
		SenderEmail string
	}{
		Body:        htmltemplate.HTML(sanitizer.SafeHTML(body.String())),
		SenderEmail: data.SenderEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &RenderedEmail{
		Subject: "New Contact Form: " + data.Subject,
		Text:    text.String(),
		HTML:    page.String(),
	}, nil
}

// escapeMarkdown backslash-escapes ASCII punctuation so visitor text renders literally.
func escapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune("\\`*_{}[]()#+-.!<>|~&\"'=:", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
