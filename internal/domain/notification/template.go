package notification

import (
	"bytes"
	"html/template"
)

const (
	FallbackTitle   = "Notification"
	FallbackContent = "Notification content"
)

type renderView struct {
	UserName      string
	JobTitle      string
	Company       string
	ApplicationID string
	InterviewDate string
	InterviewType string
}

type messageTemplate struct {
	subject string
	body    *template.Template
}

var funcs = template.FuncMap{
	"fallback": func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	},
}

func mustBody(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

var templates = map[Type]messageTemplate{
	TypeApplicationSubmission: {
		subject: "Your application has been submitted",
		body: mustBody("applicationSubmission", `
<h2>Application Submitted Successfully</h2>
<p>Dear {{fallback .UserName "User"}},</p>
<p>Your application for the position of <strong>{{.JobTitle}}</strong> at <strong>{{.Company}}</strong> has been successfully submitted.</p>
<p>We'll keep you updated as your application progresses.</p>
<p>Application Reference: {{fallback .ApplicationID "N/A"}}</p>
<p>Best regards,<br/>CareerLaunch Team</p>
`),
	},
	TypeApplicationReview: {
		subject: "Your application is being reviewed",
		body: mustBody("applicationReview", `
<h2>Application Under Review</h2>
<p>Dear {{fallback .UserName "User"}},</p>
<p>Your application for <strong>{{.JobTitle}}</strong> at <strong>{{.Company}}</strong> is now being reviewed by the hiring team.</p>
<p>We'll notify you of any updates or decisions.</p>
<p>Application Reference: {{fallback .ApplicationID "N/A"}}</p>
<p>Best regards,<br/>CareerLaunch Team</p>
`),
	},
	TypeInterviewInvitation: {
		subject: "You've been invited for an interview",
		body: mustBody("interviewInvitation", `
<h2>Interview Invitation</h2>
<p>Dear {{fallback .UserName "User"}},</p>
<p>Congratulations! You've been selected for an interview for the <strong>{{.JobTitle}}</strong> position at <strong>{{.Company}}</strong>.</p>
<p>Interview Details:</p>
<ul>
  <li>Date: {{fallback .InterviewDate "To be scheduled"}}</li>
  <li>Type: {{fallback .InterviewType "To be determined"}}</li>
</ul>
<p>Please confirm your availability by responding to this email or through the CareerLaunch platform.</p>
<p>Best regards,<br/>CareerLaunch Team</p>
`),
	},
	TypeApplicationRejection: {
		subject: "Update on your job application",
		body: mustBody("applicationRejection", `
<h2>Application Update</h2>
<p>Dear {{fallback .UserName "User"}},</p>
<p>Thank you for applying for the <strong>{{.JobTitle}}</strong> position at <strong>{{.Company}}</strong>.</p>
<p>After careful consideration, the hiring team has decided to move forward with other candidates whose qualifications more closely match their current needs.</p>
<p>We appreciate your interest and encourage you to apply for future positions that match your skills and experience.</p>
<p>Best regards,<br/>CareerLaunch Team</p>
`),
	},
}

// Render produces the title and HTML body for a notification. Types without
// a template get the generic fallback text.
func Render(t Type, p Payload) (title, content string, err error) {
	tmpl, ok := templates[t]
	if !ok || p == nil {
		return FallbackTitle, FallbackContent, nil
	}

	var buf bytes.Buffer
	if err := tmpl.body.Execute(&buf, p.view()); err != nil {
		return "", "", err
	}
	return tmpl.subject, buf.String(), nil
}

// Subject returns the template subject for t, or the fallback title.
func Subject(t Type) string {
	if tmpl, ok := templates[t]; ok {
		return tmpl.subject
	}
	return FallbackTitle
}
