package recruiter

import (
	"html"
	"regexp"
	"strings"
	"time"

	"careerlaunch/internal/pkg/patch"
)

// Well-known placeholders offered by the template editor. Any other
// {{name}} is substituted the same way.
const (
	PlaceholderCandidateName   = "candidateName"
	PlaceholderPosition        = "position"
	PlaceholderCompany         = "company"
	PlaceholderRecruiterName   = "recruiterName"
	PlaceholderInterviewDate   = "interviewDate"
	PlaceholderInterviewTime   = "interviewTime"
	PlaceholderInterviewFormat = "interviewFormat"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

type EmailTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	Category    TemplateCategory `json:"category"`
	IsDefault   bool             `json:"isDefault"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

type EmailTemplateDraft struct {
	Name      string
	Subject   string
	Body      string
	Category  TemplateCategory
	IsDefault bool
}

type EmailTemplatePatch struct {
	Name      *string
	Subject   *string
	Body      *string
	Category  *TemplateCategory
	IsDefault *bool
}

func NewEmailTemplate(id string, d EmailTemplateDraft, now time.Time) (EmailTemplate, error) {
	t := EmailTemplate{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		Subject:     d.Subject,
		Body:        d.Body,
		Category:    d.Category,
		IsDefault:   d.IsDefault,
		LastUpdated: now,
	}
	if err := t.Validate(); err != nil {
		return EmailTemplate{}, err
	}
	return t, nil
}

func (t EmailTemplate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(t.Subject) == "" {
		return ErrEmptySubject
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

func (t EmailTemplate) Apply(p EmailTemplatePatch, now time.Time) (EmailTemplate, error) {
	out := t
	out.Name = patch.Coalesce(p.Name, t.Name)
	out.Subject = patch.Coalesce(p.Subject, t.Subject)
	out.Body = patch.Coalesce(p.Body, t.Body)
	out.Category = patch.Coalesce(p.Category, t.Category)
	out.IsDefault = patch.Coalesce(p.IsDefault, t.IsDefault)
	out.LastUpdated = now

	if err := out.Validate(); err != nil {
		return EmailTemplate{}, err
	}
	return out, nil
}

// Render substitutes {{name}} placeholders in subject and body. Placeholders
// without a value are left in place so the gap stays visible. Values are
// HTML-escaped in the body; the subject is plain text and takes them as is.
func (t EmailTemplate) Render(vars map[string]string) (subject, body string) {
	return substitute(t.Subject, vars, plain), substitute(t.Body, vars, html.EscapeString)
}

func plain(s string) string { return s }

// Placeholders lists the distinct placeholder names used by the template, in order of appearance.
func (t EmailTemplate) Placeholders() []string {
	seen := map[string]bool{}
	var names []string
	for _, text := range []string{t.Subject, t.Body} {
		for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				names = append(names, m[1])
			}
		}
	}
	return names
}

func substitute(text string, vars map[string]string, escape func(string) string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if v, ok := vars[name]; ok {
			return escape(v)
		}
		return match
	})
}

// EnforceSingleDefault clears IsDefault on every other template of the same
// category as keep. It reports whether anything changed.
func EnforceSingleDefault(templates []EmailTemplate, keep EmailTemplate, now time.Time) bool {
	if !keep.IsDefault {
		return false
	}
	changed := false
	for i := range templates {
		t := &templates[i]
		if t.ID != keep.ID && t.Category == keep.Category && t.IsDefault {
			t.IsDefault = false
			t.LastUpdated = now
			changed = true
		}
	}
	return changed
}

// DefaultsByCategory maps each category to its default template id.
func DefaultsByCategory(templates []EmailTemplate) map[TemplateCategory]string {
	out := map[TemplateCategory]string{}
	for _, t := range templates {
		if t.IsDefault {
			out[t.Category] = t.ID
		}
	}
	return out
}
