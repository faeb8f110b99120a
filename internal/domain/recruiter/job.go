package recruiter

import (
	"slices"
	"strings"
	"time"

	"careerlaunch/internal/pkg/patch"
)

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           JobType   `json:"type"`
	Salary         string    `json:"salary"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Industry       string    `json:"industry"`
	SkillsRequired []string  `json:"skillsRequired"`
	Status         JobStatus `json:"status"`
	PostedDate     time.Time `json:"postedDate"`
	Applicants     int       `json:"applicants"`
	Views          int       `json:"views"`
}

func (j Job) Clone() Job {
	j.SkillsRequired = slices.Clone(j.SkillsRequired)
	return j
}

// JobDraft is what a recruiter supplies; counters and dates are owned by the service.
type JobDraft struct {
	Title          string
	Company        string
	Location       string
	Type           JobType
	Salary         string
	Description    string
	Requirements   string
	Industry       string
	SkillsRequired []string
	Status         JobStatus
}

type JobPatch struct {
	Title          *string
	Company        *string
	Location       *string
	Type           *JobType
	Salary         *string
	Description    *string
	Requirements   *string
	Industry       *string
	SkillsRequired *[]string
	Status         *JobStatus
}

type JobFilter struct {
	Type     JobType
	Location string
	Industry string
}

func NewJob(id string, d JobDraft, now time.Time) (Job, error) {
	if d.Status == "" {
		d.Status = JobStatusDraft
	}
	if d.SkillsRequired == nil {
		d.SkillsRequired = []string{}
	}
	j := Job{
		ID:             id,
		Title:          strings.TrimSpace(d.Title),
		Company:        strings.TrimSpace(d.Company),
		Location:       d.Location,
		Type:           d.Type,
		Salary:         d.Salary,
		Description:    d.Description,
		Requirements:   d.Requirements,
		Industry:       d.Industry,
		SkillsRequired: slices.Clone(d.SkillsRequired),
		Status:         d.Status,
		PostedDate:     now,
		Applicants:     0,
		Views:          0,
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (j Job) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(j.Company) == "" {
		return ErrEmptyCompany
	}
	if j.Type != "" && !j.Type.IsValid() {
		return ErrInvalidJobType
	}
	if !j.Status.IsValid() {
		return ErrInvalidJobStatus
	}
	return nil
}

// Apply returns j with the patch merged over it. Identity, dates and counters never change.
func (j Job) Apply(p JobPatch) (Job, error) {
	out := j
	out.Title = patch.Coalesce(p.Title, j.Title)
	out.Company = patch.Coalesce(p.Company, j.Company)
	out.Location = patch.Coalesce(p.Location, j.Location)
	out.Type = patch.Coalesce(p.Type, j.Type)
	out.Salary = patch.Coalesce(p.Salary, j.Salary)
	out.Description = patch.Coalesce(p.Description, j.Description)
	out.Requirements = patch.Coalesce(p.Requirements, j.Requirements)
	out.Industry = patch.Coalesce(p.Industry, j.Industry)
	out.SkillsRequired = patch.CoalesceSlice(p.SkillsRequired, j.SkillsRequired)
	out.Status = patch.Coalesce(p.Status, j.Status)

	if err := out.Validate(); err != nil {
		return Job{}, err
	}
	return out, nil
}

func (j Job) IsActive() bool {
	return j.Status == JobStatusActive
}

// Matches is the seeker-side search: query is matched case-insensitively
// against title, company, description and skills; filter fields must match exactly when set.
func (j Job) Matches(query string, f JobFilter) bool {
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Location != "" && !strings.EqualFold(j.Location, f.Location) {
		return false
	}
	if f.Industry != "" && !strings.EqualFold(j.Industry, f.Industry) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{j.Title, j.Company, j.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return slices.ContainsFunc(j.SkillsRequired, func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	})
}

func CountActiveJobs(jobs []Job) int {
	n := 0
	for _, j := range jobs {
		if j.IsActive() {
			n++
		}
	}
	return n
}
