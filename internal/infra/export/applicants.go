// Package export renders recruiter data as spreadsheet downloads.
package export

import (
	"bytes"
	"strings"
	"time"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

const applicantSheet = "Applicants"

var applicantColumns = []struct {
	header string
	width  float64
	value  func(a recruiter.Applicant, jobTitles map[string]string) any
}{
	{"ID", 10, func(a recruiter.Applicant, _ map[string]string) any { return a.ID }},
	{"Name", 22, func(a recruiter.Applicant, _ map[string]string) any { return a.Name }},
	{"Email", 30, func(a recruiter.Applicant, _ map[string]string) any { return a.Email }},
	{"Phone", 16, func(a recruiter.Applicant, _ map[string]string) any { return a.Phone }},
	{"Job", 28, func(a recruiter.Applicant, titles map[string]string) any {
		if t, ok := titles[a.JobID]; ok {
			return t
		}
		return a.JobID
	}},
	{"Status", 12, func(a recruiter.Applicant, _ map[string]string) any { return string(a.Status) }},
	{"Experience (years)", 18, func(a recruiter.Applicant, _ map[string]string) any { return a.Experience }},
	{"Applied", 14, func(a recruiter.Applicant, _ map[string]string) any { return a.AppliedDate.Format(time.DateOnly) }},
	{"Last contact", 14, func(a recruiter.Applicant, _ map[string]string) any {
		if a.LastContactDate == nil {
			return ""
		}
		return a.LastContactDate.Format(time.DateOnly)
	}},
	{"Skills", 40, func(a recruiter.Applicant, _ map[string]string) any { return strings.Join(a.Skills, ", ") }},
	{"Education", 36, func(a recruiter.Applicant, _ map[string]string) any { return a.Education }},
	{"Notes", 40, func(a recruiter.Applicant, _ map[string]string) any { return a.Notes }},
}

// Applicants writes one row per applicant below a styled header row. Job ids
// are shown as job titles when the job is known.
func Applicants(applicants []recruiter.Applicant, jobs []recruiter.Job) (*bytes.Buffer, error) {
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(applicantSheet)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errs.Wrap(err, "failed to drop default sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create header style")
	}

	for i, col := range applicantColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(applicantSheet, name, name, col.width); err != nil {
			return nil, errs.Wrap(err, "failed to set column width")
		}
		if err := f.SetCellValue(applicantSheet, cell(i, 1), col.header); err != nil {
			return nil, errs.Wrap(err, "failed to write header")
		}
	}
	if err := f.SetCellStyle(applicantSheet, cell(0, 1), cell(len(applicantColumns)-1, 1), headerStyle); err != nil {
		return nil, errs.Wrap(err, "failed to style header")
	}

	for r, a := range applicants {
		for i, col := range applicantColumns {
			if err := f.SetCellValue(applicantSheet, cell(i, r+2), col.value(a, titles)); err != nil {
				return nil, errs.Wrapf(err, "failed to write applicant %s", a.ID)
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, errs.Wrap(err, "failed to write workbook")
	}
	return buf, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
