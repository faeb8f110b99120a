package notification

import (
	"encoding/json"
	"strings"
)

// Payload is the type-specific data carried by a notification. The concrete
// type is fixed by the notification type, see PayloadFor.
type Payload interface {
	Validate() error
	view() renderView
}

// ApplicationData serves applicationSubmission and applicationReview.
type ApplicationData struct {
	UserName      string `json:"userName,omitempty"`
	JobTitle      string `json:"jobTitle"`
	Company       string `json:"company"`
	ApplicationID string `json:"applicationId,omitempty"`
}

type InterviewData struct {
	UserName      string `json:"userName,omitempty"`
	JobTitle      string `json:"jobTitle"`
	Company       string `json:"company"`
	InterviewDate string `json:"interviewDate,omitempty"`
	InterviewType string `json:"interviewType,omitempty"`
}

type RejectionData struct {
	UserName string `json:"userName,omitempty"`
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
}

// OtherData is free-form; it has no template and no required fields.
type OtherData struct {
	Fields map[string]string `json:"fields,omitempty"`
}

func (d ApplicationData) Validate() error { return requireJob(d.JobTitle, d.Company) }
func (d InterviewData) Validate() error   { return requireJob(d.JobTitle, d.Company) }
func (d RejectionData) Validate() error   { return requireJob(d.JobTitle, d.Company) }
func (d OtherData) Validate() error       { return nil }

func (d ApplicationData) view() renderView {
	return renderView{UserName: d.UserName, JobTitle: d.JobTitle, Company: d.Company, ApplicationID: d.ApplicationID}
}

func (d InterviewData) view() renderView {
	return renderView{
		UserName:      d.UserName,
		JobTitle:      d.JobTitle,
		Company:       d.Company,
		InterviewDate: d.InterviewDate,
		InterviewType: d.InterviewType,
	}
}

func (d RejectionData) view() renderView {
	return renderView{UserName: d.UserName, JobTitle: d.JobTitle, Company: d.Company}
}

func (d OtherData) view() renderView { return renderView{} }

func requireJob(jobTitle, company string) error {
	if strings.TrimSpace(jobTitle) == "" {
		return ErrMissingJobTitle
	}
	if strings.TrimSpace(company) == "" {
		return ErrMissingCompany
	}
	return nil
}

// PayloadFor returns an empty payload of the variant used by t.
func PayloadFor(t Type) (Payload, error) {
	switch t {
	case TypeApplicationSubmission, TypeApplicationReview:
		return &ApplicationData{}, nil
	case TypeInterviewInvitation:
		return &InterviewData{}, nil
	case TypeApplicationRejection:
		return &RejectionData{}, nil
	case TypeOther:
		return &OtherData{}, nil
	}
	return nil, ErrUnknownType
}

// DecodePayload parses raw as the variant belonging to t. It does not validate.
func DecodePayload(t Type, raw json.RawMessage) (Payload, error) {
	p, err := PayloadFor(t)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, p); err != nil {
			return nil, err
		}
	}
	return deref(p), nil
}

// MatchesType reports whether p is the variant t expects.
func MatchesType(t Type, p Payload) bool {
	switch p.(type) {
	case ApplicationData:
		return t == TypeApplicationSubmission || t == TypeApplicationReview
	case InterviewData:
		return t == TypeInterviewInvitation
	case RejectionData:
		return t == TypeApplicationRejection
	case OtherData:
		return t == TypeOther
	}
	return false
}

func deref(p Payload) Payload {
	switch v := p.(type) {
	case *ApplicationData:
		return *v
	case *InterviewData:
		return *v
	case *RejectionData:
		return *v
	case *OtherData:
		return *v
	}
	return p
}
