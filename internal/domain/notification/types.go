package notification

import "errors"

var (
	ErrUnknownType         = errors.New("unknown notification type")
	ErrInvalidFrequency    = errors.New("frequency must be immediate, daily or weekly")
	ErrInvalidMethod       = errors.New("delivery method must be email, in-app or sms")
	ErrMissingJobTitle     = errors.New("jobTitle is required")
	ErrMissingCompany      = errors.New("company is required")
	ErrPayloadTypeMismatch = errors.New("payload does not match notification type")
)

type Type string

const (
	TypeApplicationSubmission Type = "applicationSubmission"
	TypeApplicationReview     Type = "applicationReview"
	TypeInterviewInvitation   Type = "interviewInvitation"
	TypeApplicationRejection  Type = "applicationRejection"
	TypeOther                 Type = "other"
)

var AllTypes = []Type{
	TypeApplicationSubmission,
	TypeApplicationReview,
	TypeInterviewInvitation,
	TypeApplicationRejection,
	TypeOther,
}

func (t Type) IsValid() bool {
	switch t {
	case TypeApplicationSubmission, TypeApplicationReview, TypeInterviewInvitation,
		TypeApplicationRejection, TypeOther:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyImmediate Frequency = "immediate"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	return f == FrequencyImmediate || f == FrequencyDaily || f == FrequencyWeekly
}

type Method string

const (
	MethodEmail Method = "email"
	MethodInApp Method = "in-app"
	MethodSMS   Method = "sms"
)

func (m Method) IsValid() bool {
	return m == MethodEmail || m == MethodInApp || m == MethodSMS
}

// External reports whether the method leaves the process (and can therefore be batched into a digest).
func (m Method) External() bool {
	return m == MethodEmail || m == MethodSMS
}

func DefaultMethods() []Method {
	return []Method{MethodEmail, MethodInApp}
}
