package seed

import (
	"time"

	"careerlaunch/internal/domain/recruiter"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func atPtr(value string) *time.Time {
	t := at(value)
	return &t
}

func Jobs() []recruiter.Job {
	return []recruiter.Job{
		{
			ID:             "job-1",
			Title:          "Senior Frontend Developer",
			Company:        "TechCorp Inc.",
			Location:       "San Francisco, CA",
			Type:           recruiter.JobTypeFullTime,
			Salary:         "$120,000 - $150,000",
			Description:    "We are looking for an experienced Frontend Developer to join our team...",
			Requirements:   "At least 5 years of experience with React, TypeScript, and modern web technologies...",
			PostedDate:     at("2023-02-15T09:00:00Z"),
			Status:         recruiter.JobStatusActive,
			Applicants:     12,
			Industry:       "Technology",
			SkillsRequired: []string{"React", "TypeScript", "CSS", "HTML", "JavaScript"},
			Views:          345,
		},
		{
			ID:             "job-2",
			Title:          "UX/UI Designer",
			Company:        "DesignHub",
			Location:       "Remote",
			Type:           recruiter.JobTypeFullTime,
			Salary:         "$90,000 - $110,000",
			Description:    "Join our creative team to design beautiful user interfaces...",
			Requirements:   "Experience with Figma, Adobe XD, and user research methods...",
			PostedDate:     at("2023-03-01T10:30:00Z"),
			Status:         recruiter.JobStatusActive,
			Applicants:     27,
			Industry:       "Design",
			SkillsRequired: []string{"Figma", "Adobe XD", "Sketch", "UI Design", "UX Research"},
			Views:          422,
		},
		{
			ID:             "job-3",
			Title:          "Data Scientist",
			Company:        "DataInsights LLC",
			Location:       "Chicago, IL",
			Type:           recruiter.JobTypeFullTime,
			Salary:         "$130,000 - $160,000",
			Description:    "Help us analyze complex datasets and build predictive models...",
			Requirements:   "Advanced degree in Statistics, Computer Science, or related field...",
			PostedDate:     at("2023-02-25T14:15:00Z"),
			Status:         recruiter.JobStatusActive,
			Applicants:     19,
			Industry:       "Data Science",
			SkillsRequired: []string{"Python", "R", "Machine Learning", "SQL", "Data Visualization"},
			Views:          287,
		},
		{
			ID:             "job-4",
			Title:          "DevOps Engineer",
			Company:        "CloudSystems",
			Location:       "Austin, TX",
			Type:           recruiter.JobTypeFullTime,
			Salary:         "$115,000 - $140,000",
			Description:    "Build and maintain our cloud infrastructure and deployment pipelines...",
			Requirements:   "Experience with AWS, Docker, Kubernetes, and CI/CD pipelines...",
			PostedDate:     at("2023-03-05T11:45:00Z"),
			Status:         recruiter.JobStatusActive,
			Applicants:     8,
			Industry:       "Technology",
			SkillsRequired: []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Linux"},
			Views:          198,
		},
		{
			ID:             "job-5",
			Title:          "Product Manager",
			Company:        "InnovateTech",
			Location:       "New York, NY",
			Type:           recruiter.JobTypeFullTime,
			Salary:         "$125,000 - $155,000",
			Description:    "Lead our product development from concept to launch...",
			Requirements:   "At least 3 years of experience in product management in tech industry...",
			PostedDate:     at("2023-03-10T08:30:00Z"),
			Status:         recruiter.JobStatusDraft,
			Applicants:     0,
			Industry:       "Product Management",
			SkillsRequired: []string{"Product Strategy", "Agile", "User Stories", "Market Research", "Roadmapping"},
			Views:          0,
		},
	}
}

func Applicants() []recruiter.Applicant {
	return []recruiter.Applicant{
		{
			ID:              "app-1",
			JobID:           "job-1",
			Name:            "John Smith",
			Email:           "john.smith@example.com",
			Phone:           "555-123-4567",
			ResumeURL:       "https://example.com/resumes/john-smith",
			AppliedDate:     at("2023-03-01T09:15:00Z"),
			Status:          recruiter.ApplicantStatusReview,
			Notes:           "Strong candidate with excellent React experience",
			Experience:      6,
			CoverLetter:     "I am excited to apply for this position...",
			Skills:          []string{"React", "TypeScript", "Redux", "HTML", "CSS", "JavaScript"},
			Education:       "BS Computer Science, Stanford University",
			LastContactDate: atPtr("2023-03-05T14:30:00Z"),
		},
		{
			ID:              "app-2",
			JobID:           "job-1",
			Name:            "Emily Chen",
			Email:           "emily.chen@example.com",
			Phone:           "555-987-6543",
			ResumeURL:       "https://example.com/resumes/emily-chen",
			AppliedDate:     at("2023-03-02T11:20:00Z"),
			Status:          recruiter.ApplicantStatusInterview,
			Notes:           "Great portfolio, scheduled for technical interview",
			Experience:      4,
			CoverLetter:     "With my background in frontend development...",
			Skills:          []string{"React", "Angular", "Vue", "CSS", "JavaScript", "Node.js"},
			Education:       "MS Computer Engineering, MIT",
			LastContactDate: atPtr("2023-03-10T10:00:00Z"),
		},
		{
			ID:          "app-3",
			JobID:       "job-2",
			Name:        "Michael Brown",
			Email:       "michael.brown@example.com",
			Phone:       "555-456-7890",
			ResumeURL:   "https://example.com/resumes/michael-brown",
			AppliedDate: at("2023-03-05T15:45:00Z"),
			Status:      recruiter.ApplicantStatusNew,
			Notes:       "Impressive portfolio of UX/UI work",
			Experience:  3,
			CoverLetter: "I believe my design philosophy aligns well with...",
			Skills:      []string{"Figma", "Adobe XD", "Sketch", "UI Design", "Wireframing", "Prototyping"},
			Education:   "BFA Graphic Design, RISD",
		},
		{
			ID:              "app-4",
			JobID:           "job-2",
			Name:            "Jessica Lee",
			Email:           "jessica.lee@example.com",
			Phone:           "555-789-0123",
			ResumeURL:       "https://example.com/resumes/jessica-lee",
			AppliedDate:     at("2023-03-06T09:30:00Z"),
			Status:          recruiter.ApplicantStatusOffer,
			Notes:           "Excellent candidate, preparing offer letter",
			Experience:      7,
			CoverLetter:     "Throughout my career in UX/UI design...",
			Skills:          []string{"UX Research", "UI Design", "Adobe XD", "Figma", "User Testing", "Design Systems"},
			Education:       "MS Human-Computer Interaction, Georgia Tech",
			LastContactDate: atPtr("2023-03-15T16:00:00Z"),
		},
		{
			ID:              "app-5",
			JobID:           "job-3",
			Name:            "Robert Johnson",
			Email:           "robert.johnson@example.com",
			Phone:           "555-234-5678",
			ResumeURL:       "https://example.com/resumes/robert-johnson",
			AppliedDate:     at("2023-03-07T13:10:00Z"),
			Status:          recruiter.ApplicantStatusRejected,
			Notes:           "Not enough experience with machine learning",
			Experience:      2,
			CoverLetter:     "I am passionate about data science and...",
			Skills:          []string{"Python", "SQL", "Data Analysis", "Statistics", "Excel"},
			Education:       "BS Statistics, UCLA",
			LastContactDate: atPtr("2023-03-12T11:45:00Z"),
		},
	}
}

func EmailTemplates() []recruiter.EmailTemplate {
	return []recruiter.EmailTemplate{
		{
			ID:          "template-1",
			Name:        "Application Received",
			Subject:     "We received your application",
			Body:        "<p>Dear {{candidateName}},</p><p>Thank you for applying to the {{position}} position at {{company}}. We have received your application and our hiring team is currently reviewing it.</p><p>We will be in touch soon with next steps.</p><p>Best regards,<br>{{recruiterName}}<br>{{company}} Recruiting Team</p>",
			IsDefault:   true,
			LastUpdated: at("2023-01-15T10:00:00Z"),
			Category:    recruiter.CategoryApplication,
		},
		{
			ID:          "template-2",
			Name:        "Interview Invitation",
			Subject:     "Invitation to Interview for {{position}}",
			Body:        "<p>Dear {{candidateName}},</p><p>We were impressed by your application for the {{position}} position and would like to invite you for an interview.</p><p>The interview will be conducted {{interviewFormat}} on {{interviewDate}} at {{interviewTime}}.</p><p>Please confirm your availability by replying to this email.</p><p>Best regards,<br>{{recruiterName}}<br>{{company}} Recruiting Team</p>",
			IsDefault:   true,
			LastUpdated: at("2023-01-20T14:30:00Z"),
			Category:    recruiter.CategoryInterview,
		},
		{
			ID:          "template-3",
			Name:        "Rejection Letter",
			Subject:     "Update on your application for {{position}}",
			Body:        "<p>Dear {{candidateName}},</p><p>Thank you for your interest in the {{position}} position at {{company}}.</p><p>After careful consideration, we have decided to move forward with other candidates whose qualifications better match our current needs.</p><p>We appreciate your interest in joining our team and wish you success in your job search.</p><p>Best regards,<br>{{recruiterName}}<br>{{company}} Recruiting Team</p>",
			IsDefault:   true,
			LastUpdated: at("2023-01-25T09:15:00Z"),
			Category:    recruiter.CategoryRejection,
		},
	}
}

func Interviews() []recruiter.Interview {
	return []recruiter.Interview{
		{
			ID:            "interview-1",
			ApplicantID:   "app-2",
			ApplicantName: "Emily Chen",
			JobID:         "job-1",
			JobTitle:      "Senior Frontend Developer",
			Date:          at("2023-03-15T14:00:00Z"),
			Duration:      60,
			Type:          "Technical Interview",
			Interviewers:  []string{"Jane Doe", "Mark Wilson"},
			Location:      "Zoom Meeting",
			Notes:         "Focus on React performance optimization and state management",
			Status:        recruiter.InterviewScheduled,
		},
		{
			ID:            "interview-2",
			ApplicantID:   "app-4",
			ApplicantName: "Jessica Lee",
			JobID:         "job-2",
			JobTitle:      "UX/UI Designer",
			Date:          at("2023-03-12T11:00:00Z"),
			Duration:      90,
			Type:          "Portfolio Review",
			Interviewers:  []string{"Alex Thompson", "Sarah Miller"},
			Location:      "Office - Meeting Room 3",
			Notes:         "Candidate to present case studies from previous work",
			Status:        recruiter.InterviewCompleted,
			Feedback:      "Excellent presentation skills and impressive portfolio. Strong design thinking.",
		},
	}
}
