package recruiter

import (
	"fmt"
	"slices"
	"sort"
	"time"
)

// TimeToHire is not derived from data; the dashboard shows a fixed figure.
const TimeToHire = "18 days"

const topJobListingsLimit = 3

// Simulated daily job views, oldest first, for the seven days ending today.
var simulatedDailyViews = [7]int{45, 52, 49, 68, 75, 87, 91}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type JobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Applicants int    `json:"applicants"`
	Views      int    `json:"views"`
}

type DashboardMetrics struct {
	TotalJobs             int           `json:"totalJobs"`
	ActiveJobs            int           `json:"activeJobs"`
	TotalApplicants       int           `json:"totalApplicants"`
	NewApplicants         int           `json:"newApplicants"`
	InterviewsScheduled   int           `json:"interviewsScheduled"`
	OffersExtended        int           `json:"offersExtended"`
	ConversionRate        string        `json:"conversionRate"`
	TimeToHire            string        `json:"timeToHire"`
	ApplicationStatusData []StatusCount `json:"applicationStatusData"`
	JobViewsData          []DailyViews  `json:"jobViewsData"`
	TopJobListings        []JobSummary  `json:"topJobListings"`
}

func (m DashboardMetrics) Clone() DashboardMetrics {
	m.ApplicationStatusData = slices.Clone(m.ApplicationStatusData)
	m.JobViewsData = slices.Clone(m.JobViewsData)
	m.TopJobListings = slices.Clone(m.TopJobListings)
	return m
}

// ComputeMetrics recomputes every aggregate from the full lists.
func ComputeMetrics(jobs []Job, applicants []Applicant, now time.Time) DashboardMetrics {
	count := func(s ApplicantStatus) int { return CountApplicantsByStatus(applicants, s) }

	interviews := count(ApplicantStatusInterview)
	offers := count(ApplicantStatusOffer)

	return DashboardMetrics{
		TotalJobs:           len(jobs),
		ActiveJobs:          CountActiveJobs(jobs),
		TotalApplicants:     len(applicants),
		NewApplicants:       count(ApplicantStatusNew),
		InterviewsScheduled: interviews,
		OffersExtended:      offers,
		ConversionRate:      ConversionRate(interviews+offers, len(applicants)),
		TimeToHire:          TimeToHire,
		ApplicationStatusData: []StatusCount{
			{Status: "New", Count: count(ApplicantStatusNew)},
			{Status: "Review", Count: count(ApplicantStatusReview)},
			{Status: "Interview", Count: interviews},
			{Status: "Offer", Count: offers},
			{Status: "Rejected", Count: count(ApplicantStatusRejected)},
		},
		JobViewsData:   jobViewsSeries(now),
		TopJobListings: topJobs(jobs, topJobListingsLimit),
	}
}

// ConversionRate formats converted/total as a percentage with one decimal, or "0%" for no applicants.
func ConversionRate(converted, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(converted)/float64(total)*100)
}

func jobViewsSeries(now time.Time) []DailyViews {
	out := make([]DailyViews, len(simulatedDailyViews))
	last := len(simulatedDailyViews) - 1
	for i, views := range simulatedDailyViews {
		day := now.AddDate(0, 0, i-last)
		out[i] = DailyViews{Date: day.Format(time.DateOnly), Views: views}
	}
	return out
}

// topJobs never reorders the caller's slice; ties keep their stored order.
func topJobs(jobs []Job, limit int) []JobSummary {
	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Applicants > sorted[j].Applicants
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]JobSummary, 0, len(sorted))
	for _, j := range sorted {
		out = append(out, JobSummary{
			ID:         j.ID,
			Title:      j.Title,
			Company:    j.Company,
			Applicants: j.Applicants,
			Views:      j.Views,
		})
	}
	return out
}
