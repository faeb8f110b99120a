//go:build e2e

package flow_test

import (
	"net/http"
	"testing"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/domain/recruiter"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/tests/common/builder"
	"careerlaunch/tests/common/httptest"
	"careerlaunch/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

type FlowSuite struct {
	e2e.SharedSuite
}

func TestFlowPostgres(t *testing.T) {
	t.Parallel()
	s := new(FlowSuite)
	s.Driver = kvstore.DriverPostgres
	suite.Run(t, s)
}

func TestFlowRedis(t *testing.T) {
	t.Parallel()
	s := new(FlowSuite)
	s.Driver = kvstore.DriverRedis
	suite.Run(t, s)
}

// =============================================================================
// Notifications
// =============================================================================

func (s *FlowSuite) TestNotifications() {
	url := "/api/notifications"

	s.Run("send, read and survive a restart", func() {
		t := s.T()

		reqBody, err := builder.NewNotificationBuilder().BuildSendRequestDTO()
		s.Require().NoError(err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, "")
		var sent notification.Notification
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &sent)
		s.False(sent.Read)

		s.Restart()

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var list resdto.NotificationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		s.Require().Len(list.Notifications, 1)
		if diff := cmp.Diff(sent, list.Notifications[0], cmpopts.EquateApproxTime(0)); diff != "" {
			t.Errorf("stored notification mismatch (-sent +loaded):\n%s", diff)
		}
		s.Equal(1, list.UnreadCount)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/"+sent.ID+"/read", nil, "")
		s.Less(rec.Code, 300, rec.Body.String())

		s.Restart()

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		s.Zero(list.UnreadCount)
		s.True(list.Notifications[0].Read)
	})

	s.Run("disabled type is rejected and nothing is stored", func() {
		t := s.T()

		reqBody, err := builder.NewNotificationBuilder().With(func(b *builder.NotificationBuilder) {
			b.Type = notification.TypeApplicationRejection
			b.Data = notification.RejectionData{JobTitle: "Designer", Company: "Acme"}
		}).BuildSendRequestDTO()
		s.Require().NoError(err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var list resdto.NotificationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		s.Empty(list.Notifications)
	})

	s.Run("preferences persist", func() {
		t := s.T()

		patch := map[string]any{
			"notifications": map[string]any{
				"applicationRejection": map[string]any{"enabled": true, "frequency": "daily", "methods": []string{"email"}},
			},
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, url+"/preferences", patch, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		s.Restart()

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"/preferences", nil, "")
		var prefs notification.Preferences
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &prefs)
		got := prefs.Notifications[notification.TypeApplicationRejection]
		s.True(got.Enabled)
		s.Equal(notification.FrequencyDaily, got.Frequency)
	})
}

// =============================================================================
// Recruiter
// =============================================================================

func (s *FlowSuite) TestRecruiter() {
	s.Run("sample data is seeded on first start", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/jobs", nil, "")
		var jobs resdto.JobListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &jobs)
		s.Equal(5, jobs.TotalJobs)
		s.Equal(4, jobs.ActiveJobs)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/metrics", nil, "")
		var m recruiter.DashboardMetrics
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &m)
		s.Equal(5, m.TotalApplicants)
	})

	s.Run("applicant lifecycle updates counters and notifies", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/applicants",
			builder.NewApplicantBuilder().ForJob("job-1").BuildCreateRequestDTO(), "")
		var a recruiter.Applicant
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &a)

		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/applicants/"+a.ID+"/status",
			map[string]any{"status": "interview"}, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &a)
		s.Equal(recruiter.ApplicantStatusInterview, a.Status)

		s.Restart()

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/applicants", nil, "")
		var list resdto.ApplicantListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		s.Equal(6, list.TotalApplicants)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, "")
		var notes resdto.NotificationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &notes)
		s.Require().NotEmpty(notes.Notifications)
		s.Equal(notification.TypeInterviewInvitation, notes.Notifications[0].Type)
	})

	s.Run("default template cannot be deleted", func() {
		t := s.T()

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/email-templates", nil, "")
		var list resdto.EmailTemplateListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		id, ok := list.Defaults[recruiter.CategoryApplication]
		s.Require().True(ok, "no default application template")

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/email-templates/"+id, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
	})
}
