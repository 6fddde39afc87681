package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/coursedash/internal/dashboard"
)

func dashboardStore(t *testing.T) *httptest.Server {
	t.Helper()
	bodies := map[string]string{
		"/rest/rooms":       `[{"_id":"000000000000000000000001","name":"Lab 1","capacity":12}]`,
		"/rest/instructors": `[{"_id":"000000000000000000000002","firstname":"Ada","lastname":"Lovelace"}]`,
		"/rest/courses": `[{"_id":"000000000000000000000003","title":"Go Basics","startdate":"2024-06-01","enddate":"2024-06-30","maxparticipants":2,
			"room":"https://store.example.com/rest/rooms/000000000000000000000001",
			"instructor":"https://store.example.com/rest/instructors/000000000000000000000002"}]`,
		"/rest/participants": `[{"_id":"000000000000000000000004","firstname":"Grace","lastname":"Hopper"}]`,
		"/rest/registrations": `[{"_id":"000000000000000000000005","date":"2024-06-02",
			"participant":"https://store.example.com/rest/participants/000000000000000000000004",
			"course":"https://store.example.com/rest/courses/000000000000000000000003"}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSummaryJSONOutput(t *testing.T) {
	srv := dashboardStore(t)

	out, _, err := execute(t, storeEnv(srv),
		"summary", "--format", "json", "--today", "2024-06-15")
	require.NoError(t, err)

	var resp struct {
		Status string            `json:"status"`
		Data   dashboard.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2024-06-15", resp.Data.Today)
	assert.Equal(t, 1, resp.Data.Totals.Courses)
	require.Len(t, resp.Data.Courses, 1)
	assert.Equal(t, dashboard.StatusActive, resp.Data.Courses[0].Status)
	assert.Equal(t, "Lab 1", resp.Data.Courses[0].Room)
	assert.Equal(t, "Ada Lovelace", resp.Data.Courses[0].Instructor)
	assert.Equal(t, 1, resp.Data.Courses[0].Enrolled)
	assert.Equal(t, 50, resp.Data.Courses[0].FillPercent)
	assert.Equal(t, 1, resp.Data.UnpaidRegistrations)
}

func TestSummaryTextOutput(t *testing.T) {
	srv := dashboardStore(t)

	out, _, err := execute(t, storeEnv(srv), "summary", "--today", "2024-06-15")
	require.NoError(t, err)

	assert.Contains(t, out, "Dashboard for 2024-06-15")
	assert.Contains(t, out, "Go Basics")
	assert.Contains(t, out, "Grace Hopper")
}

func TestSummaryFailsWhenOneCollectionFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rest/participants" {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	_, _, err := execute(t, storeEnv(srv), "summary")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
