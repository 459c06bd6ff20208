package functional_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/testserver"
)

type activityFields struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func listActivities(t *testing.T, ts *testserver.TestServer) map[string]activityFields {
	t.Helper()

	resp, err := http.Get(ts.Server.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data map[string]activityFields
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	return data
}

func call(t *testing.T, method, rawURL string) (int, map[string]string) {
	t.Helper()

	req, err := http.NewRequest(method, rawURL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func signupURL(ts *testserver.TestServer, activityName, email string) string {
	return fmt.Sprintf("%s/activities/%s/signup?email=%s",
		ts.Server.URL, url.PathEscape(activityName), url.QueryEscape(email))
}

func unregisterURL(ts *testserver.TestServer, activityName, email string) string {
	return fmt.Sprintf("%s/activities/%s/unregister?email=%s",
		ts.Server.URL, url.PathEscape(activityName), url.QueryEscape(email))
}

func TestListAllActivities(t *testing.T) {
	ts := testserver.New(t)

	data := listActivities(t, ts)
	require.Len(t, data, 9)
	require.Contains(t, data, "Chess Club")
	require.Contains(t, data, "Programming Class")

	chess := data["Chess Club"]
	require.NotEmpty(t, chess.Description)
	require.NotEmpty(t, chess.Schedule)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	for name, act := range data {
		require.NotNil(t, act.Participants, "participants of %q must be a sequence", name)
		require.Positive(t, act.MaxParticipants)
	}
}

func TestSignupLifecycle(t *testing.T) {
	ts := testserver.New(t)

	status, body := call(t, http.MethodPost, signupURL(ts, "Chess Club", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body["message"], "Signed up")
	require.Contains(t, body["message"], "newstudent@mergington.edu")

	data := listActivities(t, ts)
	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, data["Chess Club"].Participants)

	// Duplicate signup fails and leaves the roster unchanged.
	status, body = call(t, http.MethodPost, signupURL(ts, "Chess Club", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["detail"], "already signed up")

	data = listActivities(t, ts)
	require.Len(t, data["Chess Club"].Participants, 3)

	// Unregistering the first participant preserves the order of the rest.
	status, body = call(t, http.MethodDelete, unregisterURL(ts, "Chess Club", "michael@mergington.edu"))
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body["message"], "Unregistered")

	data = listActivities(t, ts)
	require.Equal(t, []string{"daniel@mergington.edu", "newstudent@mergington.edu"}, data["Chess Club"].Participants)
}

func TestSignupForMultipleActivities(t *testing.T) {
	ts := testserver.New(t)
	email := "student@mergington.edu"

	status, _ := call(t, http.MethodPost, signupURL(ts, "Chess Club", email))
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, http.MethodPost, signupURL(ts, "Programming Class", email))
	require.Equal(t, http.StatusOK, status)

	data := listActivities(t, ts)
	require.Contains(t, data["Chess Club"].Participants, email)
	require.Contains(t, data["Programming Class"].Participants, email)
}

func TestSignupUnknownActivity(t *testing.T) {
	ts := testserver.New(t)

	status, body := call(t, http.MethodPost, signupURL(ts, "Nonexistent Activity", "x@y.edu"))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Activity not found", body["detail"])
}

func TestUnregisterNotRegistered(t *testing.T) {
	ts := testserver.New(t)

	status, body := call(t, http.MethodDelete, unregisterURL(ts, "Chess Club", "notregistered@mergington.edu"))
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["detail"], "not registered")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	ts := testserver.New(t)

	status, body := call(t, http.MethodDelete, unregisterURL(ts, "Nonexistent Activity", "test@mergington.edu"))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Activity not found", body["detail"])
}

func TestActivityNameCaseSensitivity(t *testing.T) {
	ts := testserver.New(t)

	status, _ := call(t, http.MethodPost, signupURL(ts, "chess club", "test@mergington.edu"))
	require.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, http.MethodDelete, unregisterURL(ts, "chess club", "michael@mergington.edu"))
	require.Equal(t, http.StatusNotFound, status)
}

func TestParticipantCounts(t *testing.T) {
	ts := testserver.New(t)

	before := len(listActivities(t, ts)["Art Studio"].Participants)

	status, _ := call(t, http.MethodPost, signupURL(ts, "Art Studio", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, before+1, len(listActivities(t, ts)["Art Studio"].Participants))

	status, _ = call(t, http.MethodDelete, unregisterURL(ts, "Art Studio", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, before, len(listActivities(t, ts)["Art Studio"].Participants))
}

func TestResignupAfterUnregister(t *testing.T) {
	ts := testserver.New(t)
	email := "test@mergington.edu"

	status, _ := call(t, http.MethodPost, signupURL(ts, "Gym Class", email))
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodDelete, unregisterURL(ts, "Gym Class", email))
	require.Equal(t, http.StatusOK, status)
	require.NotContains(t, listActivities(t, ts)["Gym Class"].Participants, email)

	status, _ = call(t, http.MethodPost, signupURL(ts, "Gym Class", email))
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, listActivities(t, ts)["Gym Class"].Participants, email)
}

func TestSpecialCharactersInEmail(t *testing.T) {
	ts := testserver.New(t)
	email := "student.tag@mergington.edu"

	status, _ := call(t, http.MethodPost, signupURL(ts, "Chess Club", email))
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, listActivities(t, ts)["Chess Club"].Participants, email)
}
