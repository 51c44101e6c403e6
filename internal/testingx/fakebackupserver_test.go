package testingx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

func TestFakeBackupServer(t *testing.T) {
	// postForm POSTs the given form merged with the admin credentials.
	postForm := func(t *testing.T, URL string, password string, extra url.Values) (int, []byte) {
		form := url.Values{
			"Username": {"admin"},
			"AuthType": {apimodel.AuthTypePassword},
			"Password": {password},
		}
		for key, values := range extra {
			form[key] = values
		}
		resp, err := http.PostForm(URL, form)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode, data
	}

	newServer := func() (*FakeBackupServer, *HTTPServer) {
		fs := NewFakeBackupServer("admin", "secret")
		fs.AddUser(apimodel.UserProfileConfig{Username: "bob"}, "bob-password")
		fs.AddUser(apimodel.UserProfileConfig{Username: "alice"}, "alice-password")
		return fs, MustNewHTTPServer(fs.NewMux())
	}

	t.Run("we reject invalid credentials", func(t *testing.T) {
		_, srv := newServer()
		defer srv.Close()
		status, _ := postForm(t, srv.URL+"/api/v1/admin/list-users", "antani", nil)
		if status != http.StatusForbidden {
			t.Fatal("unexpected status", status)
		}
	})

	t.Run("we reject methods other than POST", func(t *testing.T) {
		_, srv := newServer()
		defer srv.Close()
		resp, err := http.Get(srv.URL + "/api/v1/admin/list-users")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Fatal("unexpected status", resp.StatusCode)
		}
	})

	t.Run("we list users in alphabetical order", func(t *testing.T) {
		_, srv := newServer()
		defer srv.Close()
		status, data := postForm(t, srv.URL+"/api/v1/admin/list-users", "secret", nil)
		if status != http.StatusOK {
			t.Fatal("unexpected status", status)
		}
		var usernames []string
		if err := json.Unmarshal(data, &usernames); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]string{"alice", "bob"}, usernames); diff != "" {
			t.Fatal(diff)
		}
		if srv.Requests() != 1 {
			t.Fatal("unexpected number of requests", srv.Requests())
		}
	})

	t.Run("we can add and delete a user", func(t *testing.T) {
		fs, srv := newServer()
		defer srv.Close()
		status, data := postForm(t, srv.URL+"/api/v1/admin/add-user", "secret", url.Values{
			"TargetUser":     {"carol"},
			"TargetPassword": {"carol-password"},
		})
		if status != http.StatusOK || !strings.Contains(string(data), `"Status":201`) {
			t.Fatal("unexpected response", status, string(data))
		}
		profile, found := fs.User("carol")
		if !found || profile.CreationGUID == "" {
			t.Fatal("unexpected profile", profile, found)
		}
		_, data = postForm(t, srv.URL+"/api/v1/admin/delete-user", "secret", url.Values{
			"TargetUser": {"carol"},
		})
		if !strings.Contains(string(data), `"Status":200`) {
			t.Fatal("unexpected response", string(data))
		}
		if _, found := fs.User("carol"); found {
			t.Fatal("expected the user to be gone")
		}
	})

	t.Run("we reply with a failure envelope for unknown users", func(t *testing.T) {
		_, srv := newServer()
		defer srv.Close()
		status, data := postForm(t, srv.URL+"/api/v1/admin/get-user-profile", "secret", url.Values{
			"TargetUser": {"mallory"},
		})
		if status != http.StatusOK {
			t.Fatal("unexpected status", status)
		}
		if diff := cmp.Diff(`{"Status":400,"Message":"User not found"}`, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we reject stale profile hashes", func(t *testing.T) {
		_, srv := newServer()
		defer srv.Close()
		_, data := postForm(t, srv.URL+"/api/v1/admin/set-user-profile-hash", "secret", url.Values{
			"TargetUser":  {"bob"},
			"ProfileData": {`{"Username":"bob","AccountName":"Bob"}`},
			"RequireHash": {"stale"},
		})
		if !strings.Contains(string(data), `"Status":409`) {
			t.Fatal("unexpected response", string(data))
		}
	})

	t.Run("we return the job log as text", func(t *testing.T) {
		fs, srv := newServer()
		defer srv.Close()
		fs.AddJob(apimodel.BackupJobDetail{GUID: "job-1", Username: "bob"},
			apimodel.JobEntry{Time: 1700000000, Severity: "I", Message: "Starting backup"})
		status, data := postForm(t, srv.URL+"/api/v1/admin/get-job-log", "secret", url.Values{
			"JobID": {"job-1"},
		})
		if status != http.StatusOK {
			t.Fatal("unexpected status", status)
		}
		if diff := cmp.Diff("1700000000 I Starting backup\n", string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("the event stream sends the queued events", func(t *testing.T) {
		fs, srv := newServer()
		defer srv.Close()
		fs.AddEvent(apimodel.StreamableEvent{Actor: "admin", ResourceID: "bob", Type: apimodel.EventUserUpdated})

		conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/v1/events/stream", nil)
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()
		auth := map[string]string{"Username": "admin", "AuthType": apimodel.AuthTypePassword, "Password": "secret"}
		if err := conn.WriteJSON(auth); err != nil {
			t.Fatal(err)
		}
		var envelope apimodel.APIResponseMessage
		if err := conn.ReadJSON(&envelope); err != nil {
			t.Fatal(err)
		}
		if envelope.Status != http.StatusOK {
			t.Fatal("unexpected envelope", envelope)
		}
		var ev apimodel.StreamableEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatal(err)
		}
		if ev.ResourceID != "bob" || ev.Type != apimodel.EventUserUpdated {
			t.Fatal("unexpected event", ev)
		}
	})
}
