package testingx

//
// In-memory fake of the backup server API.
//

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vaultline/backupsdk/internal/apijson"
	"github.com/vaultline/backupsdk/internal/must"
	"github.com/vaultline/backupsdk/internal/runtimex"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// FakeBackupServer is an in-memory fake of the backup server API. It implements
// a subset of the user, job, log, policy, and dispatcher APIs plus the event stream.
//
// Construct using [NewFakeBackupServer].
//
// This struct methods panics for several errors. Only use for testing purposes!
type FakeBackupServer struct {
	// adminPassword is the password of the administrator.
	adminPassword string

	// adminUsername is the username of the administrator.
	adminUsername string

	// connections contains the live device connections keyed by ID.
	connections map[string]apimodel.LiveUserConnection

	// events contains the events we send to event stream subscribers.
	events []apimodel.StreamableEvent

	// jobs contains the jobs in insertion order.
	jobs []apimodel.BackupJobDetail

	// logs maps a job ID to its log entries.
	logs map[string][]apimodel.JobEntry

	// mu provides mutual exclusion.
	mu sync.Mutex

	// policies contains the policies keyed by ID.
	policies map[string]apimodel.GroupPolicy

	// serverLogs maps a day to the server log text.
	serverLogs map[int64]string

	// users maps a username to the user profile.
	users map[string]apimodel.UserProfileConfig

	// userPasswords maps a username to its password.
	userPasswords map[string]string
}

// NewFakeBackupServer creates a new [*FakeBackupServer] accepting the given
// administrator credentials.
func NewFakeBackupServer(adminUsername, adminPassword string) *FakeBackupServer {
	return &FakeBackupServer{
		adminPassword: adminPassword,
		adminUsername: adminUsername,
		connections:   map[string]apimodel.LiveUserConnection{},
		events:        []apimodel.StreamableEvent{},
		jobs:          []apimodel.BackupJobDetail{},
		logs:          map[string][]apimodel.JobEntry{},
		mu:            sync.Mutex{},
		policies:      map[string]apimodel.GroupPolicy{},
		serverLogs:    map[int64]string{},
		users:         map[string]apimodel.UserProfileConfig{},
		userPasswords: map[string]string{},
	}
}

// AddUser adds a user with the given profile and password.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) AddUser(profile apimodel.UserProfileConfig, password string) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.users[profile.Username] = profile
	fs.userPasswords[profile.Username] = password
}

// AddJob adds a job along with its log entries.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) AddJob(job apimodel.BackupJobDetail, entries ...apimodel.JobEntry) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.jobs = append(fs.jobs, job)
	fs.logs[job.GUID] = entries
}

// AddConnection adds a live device connection.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) AddConnection(connectionID string, conn apimodel.LiveUserConnection) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.connections[connectionID] = conn
}

// AddServerLog adds the server log of the given day.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) AddServerLog(day int64, text string) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.serverLogs[day] = text
}

// AddEvent appends an event to the events sent to event stream subscribers.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) AddEvent(ev apimodel.StreamableEvent) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.events = append(fs.events, ev)
}

// User returns the profile of the given user, if it exists.
//
// This method is safe to call concurrently with incoming HTTP requests.
func (fs *FakeBackupServer) User(username string) (apimodel.UserProfileConfig, bool) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	profile, found := fs.users[username]
	return profile, found
}

// NewMux constructs an [*http.ServeMux] configured with the correct routing.
func (fs *FakeBackupServer) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/admin/list-users", fs.withAuthentication(fs.handleListUsers))
	mux.Handle("/api/v1/admin/list-users-full", fs.withAuthentication(fs.handleListUsersFull))
	mux.Handle("/api/v1/admin/add-user", fs.withAuthentication(fs.handleAddUser))
	mux.Handle("/api/v1/admin/get-user-profile", fs.withAuthentication(fs.handleGetUserProfile))
	mux.Handle("/api/v1/admin/get-user-profile-and-hash", fs.withAuthentication(fs.handleGetUserProfileAndHash))
	mux.Handle("/api/v1/admin/set-user-profile", fs.withAuthentication(fs.handleSetUserProfile))
	mux.Handle("/api/v1/admin/set-user-profile-hash", fs.withAuthentication(fs.handleSetUserProfile))
	mux.Handle("/api/v1/admin/delete-user", fs.withAuthentication(fs.handleDeleteUser))
	mux.Handle("/api/v1/admin/get-jobs-all", fs.withAuthentication(fs.handleGetJobsAll))
	mux.Handle("/api/v1/admin/get-jobs-recent", fs.withAuthentication(fs.handleGetJobsRecent))
	mux.Handle("/api/v1/admin/get-jobs-for-user", fs.withAuthentication(fs.handleGetJobsForUser))
	mux.Handle("/api/v1/admin/get-jobs-for-custom-search", fs.withAuthentication(fs.handleGetJobsForCustomSearch))
	mux.Handle("/api/v1/admin/count-jobs-for-custom-search", fs.withAuthentication(fs.handleCountJobsForCustomSearch))
	mux.Handle("/api/v1/admin/get-job-properties", fs.withAuthentication(fs.handleGetJobProperties))
	mux.Handle("/api/v1/admin/get-job-log", fs.withAuthentication(fs.handleGetJobLog))
	mux.Handle("/api/v1/admin/get-job-log-entries", fs.withAuthentication(fs.handleGetJobLogEntries))
	mux.Handle("/api/v1/admin/dispatcher/list-active", fs.withAuthentication(fs.handleDispatcherListActive))
	mux.Handle("/api/v1/admin/meta/version", fs.withAuthentication(fs.handleMetaVersion))
	mux.Handle("/api/v1/admin/meta/list-available-log-days", fs.withAuthentication(fs.handleListLogDays))
	mux.Handle("/api/v1/admin/meta/read-logs", fs.withAuthentication(fs.handleReadLogs))
	mux.Handle("/api/v1/admin/policies/list", fs.withAuthentication(fs.handlePoliciesList))
	mux.Handle("/api/v1/admin/policies/new", fs.withAuthentication(fs.handlePoliciesNew))
	mux.Handle("/api/v1/events/stream", http.HandlerFunc(fs.handleEventStream))
	return mux
}

// fakeHandler handles an authenticated request whose form has already been parsed.
type fakeHandler func(w http.ResponseWriter, r *http.Request)

func (fs *FakeBackupServer) checkCredentials(username, authType, password string) bool {
	return authType == apimodel.AuthTypePassword &&
		username == fs.adminUsername && password == fs.adminPassword
}

func (fs *FakeBackupServer) withAuthentication(next fakeHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// make sure the method is OK
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// parse the form
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// make sure the credentials are OK
		ok := fs.checkCredentials(r.PostForm.Get("Username"), r.PostForm.Get("AuthType"), r.PostForm.Get("Password"))
		if !ok {
			w.WriteHeader(http.StatusForbidden)
			writeEnvelope(w, http.StatusForbidden, "Invalid user account")
			return
		}

		next(w, r)
	})
}

// writeEnvelope writes a response envelope.
func writeEnvelope(w http.ResponseWriter, status int, message string) {
	writeModel(w, &apimodel.APIResponseMessage{Status: status, Message: message})
}

// writeModel writes a model as the response body.
func writeModel(w http.ResponseWriter, m apijson.Model) {
	writeRaw(w, runtimex.Try1(apijson.Marshal(m)))
}

// writeRaw writes a JSON response body.
func writeRaw(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (fs *FakeBackupServer) handleListUsers(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	usernames := make([]string, 0, len(fs.users))
	for username := range fs.users {
		usernames = append(usernames, username)
	}
	fs.mu.Unlock()
	slices.Sort(usernames)
	writeRaw(w, must.MarshalJSON(usernames))
}

func (fs *FakeBackupServer) handleListUsersFull(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	writeRaw(w, must.MarshalJSON(fs.users))
}

func (fs *FakeBackupServer) handleAddUser(w http.ResponseWriter, r *http.Request) {
	username := r.PostForm.Get("TargetUser")
	password := r.PostForm.Get("TargetPassword")
	if username == "" || password == "" {
		writeEnvelope(w, http.StatusBadRequest, "Missing username or password")
		return
	}
	defer fs.mu.Unlock()
	fs.mu.Lock()
	if _, found := fs.users[username]; found {
		writeEnvelope(w, http.StatusBadRequest, "User already exists")
		return
	}
	fs.users[username] = apimodel.UserProfileConfig{
		Username:              username,
		CreateTime:            time.Now().Unix(),
		CreationGUID:          uuid.Must(uuid.NewRandom()).String(),
		PasswordFormat:        apimodel.PasswordFormatPlaintext,
		RequirePasswordChange: r.PostForm.Get("RequirePasswordChange") == "1",
		SendEmailReports:      false,
	}
	fs.userPasswords[username] = password
	writeEnvelope(w, http.StatusCreated, "Created")
}

// lookupUser returns the profile of the TargetUser or writes a failure envelope. The
// caller MUST hold the mutex.
func (fs *FakeBackupServer) lookupUser(w http.ResponseWriter, r *http.Request) (apimodel.UserProfileConfig, bool) {
	profile, found := fs.users[r.PostForm.Get("TargetUser")]
	if !found {
		writeEnvelope(w, http.StatusBadRequest, "User not found")
	}
	return profile, found
}

func (fs *FakeBackupServer) handleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	if profile, found := fs.lookupUser(w, r); found {
		writeModel(w, &profile)
	}
}

// profileHash returns the hash of a serialized profile.
func profileHash(profile *apimodel.UserProfileConfig) string {
	sum := sha256.Sum256(runtimex.Try1(apijson.Marshal(profile)))
	return hex.EncodeToString(sum[:])
}

func (fs *FakeBackupServer) handleGetUserProfileAndHash(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	profile, found := fs.lookupUser(w, r)
	if !found {
		return
	}
	writeModel(w, &apimodel.GetProfileAndHashResponseMessage{
		Status:      http.StatusOK,
		Message:     "OK",
		ProfileHash: profileHash(&profile),
		Profile:     profile,
	})
}

// handleSetUserProfile handles both set-user-profile and set-user-profile-hash.
func (fs *FakeBackupServer) handleSetUserProfile(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	current, found := fs.lookupUser(w, r)
	if !found {
		return
	}
	var profile apimodel.UserProfileConfig
	if err := apijson.Unmarshal([]byte(r.PostForm.Get("ProfileData")), &profile); err != nil {
		writeEnvelope(w, http.StatusBadRequest, fmt.Sprintf("Invalid profile: %s", err.Error()))
		return
	}
	if r.PostForm.Has("RequireHash") && r.PostForm.Get("RequireHash") != profileHash(&current) {
		writeEnvelope(w, http.StatusConflict, "The profile has been modified")
		return
	}
	profile.Username = current.Username
	fs.users[current.Username] = profile
	writeEnvelope(w, http.StatusOK, "OK")
}

func (fs *FakeBackupServer) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	profile, found := fs.lookupUser(w, r)
	if !found {
		return
	}
	delete(fs.users, profile.Username)
	delete(fs.userPasswords, profile.Username)
	writeEnvelope(w, http.StatusOK, "OK")
}

// writeJobs writes the jobs for which filter returns true. The caller MUST hold the mutex.
func (fs *FakeBackupServer) writeJobs(w http.ResponseWriter, filter func(job *apimodel.BackupJobDetail) bool) {
	jobs := []apimodel.BackupJobDetail{}
	for idx := range fs.jobs {
		if filter(&fs.jobs[idx]) {
			jobs = append(jobs, fs.jobs[idx])
		}
	}
	writeRaw(w, must.MarshalJSON(jobs))
}

func (fs *FakeBackupServer) handleGetJobsAll(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.writeJobs(w, func(job *apimodel.BackupJobDetail) bool {
		return true
	})
}

func (fs *FakeBackupServer) handleGetJobsRecent(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	threshold := time.Now().Add(-24 * time.Hour).Unix()
	fs.writeJobs(w, func(job *apimodel.BackupJobDetail) bool {
		return apimodel.JobStatusIsRunning(job.Status) || job.EndTime >= threshold
	})
}

func (fs *FakeBackupServer) handleGetJobsForUser(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	username := r.PostForm.Get("TargetUser")
	fs.writeJobs(w, func(job *apimodel.BackupJobDetail) bool {
		return job.Username == username
	})
}

// parseQuery parses the Query form field or writes a failure envelope.
func parseQuery(w http.ResponseWriter, r *http.Request) (*apimodel.SearchClause, bool) {
	var query apimodel.SearchClause
	if err := apijson.Unmarshal([]byte(r.PostForm.Get("Query")), &query); err != nil {
		writeEnvelope(w, http.StatusBadRequest, fmt.Sprintf("Invalid query: %s", err.Error()))
		return nil, false
	}
	return &query, true
}

func (fs *FakeBackupServer) handleGetJobsForCustomSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := parseQuery(w, r)
	if !ok {
		return
	}
	defer fs.mu.Unlock()
	fs.mu.Lock()
	fs.writeJobs(w, func(job *apimodel.BackupJobDetail) bool {
		return MatchJob(query, job)
	})
}

func (fs *FakeBackupServer) handleCountJobsForCustomSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := parseQuery(w, r)
	if !ok {
		return
	}
	defer fs.mu.Unlock()
	fs.mu.Lock()
	var count int
	for idx := range fs.jobs {
		if MatchJob(query, &fs.jobs[idx]) {
			count++
		}
	}
	writeModel(w, &apimodel.CountJobsResponse{Status: http.StatusOK, Message: "OK", Count: count})
}

// lookupJob returns the job whose ID is JobID or writes a failure
// envelope. The caller MUST hold the mutex.
func (fs *FakeBackupServer) lookupJob(w http.ResponseWriter, r *http.Request) (*apimodel.BackupJobDetail, bool) {
	jobID := r.PostForm.Get("JobID")
	for idx := range fs.jobs {
		if fs.jobs[idx].GUID == jobID {
			return &fs.jobs[idx], true
		}
	}
	writeEnvelope(w, http.StatusBadRequest, "Job not found")
	return nil, false
}

func (fs *FakeBackupServer) handleGetJobProperties(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	if job, found := fs.lookupJob(w, r); found {
		writeModel(w, job)
	}
}

func (fs *FakeBackupServer) handleGetJobLog(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	job, found := fs.lookupJob(w, r)
	if !found {
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	for _, entry := range fs.logs[job.GUID] {
		must.Fprintf(w, "%d %s %s\n", entry.Time, entry.Severity, entry.Message)
	}
}

func (fs *FakeBackupServer) handleGetJobLogEntries(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	job, found := fs.lookupJob(w, r)
	if !found {
		return
	}
	entries := fs.logs[job.GUID]
	if entries == nil {
		entries = []apimodel.JobEntry{}
	}
	writeRaw(w, must.MarshalJSON(entries))
}

func (fs *FakeBackupServer) handleDispatcherListActive(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	username := r.PostForm.Get("TargetUser")
	connections := map[string]apimodel.LiveUserConnection{}
	for id, conn := range fs.connections {
		if username == "" || conn.Username == username {
			connections[id] = conn
		}
	}
	writeRaw(w, must.MarshalJSON(connections))
}

// FakeServerVersion is the version returned by [FakeBackupServer].
const FakeServerVersion = "23.9.4"

func (fs *FakeBackupServer) handleMetaVersion(w http.ResponseWriter, r *http.Request) {
	info := &apimodel.ServerMetaVersionInfo{
		Version:         FakeServerVersion,
		VersionCodename: "fake",
		CurrentTime:     time.Now().Unix(),
	}
	info.Extra = apijson.NewObject()
	info.Extra.Set("FeatureFlags", []byte(`{"fake":true}`))
	writeModel(w, info)
}

func (fs *FakeBackupServer) handleListLogDays(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	days := make([]int64, 0, len(fs.serverLogs))
	for day := range fs.serverLogs {
		days = append(days, day)
	}
	fs.mu.Unlock()
	slices.Sort(days)
	writeRaw(w, must.MarshalJSON(days))
}

func (fs *FakeBackupServer) handleReadLogs(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.ParseInt(r.PostForm.Get("Log"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer fs.mu.Unlock()
	fs.mu.Lock()
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(fs.serverLogs[day]))
}

func (fs *FakeBackupServer) handlePoliciesList(w http.ResponseWriter, r *http.Request) {
	defer fs.mu.Unlock()
	fs.mu.Lock()
	descriptions := map[string]string{}
	for id, policy := range fs.policies {
		descriptions[id] = policy.Description
	}
	writeRaw(w, must.MarshalJSON(descriptions))
}

func (fs *FakeBackupServer) handlePoliciesNew(w http.ResponseWriter, r *http.Request) {
	var policy apimodel.GroupPolicy
	if err := apijson.Unmarshal([]byte(r.PostForm.Get("Policy")), &policy); err != nil {
		writeEnvelope(w, http.StatusBadRequest, fmt.Sprintf("Invalid policy: %s", err.Error()))
		return
	}
	defer fs.mu.Unlock()
	fs.mu.Lock()
	policyID := uuid.Must(uuid.NewRandom()).String()
	fs.policies[policyID] = policy
	writeModel(w, &apimodel.CreateGroupPolicyResponse{
		Status:   http.StatusOK,
		Message:  "OK",
		PolicyID: policyID,
	})
}

// eventStreamUpgrader upgrades event stream connections.
var eventStreamUpgrader = websocket.Upgrader{}

// eventStreamAuth is the first message sent by event stream clients.
type eventStreamAuth struct {
	Username string
	AuthType string
	Password string
}

func (fs *FakeBackupServer) handleEventStream(w http.ResponseWriter, r *http.Request) {
	conn, err := eventStreamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return // the upgrader already replied
	}
	defer conn.Close()

	// authenticate the client
	var auth eventStreamAuth
	if err := conn.ReadJSON(&auth); err != nil {
		return
	}
	if !fs.checkCredentials(auth.Username, auth.AuthType, auth.Password) {
		_ = conn.WriteMessage(websocket.TextMessage, runtimex.Try1(apijson.Marshal(
			&apimodel.APIResponseMessage{Status: http.StatusForbidden, Message: "Invalid user account"})))
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, runtimex.Try1(apijson.Marshal(
		&apimodel.APIResponseMessage{Status: http.StatusOK, Message: "OK"}))); err != nil {
		return
	}

	// send the events
	fs.mu.Lock()
	events := slices.Clone(fs.events)
	fs.mu.Unlock()
	for idx := range events {
		if err := conn.WriteMessage(websocket.TextMessage, runtimex.Try1(apijson.Marshal(&events[idx]))); err != nil {
			return
		}
	}

	// wait for the client to go away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

