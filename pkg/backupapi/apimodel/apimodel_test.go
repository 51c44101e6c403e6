package apimodel

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vaultline/backupsdk/internal/apijson"
)

const userProfileJSON = `{
  "Username": "alice",
  "AccountName": "Alice",
  "LocalTimezone": "Europe/Rome",
  "Emails": ["alice@example.com"],
  "Destinations": {
    "dst-1": {
      "Description": "Cloud",
      "DestinationType": 1003,
      "DefaultRetention": {"Mode": 802, "Ranges": [{"Type": 900, "Days": 30}]},
      "Statistics": {"ClientProvidedSize": {"Size": 4096}},
      "FutureDestinationKey": {"a": 1}
    }
  },
  "Sources": {
    "src-1": {"Engine": "engine1/file", "EngineProps": {"INCLUDE": "/home"}}
  },
  "BackupRules": null,
  "Devices": {"dev-1": {"FriendlyName": "laptop", "PlatformVersion": {"Version": "14"}}},
  "PasswordFormat": 2,
  "PasswordHash": "$2a$...",
  "ServerConfig": null,
  "SomeFutureKey": [1, "two", null]
}`

func TestUserProfileConfig(t *testing.T) {
	var profile UserProfileConfig
	if err := apijson.Unmarshal([]byte(userProfileJSON), &profile); err != nil {
		t.Fatal(err)
	}

	t.Run("declared fields", func(t *testing.T) {
		if profile.Username != "alice" || profile.PasswordFormat != PasswordFormatBcryptSHA256 {
			t.Fatal("unexpected profile", profile.Username, profile.PasswordFormat)
		}
		dst, found := profile.Destinations["dst-1"]
		if !found {
			t.Fatal("missing destination")
		}
		if dst.DestinationType != DestinationCometServer || dst.Statistics == nil {
			t.Fatal("unexpected destination", dst)
		}
		if dst.Statistics.ClientProvidedSize.Size != 4096 {
			t.Fatal("unexpected statistics")
		}
		if diff := cmp.Diff(map[string]string{"INCLUDE": "/home"}, profile.Sources["src-1"].EngineProps); diff != "" {
			t.Fatal(diff)
		}
		if profile.ServerConfig != nil {
			t.Fatal("expected nil server config")
		}
	})

	t.Run("null and absent containers are empty", func(t *testing.T) {
		if profile.BackupRules == nil || len(profile.BackupRules) != 0 {
			t.Fatal("expected empty backup rules")
		}
		if profile.OverrideEmailSettings == nil {
			t.Fatal("expected empty email settings")
		}
		if profile.Policy.StorageVaultProviders.AllowedProvidersWhenRestricted == nil {
			t.Fatal("expected empty list inside nested model")
		}
	})

	t.Run("unknown keys are preserved at every level", func(t *testing.T) {
		data, err := apijson.Marshal(&profile)
		if err != nil {
			t.Fatal(err)
		}
		var again UserProfileConfig
		if err := apijson.Unmarshal(data, &again); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(profile, again); diff != "" {
			t.Fatal(diff)
		}
		raw, found := again.Extra.Get("SomeFutureKey")
		if !found || string(raw) != `[1, "two", null]` {
			t.Fatal("unexpected overflow", string(raw))
		}
		raw, found = again.Destinations["dst-1"].Extra.Get("FutureDestinationKey")
		if !found || string(raw) != `{"a": 1}` {
			t.Fatal("unexpected nested overflow", string(raw))
		}
	})

	t.Run("we reject a non-string password hash", func(t *testing.T) {
		input := `{"Username": "bob", "PasswordHash": 1234}`
		target := UserProfileConfig{Username: "untouched"}
		err := apijson.Unmarshal([]byte(input), &target)
		var tme *apijson.TypeMismatchError
		if !errors.As(err, &tme) {
			t.Fatal("unexpected error", err)
		}
		if tme.Path != "PasswordHash" || tme.Model != "apimodel.UserProfileConfig" {
			t.Fatal("unexpected error", tme)
		}
		if target.Username != "untouched" {
			t.Fatal("the model has been partially populated")
		}
	})
}

func TestSearchClause(t *testing.T) {
	query := SearchClause{
		ClauseType: SearchClauseAnd,
		ClauseChildren: []SearchClause{{
			RuleField:    "BackupJobDetail.Username",
			RuleOperator: SearchOperatorStringEquals,
			RuleValue:    "alice",
		}, {
			ClauseType: SearchClauseOr,
			ClauseChildren: []SearchClause{{
				RuleField:    "BackupJobDetail.Status",
				RuleOperator: SearchOperatorIntGreaterThan,
				RuleValue:    "6999",
			}},
		}},
	}
	data, err := apijson.Marshal(&query)
	if err != nil {
		t.Fatal(err)
	}
	expect := `{"ClauseType":"and","RuleField":"","RuleOperator":"","RuleValue":"","ClauseChildren":[` +
		`{"ClauseType":"","RuleField":"BackupJobDetail.Username","RuleOperator":"str_eq","RuleValue":"alice","ClauseChildren":[]},` +
		`{"ClauseType":"or","RuleField":"","RuleOperator":"","RuleValue":"","ClauseChildren":[` +
		`{"ClauseType":"","RuleField":"BackupJobDetail.Status","RuleOperator":"int_gt","RuleValue":"6999","ClauseChildren":[]}]}]}`
	if diff := cmp.Diff(expect, string(data)); diff != "" {
		t.Fatal(diff)
	}
}

func TestEncodingJSONCompatibility(t *testing.T) {
	t.Run("models nested inside plain Go values", func(t *testing.T) {
		input := `{"jobs": [{"GUID": "j1", "Status": 5000, "Extra": true}]}`
		var container struct {
			Jobs []BackupJobDetail `json:"jobs"`
		}
		if err := json.Unmarshal([]byte(input), &container); err != nil {
			t.Fatal(err)
		}
		if len(container.Jobs) != 1 || container.Jobs[0].GUID != "j1" {
			t.Fatal("unexpected jobs", container.Jobs)
		}
		data, err := json.Marshal(container)
		if err != nil {
			t.Fatal(err)
		}
		var generic map[string][]map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			t.Fatal(err)
		}
		if generic["jobs"][0]["Extra"] != true {
			t.Fatal("the unknown key did not survive", string(data))
		}
	})

	t.Run("the progress key keeps the server spelling", func(t *testing.T) {
		var progress BackupJobProgress
		if err := json.Unmarshal([]byte(`{"RecievedTime": 17}`), &progress); err != nil {
			t.Fatal(err)
		}
		if progress.ReceivedTime != 17 {
			t.Fatal("unexpected received time", progress.ReceivedTime)
		}
	})
}

func TestStreamableEvent(t *testing.T) {
	input := `{"Actor":"admin","Type":4101,"Timestamp":1700000000,"Data":{"Username": "alice"}}`
	var ev StreamableEvent
	if err := apijson.Unmarshal([]byte(input), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Type != EventUserUpdated || string(ev.Data) != `{"Username": "alice"}` {
		t.Fatal("unexpected event", ev.Type, string(ev.Data))
	}
	ev.Data = nil
	data, err := apijson.Marshal(&ev)
	if err != nil {
		t.Fatal(err)
	}
	expect := `{"Actor":"admin","OwnerOrganizationID":"","ResourceID":"","Type":4101,"Timestamp":1700000000}`
	if diff := cmp.Diff(expect, string(data)); diff != "" {
		t.Fatal(diff)
	}
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	var info ServerMetaVersionInfo
	if err := apijson.Unmarshal([]byte(`{"Version": "23.9.4"}`), &info); err != nil {
		t.Fatal(err)
	}
	obj, err := apijson.ToObject(&info)
	if err != nil {
		t.Fatal(err)
	}
	if _, found := obj.Get("ExperimentalOptions"); found {
		t.Fatal("an unset optional field has been emitted")
	}
	if _, found := obj.Get("EmailsWaitingToSend"); !found {
		t.Fatal("a required field has not been emitted")
	}
}

func TestStatusHelpers(t *testing.T) {
	cases := []struct {
		status  int
		success bool
	}{
		{200, true},
		{201, true},
		{204, false},
		{400, false},
		{500, false},
	}
	for _, tc := range cases {
		if got := IsSuccessStatus(tc.status); got != tc.success {
			t.Fatal("unexpected result for", tc.status, got)
		}
	}
	if !JobStatusIsRunning(JobStatusRunningActive) || JobStatusIsRunning(JobStatusStopSuccess) {
		t.Fatal("JobStatusIsRunning is broken")
	}
	if !JobStatusIsFailure(JobStatusFailedQuota) || JobStatusIsFailure(JobStatusRunningRevived) {
		t.Fatal("JobStatusIsFailure is broken")
	}
}
