package apimodel

import "github.com/vaultline/backupsdk/internal/apijson"

// BackupJobDetail describes a job.
type BackupJobDetail struct {
	apijson.Overflow

	GUID                 string
	Username             string
	Classification       int
	Status               int
	StartTime            int64
	EndTime              int64
	LastStatusUpdateTime int64

	SourceGUID      string
	DestinationGUID string
	DeviceID        string
	SnapshotID      string
	ClientVersion   string
	CancellationID  string

	TotalDirectories int64
	TotalFiles       int64
	TotalSize        int64
	TotalChunks      int64
	UploadSize       int64
	DownloadSize     int64

	Progress *BackupJobProgress
}

// Fields implements apijson.Model.
func (r *BackupJobDetail) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("GUID", &r.GUID),
		apijson.String("Username", &r.Username),
		apijson.Int("Classification", &r.Classification),
		apijson.Int("Status", &r.Status),
		apijson.Int64("StartTime", &r.StartTime),
		apijson.Int64("EndTime", &r.EndTime),
		apijson.Int64("LastStatusUpdateTime", &r.LastStatusUpdateTime),
		apijson.String("SourceGUID", &r.SourceGUID),
		apijson.String("DestinationGUID", &r.DestinationGUID),
		apijson.String("DeviceID", &r.DeviceID),
		apijson.String("SnapshotID", &r.SnapshotID),
		apijson.String("ClientVersion", &r.ClientVersion),
		apijson.String("CancellationID", &r.CancellationID),
		apijson.Int64("TotalDirectories", &r.TotalDirectories),
		apijson.Int64("TotalFiles", &r.TotalFiles),
		apijson.Int64("TotalSize", &r.TotalSize),
		apijson.Int64("TotalChunks", &r.TotalChunks),
		apijson.Int64("UploadSize", &r.UploadSize),
		apijson.Int64("DownloadSize", &r.DownloadSize),
		apijson.OptionalNested[BackupJobProgress]("Progress", &r.Progress),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BackupJobDetail) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BackupJobDetail) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// BackupJobProgress is the progress of a running job.
type BackupJobProgress struct {
	apijson.Overflow

	Counter      int64
	SentTime     int64
	ReceivedTime int64
	BytesDone    int64
	ItemsDone    int64
	ItemsTotal   int64
}

// Fields implements apijson.Model.
func (r *BackupJobProgress) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("Counter", &r.Counter),
		apijson.Int64("SentTime", &r.SentTime),
		apijson.Int64("RecievedTime", &r.ReceivedTime),
		apijson.Int64("BytesDone", &r.BytesDone),
		apijson.Int64("ItemsDone", &r.ItemsDone),
		apijson.Int64("ItemsTotal", &r.ItemsTotal),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BackupJobProgress) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BackupJobProgress) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// SearchClause is a job search query. A clause is either a rule (ClauseType
// is SearchClauseRule) or the combination of its ClauseChildren.
type SearchClause struct {
	apijson.Overflow

	ClauseType     string
	RuleField      string
	RuleOperator   string
	RuleValue      string
	ClauseChildren []SearchClause
}

// Fields implements apijson.Model.
func (r *SearchClause) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("ClauseType", &r.ClauseType),
		apijson.String("RuleField", &r.RuleField),
		apijson.String("RuleOperator", &r.RuleOperator),
		apijson.String("RuleValue", &r.RuleValue),
		apijson.List[SearchClause]("ClauseChildren", &r.ClauseChildren),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SearchClause) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r SearchClause) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// JobEntry is a line of a job log.
type JobEntry struct {
	apijson.Overflow

	Time     int64
	Severity string
	Message  string
}

// Fields implements apijson.Model.
func (r *JobEntry) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("Time", &r.Time),
		apijson.String("Severity", &r.Severity),
		apijson.String("Message", &r.Message),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *JobEntry) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r JobEntry) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
