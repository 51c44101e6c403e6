package apimodel

import "github.com/vaultline/backupsdk/internal/apijson"

// BucketProperties describes a bucket of the server built-in storage.
type BucketProperties struct {
	apijson.Overflow

	OrganizationID     string
	ReadWriteKey       string
	ReadWriteKeyFormat int
	CreateTime         int64
	Size               SizeMeasurement
}

// Fields implements apijson.Model.
func (r *BucketProperties) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("OrganizationID", &r.OrganizationID),
		apijson.String("ReadWriteKey", &r.ReadWriteKey),
		apijson.Int("ReadWriteKeyFormat", &r.ReadWriteKeyFormat),
		apijson.Int64("CreateTime", &r.CreateTime),
		apijson.Nested[SizeMeasurement]("Size", &r.Size),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BucketProperties) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BucketProperties) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// StorageFreeSpaceInfo is the free space of the server built-in storage.
type StorageFreeSpaceInfo struct {
	apijson.Overflow

	Detected bool
	Bytes    int64
	Percent  float64
}

// Fields implements apijson.Model.
func (r *StorageFreeSpaceInfo) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("Detected", &r.Detected),
		apijson.Int64("Bytes", &r.Bytes),
		apijson.Float64("Percent", &r.Percent),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *StorageFreeSpaceInfo) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r StorageFreeSpaceInfo) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ConstellationStatusAPIResponse is the status of the server cluster role
// that deletes unused buckets.
type ConstellationStatusAPIResponse struct {
	apijson.Overflow

	DeletionEnabled bool
	TargetNames     []string
	Stats           ConstellationStats
	WarningMessages []string
	LastRunStart    int64
	LastRunEnd      int64
}

// Fields implements apijson.Model.
func (r *ConstellationStatusAPIResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("DeletionEnabled", &r.DeletionEnabled),
		apijson.ScalarList("TargetNames", &r.TargetNames),
		apijson.Nested[ConstellationStats]("Stats", &r.Stats),
		apijson.ScalarList("WarningMessages", &r.WarningMessages),
		apijson.Int64("LastRunStart", &r.LastRunStart),
		apijson.Int64("LastRunEnd", &r.LastRunEnd),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ConstellationStatusAPIResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ConstellationStatusAPIResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ConstellationStats contains the outcome of the last cluster check.
type ConstellationStats struct {
	apijson.Overflow

	Buckets           int64
	Users             int64
	UnusedBuckets     map[string]BucketProperties
	BucketsReferenced []string
}

// Fields implements apijson.Model.
func (r *ConstellationStats) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("Buckets", &r.Buckets),
		apijson.Int64("Users", &r.Users),
		apijson.Map[string, BucketProperties]("UnusedBuckets", &r.UnusedBuckets),
		apijson.ScalarList("BucketsReferenced", &r.BucketsReferenced),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ConstellationStats) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ConstellationStats) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
