package apimodel

import "github.com/vaultline/backupsdk/internal/apijson"

// LiveUserConnection is a device connected to the server.
type LiveUserConnection struct {
	apijson.Overflow

	Username                string
	DeviceID                string
	ReportedVersion         string
	ReportedPlatform        string
	ReportedPlatformVersion OSInfo
	DeviceTimeZone          string
	IPAddress               string
	ConnectionTime          int64
	AllowsFilenames         bool
	AllowsEditingConfig     bool
}

// Fields implements apijson.Model.
func (r *LiveUserConnection) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Username", &r.Username),
		apijson.String("DeviceID", &r.DeviceID),
		apijson.String("ReportedVersion", &r.ReportedVersion),
		apijson.String("ReportedPlatform", &r.ReportedPlatform),
		apijson.Nested[OSInfo]("ReportedPlatformVersion", &r.ReportedPlatformVersion),
		apijson.String("DeviceTimeZone", &r.DeviceTimeZone),
		apijson.String("IPAddress", &r.IPAddress),
		apijson.Int64("ConnectionTime", &r.ConnectionTime),
		apijson.Bool("AllowsFilenames", &r.AllowsFilenames),
		apijson.Bool("AllowsEditingConfig", &r.AllowsEditingConfig),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *LiveUserConnection) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r LiveUserConnection) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
