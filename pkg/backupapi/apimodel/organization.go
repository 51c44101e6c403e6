package apimodel

import "github.com/vaultline/backupsdk/internal/apijson"

// Organization is a tenant of the server.
type Organization struct {
	apijson.Overflow

	Name                 string
	Hosts                []string
	ExperimentalFeatures []string
	IsSuspended          bool
	LastSuspended        int64
}

// Fields implements apijson.Model.
func (r *Organization) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Name", &r.Name),
		apijson.ScalarList("Hosts", &r.Hosts),
		apijson.ScalarList("ExperimentalFeatures", &r.ExperimentalFeatures).Optional(),
		apijson.Bool("IsSuspended", &r.IsSuspended),
		apijson.Int64("LastSuspended", &r.LastSuspended),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Organization) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r Organization) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
