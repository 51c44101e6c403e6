package apimodel

import "github.com/vaultline/backupsdk/internal/apijson"

// GroupPolicy is a policy shared by many users.
type GroupPolicy struct {
	apijson.Overflow

	Description    string
	OrganizationID string
	Policy         UserPolicy
	DefaultPolicy  bool
}

// Fields implements apijson.Model.
func (r *GroupPolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Description", &r.Description),
		apijson.String("OrganizationID", &r.OrganizationID),
		apijson.Nested[UserPolicy]("Policy", &r.Policy),
		apijson.Bool("DefaultPolicy", &r.DefaultPolicy),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *GroupPolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r GroupPolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
