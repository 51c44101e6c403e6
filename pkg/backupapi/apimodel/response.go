package apimodel

//
// Response envelopes
//

import "github.com/vaultline/backupsdk/internal/apijson"

// APIResponseMessage is the envelope returned by most APIs that do not
// return any data.
type APIResponseMessage struct {
	apijson.Overflow

	// Status is 200 or 201 on success.
	Status int

	// Message is a human readable message.
	Message string
}

// Fields implements apijson.Model.
func (r *APIResponseMessage) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *APIResponseMessage) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r APIResponseMessage) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// CountJobsResponse is the response of AdminCountJobsForCustomSearch.
type CountJobsResponse struct {
	apijson.Overflow

	Status  int
	Message string

	Count int
}

// Fields implements apijson.Model.
func (r *CountJobsResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.Int("Count", &r.Count),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CountJobsResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r CountJobsResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// RequestStorageVaultResponseMessage is the response of AdminRequestStorageVault.
type RequestStorageVaultResponseMessage struct {
	apijson.Overflow

	Status  int
	Message string

	DestinationID string
}

// Fields implements apijson.Model.
func (r *RequestStorageVaultResponseMessage) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("DestinationID", &r.DestinationID),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RequestStorageVaultResponseMessage) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r RequestStorageVaultResponseMessage) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// SessionKeyRegeneratedResponse is the response of the session start APIs.
// The session key is data: we never attach it to subsequent requests.
type SessionKeyRegeneratedResponse struct {
	apijson.Overflow

	Status  int
	Message string

	SessionKey       string
	SessionKeyExpiry int64
	Profile          *UserProfileConfig
}

// Fields implements apijson.Model.
func (r *SessionKeyRegeneratedResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("SessionKey", &r.SessionKey),
		apijson.Int64("SessionKeyExpiry", &r.SessionKeyExpiry),
		apijson.OptionalNested[UserProfileConfig]("Profile", &r.Profile),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SessionKeyRegeneratedResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r SessionKeyRegeneratedResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// GetProfileAndHashResponseMessage contains a user profile along with the
// hash you must send back to perform an atomic profile update.
type GetProfileAndHashResponseMessage struct {
	apijson.Overflow

	Status  int
	Message string

	ProfileHash string
	Profile     UserProfileConfig
}

// Fields implements apijson.Model.
func (r *GetProfileAndHashResponseMessage) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("ProfileHash", &r.ProfileHash),
		apijson.Nested[UserProfileConfig]("Profile", &r.Profile),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *GetProfileAndHashResponseMessage) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r GetProfileAndHashResponseMessage) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// GetGroupPolicyResponse is the response of AdminPoliciesGet.
type GetGroupPolicyResponse struct {
	apijson.Overflow

	Status  int
	Message string

	Policy     GroupPolicy
	PolicyHash string
}

// Fields implements apijson.Model.
func (r *GetGroupPolicyResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.Nested[GroupPolicy]("Policy", &r.Policy),
		apijson.String("PolicyHash", &r.PolicyHash),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *GetGroupPolicyResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r GetGroupPolicyResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// CreateGroupPolicyResponse is the response of AdminPoliciesNew.
type CreateGroupPolicyResponse struct {
	apijson.Overflow

	Status  int
	Message string

	PolicyID string
}

// Fields implements apijson.Model.
func (r *CreateGroupPolicyResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("PolicyID", &r.PolicyID),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CreateGroupPolicyResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r CreateGroupPolicyResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AddBucketResponseMessage is the response of AdminStorageAddBucket.
type AddBucketResponseMessage struct {
	apijson.Overflow

	Status  int
	Message string

	AccessKey string
	SecretKey string
}

// Fields implements apijson.Model.
func (r *AddBucketResponseMessage) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("AccessKey", &r.AccessKey),
		apijson.String("SecretKey", &r.SecretKey),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AddBucketResponseMessage) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AddBucketResponseMessage) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// OrganizationResponse is the response of AdminOrganizationSet.
type OrganizationResponse struct {
	apijson.Overflow

	Status  int
	Message string

	ID           string
	Organization Organization
}

// Fields implements apijson.Model.
func (r *OrganizationResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Status", &r.Status),
		apijson.String("Message", &r.Message),
		apijson.String("ID", &r.ID),
		apijson.Nested[Organization]("Organization", &r.Organization),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *OrganizationResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r OrganizationResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AdminAccountPropertiesResponse describes the administrator account
// used to authenticate.
type AdminAccountPropertiesResponse struct {
	apijson.Overflow

	Username                  string
	OrganizationID            string
	AllowPasswordLogin        bool
	AllowPasswordAndTOTPLogin bool
	IPWhitelist               string
	Permissions               AdminUserPermissions
}

// Fields implements apijson.Model.
func (r *AdminAccountPropertiesResponse) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Username", &r.Username),
		apijson.String("OrganizationID", &r.OrganizationID),
		apijson.Bool("AllowPasswordLogin", &r.AllowPasswordLogin),
		apijson.Bool("AllowPasswordAndTOTPLogin", &r.AllowPasswordAndTOTPLogin),
		apijson.String("IPWhitelist", &r.IPWhitelist),
		apijson.Nested[AdminUserPermissions]("Permissions", &r.Permissions),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AdminAccountPropertiesResponse) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AdminAccountPropertiesResponse) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
