package apimodel

//
// Server metadata and configuration
//

import "github.com/vaultline/backupsdk/internal/apijson"

// ServerMetaVersionInfo describes the running server.
type ServerMetaVersionInfo struct {
	apijson.Overflow

	// Version is the server version (e.g., 23.9.4).
	Version string

	VersionCodename          string
	ServerStartTime          int64
	ServerStartHash          string
	CurrentTime              int64
	ServerLicenseHash        string
	ServerLicenseFeaturesAll bool
	ServerLicenseFeatureSet  int
	LicenseValidUntil        int64
	EmailsSentSuccessfully   int64
	EmailsSentErrors         int64
	EmailsWaitingToSend      int64

	// ExperimentalOptions is OPTIONAL and omitted when nil.
	ExperimentalOptions []string
}

// Fields implements apijson.Model.
func (r *ServerMetaVersionInfo) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Version", &r.Version),
		apijson.String("VersionCodename", &r.VersionCodename),
		apijson.Int64("ServerStartTime", &r.ServerStartTime),
		apijson.String("ServerStartHash", &r.ServerStartHash),
		apijson.Int64("CurrentTime", &r.CurrentTime),
		apijson.String("ServerLicenseHash", &r.ServerLicenseHash),
		apijson.Bool("ServerLicenseFeaturesAll", &r.ServerLicenseFeaturesAll),
		apijson.Int("ServerLicenseFeatureSet", &r.ServerLicenseFeatureSet),
		apijson.Int64("LicenseValidUntil", &r.LicenseValidUntil),
		apijson.Int64("EmailsSentSuccessfully", &r.EmailsSentSuccessfully),
		apijson.Int64("EmailsSentErrors", &r.EmailsSentErrors),
		apijson.Int64("EmailsWaitingToSend", &r.EmailsWaitingToSend),
		apijson.ScalarList("ExperimentalOptions", &r.ExperimentalOptions).Optional(),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ServerMetaVersionInfo) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ServerMetaVersionInfo) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// StatResult contains the server statistics for a given day.
type StatResult struct {
	apijson.Overflow

	JobsCompleted int64
	JobsSuccess   int64
	JobsWarning   int64
	JobsError     int64
	JobsMissed    int64
	JobsCancelled int64
	JobsOther     int64

	NumberOfUsers         int64
	NumberOfDevices       int64
	NumberOfOnlineDevices int64
	TotalFileSize         int64
	TotalStorageUsed      int64
}

// Fields implements apijson.Model.
func (r *StatResult) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("JobsCompleted", &r.JobsCompleted),
		apijson.Int64("JobsSuccess", &r.JobsSuccess),
		apijson.Int64("JobsWarning", &r.JobsWarning),
		apijson.Int64("JobsError", &r.JobsError),
		apijson.Int64("JobsMissed", &r.JobsMissed),
		apijson.Int64("JobsCancelled", &r.JobsCancelled),
		apijson.Int64("JobsOther", &r.JobsOther),
		apijson.Int64("NumberOfUsers", &r.NumberOfUsers),
		apijson.Int64("NumberOfDevices", &r.NumberOfDevices),
		apijson.Int64("NumberOfOnlineDevices", &r.NumberOfOnlineDevices),
		apijson.Int64("TotalFileSize", &r.TotalFileSize),
		apijson.Int64("TotalStorageUsed", &r.TotalStorageUsed),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *StatResult) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r StatResult) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AvailableDownload is a client software platform available for download.
type AvailableDownload struct {
	apijson.Overflow

	Description string
	Recommended bool
	Category    string
}

// Fields implements apijson.Model.
func (r *AvailableDownload) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Description", &r.Description),
		apijson.Bool("Recommended", &r.Recommended),
		apijson.String("Category", &r.Category),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AvailableDownload) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AvailableDownload) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ServerConfigOptions is the server configuration.
type ServerConfigOptions struct {
	apijson.Overflow

	ListenAddresses     []HTTPConnectorOptions
	Email               EmailOptions
	AdminUsers          []AllowedAdminUser
	Security            AdminSecurityOptions
	ExperimentalOptions []string
}

// Fields implements apijson.Model.
func (r *ServerConfigOptions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.List[HTTPConnectorOptions]("ListenAddresses", &r.ListenAddresses),
		apijson.Nested[EmailOptions]("Email", &r.Email),
		apijson.List[AllowedAdminUser]("AdminUsers", &r.AdminUsers),
		apijson.Nested[AdminSecurityOptions]("Security", &r.Security),
		apijson.ScalarList("ExperimentalOptions", &r.ExperimentalOptions).Optional(),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ServerConfigOptions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ServerConfigOptions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// HTTPConnectorOptions configures a listening socket.
type HTTPConnectorOptions struct {
	apijson.Overflow

	Description        string
	ListenAddress      string
	SSLCertPath        string
	SSLKeyPath         string
	AutoSSLDomains     string
	TrustXForwardedFor bool
	TrustXRealIP       bool
}

// Fields implements apijson.Model.
func (r *HTTPConnectorOptions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Description", &r.Description),
		apijson.String("ListenAddress", &r.ListenAddress),
		apijson.String("SSLCertPath", &r.SSLCertPath),
		apijson.String("SSLKeyPath", &r.SSLKeyPath),
		apijson.String("AutoSSLDomains", &r.AutoSSLDomains),
		apijson.Bool("TrustXForwardedFor", &r.TrustXForwardedFor),
		apijson.Bool("TrustXRealIP", &r.TrustXRealIP),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *HTTPConnectorOptions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r HTTPConnectorOptions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// EmailOptions configures how the server sends emails.
type EmailOptions struct {
	apijson.Overflow

	Mode                        string
	FromEmail                   string
	FromName                    string
	SMTPHost                    string
	SMTPPort                    int
	SMTPUsername                string
	SMTPPassword                string
	SMTPAllowInvalidCertificate bool
	SMTPAllowUnencrypted        bool
}

// Fields implements apijson.Model.
func (r *EmailOptions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Mode", &r.Mode),
		apijson.String("FromEmail", &r.FromEmail),
		apijson.String("FromName", &r.FromName),
		apijson.String("SMTPHost", &r.SMTPHost),
		apijson.Int("SMTPPort", &r.SMTPPort),
		apijson.String("SMTPUsername", &r.SMTPUsername),
		apijson.String("SMTPPassword", &r.SMTPPassword),
		apijson.Bool("SMTPAllowInvalidCertificate", &r.SMTPAllowInvalidCertificate),
		apijson.Bool("SMTPAllowUnencrypted", &r.SMTPAllowUnencrypted),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EmailOptions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r EmailOptions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AllowedAdminUser is an administrator account.
type AllowedAdminUser struct {
	apijson.Overflow

	Username                  string
	OrganizationID            string
	PasswordFormat            int
	Password                  string
	AllowPasswordLogin        bool
	AllowPasswordAndTOTPLogin bool
	TOTPKeyEncryptionFormat   int
	TOTPKey                   string
	IPWhitelist               string
	Permissions               AdminUserPermissions
}

// Fields implements apijson.Model.
func (r *AllowedAdminUser) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Username", &r.Username),
		apijson.String("OrganizationID", &r.OrganizationID),
		apijson.Int("PasswordFormat", &r.PasswordFormat),
		apijson.String("Password", &r.Password),
		apijson.Bool("AllowPasswordLogin", &r.AllowPasswordLogin),
		apijson.Bool("AllowPasswordAndTOTPLogin", &r.AllowPasswordAndTOTPLogin),
		apijson.Int("TOTPKeyEncryptionFormat", &r.TOTPKeyEncryptionFormat),
		apijson.String("TOTPKey", &r.TOTPKey),
		apijson.String("IPWhitelist", &r.IPWhitelist),
		apijson.Nested[AdminUserPermissions]("Permissions", &r.Permissions),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AllowedAdminUser) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AllowedAdminUser) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AdminUserPermissions restricts an administrator account.
type AdminUserPermissions struct {
	apijson.Overflow

	PreventEditServerSettings bool
	PreventServerShutdown     bool
	PreventChangePassword     bool
	AllowEditBranding         bool
	AllowEditRemoteStorage    bool
}

// Fields implements apijson.Model.
func (r *AdminUserPermissions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("PreventEditServerSettings", &r.PreventEditServerSettings),
		apijson.Bool("PreventServerShutdown", &r.PreventServerShutdown),
		apijson.Bool("PreventChangePassword", &r.PreventChangePassword),
		apijson.Bool("AllowEditBranding", &r.AllowEditBranding),
		apijson.Bool("AllowEditRemoteStorage", &r.AllowEditRemoteStorage),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AdminUserPermissions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AdminUserPermissions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// AdminSecurityOptions is the argument of AdminAccountSetProperties. To change
// the password, set both CurrentPassword and NewPassword.
type AdminSecurityOptions struct {
	apijson.Overflow

	AllowPasswordLogin        bool
	AllowPasswordAndTOTPLogin bool
	IPWhitelist               string
	CurrentPassword           *string
	NewPassword               *string
}

// Fields implements apijson.Model.
func (r *AdminSecurityOptions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("AllowPasswordLogin", &r.AllowPasswordLogin),
		apijson.Bool("AllowPasswordAndTOTPLogin", &r.AllowPasswordAndTOTPLogin),
		apijson.String("IPWhitelist", &r.IPWhitelist),
		apijson.OptionalScalar("CurrentPassword", &r.CurrentPassword),
		apijson.OptionalScalar("NewPassword", &r.NewPassword),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AdminSecurityOptions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r AdminSecurityOptions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
