package apimodel

//
// Users, Storage Vaults and Protected Items
//

import "github.com/vaultline/backupsdk/internal/apijson"

// UserProfileConfig is the profile of a user account.
type UserProfileConfig struct {
	apijson.Overflow

	// Username is the account name. The server ignores changes to it.
	Username string

	// AccountName is the OPTIONAL display name.
	AccountName string

	// LocalTimezone is the IANA timezone of the user (e.g., Europe/Rome).
	LocalTimezone string

	LanguageCode   string
	OrganizationID string

	// Emails contains the addresses that receive email reports.
	Emails []string

	// OverrideEmailSettings maps an email address to its custom report settings.
	OverrideEmailSettings map[string]UserCustomEmailSettings

	SendEmailReports bool

	// Destinations maps a Storage Vault ID to its configuration.
	Destinations map[string]DestinationConfig

	// Sources maps a Protected Item ID to its configuration.
	Sources map[string]SourceConfig

	BackupRules map[string]BackupRuleConfig

	// Devices maps a device ID to the registered device.
	Devices map[string]DeviceConfig

	IsSuspended            bool
	LastSuspended          int64
	AllProtectedItemsQuota int64
	MaximumDevices         int
	PolicyID               string
	Policy                 UserPolicy

	// PasswordFormat is one of the PasswordFormat* constants.
	PasswordFormat int

	PasswordHash              string
	PasswordRecovery          string
	AllowPasswordLogin        bool
	AllowPasswordAndTOTPLogin bool
	TOTPKeyEncryptionFormat   int
	TOTPKey                   string
	RequirePasswordChange     bool

	// CreateTime is the creation time as a Unix timestamp.
	CreateTime int64

	CreationGUID string

	// ServerConfig is OPTIONAL and omitted when nil.
	ServerConfig *UserServerConfig
}

// Fields implements apijson.Model.
func (r *UserProfileConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Username", &r.Username),
		apijson.String("AccountName", &r.AccountName),
		apijson.String("LocalTimezone", &r.LocalTimezone),
		apijson.String("LanguageCode", &r.LanguageCode),
		apijson.String("OrganizationID", &r.OrganizationID),
		apijson.ScalarList("Emails", &r.Emails),
		apijson.Map[string, UserCustomEmailSettings]("OverrideEmailSettings", &r.OverrideEmailSettings),
		apijson.Bool("SendEmailReports", &r.SendEmailReports),
		apijson.Map[string, DestinationConfig]("Destinations", &r.Destinations),
		apijson.Map[string, SourceConfig]("Sources", &r.Sources),
		apijson.Map[string, BackupRuleConfig]("BackupRules", &r.BackupRules),
		apijson.Map[string, DeviceConfig]("Devices", &r.Devices),
		apijson.Bool("IsSuspended", &r.IsSuspended),
		apijson.Int64("LastSuspended", &r.LastSuspended),
		apijson.Int64("AllProtectedItemsQuota", &r.AllProtectedItemsQuota),
		apijson.Int("MaximumDevices", &r.MaximumDevices),
		apijson.String("PolicyID", &r.PolicyID),
		apijson.Nested[UserPolicy]("Policy", &r.Policy),
		apijson.Int("PasswordFormat", &r.PasswordFormat),
		apijson.String("PasswordHash", &r.PasswordHash),
		apijson.String("PasswordRecovery", &r.PasswordRecovery),
		apijson.Bool("AllowPasswordLogin", &r.AllowPasswordLogin),
		apijson.Bool("AllowPasswordAndTOTPLogin", &r.AllowPasswordAndTOTPLogin),
		apijson.Int("TOTPKeyEncryptionFormat", &r.TOTPKeyEncryptionFormat),
		apijson.String("TOTPKey", &r.TOTPKey),
		apijson.Bool("RequirePasswordChange", &r.RequirePasswordChange),
		apijson.Int64("CreateTime", &r.CreateTime),
		apijson.String("CreationGUID", &r.CreationGUID),
		apijson.OptionalNested[UserServerConfig]("ServerConfig", &r.ServerConfig),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UserProfileConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r UserProfileConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// UserCustomEmailSettings overrides the email reports sent to an address.
type UserCustomEmailSettings struct {
	apijson.Overflow

	UseCustomReports bool
	Reports          []EmailReportConfig
}

// Fields implements apijson.Model.
func (r *UserCustomEmailSettings) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("UseCustomReports", &r.UseCustomReports),
		apijson.List[EmailReportConfig]("Reports", &r.Reports),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UserCustomEmailSettings) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r UserCustomEmailSettings) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// EmailReportConfig configures an email report.
type EmailReportConfig struct {
	apijson.Overflow

	ReportType       int
	SummaryFrequency []ScheduleConfig
	Filter           SearchClause
}

// Fields implements apijson.Model.
func (r *EmailReportConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("ReportType", &r.ReportType),
		apijson.List[ScheduleConfig]("SummaryFrequency", &r.SummaryFrequency),
		apijson.Nested[SearchClause]("Filter", &r.Filter),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EmailReportConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r EmailReportConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ScheduleConfig describes when to run a backup rule or send a report.
type ScheduleConfig struct {
	apijson.Overflow

	FrequencyType   int
	SecondsPast     int64
	Offset          *int64
	Days            *int
	RandomDelaySecs *int64
}

// Fields implements apijson.Model.
func (r *ScheduleConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("FrequencyType", &r.FrequencyType),
		apijson.Int64("SecondsPast", &r.SecondsPast),
		apijson.OptionalScalar("Offset", &r.Offset),
		apijson.OptionalScalar("Days", &r.Days),
		apijson.OptionalScalar("RandomDelaySecs", &r.RandomDelaySecs),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ScheduleConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ScheduleConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// UserServerConfig allows a user to log in to the server web interface.
type UserServerConfig struct {
	apijson.Overflow

	Enabled             bool
	ShowInUserInterface bool
	Permissions         AdminUserPermissions
}

// Fields implements apijson.Model.
func (r *UserServerConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("Enabled", &r.Enabled),
		apijson.Bool("ShowInUserInterface", &r.ShowInUserInterface),
		apijson.Nested[AdminUserPermissions]("Permissions", &r.Permissions),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UserServerConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r UserServerConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// UserPolicy restricts what a user can do.
type UserPolicy struct {
	apijson.Overflow

	PreventRequestStorageVault    bool
	PreventAddCustomStorageVault  bool
	HideCloudStorageBranding      bool
	PreventViewDeleteStorageVault bool
	PreventDeleteSingleVersion    bool
	PreventChangePassword         bool
	PreventChangeEmailSettings    bool
	PreventUninstall              bool
	ModeAdminResetPassword        int

	ProtectedItemEngineTypes     ProtectedItemEngineTypePolicy
	StorageVaultProviders        StorageVaultProviderPolicy
	DefaultStorageVaultRetention RetentionPolicy
	DefaultEmailReports          DefaultEmailReportPolicy
	RandomDelaySecs              *int64
}

// Fields implements apijson.Model.
func (r *UserPolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("PreventRequestStorageVault", &r.PreventRequestStorageVault),
		apijson.Bool("PreventAddCustomStorageVault", &r.PreventAddCustomStorageVault),
		apijson.Bool("HideCloudStorageBranding", &r.HideCloudStorageBranding),
		apijson.Bool("PreventViewDeleteStorageVault", &r.PreventViewDeleteStorageVault),
		apijson.Bool("PreventDeleteSingleVersion", &r.PreventDeleteSingleVersion),
		apijson.Bool("PreventChangePassword", &r.PreventChangePassword),
		apijson.Bool("PreventChangeEmailSettings", &r.PreventChangeEmailSettings),
		apijson.Bool("PreventUninstall", &r.PreventUninstall),
		apijson.Int("ModeAdminResetPassword", &r.ModeAdminResetPassword),
		apijson.Nested[ProtectedItemEngineTypePolicy]("ProtectedItemEngineTypes", &r.ProtectedItemEngineTypes),
		apijson.Nested[StorageVaultProviderPolicy]("StorageVaultProviders", &r.StorageVaultProviders),
		apijson.Nested[RetentionPolicy]("DefaultStorageVaultRetention", &r.DefaultStorageVaultRetention),
		apijson.Nested[DefaultEmailReportPolicy]("DefaultEmailReports", &r.DefaultEmailReports),
		apijson.OptionalScalar("RandomDelaySecs", &r.RandomDelaySecs),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UserPolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r UserPolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// StorageVaultProviderPolicy restricts the Storage Vault providers.
type StorageVaultProviderPolicy struct {
	apijson.Overflow

	ShouldRestrictProviderList     bool
	AllowedProvidersWhenRestricted []int
}

// Fields implements apijson.Model.
func (r *StorageVaultProviderPolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("ShouldRestrictProviderList", &r.ShouldRestrictProviderList),
		apijson.ScalarList("AllowedProvidersWhenRestricted", &r.AllowedProvidersWhenRestricted),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *StorageVaultProviderPolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r StorageVaultProviderPolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ProtectedItemEngineTypePolicy restricts the Protected Item engines.
type ProtectedItemEngineTypePolicy struct {
	apijson.Overflow

	ShouldFilter  bool
	WhitelistOnly bool
	Filter        []string
}

// Fields implements apijson.Model.
func (r *ProtectedItemEngineTypePolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("ShouldFilter", &r.ShouldFilter),
		apijson.Bool("WhitelistOnly", &r.WhitelistOnly),
		apijson.ScalarList("Filter", &r.Filter),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ProtectedItemEngineTypePolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ProtectedItemEngineTypePolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// RetentionPolicy describes which backup snapshots to keep.
type RetentionPolicy struct {
	apijson.Overflow

	Mode   int
	Ranges []RetentionRange
}

// Fields implements apijson.Model.
func (r *RetentionPolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Mode", &r.Mode),
		apijson.List[RetentionRange]("Ranges", &r.Ranges),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RetentionPolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r RetentionPolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// RetentionRange is a single rule inside a RetentionPolicy.
type RetentionRange struct {
	apijson.Overflow

	Type        int
	Timestamp   int64
	Jobs        int64
	Days        int64
	Weeks       int64
	Months      int64
	Years       int64
	WeekOffset  int64
	MonthOffset int64
	YearOffset  int64
}

// Fields implements apijson.Model.
func (r *RetentionRange) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Type", &r.Type),
		apijson.Int64("Timestamp", &r.Timestamp),
		apijson.Int64("Jobs", &r.Jobs),
		apijson.Int64("Days", &r.Days),
		apijson.Int64("Weeks", &r.Weeks),
		apijson.Int64("Months", &r.Months),
		apijson.Int64("Years", &r.Years),
		apijson.Int64("WeekOffset", &r.WeekOffset),
		apijson.Int64("MonthOffset", &r.MonthOffset),
		apijson.Int64("YearOffset", &r.YearOffset),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RetentionRange) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r RetentionRange) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// DefaultEmailReportPolicy contains the reports assigned to new users.
type DefaultEmailReportPolicy struct {
	apijson.Overflow

	ShouldAssignDefaultEmailReports bool
	DefaultEmailReports             []EmailReportConfig
}

// Fields implements apijson.Model.
func (r *DefaultEmailReportPolicy) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("ShouldAssignDefaultEmailReports", &r.ShouldAssignDefaultEmailReports),
		apijson.List[EmailReportConfig]("DefaultEmailReports", &r.DefaultEmailReports),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DefaultEmailReportPolicy) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r DefaultEmailReportPolicy) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// DestinationConfig is a Storage Vault.
type DestinationConfig struct {
	apijson.Overflow

	// Description is the name shown to the user.
	Description string

	CreateTime int64
	ModifyTime int64

	// CreatedByRequest is true when the vault has been requested
	// using AdminRequestStorageVault.
	CreatedByRequest bool

	// DestinationType is one of the Destination* constants.
	DestinationType int

	RebrandStorage      bool
	LocalcopyPath       string
	S3Server            string
	S3UsesTLS           bool
	S3AccessKey         string
	S3SecretKey         string
	S3BucketName        string
	CometServer         string
	CometBucket         string
	CometBucketKey      string
	StorageLimitEnabled bool
	StorageLimitBytes   int64
	DefaultRetention    RetentionPolicy

	// Statistics is OPTIONAL and omitted when nil.
	Statistics *DestinationStatistics
}

// Fields implements apijson.Model.
func (r *DestinationConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Description", &r.Description),
		apijson.Int64("CreateTime", &r.CreateTime),
		apijson.Int64("ModifyTime", &r.ModifyTime),
		apijson.Bool("CreatedByRequest", &r.CreatedByRequest),
		apijson.Int("DestinationType", &r.DestinationType),
		apijson.Bool("RebrandStorage", &r.RebrandStorage),
		apijson.String("LocalcopyPath", &r.LocalcopyPath),
		apijson.String("S3Server", &r.S3Server),
		apijson.Bool("S3UsesTLS", &r.S3UsesTLS),
		apijson.String("S3AccessKey", &r.S3AccessKey),
		apijson.String("S3SecretKey", &r.S3SecretKey),
		apijson.String("S3BucketName", &r.S3BucketName),
		apijson.String("CometServer", &r.CometServer),
		apijson.String("CometBucket", &r.CometBucket),
		apijson.String("CometBucketKey", &r.CometBucketKey),
		apijson.Bool("StorageLimitEnabled", &r.StorageLimitEnabled),
		apijson.Int64("StorageLimitBytes", &r.StorageLimitBytes),
		apijson.Nested[RetentionPolicy]("DefaultRetention", &r.DefaultRetention),
		apijson.OptionalNested[DestinationStatistics]("Statistics", &r.Statistics),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DestinationConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r DestinationConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// DestinationStatistics contains the size of a Storage Vault.
type DestinationStatistics struct {
	apijson.Overflow

	ClientProvidedSize    SizeMeasurement
	ClientProvidedContent ContentMeasurement
}

// Fields implements apijson.Model.
func (r *DestinationStatistics) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Nested[SizeMeasurement]("ClientProvidedSize", &r.ClientProvidedSize),
		apijson.Nested[ContentMeasurement]("ClientProvidedContent", &r.ClientProvidedContent),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DestinationStatistics) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r DestinationStatistics) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// SizeMeasurement is a size in bytes measured at a given time.
type SizeMeasurement struct {
	apijson.Overflow

	Size             int64
	MeasureStarted   int64
	MeasureCompleted int64
}

// Fields implements apijson.Model.
func (r *SizeMeasurement) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("Size", &r.Size),
		apijson.Int64("MeasureStarted", &r.MeasureStarted),
		apijson.Int64("MeasureCompleted", &r.MeasureCompleted),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SizeMeasurement) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r SizeMeasurement) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ContentMeasurement breaks down the content of a Storage Vault.
type ContentMeasurement struct {
	apijson.Overflow

	MeasureStarted   int64
	MeasureCompleted int64
	Components       []ContentMeasurementComponent
}

// Fields implements apijson.Model.
func (r *ContentMeasurement) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("MeasureStarted", &r.MeasureStarted),
		apijson.Int64("MeasureCompleted", &r.MeasureCompleted),
		apijson.List[ContentMeasurementComponent]("Components", &r.Components),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ContentMeasurement) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ContentMeasurement) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// ContentMeasurementComponent is the share of a Storage Vault used by some Protected Items.
type ContentMeasurementComponent struct {
	apijson.Overflow

	Bytes   int64
	Sources []string
}

// Fields implements apijson.Model.
func (r *ContentMeasurementComponent) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("Bytes", &r.Bytes),
		apijson.ScalarList("Sources", &r.Sources),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ContentMeasurementComponent) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r ContentMeasurementComponent) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// SourceConfig is a Protected Item.
type SourceConfig struct {
	apijson.Overflow

	// Engine is the backup engine (e.g., engine1/file).
	Engine string

	Description        string
	OwnerDevice        string
	CreateTime         int64
	ModifyTime         int64
	PreExec            []string
	ThawExec           []string
	PostExec           []string
	ExistingSourceGUID string

	// EngineProps contains engine specific settings.
	EngineProps map[string]string

	OverrideDestinationRetention map[string]RetentionPolicy
	Statistics                   *SourceStatistics
}

// Fields implements apijson.Model.
func (r *SourceConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Engine", &r.Engine),
		apijson.String("Description", &r.Description),
		apijson.String("OwnerDevice", &r.OwnerDevice),
		apijson.Int64("CreateTime", &r.CreateTime),
		apijson.Int64("ModifyTime", &r.ModifyTime),
		apijson.ScalarList("PreExec", &r.PreExec),
		apijson.ScalarList("ThawExec", &r.ThawExec),
		apijson.ScalarList("PostExec", &r.PostExec),
		apijson.String("ExistingSourceGUID", &r.ExistingSourceGUID),
		apijson.ScalarMap("EngineProps", &r.EngineProps),
		apijson.Map[string, RetentionPolicy]("OverrideDestinationRetention", &r.OverrideDestinationRetention),
		apijson.OptionalNested[SourceStatistics]("Statistics", &r.Statistics),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SourceConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r SourceConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// SourceStatistics describes the recent jobs of a Protected Item.
type SourceStatistics struct {
	apijson.Overflow

	LastStartTime           int64
	LastBackupJob           *BackupJobDetail
	LastSuccessfulBackupJob *BackupJobDetail
}

// Fields implements apijson.Model.
func (r *SourceStatistics) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int64("LastStartTime", &r.LastStartTime),
		apijson.OptionalNested[BackupJobDetail]("LastBackupJob", &r.LastBackupJob),
		apijson.OptionalNested[BackupJobDetail]("LastSuccessfulBackupJob", &r.LastSuccessfulBackupJob),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *SourceStatistics) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r SourceStatistics) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// BackupRuleConfig is a schedule that backs up a Protected Item into a Storage Vault.
type BackupRuleConfig struct {
	apijson.Overflow

	Description string
	CreateTime  int64
	ModifyTime  int64
	PreExec     []string
	PostExec    []string

	Source        string
	Destination   string
	Options       BackupJobAdvancedOptions
	EventTriggers BackupRuleEventTriggers
	Schedules     []ScheduleConfig
}

// Fields implements apijson.Model.
func (r *BackupRuleConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Description", &r.Description),
		apijson.Int64("CreateTime", &r.CreateTime),
		apijson.Int64("ModifyTime", &r.ModifyTime),
		apijson.ScalarList("PreExec", &r.PreExec),
		apijson.ScalarList("PostExec", &r.PostExec),
		apijson.String("Source", &r.Source),
		apijson.String("Destination", &r.Destination),
		apijson.Nested[BackupJobAdvancedOptions]("Options", &r.Options),
		apijson.Nested[BackupRuleEventTriggers]("EventTriggers", &r.EventTriggers),
		apijson.List[ScheduleConfig]("Schedules", &r.Schedules),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BackupRuleConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BackupRuleConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// BackupJobAdvancedOptions tunes a backup job.
type BackupJobAdvancedOptions struct {
	apijson.Overflow

	SkipAlreadyRunning    bool
	StopAfter             int64
	LimitVaultSpeedBps    int64
	ReduceDiskConcurrency bool
	UseOnDiskIndexes      bool
	AllowZeroFilesSuccess bool
	AutoRetentionLevel    int
	ConcurrencyCount      int
	LogLevel              string
}

// Fields implements apijson.Model.
func (r *BackupJobAdvancedOptions) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("SkipAlreadyRunning", &r.SkipAlreadyRunning),
		apijson.Int64("StopAfter", &r.StopAfter),
		apijson.Int64("LimitVaultSpeedBps", &r.LimitVaultSpeedBps),
		apijson.Bool("ReduceDiskConcurrency", &r.ReduceDiskConcurrency),
		apijson.Bool("UseOnDiskIndexes", &r.UseOnDiskIndexes),
		apijson.Bool("AllowZeroFilesSuccess", &r.AllowZeroFilesSuccess),
		apijson.Int("AutoRetentionLevel", &r.AutoRetentionLevel),
		apijson.Int("ConcurrencyCount", &r.ConcurrencyCount),
		apijson.String("LogLevel", &r.LogLevel),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BackupJobAdvancedOptions) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BackupJobAdvancedOptions) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// BackupRuleEventTriggers runs a backup rule in response to events.
type BackupRuleEventTriggers struct {
	apijson.Overflow

	OnPCBoot                bool
	OnPCBootIfLastJobMissed bool
	OnLastJobFailDoRetry    *RetryConfig
}

// Fields implements apijson.Model.
func (r *BackupRuleEventTriggers) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("OnPCBoot", &r.OnPCBoot),
		apijson.Bool("OnPCBootIfLastJobMissed", &r.OnPCBootIfLastJobMissed),
		apijson.OptionalNested[RetryConfig]("OnLastJobFailDoRetry", &r.OnLastJobFailDoRetry),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BackupRuleEventTriggers) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r BackupRuleEventTriggers) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// RetryConfig describes how to retry a failed backup job.
type RetryConfig struct {
	apijson.Overflow

	Count     int
	DelaySecs int64
}

// Fields implements apijson.Model.
func (r *RetryConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Int("Count", &r.Count),
		apijson.Int64("DelaySecs", &r.DelaySecs),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RetryConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r RetryConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// DeviceConfig is a registered device.
type DeviceConfig struct {
	apijson.Overflow

	FriendlyName     string
	RegistrationTime int64
	PlatformVersion  OSInfo
	Sources          map[string]string
	DeviceTimezone   string
}

// Fields implements apijson.Model.
func (r *DeviceConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("FriendlyName", &r.FriendlyName),
		apijson.Int64("RegistrationTime", &r.RegistrationTime),
		apijson.Nested[OSInfo]("PlatformVersion", &r.PlatformVersion),
		apijson.ScalarMap("Sources", &r.Sources),
		apijson.String("DeviceTimezone", &r.DeviceTimezone),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *DeviceConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r DeviceConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// OSInfo describes the operating system of a device.
type OSInfo struct {
	apijson.Overflow

	Version      string
	Distribution string
	Codename     string
	Architecture string
}

// Fields implements apijson.Model.
func (r *OSInfo) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.String("Version", &r.Version),
		apijson.String("Distribution", &r.Distribution),
		apijson.String("Codename", &r.Codename),
		apijson.String("Architecture", &r.Architecture),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *OSInfo) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r OSInfo) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}

// UninstallConfig is the OPTIONAL argument of AdminDeleteUser.
type UninstallConfig struct {
	apijson.Overflow

	UninstallDevices bool
	RemoveConfigFile bool
}

// Fields implements apijson.Model.
func (r *UninstallConfig) Fields() []apijson.Field {
	return []apijson.Field{
		apijson.Bool("UninstallDevices", &r.UninstallDevices),
		apijson.Bool("RemoveConfigFile", &r.RemoveConfigFile),
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UninstallConfig) UnmarshalJSON(data []byte) error {
	return apijson.Unmarshal(data, r)
}

// MarshalJSON implements json.Marshaler.
func (r UninstallConfig) MarshalJSON() ([]byte, error) {
	return apijson.Marshal(&r)
}
