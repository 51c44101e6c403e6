package apimodel

//
// API constants
//

// Status codes carried by response envelopes.
const (
	StatusOK      = 200
	StatusCreated = 201
)

// IsSuccessStatus returns whether status is an envelope success status.
func IsSuccessStatus(status int) bool {
	return status == StatusOK || status == StatusCreated
}

// AuthTypePassword is the only authentication type we support.
const AuthTypePassword = "Password"

// Job classifications (BackupJobDetail.Classification).
const (
	JobClassificationUnknown          = 0
	JobClassificationBackup           = 4001
	JobClassificationRestore          = 4002
	JobClassificationUpdate           = 4003
	JobClassificationImport           = 4004
	JobClassificationReindexStorage   = 4005
	JobClassificationRetention        = 4006
	JobClassificationUninstall        = 4007
	JobClassificationDeleteCustom     = 4008
	JobClassificationRemoteDeleteData = 4009
)

// Job statuses (BackupJobDetail.Status). Values in [5000, 6000) mean
// success, in [6000, 7000) running, and in [7000, 8000) failure.
const (
	JobStatusStopSuccess           = 5000
	JobStatusRunningIndeterminate  = 6000
	JobStatusRunningActive         = 6001
	JobStatusRunningRevived        = 6002
	JobStatusFailedTimeout         = 7000
	JobStatusFailedWarning         = 7001
	JobStatusFailedError           = 7002
	JobStatusFailedQuota           = 7003
	JobStatusFailedScheduledMissed = 7004
	JobStatusFailedCancelled       = 7005
	JobStatusFailedSkippedAlready  = 7006
	JobStatusFailedAbandoned       = 7007
)

// JobStatusIsRunning returns whether status means the job is still running.
func JobStatusIsRunning(status int) bool {
	return status >= 6000 && status < 7000
}

// JobStatusIsFailure returns whether status means the job failed.
func JobStatusIsFailure(status int) bool {
	return status >= 7000 && status < 8000
}

// Password formats (UserProfileConfig.PasswordFormat).
const (
	PasswordFormatPlaintext    = 0
	PasswordFormatAESCBC       = 1
	PasswordFormatBcryptSHA256 = 2
	PasswordFormatBcryptOnly   = 3
)

// Search clause types (SearchClause.ClauseType). An empty type means that
// the clause is a rule rather than a combination of children.
const (
	SearchClauseRule = ""
	SearchClauseAnd  = "and"
	SearchClauseOr   = "or"
)

// Search rule operators (SearchClause.RuleOperator).
const (
	SearchOperatorStringEquals        = "str_eq"
	SearchOperatorStringNotEquals     = "str_neq"
	SearchOperatorStringContains      = "str_contains"
	SearchOperatorStringNotContains   = "str_ncontains"
	SearchOperatorStringStartsWith    = "str_starts"
	SearchOperatorStringNotStartsWith = "str_nstarts"
	SearchOperatorIntEquals           = "int_eq"
	SearchOperatorIntNotEquals        = "int_neq"
	SearchOperatorIntGreaterThan      = "int_gt"
	SearchOperatorIntLessThan         = "int_lt"
	SearchOperatorBoolIs              = "bool_is"
	SearchOperatorBoolIsNot           = "bool_nis"
)

// Stream event types (StreamableEvent.Type).
const (
	EventUserNew                = 4100
	EventUserUpdated            = 4101
	EventUserRemoved            = 4102
	EventJobNew                 = 4200
	EventJobCompletedOK         = 4201
	EventJobCompletedError      = 4202
	EventDeviceLiveConnected    = 4300
	EventDeviceLiveDisconnected = 4301
	EventPolicyUpdated          = 4400
	EventBucketUpdated          = 4500
)

// Destination types (DestinationConfig.DestinationType).
const (
	DestinationLocalCopy    = 1001
	DestinationS3Compatible = 1002
	DestinationCometServer  = 1003
)

// Retention modes (RetentionPolicy.Mode).
const (
	RetentionModeKeepEverything = 801
	RetentionModeDeleteExcept   = 802
)
