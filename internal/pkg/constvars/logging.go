package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingRoleKey       = "role"
	LoggingUserIDKey     = "user_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingResourceKey   = "resource"
	LoggingActionKey     = "action"
)
