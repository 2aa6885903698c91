package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResourceTypeKey   = "resource_type"
	LoggingResourceIDKey     = "resource_id"
	LoggingResourceCountKey  = "resource_count"
	LoggingPatientIDKey      = "patient_id"
	LoggingEncounterIDKey    = "encounter_id"
	LoggingPractitionerIDKey = "practitioner_id"
	LoggingReferenceKey      = "reference"
	LoggingQueueKey          = "queue"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY     ContextKey = "request_id"
	CONTEXT_IDENTITY_TOKEN_KEY ContextKey = "identity_token"
)
