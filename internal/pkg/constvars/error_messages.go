package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must match the %s format",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested %s was not found"
	ErrClientUpstreamUnavailable           = "the clinical data store is currently unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevValidationFailed     = "validation failed"
	ErrDevCannotParseJSON      = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON    = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate      = "cannot parse the requested date"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevUsernameAlreadyExist = "username already exists"
	ErrDevUserNotExists        = "user not exists in our system"

	ErrDevSparkCreateFHIRResource         = "failed to create FHIR %s on `Spark` service"
	ErrDevSparkUpdateFHIRResource         = "failed to update FHIR %s on `Spark` service"
	ErrDevSparkGetFHIRResource            = "failed to get FHIR %s from `Spark` service"
	ErrDevSparkFHIRResourceNotFound       = "FHIR %s not found on `Spark` service"
	ErrDevSparkDecodeFHIRResourceResponse = "failed to decode FHIR %s response from `Spark` service"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthNoIdentity            = "no authenticated identity supplied"
	ErrDevPractitionerNotFound      = "no Practitioner found with identifier %s"

	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevRedisFailedToSetData     = "failed to set data to redis"
	ErrDevRedisFailedToGetData     = "failed to get data from redis"
	ErrDevRedisFailedToDeleteData  = "failed to delete data from redis"
)
