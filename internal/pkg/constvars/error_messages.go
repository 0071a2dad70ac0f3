package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be one of admin, doctor, receptionist or patient",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientAccountInactive               = "your account is inactive, contact administrator"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientRecordNotFound                = "the requested record was not found"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientInvalidStatusTransition       = "this appointment status change is not allowed"
	ErrClientPatientProfileNotLinked       = "patient profile not found, contact administrator"
	ErrClientBackendUnavailable            = "service temporarily unavailable, please retry"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevURLParamIDValidation     = "url parameter %s is not a valid id"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "password check failed for account"
	ErrDevAccountNotFound          = "no account matches the given email"
	ErrDevAccountInactive          = "account isActive=false and role is not admin"
	ErrDevEmailAlreadyExists       = "an account with this email already exists"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthGenerateToken        = "failed to generate token"
	ErrDevAuthSigningMethod        = "unexpected jwt signing method"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevRoleNotPermitted         = "role %s is not permitted to %s %s"
	ErrDevNotResourceOwner         = "record patient id does not match linked patient id"
	ErrDevRoleAssignmentDenied     = "only an admin session may assign a non-patient role"
	ErrDevPatientNotLinked         = "patient session has no linked patient record"
	ErrDevInvalidStatusTransition  = "appointment status transition %s -> %s is not allowed"
	ErrDevLoginAttemptLimitReached = "login attempt quota exceeded for key"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	ErrDevDBFailedToFindDocument     = "failed to find document(s) on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document on database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate document(s) on database"
	ErrDevDBFailedToCountDocuments   = "failed to count document(s) on database"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisIncrementData = "failed to increment value on redis"

	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	ErrDevMinioCreateObject  = "failed to create object on bucket %s"
	ErrDevMinioPresignObject = "failed to presign object url on bucket %s"
)
