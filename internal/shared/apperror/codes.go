package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Policy violations (4xx, audit-logged by the caller)
	CodeGeoFencingViolation      = "GEO_FENCING_VIOLATION"
	CodeIPRestrictionViolation   = "IP_RESTRICTION_VIOLATION"
	CodeSinglePunchModeViolation = "SINGLE_PUNCH_MODE_VIOLATION"
	CodeMaxPunchLimitExceeded    = "MAX_PUNCH_LIMIT_EXCEEDED"

	CodeTenantNotFound = "TENANT_NOT_FOUND"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
