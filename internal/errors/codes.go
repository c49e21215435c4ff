package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// Clients map these codes to their own messages.

const (
	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed request body
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // unparsable id

	// Resources (RESOURCE_)
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
