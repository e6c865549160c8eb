package errors

// error_type values returned in ErrorResponse bodies.
const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidQueryError    = "invalid_query"
	HttpValidationError      = "validation_failed"
	HttpNotFoundError        = "not_found"
	HttpJournalDisabledError = "journal_disabled"
)

// ErrorResponse is the error response body for rejected API requests.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
