package validation

// ValidationError is a field-level input error reported back to the caller.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, field, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

const (
	ErrorTooShort       = "TOO_SHORT"
	ErrorTooLong        = "TOO_LONG"
	ErrorInvalidFormat  = "INVALID_FORMAT"
	ErrorRequired       = "REQUIRED"
	ErrorUnchanged      = "UNCHANGED"
	ErrorAlreadyTaken   = "ALREADY_TAKEN"
	ErrorInvalidValue   = "INVALID_VALUE"
	ErrorCooldownActive = "COOLDOWN_ACTIVE"
)
