package services

// ValidationError is a form-level failure. It is reported straight back
// to the user and never retried; no state changes when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
