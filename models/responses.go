package models

// AuthResponse is returned by the register and token endpoints: the public
// projection of the account together with a freshly issued bearer token.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// ErrorResponse is the uniform single-message error body. Credential
// failures must always use the same generic message regardless of whether
// the email was unknown or the password wrong.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes one structural validation failure on a named input
// field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries the full list of field errors produced by
// input validation, returned with HTTP 400.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
