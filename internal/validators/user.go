// Package validators performs structural validation of inbound request
// bodies before they reach the service layer. Each function returns the
// full list of field errors so a client sees every problem at once.
package validators

import (
	"fmt"
	"net/mail"

	"github.com/MKhiriev/go-pulse-keeper/models"
)

// Field name constants used in validation error output.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Structural limits on user input.
const (
	MinPasswordLength = 6
	MaxUsernameLength = 64
)

// ValidateRegister checks a registration request: username present and
// bounded, email well-formed, password at least MinPasswordLength
// characters. Returns nil when the request is valid.
func ValidateRegister(req models.RegisterRequest) []models.FieldError {
	var errs []models.FieldError

	if req.Username == "" {
		errs = append(errs, models.FieldError{Field: FieldUsername, Message: "username is required"})
	} else if len(req.Username) > MaxUsernameLength {
		errs = append(errs, models.FieldError{Field: FieldUsername, Message: fmt.Sprintf("username must be at most %d characters", MaxUsernameLength)})
	}

	errs = append(errs, validateEmail(req.Email)...)

	if len(req.Password) < MinPasswordLength {
		errs = append(errs, models.FieldError{Field: FieldPassword, Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)})
	}

	return errs
}

// ValidateLogin checks a token request: email well-formed, password
// present. Credential correctness is not this package's concern.
func ValidateLogin(req models.LoginRequest) []models.FieldError {
	var errs []models.FieldError

	errs = append(errs, validateEmail(req.Email)...)

	if req.Password == "" {
		errs = append(errs, models.FieldError{Field: FieldPassword, Message: "password is required"})
	}

	return errs
}

func validateEmail(email string) []models.FieldError {
	if email == "" {
		return []models.FieldError{{Field: FieldEmail, Message: "email is required"}}
	}

	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []models.FieldError{{Field: FieldEmail, Message: "email is not a valid address"}}
	}

	return nil
}
