package session

import (
	"encoding/json"
	"fmt"

	"github.com/nyayasetu/go-legalaid/users"
)

// Request and response contracts for the backend's user endpoints.
// Each endpoint gets an explicit schema; a response missing required
// fields is a typed error, never silently-zero fields downstream.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// authResponse is the contract of POST /users/login/ and
// POST /users/register/.
type authResponse struct {
	User    *users.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type checkEmailPhoneRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// FieldErrors carries the per-field availability conflicts reported by
// POST /users/check-email-phone/, so the UI can annotate the specific
// input rather than show one generic error.
type FieldErrors struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (e *FieldErrors) Error() string {
	switch {
	case e.Email != "" && e.Phone != "":
		return fmt.Sprintf("email: %s; phone: %s", e.Email, e.Phone)
	case e.Email != "":
		return fmt.Sprintf("email: %s", e.Email)
	case e.Phone != "":
		return fmt.Sprintf("phone: %s", e.Phone)
	}
	return "email and phone are available"
}

func (e *FieldErrors) Empty() bool {
	return e.Email == "" && e.Phone == ""
}

func decodeFieldErrors(body []byte) *FieldErrors {
	fieldErrors := &FieldErrors{}
	if err := json.Unmarshal(body, fieldErrors); err != nil {
		return nil
	}
	if fieldErrors.Empty() {
		return nil
	}
	return fieldErrors
}
