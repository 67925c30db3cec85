package session

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+91)?[0-9]{10}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

// Malformed input is rejected here, before any call is made; nothing
// below this layer sees an invalid shape.

func validateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func validatePhoneNumber(phone string) error {
	cleaned := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if !phonePattern.MatchString(cleaned) {
		return fmt.Errorf("phone number must be 10 digits")
	}
	return nil
}

func validateOTP(otp string) error {
	if !otpPattern.MatchString(strings.TrimSpace(otp)) {
		return fmt.Errorf("otp must be a 6 digit code")
	}
	return nil
}
