package booking

import (
	"fmt"
	"strings"

	"github.com/medibook/clinic-scheduler/internal/validators"
)

// ===============================
// Intake Form
// ===============================

type FormData struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"date_of_birth"`
	Reason       string `json:"reason"`
	Insurance    string `json:"insurance"`
	IsNewPatient bool   `json:"is_new_patient"`
}

// Validate returns the names of the fields that failed. First name, last
// name, email and phone are required; the reason is collected but optional.
// An empty result means the form may be submitted.
func Validate(form FormData) []string {
	var failed []string

	if strings.TrimSpace(form.FirstName) == "" {
		failed = append(failed, "first_name")
	}
	if strings.TrimSpace(form.LastName) == "" {
		failed = append(failed, "last_name")
	}
	if !validators.IsEmailShapeValid(strings.TrimSpace(form.Email)) {
		failed = append(failed, "email")
	}
	if strings.TrimSpace(form.Phone) == "" {
		failed = append(failed, "phone")
	}

	return failed
}

// ValidationError carries the failed field set so callers can drive
// inline error display.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation_failed: %s", strings.Join(e.Fields, ", "))
}
