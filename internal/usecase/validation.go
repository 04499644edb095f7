package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateCompanyInput(input CreateCompanyInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Website) == "" {
		errors = append(errors, ValidationError{"website", "is required"})
	}

	if input.CompanySize != "" && !entity.IsValidCompanySize(input.CompanySize) {
		errors = append(errors, ValidationError{"companySize", "is not a known size bracket"})
	}

	return errors
}

func ValidateCompanyPatch(patch *entity.CompanyPatch) []ValidationError {
	var errors []ValidationError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errors = append(errors, ValidationError{"name", "must not be empty"})
	}
	if patch.Website != nil && strings.TrimSpace(*patch.Website) == "" {
		errors = append(errors, ValidationError{"website", "must not be empty"})
	}
	if patch.CompanySize != nil && *patch.CompanySize != "" && !entity.IsValidCompanySize(*patch.CompanySize) {
		errors = append(errors, ValidationError{"companySize", "is not a known size bracket"})
	}
	if patch.Decision != nil && !isValidDecision(*patch.Decision) {
		errors = append(errors, ValidationError{"decision", "must be yes, no or empty"})
	}
	if patch.Status != nil && *patch.Status != entity.CompanyStatusActive && *patch.Status != entity.CompanyStatusArchived {
		errors = append(errors, ValidationError{"status", "must be ACTIVE or ARCHIVED"})
	}
	if patch.LastAttempt != nil && *patch.LastAttempt != "" && !isValidDate(*patch.LastAttempt) {
		errors = append(errors, ValidationError{"lastAttempt", "must be a valid date (YYYY-MM-DD)"})
	}
	if patch.TotalEmails != nil && *patch.TotalEmails < 0 {
		errors = append(errors, ValidationError{"totalEmails", "must not be negative"})
	}
	if patch.TotalPeople != nil && *patch.TotalPeople < 0 {
		errors = append(errors, ValidationError{"totalPeople", "must not be negative"})
	}

	return errors
}

func ValidateCreatePersonInput(input CreatePersonInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyID) == "" {
		errors = append(errors, ValidationError{"companyId", "is required"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidatePersonPatch(patch *entity.PersonPatch) []ValidationError {
	var errors []ValidationError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errors = append(errors, ValidationError{"name", "must not be empty"})
	}
	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			errors = append(errors, ValidationError{"email", "must not be empty"})
		} else if _, err := mail.ParseAddress(*patch.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}
	if patch.Attempts != nil && (*patch.Attempts < 0 || *patch.Attempts > entity.MaxAttempts) {
		errors = append(errors, ValidationError{"attempts", "must be between 0 and 3"})
	}
	if patch.LastEmailDate != nil && *patch.LastEmailDate != "" && !isValidDate(*patch.LastEmailDate) {
		errors = append(errors, ValidationError{"lastEmailDate", "must be a valid date (YYYY-MM-DD)"})
	}

	return errors
}

func ValidateCreateEmailStatInput(input CreateEmailStatInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PersonID) == "" {
		errors = append(errors, ValidationError{"personId", "is required"})
	}
	if strings.TrimSpace(input.CompanyID) == "" {
		errors = append(errors, ValidationError{"companyId", "is required"})
	}
	if input.AttemptNumber < 1 || input.AttemptNumber > entity.MaxAttempts {
		errors = append(errors, ValidationError{"attemptNumber", "must be between 1 and 3"})
	}
	if strings.TrimSpace(input.SentDate) == "" {
		errors = append(errors, ValidationError{"sentDate", "is required"})
	} else if !isValidDate(input.SentDate) {
		errors = append(errors, ValidationError{"sentDate", "must be a valid date (YYYY-MM-DD)"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}

	return errors
}

func ValidateRecordEngagementInput(input RecordEngagementInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PersonID) == "" {
		errors = append(errors, ValidationError{"personId", "is required"})
	}
	if !entity.EngagementType(input.Type).Valid() {
		errors = append(errors, ValidationError{"type", "must be open, click, resume_open or reply"})
	}

	return errors
}

func isValidDecision(decision string) bool {
	return decision == "" || decision == entity.DecisionYes || decision == entity.DecisionNo
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}
