package transactions

import (
	"fintrack/internal/models"
	"strings"
)

const maxDescriptionLen = 200

// validateTransactionInput checks field-level rules and returns one message
// per offending field. In partial mode (updates) only supplied fields are
// checked; create mode additionally requires the mandatory fields.
func validateTransactionInput(in models.TransactionInput, partial bool) []string {
	var errs []string

	if !partial {
		if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
			errs = append(errs, "description is required")
		}
		if in.Category == nil || *in.Category == "" {
			errs = append(errs, "category is required")
		}
		if in.Type == nil || *in.Type == "" {
			errs = append(errs, "type is required")
		}
		if in.Amount == nil {
			errs = append(errs, "amount is required")
		}
	}

	if in.Description != nil && strings.TrimSpace(*in.Description) != "" {
		if len(strings.TrimSpace(*in.Description)) > maxDescriptionLen {
			errs = append(errs, "description must be between 1 and 200 characters")
		}
	} else if partial && in.Description != nil {
		errs = append(errs, "description must be between 1 and 200 characters")
	}

	if in.Category != nil && *in.Category != "" && !models.ValidCategory(*in.Category) {
		errs = append(errs, "category must be one of: "+strings.Join(models.Categories, ", "))
	} else if partial && in.Category != nil && *in.Category == "" {
		errs = append(errs, "category must be one of: "+strings.Join(models.Categories, ", "))
	}

	if in.Type != nil && *in.Type != "" && !models.ValidTransactionType(*in.Type) {
		errs = append(errs, "type must be either income or expense")
	} else if partial && in.Type != nil && *in.Type == "" {
		errs = append(errs, "type must be either income or expense")
	}

	if in.Amount != nil && !in.Amount.IsPositive() {
		errs = append(errs, "amount must be a number greater than 0")
	}

	if in.Date != nil {
		if _, _, err := parseDateParam(*in.Date); err != nil {
			errs = append(errs, "date must be a valid date (YYYY-MM-DD or RFC3339)")
		}
	}

	return errs
}
