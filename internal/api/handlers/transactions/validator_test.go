package transactions

import (
	"fintrack/internal/models"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func validInput() models.TransactionInput {
	return models.TransactionInput{
		Description: strPtr("Lunch"),
		Category:    strPtr("Food & Dining"),
		Type:        strPtr("expense"),
		Amount:      decPtr(12.50),
	}
}

func TestValidateTransactionInputCreate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.TransactionInput)
		wantErrs int
		wantSub  string
	}{
		{
			name:     "valid input",
			mutate:   func(in *models.TransactionInput) {},
			wantErrs: 0,
		},
		{
			name:     "all fields missing",
			mutate:   func(in *models.TransactionInput) { *in = models.TransactionInput{} },
			wantErrs: 4,
			wantSub:  "description is required",
		},
		{
			name:     "whitespace description counts as missing",
			mutate:   func(in *models.TransactionInput) { in.Description = strPtr("   ") },
			wantErrs: 1,
			wantSub:  "description is required",
		},
		{
			name:     "description over 200 chars",
			mutate:   func(in *models.TransactionInput) { in.Description = strPtr(strings.Repeat("x", 201)) },
			wantErrs: 1,
			wantSub:  "between 1 and 200",
		},
		{
			name:     "description of exactly 200 chars passes",
			mutate:   func(in *models.TransactionInput) { in.Description = strPtr(strings.Repeat("x", 200)) },
			wantErrs: 0,
		},
		{
			name:     "unknown category",
			mutate:   func(in *models.TransactionInput) { in.Category = strPtr("Receipt") },
			wantErrs: 1,
			wantSub:  "category must be one of",
		},
		{
			name:     "bad type",
			mutate:   func(in *models.TransactionInput) { in.Type = strPtr("transfer") },
			wantErrs: 1,
			wantSub:  "income or expense",
		},
		{
			name:     "zero amount",
			mutate:   func(in *models.TransactionInput) { in.Amount = decPtr(0) },
			wantErrs: 1,
			wantSub:  "greater than 0",
		},
		{
			name:     "negative amount",
			mutate:   func(in *models.TransactionInput) { in.Amount = decPtr(-1) },
			wantErrs: 1,
			wantSub:  "greater than 0",
		},
		{
			name:     "one cent passes",
			mutate:   func(in *models.TransactionInput) { in.Amount = decPtr(0.01) },
			wantErrs: 0,
		},
		{
			name:     "bad date",
			mutate:   func(in *models.TransactionInput) { in.Date = strPtr("last tuesday") },
			wantErrs: 1,
			wantSub:  "valid date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			errs := validateTransactionInput(in, false)
			if len(errs) != tc.wantErrs {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, tc.wantErrs)
			}
			if tc.wantSub != "" && !containsSub(errs, tc.wantSub) {
				t.Errorf("errors %v missing %q", errs, tc.wantSub)
			}
		})
	}
}

func TestValidateTransactionInputUpdate(t *testing.T) {
	tests := []struct {
		name     string
		input    models.TransactionInput
		wantErrs int
		wantSub  string
	}{
		{
			name:     "empty update is valid at field level",
			input:    models.TransactionInput{},
			wantErrs: 0,
		},
		{
			name:     "only supplied fields are checked",
			input:    models.TransactionInput{Amount: decPtr(5)},
			wantErrs: 0,
		},
		{
			name:     "supplied bad amount fails",
			input:    models.TransactionInput{Amount: decPtr(-5)},
			wantErrs: 1,
			wantSub:  "greater than 0",
		},
		{
			name:     "supplied empty description fails",
			input:    models.TransactionInput{Description: strPtr("  ")},
			wantErrs: 1,
			wantSub:  "between 1 and 200",
		},
		{
			name:     "supplied empty type fails",
			input:    models.TransactionInput{Type: strPtr("")},
			wantErrs: 1,
			wantSub:  "income or expense",
		},
		{
			name:     "supplied empty category fails",
			input:    models.TransactionInput{Category: strPtr("")},
			wantErrs: 1,
			wantSub:  "category must be one of",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validateTransactionInput(tc.input, true)
			if len(errs) != tc.wantErrs {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, tc.wantErrs)
			}
			if tc.wantSub != "" && !containsSub(errs, tc.wantSub) {
				t.Errorf("errors %v missing %q", errs, tc.wantSub)
			}
		})
	}
}

func containsSub(errs []string, sub string) bool {
	for _, e := range errs {
		if strings.Contains(e, sub) {
			return true
		}
	}
	return false
}
