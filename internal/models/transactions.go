package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts serialize as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Categories is the closed set of transaction categories. The database
// column carries the same enum; keep the two in sync.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Income",
	"Other",
}

var categorySet = func() map[string]bool {
	set := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		set[c] = true
	}
	return set
}()

func ValidCategory(category string) bool {
	return categorySet[category]
}

func ValidTransactionType(transactionType string) bool {
	return transactionType == TypeIncome || transactionType == TypeExpense
}

type Transaction struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"userId" db:"user_id"`
	Reference   string          `json:"reference,omitempty" db:"reference"`
	Date        time.Time       `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	Category    string          `json:"category" db:"category"`
	Type        string          `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// TransactionInput is the wire shape for create, bulk create and update.
// Pointer fields distinguish "absent" from "zero" so partial updates only
// touch what the caller sent.
type TransactionInput struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
}

type BulkCreateRequest struct {
	Transactions []TransactionInput `json:"transactions"`
}
