package transactions

import (
	"context"
	"encoding/json"
	"fintrack/internal/models"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"net/http"
	"time"
)

type bulkFailure struct {
	Index  int      `json:"index"`
	Errors []string `json:"errors"`
}

// FUNC TO BULK CREATE TRANSACTIONS
// Inserts records one by one with independent error capture: a bad record
// is reported in the summary and never blocks its siblings.
func BulkCreateTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, ok := requestUserID(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(req.Transactions) == 0 {
		utils.WriteError(w, "transactions array is required and cannot be empty", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	created := []models.Transaction{}
	failures := []bulkFailure{}

	for i, input := range req.Transactions {
		if errs := validateTransactionInput(input, false); len(errs) > 0 {
			failures = append(failures, bulkFailure{Index: i, Errors: errs})
			continue
		}

		transaction, err := newTransaction(userID, input)
		if err != nil {
			failures = append(failures, bulkFailure{Index: i, Errors: []string{"date must be a valid date (YYYY-MM-DD or RFC3339)"}})
			continue
		}

		res, err := db.ExecContext(ctx, `
			INSERT INTO transactions (user_id, reference, date, description, category, transaction_type, amount)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			transaction.UserID, transaction.Reference, transaction.Date, transaction.Description, transaction.Category, transaction.Type, transaction.Amount)
		if err != nil {
			utils.Logger.Errorf("bulk insert failed for record %d: %v", i, err)
			failures = append(failures, bulkFailure{Index: i, Errors: []string{"failed to persist transaction"}})
			continue
		}

		if id, err := res.LastInsertId(); err == nil {
			transaction.ID = int(id)
		}
		created = append(created, transaction)
	}

	data := map[string]interface{}{
		"created":      len(created),
		"failed":       len(failures),
		"transactions": created,
		"failures":     failures,
	}

	switch {
	case len(failures) == 0:
		utils.WriteJSON(w, http.StatusCreated, "all transactions created successfully", data)
	case len(created) == 0:
		utils.WriteJSON(w, http.StatusBadRequest, "no transactions could be created", data)
	default:
		utils.WriteJSON(w, http.StatusMultiStatus, "some transactions could not be created", data)
	}
}
