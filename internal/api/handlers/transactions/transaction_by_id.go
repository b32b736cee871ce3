package transactions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fintrack/internal/models"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TransactionByIdHandler serves the item route: GET fetches, PUT updates,
// DELETE removes. Every branch is scoped to the authenticated owner.
func TransactionByIdHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		GetTransactionById(w, r)
	case http.MethodPut:
		UpdateTransaction(w, r)
	case http.MethodDelete:
		DeleteTransaction(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// FUNC TO GET ONE TRANSACTION BY ID
func GetTransactionById(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	row := db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "transaction not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching transaction: %v", err)
		utils.WriteError(w, "error fetching transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, "", transaction)
}

// FUNC TO UPDATE A TRANSACTION (PARTIAL FIELD REPLACEMENT)
func UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
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

	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if errs := validateTransactionInput(input, true); len(errs) > 0 {
		utils.WriteValidationError(w, "validation failed", errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// ownership check first so a foreign id is indistinguishable from a
	// missing one
	var existingID int
	err = db.QueryRowContext(ctx, "SELECT id FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID).Scan(&existingID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "transaction not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error resolving transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	// Build dynamic update query from the supplied fields only
	fields := []string{}
	args := []interface{}{}

	if input.Date != nil {
		parsed, _, err := parseDateParam(*input.Date)
		if err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		fields = append(fields, "date = ?")
		args = append(args, parsed)
	}
	if input.Description != nil {
		fields = append(fields, "description = ?")
		args = append(args, strings.TrimSpace(*input.Description))
	}
	if input.Category != nil {
		fields = append(fields, "category = ?")
		args = append(args, *input.Category)
	}
	if input.Type != nil {
		fields = append(fields, "transaction_type = ?")
		args = append(args, *input.Type)
	}
	if input.Amount != nil {
		fields = append(fields, "amount = ?")
		args = append(args, *input.Amount)
	}

	if len(fields) == 0 {
		utils.WriteError(w, "no updates provided", http.StatusBadRequest)
		return
	}

	args = append(args, transactionID, userID)

	query := fmt.Sprintf("UPDATE transactions SET %s WHERE id = ? AND user_id = ?", strings.Join(fields, ", "))
	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		utils.Logger.Errorf("failed to update transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	row := db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	transaction, err := scanTransaction(row)
	if err != nil {
		utils.Logger.Errorf("error fetching updated transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, "transaction updated successfully", transaction)
}

// FUNC TO DELETE A TRANSACTION
func DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete transaction: %v", err)
		utils.WriteError(w, "error deleting transaction", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		utils.Logger.Errorf("failed to read delete result: %v", err)
		utils.WriteError(w, "error deleting transaction", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		utils.WriteError(w, "transaction not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, http.StatusOK, "transaction deleted successfully", nil)
}
