package transactions

import (
	"context"
	"encoding/json"
	"fintrack/internal/models"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const selectColumns = "id, user_id, reference, date, description, category, transaction_type, amount, created_at, updated_at"

func requestUserID(r *http.Request) (int, bool) {
	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		return 0, false
	}
	return int(idFloat), true
}

func scanTransaction(row interface{ Scan(...interface{}) error }) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Reference, &t.Date, &t.Description, &t.Category, &t.Type, &t.Amount, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// TransactionsHandler serves the collection route: GET lists, POST creates.
func TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ListTransactions(w, r)
	case http.MethodPost:
		CreateTransaction(w, r)
	default:
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// FUNC TO LIST TRANSACTIONS WITH FILTERS AND PAGINATION
func ListTransactions(w http.ResponseWriter, r *http.Request) {
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

	page, limit := utils.GetPaginationParams(r)
	offset := (page - 1) * limit

	where, args := buildListFilter(userID, r.URL.Query())

	var total int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions WHERE "+where, args...).Scan(&total)
	if err != nil {
		utils.Logger.Errorf("error counting transactions: %v", err)
		utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
		return
	}

	query := "SELECT " + selectColumns + " FROM transactions WHERE " + where + orderBy + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions: %v", err)
		utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			utils.Logger.Errorf("error scanning transaction: %v", err)
			utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
			return
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		utils.Logger.Errorf("error reading transactions: %v", err)
		utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"transactions": transactions,
		"pagination": map[string]interface{}{
			"currentPage":       page,
			"totalPages":        utils.TotalPages(total, limit),
			"totalTransactions": total,
			"limit":             limit,
		},
	}

	utils.WriteJSON(w, http.StatusOK, "", data)
}

// FUNC TO CREATE A TRANSACTION
func CreateTransaction(w http.ResponseWriter, r *http.Request) {
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
	// unknown fields (userId included) are dropped; ownership always comes
	// from the token, never the body
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if errs := validateTransactionInput(input, false); len(errs) > 0 {
		utils.WriteValidationError(w, "validation failed", errs)
		return
	}

	transaction, err := newTransaction(userID, input)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, reference, date, description, category, transaction_type, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		transaction.UserID, transaction.Reference, transaction.Date, transaction.Description, transaction.Category, transaction.Type, transaction.Amount)
	if err != nil {
		utils.Logger.Errorf("failed to insert transaction: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}
	transaction.ID = int(id)

	utils.WriteJSON(w, http.StatusCreated, "transaction created successfully", transaction)
}

// newTransaction stamps a validated input with the caller's identity, a
// fresh reference and a defaulted date.
func newTransaction(userID int, input models.TransactionInput) (models.Transaction, error) {
	date := time.Now()
	if input.Date != nil {
		parsed, _, err := parseDateParam(*input.Date)
		if err != nil {
			return models.Transaction{}, err
		}
		date = parsed
	}

	now := time.Now()
	return models.Transaction{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Date:        date,
		Description: strings.TrimSpace(*input.Description),
		Category:    *input.Category,
		Type:        *input.Type,
		Amount:      *input.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
