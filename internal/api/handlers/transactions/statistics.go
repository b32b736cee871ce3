package transactions

import (
	"context"
	"fintrack/internal/models"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type Statistics struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
	NetAmount    decimal.Decimal `json:"netAmount"`
}

type typeGroup struct {
	transactionType string
	total           decimal.Decimal
	count           int
}

// statsFromGroups shapes the grouped rows into the response, defaulting any
// type missing from the data to zero. netAmount is always income - expense.
func statsFromGroups(groups []typeGroup) Statistics {
	stats := Statistics{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, g := range groups {
		switch g.transactionType {
		case models.TypeIncome:
			stats.TotalIncome = g.total
			stats.IncomeCount = g.count
		case models.TypeExpense:
			stats.TotalExpense = g.total
			stats.ExpenseCount = g.count
		}
	}

	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// FUNC TO GET TRANSACTION STATISTICS GROUPED BY TYPE
func GetTransactionStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	where := "user_id = ?"
	args := []interface{}{userID}

	if start, end, ok := monthYearWindow(r.URL.Query()); ok {
		where += " AND date >= ? AND date <= ?"
		args = append(args, start, end)
	}

	query := `
		SELECT transaction_type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM transactions
		WHERE ` + where + `
		GROUP BY transaction_type`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		utils.Logger.Errorf("error fetching statistics: %v", err)
		utils.WriteError(w, "error fetching statistics", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var groups []typeGroup
	for rows.Next() {
		var g typeGroup
		if err := rows.Scan(&g.transactionType, &g.total, &g.count); err != nil {
			utils.Logger.Errorf("error scanning statistics: %v", err)
			utils.WriteError(w, "error fetching statistics", http.StatusInternalServerError)
			return
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		utils.Logger.Errorf("error reading statistics: %v", err)
		utils.WriteError(w, "error fetching statistics", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, "", statsFromGroups(groups))
}
