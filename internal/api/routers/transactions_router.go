package routers

import (
	"fintrack/internal/api/handlers/transactions"
	"net/http"
)

func transactionsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/transactions", transactions.TransactionsHandler)

	mux.HandleFunc("/transactions/bulk", transactions.BulkCreateTransactions)

	mux.HandleFunc("/transactions/statistics", transactions.GetTransactionStatistics)

	mux.HandleFunc("/transactions/{id}", transactions.TransactionByIdHandler)

	return mux
}
