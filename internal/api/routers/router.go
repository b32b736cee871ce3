package routers

import (
	"net/http"
)

func MainRouter() *http.ServeMux {

	mux := http.NewServeMux()

	uRouter := usersRouter()
	mux.Handle("/users/", uRouter)

	tRouter := transactionsRouter()
	mux.Handle("/transactions", tRouter)
	mux.Handle("/transactions/", tRouter)

	return mux
}
