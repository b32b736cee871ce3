package main

import (
	mw "fintrack/internal/api/middlewares"
	"fintrack/internal/api/routers"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, the process environment is enough in deployment
	godotenv.Load()

	utils.InitLogger()

	if err := sqlconnect.ConnectDb(); err != nil {
		utils.Logger.Fatal("DB connection failed: ", err)
	}
	defer sqlconnect.CloseDb()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = ":8080"
	}

	router := routers.MainRouter()
	jwtMiddleware := mw.MiddlewaresExcludePaths(mw.JWTMiddleware, "/users/signup", "/users/login")

	secureMux := jwtMiddleware(mw.SecurityHeaders(router))

	server := &http.Server{
		Addr:    port,
		Handler: secureMux,
	}

	utils.Logger.Info("Server is running on port ", port)

	cert := os.Getenv("CERT_FILE")
	key := os.Getenv("KEY_FILE")

	var err error
	if cert != "" && key != "" {
		err = server.ListenAndServeTLS(cert, key)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil {
		utils.Logger.Fatal("Error starting the server: ", err)
	}
}
