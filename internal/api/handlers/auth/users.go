package auth

import (
	"database/sql"
	"encoding/json"
	"fintrack/internal/api/handlers"
	"fintrack/internal/models"
	"fintrack/internal/repositories/sqlconnect"
	"fintrack/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// FUNC TO REGISTER USERS
func RegisterUsersHandler(w http.ResponseWriter, r *http.Request) {
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

	var newUser models.User
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&newUser); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	newUser.Username = strings.ToLower(strings.TrimSpace(newUser.Username))
	newUser.Email = strings.ToLower(strings.TrimSpace(newUser.Email))

	if err := handlers.CheckBlankFields(newUser); err != nil {
		utils.WriteError(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	hashedPwd, err := utils.HashPassword(newUser.Password)
	if err != nil {
		utils.WriteError(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	newUser.Password = hashedPwd

	res, err := db.Exec("INSERT INTO users (username, email, password) VALUES (?, ?, ?)",
		newUser.Username, newUser.Email, newUser.Password)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.WriteError(w, "email or username already exists", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to insert user: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	go func(email, username string) {
		if err := utils.SendWelcomeEmail(email, username); err != nil {
			utils.Logger.Errorf("failed to send welcome email to %s: %v", email, err)
		}
	}(newUser.Email, newUser.Username)

	newUser.ID = int(id)
	newUser.Password = ""

	utils.WriteJSON(w, http.StatusCreated, "account created successfully", newUser)
}

// FUNC TO LOGIN
func LoginHandler(w http.ResponseWriter, r *http.Request) {
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

	type loginRequest struct {
		AccountID string `json:"account_id"`
		Password  string `json:"password"`
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.AccountID = strings.ToLower(strings.TrimSpace(req.AccountID))
	if req.AccountID == "" || req.Password == "" {
		utils.WriteError(w, "email or username and password are required", http.StatusBadRequest)
		return
	}

	user := &models.User{}
	query := "SELECT id, username, email, password FROM users WHERE username = ? OR email = ?"
	err := db.QueryRow(query, req.AccountID, req.AccountID).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "incorrect password or account ID", http.StatusUnauthorized)
			return
		}
		utils.Logger.Errorf("database query error: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := utils.VerifyPassword(req.Password, user.Password); err != nil {
		utils.WriteError(w, "incorrect password or account ID", http.StatusUnauthorized)
		return
	}

	tokenString, err := utils.SignToken(user.ID, user.Username)
	if err != nil {
		utils.Logger.Errorf("could not create login token: %v", err)
		utils.WriteError(w, "error signing in", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	})

	data := map[string]interface{}{
		"token": tokenString,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	}

	utils.WriteJSON(w, http.StatusOK, "login successful", data)
}

// FUNC FOR LOGOUT
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Unix(0, 0),
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, http.StatusOK, "logged out successfully", nil)
}

// FUNC TO UPDATE PASSWORD
func UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := int(idFloat)

	var req models.UpdatePasswordRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.WriteError(w, "please enter all fields", http.StatusBadRequest)
		return
	}

	var username, userPassword string
	err := db.QueryRow("SELECT username, password FROM users WHERE id = ?", userID).Scan(&username, &userPassword)
	if err != nil {
		utils.WriteError(w, "user not found", http.StatusNotFound)
		return
	}

	if err := utils.VerifyPassword(req.CurrentPassword, userPassword); err != nil {
		utils.WriteError(w, "the password you entered does not match the current password", http.StatusBadRequest)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.Logger.Errorf("failed to hash password: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err = db.Exec("UPDATE users SET password = ? WHERE id = ?", hashedPassword, userID); err != nil {
		utils.WriteError(w, "failed to update password", http.StatusInternalServerError)
		return
	}

	token, err := utils.SignToken(userID, username)
	if err != nil {
		utils.Logger.Errorf("could not create token: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	})

	utils.WriteJSON(w, http.StatusOK, "password updated successfully", nil)
}
