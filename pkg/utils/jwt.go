package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignToken issues an HS256 token carrying the user id and username.
// Expiry comes from JWT_EXP_DURATION (hours), defaulting to 24.
func SignToken(userID int, username string) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	hours := 24
	if h, err := strconv.Atoi(os.Getenv("JWT_EXP_DURATION")); err == nil && h > 0 {
		hours = h
	}

	claims := jwt.MapClaims{
		"uid":  userID,
		"user": username,
		"exp":  time.Now().Add(time.Duration(hours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
