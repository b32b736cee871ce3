package models

type User struct {
	ID       int    `json:"id,omitempty" db:"id,omitempty"`
	Username string `json:"username,omitempty" db:"username,omitempty"`
	Email    string `json:"email,omitempty" db:"email,omitempty"`
	Password string `json:"password,omitempty" db:"password,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
