package models

import "time"

// RegisterRequest - модель регистрации пользователя, приходит извне
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest - модель аутентификации пользователя
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateNameRequest - модель смены отображаемого имени
type UpdateNameRequest struct {
	FullName string `json:"full_name"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	FullName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// UserAccount - модель пользователя с балансом для админки
type UserAccount struct {
	UserID    string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"created_at"`
}
