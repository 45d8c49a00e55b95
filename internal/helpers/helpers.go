package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	userID, ok := claims["user_id"].(string)
	if !ok {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return userID, nil
}

// IsAdmin - извлекает признак администратора из контекста JWT токена
func IsAdmin(context context.Context) bool {
	_, claims, _ := jwtauth.FromContext(context)
	isAdmin, ok := claims["is_admin"].(bool)
	return ok && isAdmin
}
