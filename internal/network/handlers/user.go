package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/profit-gainer/internal/helpers"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if request.FullName == "" || request.Email == "" || request.Password == "" {
			WriteError(w, http.StatusBadRequest, "Please fill in all required fields")
			return
		}

		// регистрация в Identity
		if err := i.RegisterUser(r.Context(), request); err != nil {
			// пользователь уже существует
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", request.Email)
				WriteError(w, http.StatusConflict, "Email already registered")
			} else {
				// ошибка регистрации
				logger.Error("Error register user", err)
				WriteError(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		// Пользователь зарегистрирован, авторизация отдельным запросом
		logger.Info("User registered", request.Email)
		WriteResult(w, "Account created successfully. Please login.")
	})
}

// AuthenticateUserHandler — аутентификация пользователя
func AuthenticateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		// аутентификация в Identity
		user, err := i.AuthenticateUser(r.Context(), request)
		if err != nil {
			// проверка авторизации
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Warn("Authentication failed", request.Email)
				WriteError(w, http.StatusUnauthorized, "Invalid email/password")
				return
			}
			logger.Error("Error authenticate user", err)
			WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(user)
		if err != nil {
			logger.Error("Failed to generate token", err)
			WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", request.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		WriteJSON(w, http.StatusOK, Result{Success: true, Data: map[string]interface{}{
			"is_admin": user.IsAdmin,
		}})
	})
}

// UpdateUserNameHandler — смена отображаемого имени пользователя
func UpdateUserNameHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		var request models.UpdateNameRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if request.FullName == "" {
			WriteError(w, http.StatusBadRequest, "Name is required")
			return
		}

		if err := i.UpdateUserName(r.Context(), userID, request.FullName); err != nil {
			logger.Error("Failed to update user name:", err)
			WriteError(w, http.StatusInternalServerError, "Error updating name")
			return
		}
		WriteResult(w, "Name updated successfully!")
	})
}
