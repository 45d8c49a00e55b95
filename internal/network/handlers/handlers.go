package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/profit-gainer/internal/logger"
)

// Result - явный результат операции для клиента: признак успеха и
// человекочитаемое сообщение вместо неявного состояния сессии
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON - сериализация ответа с кодом состояния
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}

// WriteResult - успешный результат с сообщением
func WriteResult(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Result{Success: true, Message: message})
}

// WriteError - результат с ошибкой и сообщением
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Result{Success: false, Message: message})
}
