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

// GetFundRequestStatsHandler — сводка заявок пользователя по статусам
func GetFundRequestStatsHandler(rep services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		stats, err := rep.GetFundRequestStats(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get fund request stats:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to load fund requests")
			return
		}

		WriteJSON(w, http.StatusOK, stats)
	})
}

// AddFundRequestHandler — заявка на пополнение картой.
// Полный номер карты и CVV дальше обработчика не уходят.
func AddFundRequestHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		var req models.FundRequestInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if req.CardNumber == "" || req.ExpiryDate == "" || req.CVV == "" {
			WriteError(w, http.StatusBadRequest, "Card details are required")
			return
		}

		err = l.SubmitFundRequest(r.Context(), userID, req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid positive amount")
				return
			}
			logger.Error("Failed to submit fund request:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to submit fund request")
			return
		}

		WriteResult(w, "Fund request submitted! It is now pending admin approval.")
	})
}
