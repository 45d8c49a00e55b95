package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/denmor86/profit-gainer/internal/helpers"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/services"
	"github.com/shopspring/decimal"
)

// GetDepositsHandler — история заявок на пополнение пользователя
func GetDepositsHandler(rep services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		deposits, err := rep.GetDeposits(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get deposits:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to load your deposit history")
			return
		}

		if len(deposits) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		WriteJSON(w, http.StatusOK, deposits)
	})
}

// AddDepositHandler — заявка на пополнение, средства зачисляются после одобрения
func AddDepositHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		var req models.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if req.PaymentMethod == "" {
			WriteError(w, http.StatusBadRequest, "Amount and payment method are required")
			return
		}

		amount := decimal.NewFromFloat(req.Amount)
		err = l.SubmitDeposit(r.Context(), userID, amount, req.PaymentMethod)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid positive amount")
				return
			}
			logger.Error("Failed to submit deposit:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to submit deposit request")
			return
		}

		WriteResult(w, fmt.Sprintf("Deposit request of $%.2f via %s submitted! It is now pending admin approval.",
			req.Amount, req.PaymentMethod))
	})
}
