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
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/shopspring/decimal"
)

// GetInvestmentsHandler — портфель пользователя с процентами прибыли
func GetInvestmentsHandler(rep services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		portfolio, err := rep.GetPortfolio(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get portfolio:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to load investments")
			return
		}

		WriteJSON(w, http.StatusOK, portfolio)
	})
}

// AddInvestmentHandler — открытие инвестиции со списанием средств с кошелька
func AddInvestmentHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		var req models.InvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		amount := decimal.NewFromFloat(req.Amount)
		err = l.OpenInvestment(r.Context(), userID, amount, req.AssetName, req.Plan)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid investment amount")
			case errors.Is(err, services.ErrInvalidPlan):
				WriteError(w, http.StatusUnprocessableEntity, "Invalid plan for this amount")
			case errors.Is(err, storage.ErrInsufficientFunds):
				WriteError(w, http.StatusPaymentRequired, insufficientFundsMessage(r, l, userID))
			default:
				logger.Error("Failed to open investment:", err)
				WriteError(w, http.StatusInternalServerError, "Investment failed. Try again.")
			}
			return
		}

		WriteResult(w, fmt.Sprintf("Successfully invested $%.2f in %s (%s Plan)!", req.Amount, req.AssetName, req.Plan))
	})
}
