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

// GetWalletHandler — кошелёк пользователя с историей операций
func GetWalletHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		wallet, err := l.GetWallet(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get wallet:", err)
			WriteError(w, http.StatusInternalServerError, "Error loading wallet")
			return
		}

		WriteJSON(w, http.StatusOK, wallet)
	})
}

// WithdrawHandler — запрос на вывод средств с конвертацией в криптовалюту
func WithdrawHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		amount := decimal.NewFromFloat(req.Amount)
		receipt, err := l.RequestWithdrawal(r.Context(), userID, amount, req.Currency, req.WalletAddress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid USD amount (minimum 1)")
			case errors.Is(err, services.ErrInvalidCurrency):
				WriteError(w, http.StatusUnprocessableEntity, "Please select a valid crypto asset (BTC or ETH)")
			case errors.Is(err, services.ErrInvalidAddress):
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid wallet address (at least 10 characters)")
			case errors.Is(err, storage.ErrInsufficientFunds):
				WriteError(w, http.StatusPaymentRequired, insufficientFundsMessage(r, l, userID))
			case errors.Is(err, storage.ErrInsufficientCryptoFunds):
				WriteError(w, http.StatusPaymentRequired, fmt.Sprintf("Insufficient %s funds", req.Currency))
			case errors.Is(err, services.ErrPriceUnavailable), errors.Is(err, services.ErrPriceStale):
				WriteError(w, http.StatusBadGateway, "Current market price is unavailable, try again later")
			default:
				logger.Error("Failed to process withdrawal:", err)
				WriteError(w, http.StatusInternalServerError, "Withdrawal failed")
			}
			return
		}

		WriteJSON(w, http.StatusOK, Result{Success: true, Message: "Withdrawal completed", Data: receipt})
	})
}

// insufficientFundsMessage - сообщение с доступным остатком, как при выводе, так и при инвестиции
func insufficientFundsMessage(r *http.Request, l services.LedgerService, userID string) string {
	wallet, err := l.GetWallet(r.Context(), userID)
	if err != nil {
		return "Insufficient USD funds"
	}
	return fmt.Sprintf("Insufficient USD funds. Available: $%.2f", wallet.Balance)
}
