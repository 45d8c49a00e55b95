package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/denmor86/profit-gainer/internal/helpers"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/services"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// AdminDashboardHandler — сводная статистика платформы для администратора
func AdminDashboardHandler(rep services.ReportsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := rep.GetAdminDashboard(r.Context())
		if err != nil {
			logger.Error("Failed to get admin dashboard:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to load dashboard")
			return
		}
		WriteJSON(w, http.StatusOK, dashboard)
	})
}

// AddBonusHandler — начисление бонуса на кошелёк пользователя
func AddBonusHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.BonusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		if req.UserID == "" {
			WriteError(w, http.StatusBadRequest, "User is required")
			return
		}

		amount := decimal.NewFromFloat(req.Amount)
		if err := l.CreditWallet(r.Context(), req.UserID, amount); err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				WriteError(w, http.StatusUnprocessableEntity, "Please enter a valid positive amount")
				return
			}
			logger.Error("Failed to add bonus:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to add bonus")
			return
		}
		WriteResult(w, "Bonus added successfully!")
	})
}

// ApproveDepositHandler — одобрение заявки на пополнение с зачислением средств.
// Повторное решение по той же заявке отклоняется со статусом 409.
func ApproveDepositHandler(l services.LedgerService) http.HandlerFunc {
	return decideRequest(l.ApproveDeposit, "Deposit approved, funds credited to the user wallet")
}

// RejectDepositHandler — отклонение заявки на пополнение
func RejectDepositHandler(l services.LedgerService) http.HandlerFunc {
	return decideRequest(l.RejectDeposit, "Deposit rejected")
}

// ApproveFundRequestHandler — одобрение заявки на пополнение картой
func ApproveFundRequestHandler(l services.LedgerService) http.HandlerFunc {
	return decideRequest(l.ApproveFundRequest, "Fund request approved, funds credited to the user wallet")
}

// RejectFundRequestHandler — отклонение заявки на пополнение картой
func RejectFundRequestHandler(l services.LedgerService) http.HandlerFunc {
	return decideRequest(l.RejectFundRequest, "Fund request rejected")
}

// decideRequest - общий обработчик решения по заявке в статусе pending
func decideRequest(decide func(ctx context.Context, id int64) error, message string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request id")
			return
		}

		if err := decide(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrAlreadyProcessed) {
				WriteError(w, http.StatusConflict, "Request has already been processed")
				return
			}
			logger.Error("Failed to process request decision:", err)
			WriteError(w, http.StatusInternalServerError, "Failed to process request")
			return
		}
		WriteResult(w, message)
	})
}

// DeleteUserHandler — каскадное удаление пользователя со всеми его данными.
// Администратор не может удалить собственную учётную запись.
func DeleteUserHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", err)
			WriteError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		userID := chi.URLParam(r, "id")
		if userID == "" {
			WriteError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		if err := l.DeleteUser(r.Context(), adminID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrForbiddenSelfDelete):
				WriteError(w, http.StatusForbidden, "You cannot delete your own account")
			case errors.Is(err, storage.ErrUserNotFound):
				WriteError(w, http.StatusNotFound, "User not found")
			default:
				logger.Error("Failed to delete user:", err)
				WriteError(w, http.StatusInternalServerError, "Failed to delete user")
			}
			return
		}
		WriteResult(w, "User and all associated data deleted")
	})
}
