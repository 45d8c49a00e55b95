package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок (депозиты и заявки на пополнение)
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// DepositRequest - модель запроса на пополнение счёта, приходит извне
type DepositRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

// DepositData - модель депозита из хранилища
type DepositData struct {
	ID            int64
	UserID        string
	Amount        decimal.Decimal
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// DepositResponse - модель депозита для выдачи
type DepositResponse struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// PendingDeposit - модель ожидающего депозита для админки
type PendingDeposit struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"payment_method"`
	CreatedAt string  `json:"created_at"`
}
