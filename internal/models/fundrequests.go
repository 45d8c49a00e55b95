package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundRequestInput - модель заявки на пополнение картой, приходит извне.
// Номер карты и CVV не сохраняются: в хранилище уходят только последние
// четыре цифры номера и срок действия.
type FundRequestInput struct {
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose"`
	CardNumber string  `json:"card_number"`
	ExpiryDate string  `json:"expiry_date"`
	CVV        string  `json:"cvv"`
}

// FundRequestData - модель заявки из хранилища
type FundRequestData struct {
	ID          int64
	UserID      string
	Amount      decimal.Decimal
	Purpose     string
	CardLast4   string
	CardExpiry  string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// FundRequestStats - сводка заявок пользователя по статусам
type FundRequestStats struct {
	TotalRequested decimal.Decimal
	Pending        int
	Approved       int
	Rejected       int
}

// FundRequestStatsResponse - модель сводки для выдачи
type FundRequestStatsResponse struct {
	TotalRequested float64 `json:"total_requested"`
	Pending        int     `json:"pending"`
	Approved       int     `json:"approved"`
	Rejected       int     `json:"rejected"`
}

// PendingFundRequest - модель ожидающей заявки для админки
type PendingFundRequest struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name"`
	Amount    float64 `json:"amount"`
	Purpose   string  `json:"purpose"`
	CreatedAt string  `json:"created_at"`
}
