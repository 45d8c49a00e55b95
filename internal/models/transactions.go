package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы записей журнала операций
const (
	TransactionTypeDeposit     = "deposit"
	TransactionTypeWithdrawal  = "withdrawal"
	TransactionTypeInvestment  = "investment"
	TransactionTypeFundRequest = "fund_request"
)

// TransactionData - запись журнала операций из хранилища (только добавляется)
type TransactionData struct {
	ID           int64
	UserID       string
	Type         string
	Amount       decimal.Decimal
	Currency     string
	Status       string
	Description  string
	WithdrawalID *int64
	CreatedAt    time.Time
}

// TransactionResponse - запись журнала для выдачи
type TransactionResponse struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}
