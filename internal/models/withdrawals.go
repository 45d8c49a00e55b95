package models

import (
	"github.com/shopspring/decimal"
)

// Статусы выводов средств
const (
	WithdrawalStatusCompleted = "Completed"
)

// WithdrawRequest - модель запроса вывода средств, приходит извне
type WithdrawRequest struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	WalletAddress string  `json:"wallet_address"`
}

// WithdrawalData - модель вывода средств для хранилища.
// USDAmount списывается с баланса, CryptoAmount - с криптовалютного остатка.
type WithdrawalData struct {
	UserID        string
	USDAmount     decimal.Decimal
	CryptoAmount  decimal.Decimal
	Currency      string
	WalletAddress string
}

// WithdrawalReceipt - квитанция о выполненном выводе средств
type WithdrawalReceipt struct {
	ID            int64   `json:"id"`
	USDAmount     float64 `json:"usd_amount"`
	CryptoAmount  float64 `json:"crypto_amount"`
	Currency      string  `json:"currency"`
	WalletAddress string  `json:"wallet_address"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
