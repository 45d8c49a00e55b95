package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Поддерживаемые валюты
const (
	CurrencyBTC = "BTC"
	CurrencyETH = "ETH"
	CurrencyUSD = "USD"
)

// Wallet - модель кошелька пользователя (USD баланс + криптовалютные остатки)
type Wallet struct {
	UserID    string
	Balance   decimal.Decimal
	BTC       decimal.Decimal
	ETH       decimal.Decimal
	UpdatedAt time.Time
}

// Holding возвращает остаток криптовалюты по её коду
func (w *Wallet) Holding(currency string) decimal.Decimal {
	if currency == CurrencyBTC {
		return w.BTC
	}
	return w.ETH
}

// WalletResponse - модель кошелька для выдачи
type WalletResponse struct {
	Balance      float64               `json:"balance"`
	BTC          float64               `json:"btc"`
	ETH          float64               `json:"eth"`
	Transactions []TransactionResponse `json:"transactions"`
}

// BonusRequest - модель запроса начисления бонуса администратором
type BonusRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}
