package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Тарифные планы инвестиций
const (
	PlanBronze = "Bronze"
	PlanSilver = "Silver"
	PlanGold   = "Gold"
)

// Статусы инвестиций
const (
	InvestmentStatusActive = "Active"
)

// InvestmentRequest - модель запроса открытия инвестиции
type InvestmentRequest struct {
	Amount    float64 `json:"amount"`
	AssetName string  `json:"asset_name"`
	Plan      string  `json:"plan"`
}

// InvestmentData - модель инвестиции из хранилища
type InvestmentData struct {
	ID        int64
	UserID    string
	Amount    decimal.Decimal
	AssetName string
	Plan      string
	Profit    decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// InvestmentResponse - модель инвестиции для выдачи, процент прибыли считается на лету
type InvestmentResponse struct {
	ID             int64   `json:"id"`
	Amount         float64 `json:"amount"`
	AssetName      string  `json:"asset_name"`
	Plan           string  `json:"plan"`
	Profit         float64 `json:"profit"`
	GainPercentage string  `json:"gain_percentage"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// PortfolioStats - сводная статистика портфеля пользователя
type PortfolioStats struct {
	TotalInvested decimal.Decimal
	TotalProfit   decimal.Decimal
}

// PortfolioResponse - модель портфеля для выдачи
type PortfolioResponse struct {
	TotalInvested       float64              `json:"total_invested"`
	TotalProfit         float64              `json:"total_profit"`
	TotalGainPercentage string               `json:"total_gain_percentage"`
	Investments         []InvestmentResponse `json:"investments"`
}
