package models

import "github.com/shopspring/decimal"

// PlatformStats - сводная статистика платформы для админки
type PlatformStats struct {
	TotalUsers         int
	TotalWalletBalance decimal.Decimal
	TotalInvested      decimal.Decimal
	TotalProfit        decimal.Decimal
}

// AdminDashboardResponse - модель панели администратора для выдачи
type AdminDashboardResponse struct {
	TotalUsers          int                  `json:"total_users"`
	TotalWalletBalance  float64              `json:"total_wallet_balance"`
	TotalInvested       float64              `json:"total_invested"`
	TotalProfit         float64              `json:"total_profit"`
	Users               []UserAccount        `json:"users"`
	RecentInvestments   []InvestmentResponse `json:"recent_investments"`
	PendingDeposits     []PendingDeposit     `json:"pending_deposits"`
	PendingFundRequests []PendingFundRequest `json:"pending_fund_requests"`
}
