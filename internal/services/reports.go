package services

import (
	"context"
	"time"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Количество последних инвестиций в панели администратора
const RecentInvestmentsLimit = 10

var hundred = decimal.NewFromInt(100)

type ReportsService interface {
	GetPortfolio(ctx context.Context, userID string) (*models.PortfolioResponse, error)
	GetDeposits(ctx context.Context, userID string) ([]models.DepositResponse, error)
	GetFundRequestStats(ctx context.Context, userID string) (*models.FundRequestStatsResponse, error)
	GetAdminDashboard(ctx context.Context) (*models.AdminDashboardResponse, error)
}

type Reports struct {
	Storage storage.Storage
}

// Создание сервиса
func NewReports(storage storage.Storage) ReportsService {
	return &Reports{Storage: storage}
}

// GetPortfolio - инвестиции пользователя с процентом прибыли и итогами портфеля
func (s *Reports) GetPortfolio(ctx context.Context, userID string) (*models.PortfolioResponse, error) {
	investments, err := s.Storage.Investments.GetInvestments(ctx, userID)
	if err != nil {
		logger.Error("Failed to get investments:", zap.Error(err))
		return nil, err
	}
	stats, err := s.Storage.Investments.GetPortfolioStats(ctx, userID)
	if err != nil {
		logger.Error("Failed to get portfolio stats:", zap.Error(err))
		return nil, err
	}

	totalInvested, _ := stats.TotalInvested.Float64()
	totalProfit, _ := stats.TotalProfit.Float64()
	response := &models.PortfolioResponse{
		TotalInvested:       totalInvested,
		TotalProfit:         totalProfit,
		TotalGainPercentage: gainPercentage(stats.TotalProfit, stats.TotalInvested),
	}
	for _, inv := range investments {
		response.Investments = append(response.Investments, toInvestmentResponse(inv))
	}
	return response, nil
}

// GetDeposits - история заявок на пополнение пользователя
func (s *Reports) GetDeposits(ctx context.Context, userID string) ([]models.DepositResponse, error) {
	deposits, err := s.Storage.Deposits.GetDeposits(ctx, userID)
	if err != nil {
		logger.Error("Failed to get deposits:", zap.Error(err))
		return nil, err
	}

	var response []models.DepositResponse
	for _, d := range deposits {
		amount, _ := d.Amount.Float64()
		response = append(response, models.DepositResponse{
			ID:            d.ID,
			Amount:        amount,
			PaymentMethod: d.PaymentMethod,
			Status:        d.Status,
			CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

// GetFundRequestStats - сводка заявок на пополнение картой по статусам
func (s *Reports) GetFundRequestStats(ctx context.Context, userID string) (*models.FundRequestStatsResponse, error) {
	stats, err := s.Storage.FundRequests.GetFundRequestStats(ctx, userID)
	if err != nil {
		logger.Error("Failed to get fund request stats:", zap.Error(err))
		return nil, err
	}

	total, _ := stats.TotalRequested.Float64()
	return &models.FundRequestStatsResponse{
		TotalRequested: total,
		Pending:        stats.Pending,
		Approved:       stats.Approved,
		Rejected:       stats.Rejected,
	}, nil
}

// GetAdminDashboard - сводная статистика платформы, пользователи,
// последние инвестиции и ожидающие заявки
func (s *Reports) GetAdminDashboard(ctx context.Context) (*models.AdminDashboardResponse, error) {
	stats, err := s.Storage.Users.GetPlatformStats(ctx)
	if err != nil {
		logger.Error("Failed to get platform stats:", zap.Error(err))
		return nil, err
	}
	accounts, err := s.Storage.Users.GetAccounts(ctx)
	if err != nil {
		logger.Error("Failed to get accounts:", zap.Error(err))
		return nil, err
	}
	recent, err := s.Storage.Investments.GetRecentInvestments(ctx, RecentInvestmentsLimit)
	if err != nil {
		logger.Error("Failed to get recent investments:", zap.Error(err))
		return nil, err
	}
	pendingDeposits, err := s.Storage.Deposits.GetPendingDeposits(ctx)
	if err != nil {
		logger.Error("Failed to get pending deposits:", zap.Error(err))
		return nil, err
	}
	pendingRequests, err := s.Storage.FundRequests.GetPendingFundRequests(ctx)
	if err != nil {
		logger.Error("Failed to get pending fund requests:", zap.Error(err))
		return nil, err
	}

	totalBalance, _ := stats.TotalWalletBalance.Float64()
	totalInvested, _ := stats.TotalInvested.Float64()
	totalProfit, _ := stats.TotalProfit.Float64()
	response := &models.AdminDashboardResponse{
		TotalUsers:          stats.TotalUsers,
		TotalWalletBalance:  totalBalance,
		TotalInvested:       totalInvested,
		TotalProfit:         totalProfit,
		Users:               accounts,
		PendingDeposits:     pendingDeposits,
		PendingFundRequests: pendingRequests,
	}
	for _, inv := range recent {
		response.RecentInvestments = append(response.RecentInvestments, toInvestmentResponse(inv))
	}
	return response, nil
}

func toInvestmentResponse(inv models.InvestmentData) models.InvestmentResponse {
	amount, _ := inv.Amount.Float64()
	profit, _ := inv.Profit.Float64()
	return models.InvestmentResponse{
		ID:             inv.ID,
		Amount:         amount,
		AssetName:      inv.AssetName,
		Plan:           inv.Plan,
		Profit:         profit,
		GainPercentage: gainPercentage(inv.Profit, inv.Amount),
		Status:         inv.Status,
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
	}
}

// gainPercentage - прибыль в процентах от вложенной суммы
func gainPercentage(profit decimal.Decimal, invested decimal.Decimal) string {
	if invested.LessThanOrEqual(decimal.Zero) {
		return "0.00"
	}
	return profit.Div(invested).Mul(hundred).StringFixed(2)
}
