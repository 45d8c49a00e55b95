package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertInvestment = `INSERT INTO INVESTMENTS (user_id, amount, asset_name, plan, profit, status)
							VALUES ($1, $2, $3, $4, 0, $5);`
	GetInvestments = `SELECT id, amount, asset_name, plan, profit, status, created_at
						FROM INVESTMENTS WHERE user_id=$1 ORDER BY created_at DESC;`
	GetPortfolioStats = `SELECT COALESCE(SUM(amount), 0) AS total_invested,
								COALESCE(SUM(profit), 0) AS total_profit
						 FROM INVESTMENTS WHERE user_id=$1;`
	GetRecentInvestments = `SELECT id, user_id, amount, asset_name, plan, profit, status, created_at
							FROM INVESTMENTS ORDER BY created_at DESC LIMIT $1;`
)

type InvestmentDatabase struct {
	DB *Database
}

// Создание хранилища
func NewInvestmentsStorage(db *Database) InvestmentsStorage {
	return &InvestmentDatabase{DB: db}
}

// AddInvestment - списание средств с кошелька и открытие инвестиции в одной транзакции.
// Баланс проверяется под блокировкой строки кошелька: из двух конкурентных
// инвестиций на общую сумму больше баланса пройдёт только одна.
func (s *InvestmentDatabase) AddInvestment(ctx context.Context, investment models.InvestmentData) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddInvestment. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Создаём кошелёк при отсутствии и блокируем его строку
	if _, err = tx.Exec(ctx, EnsureWallet, investment.UserID); err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	var (
		balance decimal.Decimal
		btc     decimal.Decimal
		eth     decimal.Decimal
	)
	if err = tx.QueryRow(ctx, LockWallet, investment.UserID).Scan(&balance, &btc, &eth); err != nil {
		return fmt.Errorf("failed to lock wallet: %w", err)
	}

	// 2. Проверяем достаточность средств под блокировкой
	if balance.LessThan(investment.Amount) {
		err = ErrInsufficientFunds
		return err
	}

	// 3. Списываем средства
	if _, err = tx.Exec(ctx, DebitWalletBalance, investment.Amount, investment.UserID); err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}

	// 4. Добавляем инвестицию с нулевой начальной прибылью
	_, err = tx.Exec(ctx, InsertInvestment,
		investment.UserID,
		investment.Amount,
		investment.AssetName,
		investment.Plan,
		models.InvestmentStatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	// 5. Пишем запись в журнал операций
	_, err = tx.Exec(ctx, InsertTransaction,
		investment.UserID,
		models.TransactionTypeInvestment,
		investment.Amount,
		models.CurrencyUSD,
		models.WithdrawalStatusCompleted,
		"",
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("AddInvestment. Commit failed: %w", err)
	}

	return nil
}

func (s *InvestmentDatabase) GetInvestments(ctx context.Context, userID string) ([]models.InvestmentData, error) {
	var investments []models.InvestmentData
	rows, err := s.DB.Pool.Query(ctx, GetInvestments, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investments: %w", err)
	}
	for rows.Next() {
		var (
			id        int64
			amount    decimal.Decimal
			assetName string
			plan      string
			profit    decimal.Decimal
			status    string
			createdAt time.Time
		)
		err := rows.Scan(&id, &amount, &assetName, &plan, &profit, &status, &createdAt)
		if err != nil {
			return investments, fmt.Errorf("failed scan investment data: %w", err)
		}
		investments = append(investments, models.InvestmentData{
			ID:        id,
			UserID:    userID,
			Amount:    amount,
			AssetName: assetName,
			Plan:      plan,
			Profit:    profit,
			Status:    status,
			CreatedAt: createdAt,
		})
	}
	return investments, err
}

// GetPortfolioStats - сумма вложений и прибыли пользователя
func (s *InvestmentDatabase) GetPortfolioStats(ctx context.Context, userID string) (*models.PortfolioStats, error) {
	var (
		totalInvested decimal.Decimal
		totalProfit   decimal.Decimal
	)
	err := s.DB.Pool.QueryRow(ctx, GetPortfolioStats, userID).Scan(&totalInvested, &totalProfit)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio stats: %w", err)
	}
	return &models.PortfolioStats{
		TotalInvested: totalInvested,
		TotalProfit:   totalProfit,
	}, nil
}

// GetRecentInvestments - последние инвестиции по всем пользователям (для админки)
func (s *InvestmentDatabase) GetRecentInvestments(ctx context.Context, limit int) ([]models.InvestmentData, error) {
	var investments []models.InvestmentData
	rows, err := s.DB.Pool.Query(ctx, GetRecentInvestments, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent investments: %w", err)
	}
	for rows.Next() {
		var (
			id        int64
			userID    string
			amount    decimal.Decimal
			assetName string
			plan      string
			profit    decimal.Decimal
			status    string
			createdAt time.Time
		)
		err := rows.Scan(&id, &userID, &amount, &assetName, &plan, &profit, &status, &createdAt)
		if err != nil {
			return investments, fmt.Errorf("failed scan investment data: %w", err)
		}
		investments = append(investments, models.InvestmentData{
			ID:        id,
			UserID:    userID,
			Amount:    amount,
			AssetName: assetName,
			Plan:      plan,
			Profit:    profit,
			Status:    status,
			CreatedAt: createdAt,
		})
	}
	return investments, err
}
