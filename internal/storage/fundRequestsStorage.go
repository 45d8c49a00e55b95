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
	InsertFundRequest = `INSERT INTO FUND_REQUESTS (user_id, amount, purpose, card_last4, card_expiry, status)
							VALUES ($1, $2, $3, $4, $5, $6);`
	GetFundRequestTotal = `SELECT COALESCE(SUM(amount), 0) FROM FUND_REQUESTS WHERE user_id=$1;`
	GetFundRequestCounts = `SELECT status, COUNT(*) FROM FUND_REQUESTS WHERE user_id=$1 GROUP BY status;`
	GetPendingFundRequests = `SELECT fr.id, fr.user_id, u.full_name, fr.amount, fr.purpose, fr.created_at
								FROM FUND_REQUESTS fr
								JOIN USERS u ON fr.user_id = u.id
								WHERE fr.status = 'pending'
								ORDER BY fr.created_at DESC;`
	// Переход статуса выполняется только из pending
	ApproveFundRequestGuarded = `UPDATE FUND_REQUESTS
									SET status = 'approved', processed_at = NOW()
									WHERE id = $1 AND status = 'pending'
									RETURNING user_id, amount;`
	RejectFundRequestGuarded = `UPDATE FUND_REQUESTS
									SET status = 'rejected', processed_at = NOW()
									WHERE id = $1 AND status = 'pending';`
)

type FundRequestDatabase struct {
	DB *Database
}

// Создание хранилища
func NewFundRequestsStorage(db *Database) FundRequestsStorage {
	return &FundRequestDatabase{DB: db}
}

// AddFundRequest - добавление заявки на пополнение картой в статусе pending
func (s *FundRequestDatabase) AddFundRequest(ctx context.Context, request models.FundRequestData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertFundRequest,
		request.UserID,
		request.Amount,
		request.Purpose,
		request.CardLast4,
		request.CardExpiry,
		models.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to add fund request: %w", err)
	}
	return nil
}

// GetFundRequestStats - сводка заявок пользователя по статусам
func (s *FundRequestDatabase) GetFundRequestStats(ctx context.Context, userID string) (*models.FundRequestStats, error) {
	stats := &models.FundRequestStats{}

	err := s.DB.Pool.QueryRow(ctx, GetFundRequestTotal, userID).Scan(&stats.TotalRequested)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund request total: %w", err)
	}

	rows, err := s.DB.Pool.Query(ctx, GetFundRequestCounts, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fund request counts: %w", err)
	}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed scan fund request counts: %w", err)
		}
		switch status {
		case models.RequestStatusPending:
			stats.Pending = count
		case models.RequestStatusApproved:
			stats.Approved = count
		case models.RequestStatusRejected:
			stats.Rejected = count
		}
	}
	return stats, err
}

func (s *FundRequestDatabase) GetPendingFundRequests(ctx context.Context) ([]models.PendingFundRequest, error) {
	var requests []models.PendingFundRequest
	rows, err := s.DB.Pool.Query(ctx, GetPendingFundRequests)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending fund requests: %w", err)
	}
	for rows.Next() {
		var (
			id        int64
			userID    string
			fullName  string
			amount    decimal.Decimal
			purpose   string
			createdAt time.Time
		)
		err := rows.Scan(&id, &userID, &fullName, &amount, &purpose, &createdAt)
		if err != nil {
			return requests, fmt.Errorf("failed scan pending fund request: %w", err)
		}
		floatAmount, _ := amount.Float64()
		requests = append(requests, models.PendingFundRequest{
			ID:        id,
			UserID:    userID,
			FullName:  fullName,
			Amount:    floatAmount,
			Purpose:   purpose,
			CreatedAt: createdAt.Format(time.RFC3339),
		})
	}
	return requests, err
}

// ApproveFundRequest - одобрение заявки: зачисление средств и запись в журнале
// операций в одной транзакции, статус меняется только из pending
func (s *FundRequestDatabase) ApproveFundRequest(ctx context.Context, requestID int64) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ApproveFundRequest. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Переводим заявку в approved, только если она ещё pending
	var (
		userID string
		amount decimal.Decimal
	)
	err = tx.QueryRow(ctx, ApproveFundRequestGuarded, requestID).Scan(&userID, &amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			err = ErrAlreadyProcessed
			return err
		}
		return fmt.Errorf("failed to approve fund request: %w", err)
	}

	// 2. Зачисляем средства на кошелёк
	if _, err = tx.Exec(ctx, CreditWalletBalance, userID, amount); err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	// 3. Пишем запись в журнал операций
	_, err = tx.Exec(ctx, InsertTransaction,
		userID,
		models.TransactionTypeFundRequest,
		amount,
		models.CurrencyUSD,
		models.RequestStatusApproved,
		"Fund request approved",
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ApproveFundRequest. Commit failed: %w", err)
	}

	return nil
}

// RejectFundRequest - отклонение заявки без зачисления и без записи в журнале
func (s *FundRequestDatabase) RejectFundRequest(ctx context.Context, requestID int64) error {
	result, err := s.DB.Pool.Exec(ctx, RejectFundRequestGuarded, requestID)
	if err != nil {
		return fmt.Errorf("failed to reject fund request: %w", err)
	}
	// Повторная обработка - no-op
	if result.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}
