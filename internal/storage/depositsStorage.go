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
	InsertDeposit = `INSERT INTO DEPOSITS (user_id, amount, payment_method, status)
						VALUES ($1, $2, $3, $4);`
	GetDeposits = `SELECT id, amount, payment_method, status, created_at, processed_at
					FROM DEPOSITS WHERE user_id=$1 ORDER BY created_at DESC;`
	GetPendingDeposits = `SELECT d.id, d.user_id, u.full_name, d.amount, d.payment_method, d.created_at
							FROM DEPOSITS d
							JOIN USERS u ON d.user_id = u.id
							WHERE d.status = 'pending'
							ORDER BY d.created_at DESC;`
	// Переход статуса выполняется только из pending: повторное одобрение
	// не вернёт строк и будет отработано как no-op
	ApproveDepositGuarded = `UPDATE DEPOSITS
								SET status = 'approved', processed_at = NOW()
								WHERE id = $1 AND status = 'pending'
								RETURNING user_id, amount;`
	RejectDepositGuarded = `UPDATE DEPOSITS
								SET status = 'rejected', processed_at = NOW()
								WHERE id = $1 AND status = 'pending';`
)

type DepositDatabase struct {
	DB *Database
}

// Создание хранилища
func NewDepositsStorage(db *Database) DepositsStorage {
	return &DepositDatabase{DB: db}
}

// AddDeposit - добавление заявки на пополнение в статусе pending, баланс не меняется.
// Запись в журнале операций вторична: её ошибка не отменяет заявку.
func (s *DepositDatabase) AddDeposit(ctx context.Context, deposit models.DepositData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertDeposit,
		deposit.UserID,
		deposit.Amount,
		deposit.PaymentMethod,
		models.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to add deposit: %w", err)
	}

	_, err = s.DB.Pool.Exec(ctx, InsertTransaction,
		deposit.UserID,
		models.TransactionTypeDeposit,
		deposit.Amount,
		models.CurrencyUSD,
		models.RequestStatusPending,
		"Awaiting admin approval",
		nil,
	)
	if err != nil {
		logger.Warn("Deposit transaction log failed:", zap.Error(err))
	}

	return nil
}

func (s *DepositDatabase) GetDeposits(ctx context.Context, userID string) ([]models.DepositData, error) {
	var deposits []models.DepositData
	rows, err := s.DB.Pool.Query(ctx, GetDeposits, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deposits: %w", err)
	}
	for rows.Next() {
		var (
			id            int64
			amount        decimal.Decimal
			paymentMethod string
			status        string
			createdAt     time.Time
			processedAt   *time.Time
		)
		err := rows.Scan(&id, &amount, &paymentMethod, &status, &createdAt, &processedAt)
		if err != nil {
			return deposits, fmt.Errorf("failed scan deposit data: %w", err)
		}
		deposits = append(deposits, models.DepositData{
			ID:            id,
			UserID:        userID,
			Amount:        amount,
			PaymentMethod: paymentMethod,
			Status:        status,
			CreatedAt:     createdAt,
			ProcessedAt:   processedAt,
		})
	}
	return deposits, err
}

func (s *DepositDatabase) GetPendingDeposits(ctx context.Context) ([]models.PendingDeposit, error) {
	var deposits []models.PendingDeposit
	rows, err := s.DB.Pool.Query(ctx, GetPendingDeposits)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending deposits: %w", err)
	}
	for rows.Next() {
		var (
			id        int64
			userID    string
			fullName  string
			amount    decimal.Decimal
			method    string
			createdAt time.Time
		)
		err := rows.Scan(&id, &userID, &fullName, &amount, &method, &createdAt)
		if err != nil {
			return deposits, fmt.Errorf("failed scan pending deposit: %w", err)
		}
		floatAmount, _ := amount.Float64()
		deposits = append(deposits, models.PendingDeposit{
			ID:        id,
			UserID:    userID,
			FullName:  fullName,
			Amount:    floatAmount,
			Method:    method,
			CreatedAt: createdAt.Format(time.RFC3339),
		})
	}
	return deposits, err
}

// ApproveDeposit - одобрение депозита и зачисление средств в одной транзакции.
// Статус меняется только из pending, кошелёк пополняется ровно один раз.
func (s *DepositDatabase) ApproveDeposit(ctx context.Context, depositID int64) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ApproveDeposit. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Переводим заявку в approved, только если она ещё pending
	var (
		userID string
		amount decimal.Decimal
	)
	err = tx.QueryRow(ctx, ApproveDepositGuarded, depositID).Scan(&userID, &amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			err = ErrAlreadyProcessed
			return err
		}
		return fmt.Errorf("failed to approve deposit: %w", err)
	}

	// 2. Зачисляем средства на кошелёк
	if _, err = tx.Exec(ctx, CreditWalletBalance, userID, amount); err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ApproveDeposit. Commit failed: %w", err)
	}

	return nil
}

// RejectDeposit - отклонение депозита без зачисления средств
func (s *DepositDatabase) RejectDeposit(ctx context.Context, depositID int64) error {
	result, err := s.DB.Pool.Exec(ctx, RejectDepositGuarded, depositID)
	if err != nil {
		return fmt.Errorf("failed to reject deposit: %w", err)
	}
	// Повторная обработка - no-op
	if result.RowsAffected() == 0 {
		return ErrAlreadyProcessed
	}
	return nil
}
