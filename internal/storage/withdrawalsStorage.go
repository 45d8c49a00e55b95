package storage

import (
	"context"
	"fmt"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	// Одним запросом списываются и USD-баланс, и криптовалютный остаток
	WithdrawWalletBTC = `UPDATE WALLET
							SET balance = balance - $1, btc = btc - $2, updated_at = NOW()
							WHERE user_id = $3;`
	WithdrawWalletETH = `UPDATE WALLET
							SET balance = balance - $1, eth = eth - $2, updated_at = NOW()
							WHERE user_id = $3;`
	InsertWithdrawal = `INSERT INTO WITHDRAWALS (user_id, amount, currency, wallet_address, status)
							VALUES ($1, $2, $3, $4, $5)
							RETURNING id;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

// AddWithdrawal - вывод средств: списание USD-баланса и криптовалютного остатка,
// запись о выводе и запись в журнале операций - всё в одной транзакции под
// блокировкой строки кошелька. Курс получен до открытия транзакции, сетевых
// вызовов под блокировкой нет.
func (s *WithdrawalDatabase) AddWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (int64, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Создаём кошелёк при отсутствии и блокируем его строку
	if _, err = tx.Exec(ctx, EnsureWallet, withdrawal.UserID); err != nil {
		return 0, fmt.Errorf("failed to create wallet: %w", err)
	}
	wallet := models.Wallet{UserID: withdrawal.UserID}
	if err = tx.QueryRow(ctx, LockWallet, withdrawal.UserID).Scan(&wallet.Balance, &wallet.BTC, &wallet.ETH); err != nil {
		return 0, fmt.Errorf("failed to lock wallet: %w", err)
	}

	// 2. Проверяем достаточность USD-баланса под блокировкой
	if wallet.Balance.LessThan(withdrawal.USDAmount) {
		err = ErrInsufficientFunds
		return 0, err
	}

	// 3. Проверяем достаточность криптовалютного остатка
	withdrawQuery := WithdrawWalletETH
	if withdrawal.Currency == models.CurrencyBTC {
		withdrawQuery = WithdrawWalletBTC
	}
	if wallet.Holding(withdrawal.Currency).LessThan(withdrawal.CryptoAmount) {
		err = ErrInsufficientCryptoFunds
		return 0, err
	}

	// 4. Списываем средства
	if _, err = tx.Exec(ctx, withdrawQuery, withdrawal.USDAmount, withdrawal.CryptoAmount, withdrawal.UserID); err != nil {
		return 0, fmt.Errorf("failed to debit wallet: %w", err)
	}

	// 5. Добавляем запись о выводе
	var withdrawalID int64
	err = tx.QueryRow(ctx, InsertWithdrawal,
		withdrawal.UserID,
		withdrawal.CryptoAmount,
		withdrawal.Currency,
		withdrawal.WalletAddress,
		models.WithdrawalStatusCompleted,
	).Scan(&withdrawalID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	// 6. Пишем связанную запись в журнал операций
	_, err = tx.Exec(ctx, InsertTransaction,
		withdrawal.UserID,
		models.TransactionTypeWithdrawal,
		withdrawal.CryptoAmount,
		withdrawal.Currency,
		models.WithdrawalStatusCompleted,
		"",
		withdrawalID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("AddWithdrawal. Commit failed: %w", err)
	}

	return withdrawalID, nil
}
