package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// Кошелёк создаётся лениво при первом обращении.
	// ON CONFLICT защищает от дублей при конкурентном первом доступе.
	EnsureWallet = `INSERT INTO WALLET (user_id) VALUES ($1)
						ON CONFLICT (user_id) DO NOTHING;`
	GetWallet = `SELECT balance, btc, eth, updated_at FROM WALLET WHERE user_id=$1;`
	// Блокирующее чтение кошелька, используется только внутри открытой транзакции.
	// Сериализует конкурентные операции над кошельком одного пользователя.
	LockWallet = `SELECT balance, btc, eth FROM WALLET WHERE user_id=$1 FOR UPDATE;`

	CreditWalletBalance = `INSERT INTO WALLET (user_id, balance) VALUES ($1, $2)
								ON CONFLICT (user_id) DO UPDATE
								SET balance = WALLET.balance + EXCLUDED.balance, updated_at = NOW();`
	DebitWalletBalance = `UPDATE WALLET
							SET balance = balance - $1, updated_at = NOW()
							WHERE user_id = $2;`

	InsertTransaction = `INSERT INTO TRANSACTIONS (user_id, type, amount, currency, status, description, withdrawal_id)
							VALUES ($1, $2, $3, $4, $5, $6, $7);`
	GetTransactions = `SELECT t.id, t.type, t.amount, COALESCE(t.currency, 'USD') AS currency,
							  COALESCE(w.status, t.status) AS status, t.description, t.withdrawal_id, t.created_at
					   FROM TRANSACTIONS t
					   LEFT JOIN WITHDRAWALS w ON t.withdrawal_id = w.id
					   WHERE t.user_id = $1
					   ORDER BY t.created_at DESC;`
)

type WalletDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWalletsStorage(db *Database) WalletsStorage {
	return &WalletDatabase{DB: db}
}

// GetWallet - чтение кошелька пользователя, при отсутствии создаётся пустой
func (s *WalletDatabase) GetWallet(ctx context.Context, userID string) (*models.Wallet, error) {
	if _, err := s.DB.Pool.Exec(ctx, EnsureWallet, userID); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	var (
		balance   decimal.Decimal
		btc       decimal.Decimal
		eth       decimal.Decimal
		updatedAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetWallet, userID).Scan(&balance, &btc, &eth, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &models.Wallet{
		UserID:    userID,
		Balance:   balance,
		BTC:       btc,
		ETH:       eth,
		UpdatedAt: updatedAt,
	}, nil
}

// CreditBalance - пополнение баланса кошелька (бонусы и одобренные заявки)
func (s *WalletDatabase) CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	if _, err := s.DB.Pool.Exec(ctx, CreditWalletBalance, userID, amount); err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	return nil
}

// GetTransactions - история операций пользователя, статус вывода берётся из связанной записи
func (s *WalletDatabase) GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error) {
	var transactions []models.TransactionData
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		var (
			id           int64
			txType       string
			amount       decimal.Decimal
			currency     string
			status       string
			description  string
			withdrawalID *int64
			createdAt    time.Time
		)
		err := rows.Scan(
			&id,
			&txType,
			&amount,
			&currency,
			&status,
			&description,
			&withdrawalID,
			&createdAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, models.TransactionData{
			ID:           id,
			UserID:       userID,
			Type:         txType,
			Amount:       amount,
			Currency:     currency,
			Status:       status,
			Description:  description,
			WithdrawalID: withdrawalID,
			CreatedAt:    createdAt,
		})
	}
	return transactions, err
}
