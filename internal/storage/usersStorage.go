package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertUser = `INSERT INTO USERS (id, full_name, email, password, is_admin)
						VALUES ($1, $2, $3, $4, $5)
						ON CONFLICT (email) DO NOTHING
						RETURNING email;`
	GetUserByEmail = `SELECT id, full_name, email, password, is_admin, created_at FROM USERS WHERE email=$1;`
	GetUserByID    = `SELECT id, full_name, email, password, is_admin, created_at FROM USERS WHERE id=$1;`
	UpdateUserName = `UPDATE USERS SET full_name = $1 WHERE id = $2;`

	GetAccounts = `SELECT u.id, u.full_name, u.email, u.created_at, COALESCE(w.balance, 0) AS balance
					FROM USERS u
					LEFT JOIN WALLET w ON u.id = w.user_id
					ORDER BY u.created_at DESC;`
	GetPlatformStats = `SELECT (SELECT COUNT(*) FROM USERS) AS total_users,
							   (SELECT COALESCE(SUM(balance), 0) FROM WALLET) AS total_balance,
							   (SELECT COALESCE(SUM(amount), 0) FROM INVESTMENTS) AS total_invested,
							   (SELECT COALESCE(SUM(profit), 0) FROM INVESTMENTS) AS total_profit;`

	DeleteUserTransactions = `DELETE FROM TRANSACTIONS WHERE user_id = $1;`
	DeleteUserWithdrawals  = `DELETE FROM WITHDRAWALS WHERE user_id = $1;`
	DeleteUserInvestments  = `DELETE FROM INVESTMENTS WHERE user_id = $1;`
	DeleteUserDeposits     = `DELETE FROM DEPOSITS WHERE user_id = $1;`
	DeleteUserFundRequests = `DELETE FROM FUND_REQUESTS WHERE user_id = $1;`
	DeleteUserWallet       = `DELETE FROM WALLET WHERE user_id = $1;`
	DeleteUserRow          = `DELETE FROM USERS WHERE id = $1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData) error {
	var prevEmail string
	err := s.DB.Pool.QueryRow(ctx, InsertUser,
		user.UserID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.IsAdmin,
	).Scan(&prevEmail)

	// Успешное добавление
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUserByEmail(ctx context.Context, email string) (*models.UserData, error) {
	return s.getUser(ctx, GetUserByEmail, email)
}

func (s *UserDatabase) GetUser(ctx context.Context, userID string) (*models.UserData, error) {
	return s.getUser(ctx, GetUserByID, userID)
}

func (s *UserDatabase) getUser(ctx context.Context, query string, arg string) (*models.UserData, error) {
	var (
		userID    string
		fullName  string
		email     string
		password  string
		isAdmin   bool
		createdAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, query, arg).Scan(&userID, &fullName, &email, &password, &isAdmin, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &models.UserData{
		UserID:       userID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: password,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
	}, nil
}

func (s *UserDatabase) UpdateUserName(ctx context.Context, userID string, fullName string) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateUserName, fullName, userID)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetAccounts - список пользователей с балансами (для админки)
func (s *UserDatabase) GetAccounts(ctx context.Context) ([]models.UserAccount, error) {
	var accounts []models.UserAccount
	rows, err := s.DB.Pool.Query(ctx, GetAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	for rows.Next() {
		var (
			userID    string
			fullName  string
			email     string
			createdAt time.Time
			balance   decimal.Decimal
		)
		err := rows.Scan(&userID, &fullName, &email, &createdAt, &balance)
		if err != nil {
			return accounts, fmt.Errorf("failed scan account data: %w", err)
		}
		floatBalance, _ := balance.Float64()
		accounts = append(accounts, models.UserAccount{
			UserID:    userID,
			FullName:  fullName,
			Email:     email,
			Balance:   floatBalance,
			CreatedAt: createdAt.Format(time.RFC3339),
		})
	}
	return accounts, err
}

// GetPlatformStats - сводная статистика платформы (для админки)
func (s *UserDatabase) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	var (
		totalUsers    int
		totalBalance  decimal.Decimal
		totalInvested decimal.Decimal
		totalProfit   decimal.Decimal
	)
	err := s.DB.Pool.QueryRow(ctx, GetPlatformStats).Scan(&totalUsers, &totalBalance, &totalInvested, &totalProfit)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return &models.PlatformStats{
		TotalUsers:         totalUsers,
		TotalWalletBalance: totalBalance,
		TotalInvested:      totalInvested,
		TotalProfit:        totalProfit,
	}, nil
}

// DeleteUser - каскадное удаление пользователя и всех связанных данных в одной транзакции
func (s *UserDatabase) DeleteUser(ctx context.Context, userID string) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DeleteUser. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Порядок важен: сначала зависимые таблицы, затем кошелёк и пользователь
	queries := []string{
		DeleteUserTransactions,
		DeleteUserWithdrawals,
		DeleteUserInvestments,
		DeleteUserDeposits,
		DeleteUserFundRequests,
		DeleteUserWallet,
	}
	for _, query := range queries {
		if _, err = tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}
	}

	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, DeleteUserRow, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrUserNotFound
		return err
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteUser. Commit failed: %w", err)
	}

	return nil
}
