package storage

import (
	"context"
	"errors"

	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/shopspring/decimal"
)

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) error
	GetUserByEmail(ctx context.Context, email string) (*models.UserData, error)
	GetUser(ctx context.Context, userID string) (*models.UserData, error)
	UpdateUserName(ctx context.Context, userID string, fullName string) error
	GetAccounts(ctx context.Context) ([]models.UserAccount, error)
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
	DeleteUser(ctx context.Context, userID string) error
}

type WalletsStorage interface {
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)
	CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error
	GetTransactions(ctx context.Context, userID string) ([]models.TransactionData, error)
}

type InvestmentsStorage interface {
	AddInvestment(ctx context.Context, investment models.InvestmentData) error
	GetInvestments(ctx context.Context, userID string) ([]models.InvestmentData, error)
	GetPortfolioStats(ctx context.Context, userID string) (*models.PortfolioStats, error)
	GetRecentInvestments(ctx context.Context, limit int) ([]models.InvestmentData, error)
}

type DepositsStorage interface {
	AddDeposit(ctx context.Context, deposit models.DepositData) error
	GetDeposits(ctx context.Context, userID string) ([]models.DepositData, error)
	GetPendingDeposits(ctx context.Context) ([]models.PendingDeposit, error)
	ApproveDeposit(ctx context.Context, depositID int64) error
	RejectDeposit(ctx context.Context, depositID int64) error
}

type FundRequestsStorage interface {
	AddFundRequest(ctx context.Context, request models.FundRequestData) error
	GetFundRequestStats(ctx context.Context, userID string) (*models.FundRequestStats, error)
	GetPendingFundRequests(ctx context.Context) ([]models.PendingFundRequest, error)
	ApproveFundRequest(ctx context.Context, requestID int64) error
	RejectFundRequest(ctx context.Context, requestID int64) error
}

type WithdrawalsStorage interface {
	AddWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (int64, error)
}

type Storage struct {
	Users        UsersStorage
	Wallets      WalletsStorage
	Investments  InvestmentsStorage
	Deposits     DepositsStorage
	FundRequests FundRequestsStorage
	Withdrawals  WithdrawalsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:        NewUsersStorage(db),
		Wallets:      NewWalletsStorage(db),
		Investments:  NewInvestmentsStorage(db),
		Deposits:     NewDepositsStorage(db),
		FundRequests: NewFundRequestsStorage(db),
		Withdrawals:  NewWithdrawalsStorage(db),
	}
}

var (
	ErrUserNotFound = errors.New("user not found")

	ErrAlreadyExists    = errors.New("already exists")
	ErrAlreadyProcessed = errors.New("already processed")

	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrInsufficientCryptoFunds = errors.New("insufficient crypto funds")
)
