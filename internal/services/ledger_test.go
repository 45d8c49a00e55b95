package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/denmor86/profit-gainer/internal/storage/mocks"
	"github.com/shopspring/decimal"

	"go.uber.org/mock/gomock"
)

// stubPricing - заглушка сервиса котировок с фиксированным курсом
type stubPricing struct {
	price decimal.Decimal
	err   error
}

func (s *stubPricing) GetSpotPrice(ctx context.Context, currency string) (*PriceQuote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &PriceQuote{Currency: currency, Price: s.price, FetchedAt: time.Now()}, nil
}

func (s *stubPricing) Refresh(ctx context.Context) error {
	return s.err
}

func newTestStorage(ctrl *gomock.Controller) (storage.Storage, *mocks.MockUsersStorage, *mocks.MockWalletsStorage, *mocks.MockInvestmentsStorage, *mocks.MockDepositsStorage, *mocks.MockWithdrawalsStorage) {
	users := mocks.NewMockUsersStorage(ctrl)
	wallets := mocks.NewMockWalletsStorage(ctrl)
	investments := mocks.NewMockInvestmentsStorage(ctrl)
	deposits := mocks.NewMockDepositsStorage(ctrl)
	withdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	s := storage.Storage{
		Users:        users,
		Wallets:      wallets,
		Investments:  investments,
		Deposits:     deposits,
		FundRequests: mocks.NewMockFundRequestsStorage(ctrl),
		Withdrawals:  withdrawals,
	}
	return s, users, wallets, investments, deposits, withdrawals
}

func initTestLogger() {
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		logger.Panic(err)
	}
}

func TestOpenInvestment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	testStorage, _, _, investments, _, _ := newTestStorage(ctrl)
	ledger := NewLedger(testStorage, &stubPricing{})

	testCases := []struct {
		name          string
		setupMocks    func()
		amount        decimal.Decimal
		assetName     string
		plan          string
		expectedError error
	}{
		{
			name: "Open Investment: Success #1",
			setupMocks: func() {
				investments.EXPECT().AddInvestment(gomock.Any(), gomock.Any()).Return(nil)
			},
			amount:        decimal.NewFromInt(5000),
			assetName:     "Bitcoin",
			plan:          models.PlanBronze,
			expectedError: nil,
		},
		{
			name:          "Open Investment: Invalid amount #2",
			setupMocks:    func() {},
			amount:        decimal.NewFromInt(-100),
			assetName:     "Bitcoin",
			plan:          models.PlanBronze,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Open Investment: Missing asset name #3",
			setupMocks:    func() {},
			amount:        decimal.NewFromInt(5000),
			assetName:     "",
			plan:          models.PlanBronze,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Open Investment: Plan mismatch #4",
			setupMocks:    func() {},
			amount:        decimal.NewFromInt(5000),
			assetName:     "Bitcoin",
			plan:          models.PlanGold,
			expectedError: ErrInvalidPlan,
		},
		{
			name: "Open Investment: Insufficient funds #5",
			setupMocks: func() {
				investments.EXPECT().AddInvestment(gomock.Any(), gomock.Any()).Return(storage.ErrInsufficientFunds)
			},
			amount:        decimal.NewFromInt(60000),
			assetName:     "Bitcoin",
			plan:          models.PlanGold,
			expectedError: storage.ErrInsufficientFunds,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := ledger.OpenInvestment(ctx, "user-1", tc.amount, tc.assetName, tc.plan)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	testCases := []struct {
		name           string
		pricing        PricingService
		setupMocks     func(withdrawals *mocks.MockWithdrawalsStorage)
		amount         decimal.Decimal
		currency       string
		address        string
		expectedError  error
		expectedCrypto float64
	}{
		{
			name:    "Request Withdrawal: Success #1",
			pricing: &stubPricing{price: decimal.NewFromInt(50000)},
			setupMocks: func(withdrawals *mocks.MockWithdrawalsStorage) {
				withdrawals.EXPECT().AddWithdrawal(gomock.Any(), gomock.Any()).Return(int64(7), nil)
			},
			amount:         decimal.NewFromInt(100),
			currency:       models.CurrencyBTC,
			address:        "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError:  nil,
			expectedCrypto: 0.002,
		},
		{
			name:          "Request Withdrawal: Amount below minimum #2",
			pricing:       &stubPricing{price: decimal.NewFromInt(50000)},
			setupMocks:    func(withdrawals *mocks.MockWithdrawalsStorage) {},
			amount:        decimal.NewFromFloat(0.5),
			currency:      models.CurrencyBTC,
			address:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Request Withdrawal: Invalid currency #3",
			pricing:       &stubPricing{price: decimal.NewFromInt(50000)},
			setupMocks:    func(withdrawals *mocks.MockWithdrawalsStorage) {},
			amount:        decimal.NewFromInt(100),
			currency:      "DOGE",
			address:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError: ErrInvalidCurrency,
		},
		{
			name:          "Request Withdrawal: Invalid address #4",
			pricing:       &stubPricing{price: decimal.NewFromInt(50000)},
			setupMocks:    func(withdrawals *mocks.MockWithdrawalsStorage) {},
			amount:        decimal.NewFromInt(100),
			currency:      models.CurrencyBTC,
			address:       "short",
			expectedError: ErrInvalidAddress,
		},
		{
			name:          "Request Withdrawal: Price unavailable #5",
			pricing:       &stubPricing{err: ErrPriceUnavailable},
			setupMocks:    func(withdrawals *mocks.MockWithdrawalsStorage) {},
			amount:        decimal.NewFromInt(100),
			currency:      models.CurrencyBTC,
			address:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError: ErrPriceUnavailable,
		},
		{
			// котировка с нулевым курсом не годится для конвертации
			name:          "Request Withdrawal: Zero price quote #6",
			pricing:       &stubPricing{price: decimal.Zero},
			setupMocks:    func(withdrawals *mocks.MockWithdrawalsStorage) {},
			amount:        decimal.NewFromInt(100),
			currency:      models.CurrencyBTC,
			address:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError: ErrPriceUnavailable,
		},
		{
			name:    "Request Withdrawal: Insufficient funds #7",
			pricing: &stubPricing{price: decimal.NewFromInt(50000)},
			setupMocks: func(withdrawals *mocks.MockWithdrawalsStorage) {
				withdrawals.EXPECT().AddWithdrawal(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrInsufficientFunds)
			},
			amount:        decimal.NewFromInt(100),
			currency:      models.CurrencyBTC,
			address:       "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			expectedError: storage.ErrInsufficientFunds,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testStorage, _, _, _, _, withdrawals := newTestStorage(ctrl)
			tc.setupMocks(withdrawals)

			ledger := NewLedger(testStorage, tc.pricing)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			receipt, err := ledger.RequestWithdrawal(ctx, "user-1", tc.amount, tc.currency, tc.address)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError != nil {
				return
			}
			if receipt == nil {
				t.Fatalf("Expected receipt, got nil")
			}
			if receipt.CryptoAmount != tc.expectedCrypto {
				t.Errorf("Expected crypto amount %v, got %v", tc.expectedCrypto, receipt.CryptoAmount)
			}
			if receipt.Status != models.WithdrawalStatusCompleted {
				t.Errorf("Expected status '%s', got '%s'", models.WithdrawalStatusCompleted, receipt.Status)
			}
		})
	}
}

func TestApproveDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	testStorage, _, _, _, deposits, _ := newTestStorage(ctrl)
	ledger := NewLedger(testStorage, &stubPricing{})

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
	}{
		{
			name: "Approve Deposit: Success #1",
			setupMocks: func() {
				deposits.EXPECT().ApproveDeposit(gomock.Any(), int64(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Approve Deposit: Already processed #2",
			setupMocks: func() {
				deposits.EXPECT().ApproveDeposit(gomock.Any(), int64(1)).Return(storage.ErrAlreadyProcessed)
			},
			expectedError: storage.ErrAlreadyProcessed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := ledger.ApproveDeposit(ctx, 1)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestCreditWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	testStorage, _, wallets, _, _, _ := newTestStorage(ctrl)
	ledger := NewLedger(testStorage, &stubPricing{})

	t.Run("Credit Wallet: Success #1", func(t *testing.T) {
		wallets.EXPECT().CreditBalance(gomock.Any(), "user-1", gomock.Any()).Return(nil)
		if err := ledger.CreditWallet(context.Background(), "user-1", decimal.NewFromInt(100)); err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	})

	t.Run("Credit Wallet: Invalid amount #2", func(t *testing.T) {
		err := ledger.CreditWallet(context.Background(), "user-1", decimal.NewFromInt(-100))
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrInvalidAmount, err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	testStorage, users, _, _, _, _ := newTestStorage(ctrl)
	ledger := NewLedger(testStorage, &stubPricing{})

	testCases := []struct {
		name          string
		setupMocks    func()
		adminID       string
		userID        string
		expectedError error
	}{
		{
			name: "Delete User: Success #1",
			setupMocks: func() {
				users.EXPECT().DeleteUser(gomock.Any(), "user-2").Return(nil)
			},
			adminID:       "admin-1",
			userID:        "user-2",
			expectedError: nil,
		},
		{
			name:          "Delete User: Self delete forbidden #2",
			setupMocks:    func() {},
			adminID:       "admin-1",
			userID:        "admin-1",
			expectedError: ErrForbiddenSelfDelete,
		},
		{
			name: "Delete User: Not found #3",
			setupMocks: func() {
				users.EXPECT().DeleteUser(gomock.Any(), "ghost").Return(storage.ErrUserNotFound)
			},
			adminID:       "admin-1",
			userID:        "ghost",
			expectedError: storage.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := ledger.DeleteUser(ctx, tc.adminID, tc.userID)

			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}
