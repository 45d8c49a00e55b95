package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/denmor86/profit-gainer/internal/storage"
	"github.com/denmor86/profit-gainer/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidPlan         = errors.New("invalid plan for this amount")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidAddress      = errors.New("invalid wallet address")
	ErrForbiddenSelfDelete = errors.New("admin cannot delete own account")
)

// Точность расчёта криптовалютной суммы (восемь знаков после запятой)
const CryptoAmountPrecision = 8

type LedgerService interface {
	GetWallet(ctx context.Context, userID string) (*models.WalletResponse, error)
	CreditWallet(ctx context.Context, userID string, amount decimal.Decimal) error
	OpenInvestment(ctx context.Context, userID string, amount decimal.Decimal, assetName string, plan string) error
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, currency string, address string) (*models.WithdrawalReceipt, error)
	SubmitDeposit(ctx context.Context, userID string, amount decimal.Decimal, paymentMethod string) error
	SubmitFundRequest(ctx context.Context, userID string, request models.FundRequestInput) error
	ApproveDeposit(ctx context.Context, depositID int64) error
	RejectDeposit(ctx context.Context, depositID int64) error
	ApproveFundRequest(ctx context.Context, requestID int64) error
	RejectFundRequest(ctx context.Context, requestID int64) error
	DeleteUser(ctx context.Context, adminID string, userID string) error
}

type Ledger struct {
	Storage storage.Storage
	Pricing PricingService
}

// Создание сервиса
func NewLedger(storage storage.Storage, pricing PricingService) LedgerService {
	return &Ledger{Storage: storage, Pricing: pricing}
}

// GetWallet возвращает кошелёк пользователя с историей операций,
// при первом обращении кошелёк создаётся с нулевыми остатками
func (s *Ledger) GetWallet(ctx context.Context, userID string) (*models.WalletResponse, error) {
	wallet, err := s.Storage.Wallets.GetWallet(ctx, userID)
	if err != nil {
		logger.Error("Failed to get wallet", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Storage.Wallets.GetTransactions(ctx, userID)
	if err != nil {
		logger.Error("Failed to get transactions", zap.Error(err))
		return nil, err
	}

	balance, _ := wallet.Balance.Float64()
	btc, _ := wallet.BTC.Float64()
	eth, _ := wallet.ETH.Float64()

	response := &models.WalletResponse{
		Balance: balance,
		BTC:     btc,
		ETH:     eth,
	}
	for _, t := range transactions {
		amount, _ := t.Amount.Float64()
		response.Transactions = append(response.Transactions, models.TransactionResponse{
			ID:        t.ID,
			Type:      t.Type,
			Amount:    amount,
			Currency:  t.Currency,
			Status:    t.Status,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

// CreditWallet - пополнение баланса пользователя (бонус администратора)
func (s *Ledger) CreditWallet(ctx context.Context, userID string, amount decimal.Decimal) error {
	// Проверка на неположительную сумму
	if !validators.CheckAmount(amount) {
		return ErrInvalidAmount
	}
	return s.Storage.Wallets.CreditBalance(ctx, userID, amount)
}

// OpenInvestment - открытие инвестиции со списанием средств с кошелька.
// План должен соответствовать диапазону суммы, достаточность средств
// проверяется хранилищем под блокировкой строки кошелька.
func (s *Ledger) OpenInvestment(ctx context.Context, userID string, amount decimal.Decimal, assetName string, plan string) error {
	if !validators.CheckAmount(amount) || assetName == "" {
		return ErrInvalidAmount
	}
	if !validators.CheckPlan(amount, plan) {
		return ErrInvalidPlan
	}

	investment := models.InvestmentData{
		UserID:    userID,
		Amount:    amount,
		AssetName: assetName,
		Plan:      plan,
	}
	return s.Storage.Investments.AddInvestment(ctx, investment)
}

// RequestWithdrawal - вывод средств с конвертацией USD в криптовалюту.
// Курс запрашивается до открытия транзакции, чтобы не держать блокировку
// строки кошелька на время сетевого вызова.
func (s *Ledger) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, currency string, address string) (*models.WithdrawalReceipt, error) {
	// Минимальная сумма вывода - 1 USD
	if amount.LessThan(validators.MinWithdrawalAmount) {
		return nil, ErrInvalidAmount
	}
	if !validators.CheckCurrency(currency) {
		return nil, ErrInvalidCurrency
	}
	if !validators.CheckWalletAddress(address) {
		return nil, ErrInvalidAddress
	}

	// Получаем свежий курс до захвата блокировки
	quote, err := s.Pricing.GetSpotPrice(ctx, currency)
	if err != nil {
		logger.Error("Failed to get spot price", zap.Error(err))
		return nil, err
	}
	// Конвертация по нулевому курсу не выполняется
	if quote.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrPriceUnavailable
	}

	cryptoAmount := amount.DivRound(quote.Price, CryptoAmountPrecision)

	withdrawal := models.WithdrawalData{
		UserID:        userID,
		USDAmount:     amount,
		CryptoAmount:  cryptoAmount,
		Currency:      currency,
		WalletAddress: address,
	}
	withdrawalID, err := s.Storage.Withdrawals.AddWithdrawal(ctx, withdrawal)
	if err != nil {
		return nil, err
	}

	usdAmount, _ := amount.Float64()
	floatCrypto, _ := cryptoAmount.Float64()
	return &models.WithdrawalReceipt{
		ID:            withdrawalID,
		USDAmount:     usdAmount,
		CryptoAmount:  floatCrypto,
		Currency:      currency,
		WalletAddress: address,
		Status:        models.WithdrawalStatusCompleted,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}, nil
}

// SubmitDeposit - заявка на пополнение, средства зачисляются только после одобрения
func (s *Ledger) SubmitDeposit(ctx context.Context, userID string, amount decimal.Decimal, paymentMethod string) error {
	if !validators.CheckAmount(amount) || paymentMethod == "" {
		return ErrInvalidAmount
	}

	deposit := models.DepositData{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
	}
	return s.Storage.Deposits.AddDeposit(ctx, deposit)
}

// SubmitFundRequest - заявка на пополнение картой.
// Сохраняются только последние четыре цифры карты и срок действия,
// CVV отбрасывается сразу после проверки формы.
func (s *Ledger) SubmitFundRequest(ctx context.Context, userID string, request models.FundRequestInput) error {
	amount := decimal.NewFromFloat(request.Amount)
	if !validators.CheckAmount(amount) {
		return ErrInvalidAmount
	}

	data := models.FundRequestData{
		UserID:     userID,
		Amount:     amount,
		Purpose:    request.Purpose,
		CardLast4:  validators.CardLast4(request.CardNumber),
		CardExpiry: request.ExpiryDate,
	}
	return s.Storage.FundRequests.AddFundRequest(ctx, data)
}

// ApproveDeposit - одобрение депозита с зачислением средств
func (s *Ledger) ApproveDeposit(ctx context.Context, depositID int64) error {
	return s.Storage.Deposits.ApproveDeposit(ctx, depositID)
}

// RejectDeposit - отклонение депозита, средства не зачисляются
func (s *Ledger) RejectDeposit(ctx context.Context, depositID int64) error {
	return s.Storage.Deposits.RejectDeposit(ctx, depositID)
}

// ApproveFundRequest - одобрение заявки на пополнение картой
func (s *Ledger) ApproveFundRequest(ctx context.Context, requestID int64) error {
	return s.Storage.FundRequests.ApproveFundRequest(ctx, requestID)
}

// RejectFundRequest - отклонение заявки на пополнение картой
func (s *Ledger) RejectFundRequest(ctx context.Context, requestID int64) error {
	return s.Storage.FundRequests.RejectFundRequest(ctx, requestID)
}

// DeleteUser - каскадное удаление пользователя, удаление собственной
// учётной записи администратора запрещено
func (s *Ledger) DeleteUser(ctx context.Context, adminID string, userID string) error {
	if adminID == userID {
		return ErrForbiddenSelfDelete
	}
	return s.Storage.Users.DeleteUser(ctx, userID)
}
