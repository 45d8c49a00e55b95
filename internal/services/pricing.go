package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/denmor86/profit-gainer/internal/client"
	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

var (
	ErrPriceUnavailable = errors.New("spot price unavailable")
	ErrPriceStale       = errors.New("spot price is stale")
)

// PriceQuote - котировка с отметкой времени получения
type PriceQuote struct {
	Currency  string
	Price     decimal.Decimal
	FetchedAt time.Time
}

type PricingService interface {
	GetSpotPrice(ctx context.Context, currency string) (*PriceQuote, error)
	Refresh(ctx context.Context) error
}

type Pricing struct {
	Client   *client.Client
	Limiter  *client.RateLimiter
	PriceTTL time.Duration

	mu     sync.RWMutex
	quotes map[string]PriceQuote
}

// Создание сервиса
func NewPricing(cfg config.PricingConfig) PricingService {
	return &Pricing{
		Client:   client.NewClient(cfg.PricingAddr, &http.Client{Timeout: cfg.RequestTimeout}),
		Limiter:  client.NewRateLimiter(),
		PriceTTL: cfg.PriceTTL,
		quotes:   make(map[string]PriceQuote),
	}
}

// Refresh - обновление кэша котировок BTC и ETH.
// Сетевые сбои перезапрашиваются с экспоненциальной паузой, ограничение
// частоты запросов учитывается через Retry-After.
func (s *Pricing) Refresh(ctx context.Context) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	var resp *client.PriceResponse
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reqErr error
		resp, reqErr = s.Client.GetSimplePrice(ctx)
		if reqErr != nil {
			// проверка большого количества запросов
			if rateLimitErr, ok := reqErr.(*client.RateLimitError); ok {
				logger.Warn("Too many requests to pricing service")
				s.Limiter.BlockFor(rateLimitErr.RetryAfter)
				return reqErr
			}
			if errors.Is(reqErr, client.ErrServiceUnavailable) {
				return retry.RetryableError(reqErr)
			}
			return retry.RetryableError(reqErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	btcPrice := decimal.NewFromFloat(resp.Bitcoin.USD)
	ethPrice := decimal.NewFromFloat(resp.Ethereum.USD)
	// Сервис может ответить 200 с пустым или неполным телом,
	// нулевой курс в кэш не попадает
	if btcPrice.LessThanOrEqual(decimal.Zero) || ethPrice.LessThanOrEqual(decimal.Zero) {
		logger.Warn("Pricing service returned non-positive price")
		return ErrPriceUnavailable
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[models.CurrencyBTC] = PriceQuote{
		Currency:  models.CurrencyBTC,
		Price:     btcPrice,
		FetchedAt: now,
	}
	s.quotes[models.CurrencyETH] = PriceQuote{
		Currency:  models.CurrencyETH,
		Price:     ethPrice,
		FetchedAt: now,
	}
	return nil
}

// GetSpotPrice возвращает свежую котировку валюты.
// Свежая котировка из кэша отдаётся без сетевого вызова, протухшая
// обновляется на месте. Если сервис котировок недоступен, а в кэше осталась
// только старая котировка - возвращается ошибка протухшей цены: операция
// по устаревшему курсу не выполняется.
func (s *Pricing) GetSpotPrice(ctx context.Context, currency string) (*PriceQuote, error) {
	if quote, ok := s.quote(currency); ok && s.fresh(quote) {
		return quote, nil
	}

	if err := s.Refresh(ctx); err != nil {
		logger.Error("Failed to refresh spot prices:", err)
		if _, ok := s.quote(currency); ok {
			return nil, ErrPriceStale
		}
		return nil, ErrPriceUnavailable
	}

	quote, ok := s.quote(currency)
	if !ok {
		return nil, ErrPriceUnavailable
	}
	return quote, nil
}

// quote - котировка из кэша, нулевая котировка приравнивается к отсутствующей
func (s *Pricing) quote(currency string) (*PriceQuote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quote, ok := s.quotes[currency]
	if !ok || quote.Price.LessThanOrEqual(decimal.Zero) {
		return nil, false
	}
	return &quote, true
}

func (s *Pricing) fresh(quote *PriceQuote) bool {
	return time.Since(quote.FetchedAt) < s.PriceTTL
}
