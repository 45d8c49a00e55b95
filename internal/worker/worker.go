package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pricing-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// PriceWorker - фоновый воркер обновления кэша котировок.
// Держит кэш тёплым, чтобы вывод средств не ждал сетевого вызова
// и блокировка кошелька никогда не длилась дольше запроса к БД.
type PriceWorker struct {
	Pricing      services.PricingService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	PollInterval time.Duration
}

// NewPriceWorker - конструктор обработчика обновления котировок
func NewPriceWorker(pricing services.PricingService, pollInterval time.Duration) *PriceWorker {
	return &PriceWorker{
		Pricing:      pricing,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PriceWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PriceWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *PriceWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	// первое обновление сразу при старте
	w.RefreshPrices(ctx)

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PriceWorker signal stop")
			return
		case <-ticker.C:
			w.RefreshPrices(ctx)
		}
	}
}

// RefreshPrices - обновление кэша котировок через circuit breaker
func (w *PriceWorker) RefreshPrices(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return nil, w.Pricing.Refresh(ctx)
	})

	if err != nil {
		logger.Error("Error refreshing prices", err)
	}
}
