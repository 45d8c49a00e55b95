package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/profit-gainer/internal/client"
	"github.com/denmor86/profit-gainer/internal/client/mocks"
	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/shopspring/decimal"

	"go.uber.org/mock/gomock"
)

const simplePriceBody = `{"bitcoin":{"usd":50000},"ethereum":{"usd":3000}}`

func newTestPricing(httpClient client.HTTPClient, ttl time.Duration) *Pricing {
	return &Pricing{
		Client:   client.NewClient("http://pricing.test", httpClient),
		Limiter:  client.NewRateLimiter(),
		PriceTTL: ttl,
		quotes:   make(map[string]PriceQuote),
	}
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	t.Run("Refresh: Success #1", func(t *testing.T) {
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(simplePriceBody)),
		}, nil)

		pricing := newTestPricing(mockHTTP, time.Minute)
		if err := pricing.Refresh(context.Background()); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		quote, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC)
		if err != nil {
			t.Fatalf("Expected cached quote, got: '%v'", err)
		}
		if !quote.Price.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("Expected BTC price 50000, got %s", quote.Price)
		}

		quote, err = pricing.GetSpotPrice(context.Background(), models.CurrencyETH)
		if err != nil {
			t.Fatalf("Expected cached quote, got: '%v'", err)
		}
		if !quote.Price.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("Expected ETH price 3000, got %s", quote.Price)
		}
	})

	t.Run("Refresh: Empty body #2", func(t *testing.T) {
		// сервис отвечает 200 с пустым телом, нулевой курс в кэш не попадает
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{}`)),
			}, nil
		}).AnyTimes()

		pricing := newTestPricing(mockHTTP, time.Minute)
		err := pricing.Refresh(context.Background())
		if !errors.Is(err, ErrPriceUnavailable) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrPriceUnavailable, err)
		}

		if _, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC); !errors.Is(err, ErrPriceUnavailable) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrPriceUnavailable, err)
		}
	})

	t.Run("Refresh: Service unavailable #3", func(t *testing.T) {
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil).AnyTimes()

		pricing := newTestPricing(mockHTTP, time.Minute)
		err := pricing.Refresh(context.Background())
		if !errors.Is(err, client.ErrServiceUnavailable) {
			t.Errorf("Expected error: '%v', got: '%v'", client.ErrServiceUnavailable, err)
		}
	})

	t.Run("Refresh: Rate limited #4", func(t *testing.T) {
		header := http.Header{}
		header.Set("Retry-After", "1")
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     header,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil)

		pricing := newTestPricing(mockHTTP, time.Minute)
		err := pricing.Refresh(context.Background())

		var rateLimitErr *client.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			t.Errorf("Expected RateLimitError, got: '%v'", err)
		}
	})
}

func TestGetSpotPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	initTestLogger()

	t.Run("GetSpotPrice: Fresh cache hit #1", func(t *testing.T) {
		// сетевой вызов не ожидается
		mockHTTP := mocks.NewMockHTTPClient(ctrl)

		pricing := newTestPricing(mockHTTP, time.Minute)
		pricing.quotes[models.CurrencyBTC] = PriceQuote{
			Currency:  models.CurrencyBTC,
			Price:     decimal.NewFromInt(45000),
			FetchedAt: time.Now(),
		}

		quote, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if !quote.Price.Equal(decimal.NewFromInt(45000)) {
			t.Errorf("Expected price 45000, got %s", quote.Price)
		}
	})

	t.Run("GetSpotPrice: Stale quote on refresh failure #2", func(t *testing.T) {
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil).AnyTimes()

		pricing := newTestPricing(mockHTTP, time.Minute)
		pricing.quotes[models.CurrencyBTC] = PriceQuote{
			Currency:  models.CurrencyBTC,
			Price:     decimal.NewFromInt(45000),
			FetchedAt: time.Now().Add(-time.Hour),
		}

		_, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC)
		if !errors.Is(err, ErrPriceStale) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrPriceStale, err)
		}
	})

	t.Run("GetSpotPrice: Empty cache on refresh failure #3", func(t *testing.T) {
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil).AnyTimes()

		pricing := newTestPricing(mockHTTP, time.Minute)

		_, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC)
		if !errors.Is(err, ErrPriceUnavailable) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrPriceUnavailable, err)
		}
	})

	t.Run("GetSpotPrice: Zero cached quote ignored #4", func(t *testing.T) {
		mockHTTP := mocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil).AnyTimes()

		// Свежая котировка с нулевым курсом приравнивается к отсутствующей,
		// наружу она не отдаётся даже при недоступном сервисе котировок
		pricing := newTestPricing(mockHTTP, time.Minute)
		pricing.quotes[models.CurrencyBTC] = PriceQuote{
			Currency:  models.CurrencyBTC,
			Price:     decimal.Zero,
			FetchedAt: time.Now(),
		}

		_, err := pricing.GetSpotPrice(context.Background(), models.CurrencyBTC)
		if !errors.Is(err, ErrPriceUnavailable) {
			t.Errorf("Expected error: '%v', got: '%v'", ErrPriceUnavailable, err)
		}
	})
}
