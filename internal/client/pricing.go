package client

import (
	"errors"
	"net/http"
	"time"
)

// PriceResponse - ответ сервиса котировок в формате coingecko simple/price
type PriceResponse struct {
	Bitcoin  AssetPrice `json:"bitcoin"`
	Ethereum AssetPrice `json:"ethereum"`
}

type AssetPrice struct {
	USD float64 `json:"usd"`
}

var (
	ErrServiceUnavailable = errors.New("pricing service unavailable")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
