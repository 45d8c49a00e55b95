package validators

import (
	"testing"

	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/shopspring/decimal"
)

func TestPlanForAmount(t *testing.T) {
	testCases := []struct {
		name         string
		amount       decimal.Decimal
		expectedPlan string
		expectedOk   bool
	}{
		{name: "Below minimum #1", amount: decimal.NewFromInt(499), expectedPlan: "", expectedOk: false},
		{name: "Bronze lower bound #2", amount: decimal.NewFromInt(500), expectedPlan: models.PlanBronze, expectedOk: true},
		{name: "Bronze upper bound #3", amount: decimal.NewFromInt(10000), expectedPlan: models.PlanBronze, expectedOk: true},
		{name: "Silver lower bound #4", amount: decimal.NewFromInt(10001), expectedPlan: models.PlanSilver, expectedOk: true},
		{name: "Silver upper bound #5", amount: decimal.NewFromInt(50000), expectedPlan: models.PlanSilver, expectedOk: true},
		{name: "Gold lower bound #6", amount: decimal.NewFromInt(50001), expectedPlan: models.PlanGold, expectedOk: true},
		{name: "Gold has no upper bound #7", amount: decimal.NewFromInt(1000000), expectedPlan: models.PlanGold, expectedOk: true},
		{name: "Fractional amount in Bronze #8", amount: decimal.NewFromFloat(999.99), expectedPlan: models.PlanBronze, expectedOk: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, ok := PlanForAmount(tc.amount)
			if ok != tc.expectedOk {
				t.Errorf("Expected ok %v, got %v", tc.expectedOk, ok)
			}
			if plan != tc.expectedPlan {
				t.Errorf("Expected plan '%s', got '%s'", tc.expectedPlan, plan)
			}
		})
	}
}

func TestCheckPlan(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		plan     string
		expected bool
	}{
		{name: "Matching plan #1", amount: decimal.NewFromInt(5000), plan: models.PlanBronze, expected: true},
		{name: "Plan too high for amount #2", amount: decimal.NewFromInt(5000), plan: models.PlanGold, expected: false},
		{name: "Plan too low for amount #3", amount: decimal.NewFromInt(60000), plan: models.PlanBronze, expected: false},
		{name: "Amount below any plan #4", amount: decimal.NewFromInt(100), plan: models.PlanBronze, expected: false},
		{name: "Unknown plan name #5", amount: decimal.NewFromInt(5000), plan: "Platinum", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckPlan(tc.amount, tc.plan); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCheckCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		expected bool
	}{
		{name: "BTC #1", currency: models.CurrencyBTC, expected: true},
		{name: "ETH #2", currency: models.CurrencyETH, expected: true},
		{name: "Unknown currency #3", currency: "DOGE", expected: false},
		{name: "Empty currency #4", currency: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckCurrency(tc.currency); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCheckWalletAddress(t *testing.T) {
	testCases := []struct {
		name     string
		address  string
		expected bool
	}{
		{name: "Valid address #1", address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", expected: true},
		{name: "Too short #2", address: "abc123", expected: false},
		{name: "Spaces only #3", address: "              ", expected: false},
		{name: "Exactly minimum length #4", address: "0123456789", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckWalletAddress(tc.address); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCardLast4(t *testing.T) {
	testCases := []struct {
		name       string
		cardNumber string
		expected   string
	}{
		{name: "Plain number #1", cardNumber: "4242424242424242", expected: "4242"},
		{name: "Number with spaces #2", cardNumber: "4242 4242 4242 1111", expected: "1111"},
		{name: "Short number #3", cardNumber: "42", expected: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CardLast4(tc.cardNumber); got != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, got)
			}
		})
	}
}
