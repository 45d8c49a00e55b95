package validators

import (
	"strings"

	"github.com/denmor86/profit-gainer/internal/models"
	"github.com/shopspring/decimal"
)

// Минимальная сумма вывода средств в USD
var MinWithdrawalAmount = decimal.NewFromInt(1)

// Минимальная длина адреса криптокошелька
const MinWalletAddressLen = 10

// PlanBracket - диапазон сумм тарифного плана, Max с нулевым значением - без верхней границы
type PlanBracket struct {
	Name string
	Min  decimal.Decimal
	Max  decimal.Decimal
}

// Таблица тарифных планов: непересекающиеся диапазоны, границы включительно,
// граничное значение относится к младшему плану
var PlanBrackets = []PlanBracket{
	{Name: models.PlanBronze, Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(10000)},
	{Name: models.PlanSilver, Min: decimal.NewFromInt(10001), Max: decimal.NewFromInt(50000)},
	{Name: models.PlanGold, Min: decimal.NewFromInt(50001)},
}

// PlanForAmount возвращает тарифный план для суммы инвестиции
func PlanForAmount(amount decimal.Decimal) (string, bool) {
	for _, bracket := range PlanBrackets {
		if amount.LessThan(bracket.Min) {
			continue
		}
		if !bracket.Max.IsZero() && amount.GreaterThan(bracket.Max) {
			continue
		}
		return bracket.Name, true
	}
	return "", false
}

// CheckPlan проверяет соответствие плана диапазону суммы
func CheckPlan(amount decimal.Decimal, plan string) bool {
	name, ok := PlanForAmount(amount)
	return ok && name == plan
}

// CheckAmount проверяет, что сумма положительная
func CheckAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// CheckCurrency проверяет код криптовалюты
func CheckCurrency(currency string) bool {
	return currency == models.CurrencyBTC || currency == models.CurrencyETH
}

// CheckWalletAddress - примитивная проверка адреса криптокошелька (только длина)
func CheckWalletAddress(address string) bool {
	return len(strings.TrimSpace(address)) >= MinWalletAddressLen
}

// CardLast4 возвращает последние четыре цифры номера карты.
// Полный номер карты никогда не сохраняется.
func CardLast4(cardNumber string) string {
	number := strings.ReplaceAll(cardNumber, " ", "")
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}
