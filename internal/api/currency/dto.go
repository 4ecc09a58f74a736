package currency

import "OmniCalc/internal/entity"

type ConvertRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	From   string  `json:"from" validate:"required,len=3"`
	To     string  `json:"to" validate:"required,len=3"`
}

type ConvertResponse struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
	Rate   float64 `json:"rate"`
}

type CurrencyListResponse struct {
	Currencies []entity.Currency `json:"currencies"`
}

// DefaultCurrencies is the rate table used to seed Redis and whenever Redis
// cannot be read.
func DefaultCurrencies() []entity.Currency {
	return []entity.Currency{
		{Code: "USD", Name: "US Dollar", Rate: 1.0},
		{Code: "EUR", Name: "Euro", Rate: 0.85},
		{Code: "GBP", Name: "British Pound", Rate: 0.73},
		{Code: "JPY", Name: "Japanese Yen", Rate: 110.0},
		{Code: "CAD", Name: "Canadian Dollar", Rate: 1.25},
		{Code: "AUD", Name: "Australian Dollar", Rate: 1.35},
		{Code: "CHF", Name: "Swiss Franc", Rate: 0.92},
		{Code: "CNY", Name: "Chinese Yuan", Rate: 6.45},
		{Code: "INR", Name: "Indian Rupee", Rate: 74.5},
		{Code: "BTC", Name: "Bitcoin", Rate: 0.000025},
	}
}
