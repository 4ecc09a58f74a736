package currency

import "OmniCalc/pkg/response"

var (
	ErrInvalidRequest      = response.NewError(400, "amount, from and to are required")
	ErrUnsupportedCurrency = response.NewError(400, "Currency not supported")
)
