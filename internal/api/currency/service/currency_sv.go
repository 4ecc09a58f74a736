package currencyService

import (
	"OmniCalc/internal/api/currency"
	"OmniCalc/internal/entity"
	contextPkg "OmniCalc/pkg/context"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *currencyService) GetCurrencies(ctx context.Context) ([]entity.Currency, error) {
	requestID := contextPkg.GetRequestID(ctx)
	currencies := currency.DefaultCurrencies()

	if s.rateRepo == nil {
		return currencies, nil
	}

	rates, err := s.rateRepo.GetRates(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Falling back to default currency rates")
		return currencies, nil
	}

	for i := range currencies {
		if rate, ok := rates[currencies[i].Code]; ok && rate > 0 {
			currencies[i].Rate = rate
		}
	}

	return currencies, nil
}

func (s *currencyService) Convert(ctx context.Context, req currency.ConvertRequest) (*currency.ConvertResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	from := strings.ToUpper(strings.TrimSpace(req.From))
	to := strings.ToUpper(strings.TrimSpace(req.To))

	currencies, err := s.GetCurrencies(ctx)
	if err != nil {
		return nil, err
	}

	fromRate, okFrom := findRate(currencies, from)
	toRate, okTo := findRate(currencies, to)
	if !okFrom || !okTo {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"from":       from,
			"to":         to,
		}).Warn("Unsupported currency requested")
		return nil, currency.ErrUnsupportedCurrency
	}

	// Rates are relative to USD, so go through USD.
	result := req.Amount / fromRate * toRate

	return &currency.ConvertResponse{
		Amount: req.Amount,
		From:   from,
		To:     to,
		Result: result,
		Rate:   toRate / fromRate,
	}, nil
}

// SeedRates stores the default table in Redis unless an operator already
// put rates there.
func (s *currencyService) SeedRates(ctx context.Context) error {
	if s.rateRepo == nil {
		return nil
	}

	rates := make(map[string]float64)
	for _, c := range currency.DefaultCurrencies() {
		rates[c.Code] = c.Rate
	}

	seeded, err := s.rateRepo.SeedRates(ctx, rates)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Failed to seed currency rates")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"seeded": seeded,
	}).Info("Currency rates ready")

	return nil
}

func findRate(currencies []entity.Currency, code string) (float64, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c.Rate, true
		}
	}
	return 0, false
}
