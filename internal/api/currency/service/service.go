package currencyService

import (
	"OmniCalc/internal/api/currency"
	"OmniCalc/internal/entity"
	"OmniCalc/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type ICurrencyService interface {
	GetCurrencies(ctx context.Context) ([]entity.Currency, error)
	Convert(ctx context.Context, req currency.ConvertRequest) (*currency.ConvertResponse, error)
	SeedRates(ctx context.Context) error
}

type currencyService struct {
	log      *logrus.Logger
	rateRepo redis.IRedis
}

func NewCurrencyService(
	log *logrus.Logger,
	rateRepo redis.IRedis,
) ICurrencyService {
	return &currencyService{
		log:      log,
		rateRepo: rateRepo,
	}
}
