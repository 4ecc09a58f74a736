package currencyHandler

import (
	currencyService "OmniCalc/internal/api/currency/service"
	"OmniCalc/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CurrencyHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	currencyService currencyService.ICurrencyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs currencyService.ICurrencyService,
) *CurrencyHandler {
	return &CurrencyHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		currencyService: cs,
	}
}

func (h *CurrencyHandler) Start(srv fiber.Router) {
	api := srv.Group("/api")

	api.Get("/currencies", h.GetCurrencies)
	api.Post("/currency/convert", h.Convert)
}
