package currencyHandler

import (
	"OmniCalc/internal/api/currency"
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/handlerUtil"
	"OmniCalc/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CurrencyHandler) GetCurrencies(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	currencies, err := h.currencyService.GetCurrencies(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_currencies")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, currency.CurrencyListResponse{
			Currencies: currencies,
		})
	}
}

func (h *CurrencyHandler) Convert(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing currency conversion request")

	var req currency.ConvertRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, currency.ErrInvalidRequest, ctx.Path(), "convert_currency")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	resp, err := h.currencyService.Convert(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_currency")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
