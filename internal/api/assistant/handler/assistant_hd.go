package assistantHandler

import (
	"OmniCalc/internal/api/assistant"
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/handlerUtil"
	"OmniCalc/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AssistantHandler) ProcessQuery(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing AI query request")

	var req assistant.AIQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, assistant.ErrNoQuery, ctx.Path(), "ai_query")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.Handle(ctx, requestID, assistant.ErrNoQuery, ctx.Path(), "ai_query")
	}

	result := h.assistantService.ProcessQuery(c, req.Query)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}
