package contactHandler

import (
	"OmniCalc/internal/api/contact"
	"OmniCalc/internal/entity"
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/handlerUtil"
	"OmniCalc/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ContactHandler) SendEmail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing send email request")

	var req contact.SendEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, contact.ErrValidation, ctx.Path(), "send_email")
	}

	submission := entity.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.contactService.Relay(c, submission); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "send_email")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, contact.MessageResponse{
		Message: contact.SuccessMessage,
	})
}
