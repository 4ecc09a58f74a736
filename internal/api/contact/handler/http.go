package contactHandler

import (
	contactService "OmniCalc/internal/api/contact/service"
	"OmniCalc/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	contactService contactService.IContactService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	cs contactService.IContactService,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		middleware:     middleware,
		contactService: cs,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	srv.Post("/send-email", h.SendEmail)
}
