package assistantHandler

import (
	assistantService "OmniCalc/internal/api/assistant/service"
	"OmniCalc/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	api := srv.Group("/api")

	api.Post("/ai_query", h.ProcessQuery)
}
