package config

import (
	assistantHandler "OmniCalc/internal/api/assistant/handler"
	assistantService "OmniCalc/internal/api/assistant/service"
	contactHandler "OmniCalc/internal/api/contact/handler"
	contactService "OmniCalc/internal/api/contact/service"
	currencyHandler "OmniCalc/internal/api/currency/handler"
	currencyService "OmniCalc/internal/api/currency/service"
	"OmniCalc/internal/middleware"
	"OmniCalc/pkg/mail"
	"OmniCalc/pkg/nlp"
	"OmniCalc/pkg/redis"
	"OmniCalc/pkg/unitconv"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	handlers     []handler
	nlpProcessor nlp.INLPProcessor
	mailer       mail.IMailer
	redisServer  redis.IRedis
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.nlpProcessor == nil {
		server.nlpProcessor = nlp.NewProcessor(nlp.NewPatternTable(), unitconv.New())
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithNLPProcessor(processor nlp.INLPProcessor) ServerOption {
	return func(s *Server) error {
		s.nlpProcessor = processor
		return nil
	}
}

func WithMailer(mailer mail.IMailer) ServerOption {
	return func(s *Server) error {
		s.mailer = mailer
		return nil
	}
}

// WithMailerFromEnv fails when the sender, receiver or password is missing.
func WithMailerFromEnv() ServerOption {
	return func(s *Server) error {
		mailer, err := mail.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to configure mail transport: %v", err)
			}
			return fmt.Errorf("failed to create mailer: %w", err)
		}
		s.mailer = mailer
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(cors.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	// Assistant
	assistantServices := assistantService.NewAssistantService(s.log, s.nlpProcessor)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	// Contact
	contactServices := contactService.NewContactService(s.log, s.validator, s.mailer)
	contactHandlers := contactHandler.New(s.log, s.middleware, contactServices)

	// Currency
	currencyServices := currencyService.NewCurrencyService(s.log, s.redisServer)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := currencyServices.SeedRates(ctx); err != nil {
		s.log.Warnf("Currency rates not seeded, defaults will be served: %v", err)
	}
	currencyHandlers := currencyHandler.New(s.log, s.validator, s.middleware, currencyServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers, contactHandlers, currencyHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	return s.engine.ShutdownWithTimeout(10 * time.Second)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"project": "OmniCalc Backend",
			"status":  "running",
			"endpoints": fiber.Map{
				"send_email":       "/send-email (POST)",
				"ai_query":         "/api/ai_query (POST)",
				"currencies":       "/api/currencies (GET)",
				"currency_convert": "/api/currency/convert (POST)",
			},
		})
	})
}
