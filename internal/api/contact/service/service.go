package contactService

import (
	"OmniCalc/internal/entity"
	"OmniCalc/pkg/mail"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type IContactService interface {
	Relay(ctx context.Context, submission entity.ContactSubmission) error
}

type contactService struct {
	log       *logrus.Logger
	validator *validator.Validate
	mailer    mail.IMailer
}

func NewContactService(
	log *logrus.Logger,
	validate *validator.Validate,
	mailer mail.IMailer,
) IContactService {
	return &contactService{
		log:       log,
		validator: validate,
		mailer:    mailer,
	}
}
