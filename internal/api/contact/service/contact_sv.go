package contactService

import (
	"OmniCalc/internal/api/contact"
	"OmniCalc/internal/entity"
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/mail"
	"context"

	"github.com/sirupsen/logrus"
)

// Relay validates the submission and hands it to the mail transport once.
// Transport errors are logged here and replaced by contact.ErrSendEmail.
func (s *contactService) Relay(ctx context.Context, submission entity.ContactSubmission) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.validator.Struct(submission); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Contact submission is missing fields")
		return contact.ErrValidation
	}

	msg := mail.Message{
		Subject: contact.Subject(submission.Name),
		Body:    contact.Body(submission.Name, submission.Email, submission.Message),
	}
	if s.validator.Var(submission.Email, "email") == nil {
		msg.ReplyTo = submission.Email
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Error sending email")
		return contact.ErrSendEmail
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Contact email sent")

	return nil
}
