package contactService

import (
	"OmniCalc/internal/api/contact"
	"OmniCalc/internal/entity"
	"OmniCalc/pkg/mail"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newService(mailer mail.IMailer) IContactService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewContactService(logger, validator.New(), mailer)
}

func TestRelay_Success(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mail.Message{
		Subject: "New Contact Form Submission from Ada",
		Body:    "Name: Ada\nEmail: ada@example.com\n\nMessage:\nHello there",
		ReplyTo: "ada@example.com",
	}).Return(nil).Once()

	err := newService(mailer).Relay(context.Background(), entity.ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there",
	})

	require.NoError(t, err)
	mailer.AssertNumberOfCalls(t, "Send", 1)
	mailer.AssertExpectations(t)
}

func TestRelay_InvalidEmailIsNotUsedAsReplyTo(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.ReplyTo == "" && msg.Body == "Name: Ada\nEmail: not-an-address\n\nMessage:\nhi"
	})).Return(nil).Once()

	err := newService(mailer).Relay(context.Background(), entity.ContactSubmission{
		Name:    "Ada",
		Email:   "not-an-address",
		Message: "hi",
	})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestRelay_MissingFields(t *testing.T) {
	tests := []struct {
		name       string
		submission entity.ContactSubmission
	}{
		{"missing name", entity.ContactSubmission{Email: "a@b.co", Message: "hi"}},
		{"missing email", entity.ContactSubmission{Name: "Ada", Message: "hi"}},
		{"missing message", entity.ContactSubmission{Name: "Ada", Email: "a@b.co"}},
		{"all empty", entity.ContactSubmission{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := new(MockMailer)

			err := newService(mailer).Relay(context.Background(), tt.submission)

			assert.ErrorIs(t, err, contact.ErrValidation)
			mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestRelay_TransportFailure(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 auth failed")).Once()

	err := newService(mailer).Relay(context.Background(), entity.ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hi",
	})

	assert.ErrorIs(t, err, contact.ErrSendEmail)
	assert.NotContains(t, err.Error(), "535")
	mailer.AssertNumberOfCalls(t, "Send", 1)
}
