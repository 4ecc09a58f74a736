package mail

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	sesiface.SESAPI
	mock.Mock
}

func (m *mockSES) SendEmailWithContext(ctx aws.Context, input *ses.SendEmailInput, opts ...request.Option) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

func validConfig() Config {
	return Config{
		Sender:   "sender@example.com",
		Receiver: "owner@example.com",
		Password: "app-password",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"valid smtp", func(c *Config) {}, nil},
		{"explicit smtp", func(c *Config) { c.Transport = TransportSMTP }, nil},
		{"ses needs no password", func(c *Config) { c.Transport = TransportSES; c.Password = "" }, nil},
		{"missing sender", func(c *Config) { c.Sender = "" }, ErrMissingSender},
		{"missing receiver", func(c *Config) { c.Receiver = "" }, ErrMissingReceiver},
		{"missing password", func(c *Config) { c.Password = "" }, ErrMissingPassword},
		{"unknown transport", func(c *Config) { c.Transport = "pigeon" }, ErrUnknownTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewWithConfig_DefaultsToSMTP(t *testing.T) {
	mailer, err := NewWithConfig(validConfig())
	require.NoError(t, err)

	s, ok := mailer.(*smtp)
	require.True(t, ok)
	assert.Equal(t, "smtp.gmail.com", s.host)
	assert.Equal(t, "465", s.port)
}

func TestNewWithConfig_RejectsIncompleteConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Receiver = ""

	mailer, err := NewWithConfig(cfg)
	assert.Nil(t, mailer)
	assert.ErrorIs(t, err, ErrMissingReceiver)
}

func TestBuildMessage(t *testing.T) {
	payload := string(buildMessage("from@example.com", "to@example.com", Message{
		Subject: "New Contact Form Submission from Ada\r\nBcc: evil@example.com",
		Body:    "Name: Ada\nEmail: ada@example.com\n\nMessage:\nhello",
		ReplyTo: "ada@example.com",
	}))

	headers, body, found := strings.Cut(payload, "\r\n\r\n")
	require.True(t, found)

	assert.Contains(t, headers, "From: from@example.com\r\n")
	assert.Contains(t, headers, "To: to@example.com\r\n")
	assert.Contains(t, headers, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, headers, "Subject: New Contact Form Submission from Ada  Bcc: evil@example.com\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Equal(t, "Name: Ada\r\nEmail: ada@example.com\r\n\r\nMessage:\r\nhello", body)
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	payload := string(buildMessage("from@example.com", "to@example.com", Message{
		Subject: "New Contact Form Submission from Zoë",
		Body:    "hi",
	}))

	assert.Contains(t, payload, "Subject: =?utf-8?q?New_Contact_Form_Submission_from_Zo=C3=AB?=\r\n")
}

// silentServer accepts connections and never sends an SMTP greeting.
func silentServer(t *testing.T) (host, port string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var conns []net.Conn
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		<-done
		for _, c := range conns {
			_ = c.Close()
		}
	})

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestSMTP_SendHonoursContextOnPlainPort(t *testing.T) {
	host, port := silentServer(t)

	mailer, err := NewWithConfig(Config{
		Sender:   "sender@example.com",
		Receiver: "owner@example.com",
		Password: "app-password",
		Host:     host,
		Port:     port,
	})
	require.NoError(t, err)

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := mailer.Send(ctx, Message{Subject: "hi", Body: "body"})
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(200*time.Millisecond, cancel)

		start := time.Now()
		err := mailer.Send(ctx, Message{Subject: "hi", Body: "body"})
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestSESMailer_Send(t *testing.T) {
	client := new(mockSES)
	mailer := &sesMailer{client: client, sender: "from@example.com", receiver: "to@example.com"}

	client.On("SendEmailWithContext", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.StringValue(in.Source) == "from@example.com" &&
			aws.StringValue(in.Destination.ToAddresses[0]) == "to@example.com" &&
			aws.StringValue(in.Message.Subject.Data) == "hi" &&
			aws.StringValue(in.Message.Body.Text.Data) == "body" &&
			aws.StringValue(in.ReplyToAddresses[0]) == "ada@example.com"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("id-1")}, nil).Once()

	err := mailer.Send(context.Background(), Message{Subject: "hi", Body: "body", ReplyTo: "ada@example.com"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestSESMailer_SendError(t *testing.T) {
	client := new(mockSES)
	mailer := &sesMailer{client: client, sender: "from@example.com", receiver: "to@example.com"}

	client.On("SendEmailWithContext", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

	err := mailer.Send(context.Background(), Message{Subject: "hi", Body: "body"})
	assert.EqualError(t, err, "throttled")
}
