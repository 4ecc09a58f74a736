package mail

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrMissingSender    = errors.New("SENDER_EMAIL is not set")
	ErrMissingReceiver  = errors.New("RECEIVER_EMAIL is not set")
	ErrMissingPassword  = errors.New("GMAIL_APP_PASSWORD is not set")
	ErrUnknownTransport = errors.New("unknown mail transport")
)

const (
	TransportSMTP = "smtp"
	TransportSES  = "ses"
)

// Message is a plain-text mail addressed to the configured receiver.
type Message struct {
	Subject string
	Body    string
	ReplyTo string
}

type IMailer interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	Transport string
	Sender    string
	Receiver  string
	Password  string
	Host      string
	Port      string
	AWSRegion string
}

func ConfigFromEnv() Config {
	return Config{
		Transport: strings.ToLower(os.Getenv("MAIL_TRANSPORT")),
		Sender:    os.Getenv("SENDER_EMAIL"),
		Receiver:  os.Getenv("RECEIVER_EMAIL"),
		Password:  os.Getenv("GMAIL_APP_PASSWORD"),
		Host:      os.Getenv("SMTP_HOST"),
		Port:      os.Getenv("SMTP_PORT"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}
}

func (c Config) Validate() error {
	if c.Sender == "" {
		return ErrMissingSender
	}
	if c.Receiver == "" {
		return ErrMissingReceiver
	}
	switch c.Transport {
	case "", TransportSMTP:
		if c.Password == "" {
			return ErrMissingPassword
		}
	case TransportSES:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTransport, c.Transport)
	}
	return nil
}

// New builds the mailer selected by MAIL_TRANSPORT. Missing credentials are
// reported as an error so startup can abort.
func New() (IMailer, error) {
	return NewWithConfig(ConfigFromEnv())
}

func NewWithConfig(cfg Config) (IMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Transport == TransportSES {
		return newSES(cfg)
	}
	return newSMTP(cfg), nil
}
