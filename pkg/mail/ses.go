package mail

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
)

const charset = "UTF-8"

type sesMailer struct {
	client   sesiface.SESAPI
	sender   string
	receiver string
}

func newSES(cfg Config) (*sesMailer, error) {
	sess, err := newSession(cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &sesMailer{
		client:   ses.New(sess),
		sender:   cfg.Sender,
		receiver: cfg.Receiver,
	}, nil
}

func (s *sesMailer) Send(ctx context.Context, msg Message) error {
	_, err := s.client.SendEmailWithContext(ctx, buildSESInput(s.sender, s.receiver, msg))
	return err
}

func buildSESInput(from, to string, msg Message) *ses.SendEmailInput {
	input := &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(to)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Charset: aws.String(charset),
				Data:    aws.String(sanitizeHeader(msg.Subject)),
			},
			Body: &ses.Body{
				Text: &ses.Content{
					Charset: aws.String(charset),
					Data:    aws.String(msg.Body),
				},
			},
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []*string{aws.String(sanitizeHeader(msg.ReplyTo))}
	}

	return input
}

func newSession(region string) (*session.Session, error) {
	cfg := &aws.Config{
		Region: aws.String(region),
	}

	// Fall back to the SDK's default chain (instance role, shared config)
	// when no static key is configured.
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		cfg.Credentials = credentials.NewStaticCredentials(
			key,
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		)
	}

	return session.NewSession(cfg)
}
