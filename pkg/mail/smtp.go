package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	smtpPkg "net/smtp"
	"strings"
	"time"
)

const (
	defaultSMTPHost = "smtp.gmail.com"
	defaultSMTPPort = "465"
	dialTimeout     = 10 * time.Second
)

type smtp struct {
	auth     smtpPkg.Auth
	host     string
	port     string
	sender   string
	receiver string
}

func newSMTP(cfg Config) *smtp {
	host := cfg.Host
	if host == "" {
		host = defaultSMTPHost
	}
	port := cfg.Port
	if port == "" {
		port = defaultSMTPPort
	}

	return &smtp{
		auth:     smtpPkg.PlainAuth("", cfg.Sender, cfg.Password, host),
		host:     host,
		port:     port,
		sender:   cfg.Sender,
		receiver: cfg.Receiver,
	}
}

func (s *smtp) Send(ctx context.Context, msg Message) error {
	payload := buildMessage(s.sender, s.receiver, msg)
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := s.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	client, err := smtpPkg.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if s.port != defaultSMTPPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				return fmt.Errorf("smtp starttls: %w", err)
			}
		}
	}

	if err := client.Auth(s.auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.sender); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(s.receiver); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return client.Quit()
}

// dial speaks TLS from the first byte on port 465 and plain TCP elsewhere,
// where STARTTLS is negotiated after the greeting.
func (s *smtp) dial(ctx context.Context, addr string) (net.Conn, error) {
	netDialer := &net.Dialer{Timeout: dialTimeout}
	if s.port != defaultSMTPPort {
		return netDialer.DialContext(ctx, "tcp", addr)
	}

	dialer := &tls.Dialer{
		NetDialer: netDialer,
		Config:    &tls.Config{ServerName: s.host},
	}
	return dialer.DialContext(ctx, "tcp", addr)
}

func buildMessage(from, to string, msg Message) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", sanitizeHeader(msg.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", sanitizeHeader(msg.Subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(b.String())
}

// sanitizeHeader keeps user-supplied values on a single header line.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
