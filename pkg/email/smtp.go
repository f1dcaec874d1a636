package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"
)

var ErrNotConfigured = errors.New("email configuration not set")

type Sender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	config   Config
	sendMail sendMailFunc
}

func NewSMTPSender(config Config) *SMTPSender {
	return &SMTPSender{config: config, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, to []string, subject, body string) error {
	if s.config.Host == "" || s.config.FromEmail == "" {
		return ErrNotConfigured
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	if err := s.sendMail(addr, auth, s.config.FromEmail, to, s.buildMessage(to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(to []string, subject, body string) []byte {
	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ",") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// NoopSender discards mail when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, to []string, subject, body string) error { return nil }
