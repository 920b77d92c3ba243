package email

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/darna-inc/darna/internal/shared/config"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Service sends the transactional mails of the marketplace.
type Service interface {
	SendTicketAnsweredEmail(to, recipientName, ticketTitle, answerHTML string) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config  sharedConfig.EmailConfig
	baseURL string
	dialer  sender
}

// NewService returns an SMTP-backed service, or a disabled one when no SMTP
// host is configured.
func NewService(cfg sharedConfig.EmailConfig, baseURL string, log logger.Interface) Service {
	if !cfg.Enabled() {
		log.Infow("email service disabled, smtp_host is empty")
		return &DisabledEmailService{logger: log}
	}
	return NewSMTPEmailService(cfg, baseURL)
}

func NewSMTPEmailService(cfg sharedConfig.EmailConfig, baseURL string) *SMTPEmailService {
	return &SMTPEmailService{
		config:  cfg,
		baseURL: baseURL,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (s *SMTPEmailService) SendTicketAnsweredEmail(to, recipientName, ticketTitle, answerHTML string) error {
	subject := fmt.Sprintf("Your ticket \"%s\" has been answered", ticketTitle)

	// answerHTML is already sanitised; names and titles are user input.
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>Our team replied to your ticket <strong>%s</strong>:</p>
			<div>%s</div>
			<p>You can follow up from your account at <a href="%s">%s</a>.</p>
		</body>
		</html>
	`, html.EscapeString(recipientName), html.EscapeString(ticketTitle), answerHTML, s.baseURL, s.baseURL)

	plainBody := fmt.Sprintf(`
Hello %s,

Our team replied to your ticket "%s".
Sign in at %s to read the answer.
	`, recipientName, ticketTitle, s.baseURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// DisabledEmailService drops every mail without error.
type DisabledEmailService struct {
	logger logger.Interface
}

func (d *DisabledEmailService) SendTicketAnsweredEmail(to, _, ticketTitle, _ string) error {
	d.logger.Debugw("email disabled, ticket answered mail skipped", "to", to, "title", ticketTitle)
	return nil
}
