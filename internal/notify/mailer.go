package notify

import (
	"fmt"

	"lokapasar-be/internal/config"

	"github.com/wneessen/go-mail"
)

// Email is a single outbound message. AttachmentPath, when set, must point at
// a file on disk.
type Email struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

type Mailer interface {
	Send(e Email) error
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SenderEmail,
		pass: cfg.SMTPPassword,
		from: cfg.SenderEmail,
	}
}

func (m *smtpMailer) Send(e Email) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.Body)
	if e.AttachmentPath != "" {
		msg.AttachFile(e.AttachmentPath)
	}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSend(msg)
}
