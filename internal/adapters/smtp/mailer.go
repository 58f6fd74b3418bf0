// internal/adapters/smtp/mailer.go
package smtp

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/go-faster/errors"

	"github.com/shopcore/backend/internal/config"
)

// Mailer delivers OTP codes over SMTP. Every send is time-bounded by the
// configured timeout on top of any caller deadline.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendOTP(ctx context.Context, to, code string) error {
	msg := buildMessage(m.cfg.From, to, "Your verification code",
		fmt.Sprintf("Your one-time passcode is %s. It expires in 3 minutes.", code))

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	done := make(chan error, 1)
	go func() {
		var auth smtp.Auth
		if m.cfg.Username != "" {
			auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		}
		done <- smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
	}()

	timer := ctx
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		timer, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "smtp send")
		}
		return nil
	case <-timer.Done():
		return errors.Wrap(timer.Err(), "smtp send")
	}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
