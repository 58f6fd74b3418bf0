// internal/adapters/smtp/mailer_test.go
package smtp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopcore/backend/internal/config"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@shop.example", "jane@example.com", "Your verification code", "Your one-time passcode is 123456."))

	for _, want := range []string{
		"From: noreply@shop.example\r\n",
		"To: jane@example.com\r\n",
		"Subject: Your verification code\r\n",
		"Your one-time passcode is 123456.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.Contains(msg, "\r\n\r\n") {
		t.Error("message has no header/body separator")
	}
}

func TestSendOTP_RespectsTimeout(t *testing.T) {
	// Unroutable address; the send blocks until the configured timeout fires.
	mailer := NewMailer(config.SMTPConfig{
		Host:    "192.0.2.1",
		Port:    "2525",
		From:    "noreply@shop.example",
		Timeout: 50 * time.Millisecond,
	})

	start := time.Now()
	err := mailer.SendOTP(context.Background(), "jane@example.com", "123456")
	if err == nil {
		t.Fatal("SendOTP() succeeded against an unroutable host")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("SendOTP() took %v, timeout did not bound the send", elapsed)
	}
}

func TestSendOTP_RespectsCallerCancel(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{
		Host: "192.0.2.1",
		Port: "2525",
		From: "noreply@shop.example",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := mailer.SendOTP(ctx, "jane@example.com", "123456"); err == nil {
		t.Fatal("SendOTP() ignored a cancelled context")
	}
}
