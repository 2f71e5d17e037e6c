package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSMTPMailer_FromDefaultsToUsername(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", 587, "noreply@example.com", "pw", "")
	assert.Equal(t, "noreply@example.com", m.from)
	assert.Equal(t, "smtp.example.com", m.dialer.Host)
	assert.Equal(t, 587, m.dialer.Port)
}

func TestSMTPMailer_HonoursCancelledContext(t *testing.T) {
	m := NewSMTPMailer("127.0.0.1", 1, "u", "p", "from@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendMail(ctx, "to@example.com", "s", "b"), context.Canceled)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, LogMailer{}.SendMail(context.Background(), "a@x.com", "s", "b"))
}
