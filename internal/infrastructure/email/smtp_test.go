package email

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	sharedConfig "github.com/darna-inc/darna/internal/shared/config"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.sent = append(c.sent, m...)
	return c.err
}

func TestSMTPEmailService_SendTicketAnsweredEmail(t *testing.T) {
	cfg := sharedConfig.EmailConfig{SMTPHost: "smtp.example.dz", SMTPPort: 587, FromAddress: "noreply@darna.dz", FromName: "Darna"}
	svc := NewSMTPEmailService(cfg, "https://darna.dz")
	capture := &captureSender{}
	svc.dialer = capture

	err := svc.SendTicketAnsweredEmail("amine@example.dz", "Amine <script>", "Listing quota", "<p>Upgrade your plan.</p>")
	require.NoError(t, err)
	require.Len(t, capture.sent, 1)

	msg := capture.sent[0]
	assert.Equal(t, []string{"amine@example.dz"}, msg.GetHeader("To"))
	assert.Contains(t, msg.GetHeader("Subject")[0], "Listing quota")

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "Upgrade your plan.")
	assert.Contains(t, body, "Hello Amine &lt;script&gt;,")
}

func TestSMTPEmailService_SendError(t *testing.T) {
	svc := NewSMTPEmailService(sharedConfig.EmailConfig{SMTPHost: "smtp.example.dz"}, "")
	svc.dialer = &captureSender{err: errors.New("connection refused")}

	err := svc.SendTicketAnsweredEmail("a@example.dz", "A", "T", "")
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewService_DisabledWithoutHost(t *testing.T) {
	svc := NewService(sharedConfig.EmailConfig{}, "", logger.NewNop())
	_, ok := svc.(*DisabledEmailService)
	require.True(t, ok)
	assert.NoError(t, svc.SendTicketAnsweredEmail("a@example.dz", "A", "T", ""))
}
