package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texlink/loomtrade/internal/domain"
)

func newTestMailer(t *testing.T) *SMTP {
	t.Helper()
	m, err := NewSMTP(Config{})
	require.NoError(t, err)
	return m
}

func TestRenderEscapesUserInput(t *testing.T) {
	m := newTestMailer(t)

	body, err := m.render("contact_operator.html", map[string]any{
		"Name":    `<script>alert("x")</script>`,
		"Email":   "eve@x.com",
		"Message": `click <a href="http://evil">here</a>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, `<a href="http://evil">`)
}

func TestRenderOmitsBlankOptionalFields(t *testing.T) {
	m := newTestMailer(t)

	body, err := m.render("sell_operator.html", map[string]any{
		"Name":  "Jo",
		"Email": "jo@x.com",
		"Phone": "5551234567",
		"Brand": "Picanol",
		"Model": "OmniPlus",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "Asking price")
	assert.NotContains(t, body, "Condition")
	assert.Contains(t, body, "Picanol")
}

func TestRenderAllTemplates(t *testing.T) {
	m := newTestMailer(t)
	data := map[string]any{
		"Name": "Jo", "Email": "jo@x.com", "Phone": "5551234567",
		"Brand": "Picanol", "Model": "OmniPlus", "JobTitle": "Sales Engineer",
		"JobID": "sales-engineer", "List": "waitlist", "HasResume": true,
	}
	for _, name := range []string{
		"buy_operator.html", "buy_confirmation.html",
		"sell_operator.html", "sell_confirmation.html",
		"contact_operator.html", "contact_confirmation.html",
		"application_operator.html", "subscribe_operator.html",
		"newsletter_welcome.html", "waitlist_welcome.html",
	} {
		body, err := m.render(name, data)
		require.NoError(t, err, name)
		assert.NotEmpty(t, body, name)
	}
}

func TestSendUnconfiguredReturnsErrNotConfigured(t *testing.T) {
	m := newTestMailer(t)
	err := m.Send(context.Background(), domain.Message{
		Template: "contact_confirmation.html",
		Subject:  "test",
		To:       []string{"jo@x.com"},
		Data:     map[string]any{"Name": "Jo", "Email": "jo@x.com"},
	})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
