// Package mailer dispatches templated HTML notifications through an SMTP
// relay. Substitution values pass through html/template, so user-supplied
// text is always escaped before it reaches a mailbox.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/texlink/loomtrade/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrNotConfigured reports that no SMTP relay is set up. Callers treat it
// like any other delivery failure, so submissions still succeed but are
// flagged as unnotified.
var ErrNotConfigured = errors.New("smtp relay not configured")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type SMTP struct {
	cfg  Config
	tmpl *template.Template
}

func NewSMTP(cfg Config) (*SMTP, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	return &SMTP{cfg: cfg, tmpl: tmpl}, nil
}

func (m *SMTP) render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Send renders msg and makes a single delivery attempt with a bounded
// timeout. An unconfigured relay returns ErrNotConfigured so the caller
// can record the submission as unnotified.
func (m *SMTP) Send(ctx context.Context, msg domain.Message) error {
	if m.cfg.Host == "" || m.cfg.Port == 0 {
		log.Warn().Str("template", msg.Template).Msg("smtp relay not configured, skipping notification")
		return ErrNotConfigured
	}

	body, err := m.render(msg.Template, msg.Data)
	if err != nil {
		return err
	}

	gm := gomail.NewMessage()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", body)
	if att := msg.Attachment; att != nil {
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Data)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		gm.Attach(att.Filename, settings...)
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(gm) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}
