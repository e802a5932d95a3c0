package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/texlink/loomtrade/internal/domain"
)

// SubscriberUC handles newsletter and waitlist signups. Duplicate
// detection is the store's unique index; ErrDuplicate passes through so
// the handler can answer 409 without any notification having gone out.
type SubscriberUC struct {
	Subscribers domain.SubscriberRepo
	Mail        domain.Mailer
	Operator    string
}

func (uc *SubscriberUC) Subscribe(ctx context.Context, list domain.SubscriberList, email, source string) (*domain.Subscriber, bool, error) {
	s := &domain.Subscriber{List: list, Email: email, Source: source, Status: "active"}
	if err := uc.Subscribers.Create(ctx, s); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, false, domain.ErrDuplicate
		}
		return nil, false, fmt.Errorf("persist %s signup: %w", list, err)
	}

	welcome := "newsletter_welcome.html"
	subject := "Welcome to the TexLink newsletter"
	if list == domain.ListWaitlist {
		welcome = "waitlist_welcome.html"
		subject = "You are on the waitlist"
	}
	data := map[string]any{"Email": s.Email, "List": string(list), "Source": s.Source}

	notified := true
	msgs := []domain.Message{
		{Template: "subscribe_operator.html", Subject: fmt.Sprintf("New %s signup: %s", list, s.Email), To: []string{uc.Operator}, Data: data},
		{Template: welcome, Subject: subject, To: []string{s.Email}, Data: data},
	}
	for _, m := range msgs {
		if err := uc.Mail.Send(ctx, m); err != nil {
			log.Warn().Err(err).Str("template", m.Template).Msg("notification failed")
			notified = false
		}
	}
	return s, notified, nil
}

func (uc *SubscriberUC) Count(ctx context.Context, list domain.SubscriberList) (int64, error) {
	return uc.Subscribers.Count(ctx, list)
}
