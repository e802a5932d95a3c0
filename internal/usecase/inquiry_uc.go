package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/texlink/loomtrade/internal/domain"
)

// InquiryUC runs the submit-persist-notify workflow for buy, sell and
// contact submissions. Persistence always happens before any notification,
// and a notification failure never rolls a successful persist back: the
// caller gets notified=false and decides how to phrase the response.
type InquiryUC struct {
	Buys     domain.BuyInquiryRepo
	Sells    domain.SellListingRepo
	Contacts domain.ContactMessageRepo
	Mail     domain.Mailer
	Operator string
}

func (uc *InquiryUC) notify(ctx context.Context, msgs ...domain.Message) bool {
	ok := true
	for _, m := range msgs {
		if err := uc.Mail.Send(ctx, m); err != nil {
			log.Warn().Err(err).Str("template", m.Template).Msg("notification failed")
			ok = false
		}
	}
	return ok
}

func (uc *InquiryUC) SubmitBuy(ctx context.Context, in *domain.BuyInquiry) (bool, error) {
	if err := uc.Buys.Create(ctx, in); err != nil {
		return false, fmt.Errorf("persist buy inquiry: %w", err)
	}
	data := map[string]any{
		"Name": in.Name, "Email": in.Email, "Phone": in.Phone,
		"Brand": in.Brand, "Model": in.Model, "Technology": in.Technology,
		"Width": in.Width, "SheddingSystem": in.SheddingSystem,
		"AdditionalInfo": in.AdditionalInfo,
	}
	notified := uc.notify(ctx,
		domain.Message{
			Template: "buy_operator.html",
			Subject:  "New buy inquiry from " + in.Name,
			To:       []string{uc.Operator},
			Data:     data,
		},
		domain.Message{
			Template: "buy_confirmation.html",
			Subject:  "We received your inquiry",
			To:       []string{in.Email},
			Data:     data,
		},
	)
	return notified, nil
}

func (uc *InquiryUC) SubmitSell(ctx context.Context, l *domain.SellListing) (bool, error) {
	if err := uc.Sells.Create(ctx, l); err != nil {
		return false, fmt.Errorf("persist sell listing: %w", err)
	}
	data := map[string]any{
		"Name": l.Name, "Email": l.Email, "Phone": l.Phone,
		"Brand": l.Brand, "Model": l.Model, "Condition": l.Condition,
		"AskingPrice": l.AskingPrice, "Message": l.Message,
	}
	notified := uc.notify(ctx,
		domain.Message{
			Template: "sell_operator.html",
			Subject:  fmt.Sprintf("Machine offered: %s %s", l.Brand, l.Model),
			To:       []string{uc.Operator},
			Data:     data,
		},
		domain.Message{
			Template: "sell_confirmation.html",
			Subject:  "Your machine listing is in",
			To:       []string{l.Email},
			Data:     data,
		},
	)
	return notified, nil
}

func (uc *InquiryUC) SubmitContact(ctx context.Context, m *domain.ContactMessage) (bool, error) {
	if err := uc.Contacts.Create(ctx, m); err != nil {
		return false, fmt.Errorf("persist contact message: %w", err)
	}
	data := map[string]any{
		"Name": m.Name, "Email": m.Email, "Message": m.Message,
		"Company": m.Company, "Phone": m.Phone,
	}
	notified := uc.notify(ctx,
		domain.Message{
			Template: "contact_operator.html",
			Subject:  "New contact message from " + m.Name,
			To:       []string{uc.Operator},
			Data:     data,
		},
		domain.Message{
			Template: "contact_confirmation.html",
			Subject:  "Thanks for getting in touch",
			To:       []string{m.Email},
			Data:     data,
		},
	)
	return notified, nil
}
