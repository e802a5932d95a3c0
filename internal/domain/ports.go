package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type BuyInquiryRepo interface {
	Create(ctx context.Context, in *BuyInquiry) error
}

type SellListingRepo interface {
	Create(ctx context.Context, l *SellListing) error
}

type ContactMessageRepo interface {
	Create(ctx context.Context, m *ContactMessage) error
}

type JobApplicationRepo interface {
	Create(ctx context.Context, a *JobApplication) error
}

type SubscriberRepo interface {
	// Create returns ErrDuplicate when the list already holds the
	// normalized email.
	Create(ctx context.Context, s *Subscriber) error
	Count(ctx context.Context, list SubscriberList) (int64, error)
}

// Attachment is a single binary file carried on an outbound message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outbound email: a named template rendered with Data and
// sent to To. Attachment may be nil.
type Message struct {
	Template   string
	Subject    string
	To         []string
	Data       map[string]any
	Attachment *Attachment
}

// Mailer dispatches messages through the configured relay. A single
// attempt either succeeds or returns the failure; callers decide whether
// that failure is fatal.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}
