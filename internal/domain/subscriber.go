package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubscriberList string

const (
	ListNewsletter SubscriberList = "newsletter"
	ListWaitlist   SubscriberList = "waitlist"
)

// Subscriber is a newsletter or waitlist signup. Email is stored
// lower-cased; uniqueness per list is enforced by the store itself
// (unique index on list+email), not by a pre-check query.
type Subscriber struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	List         SubscriberList `gorm:"type:varchar(20);uniqueIndex:idx_subscribers_list_email" json:"list"`
	Email        string         `gorm:"size:140;uniqueIndex:idx_subscribers_list_email" json:"email"`
	Source       string         `gorm:"size:60" json:"source,omitempty"`
	Status       string         `gorm:"size:20" json:"status"`
	SubscribedAt time.Time      `gorm:"autoCreateTime" json:"subscribedAt"`
}

func (Subscriber) TableName() string { return "subscribers" }
