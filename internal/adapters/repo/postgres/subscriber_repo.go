package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/texlink/loomtrade/internal/domain"
)

type SubscriberRepo struct{ db *gorm.DB }

func NewSubscriberRepo(db *gorm.DB) *SubscriberRepo { return &SubscriberRepo{db: db} }

// Create inserts one signup. The unique index on (list, email) is the sole
// source of truth for "already subscribed"; there is no pre-check query, so
// concurrent duplicates cannot both win.
func (r *SubscriberRepo) Create(ctx context.Context, s *domain.Subscriber) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	if s.Email == "" {
		return errors.New("empty email")
	}
	if s.Status == "" {
		s.Status = "active"
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *SubscriberRepo) Count(ctx context.Context, list domain.SubscriberList) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Subscriber{}).Where("list = ?", list).Count(&n).Error
	return n, err
}
