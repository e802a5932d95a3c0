package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/texlink/loomtrade/internal/domain"
)

type BuyInquiryRepo struct{ db *gorm.DB }

func NewBuyInquiryRepo(db *gorm.DB) *BuyInquiryRepo { return &BuyInquiryRepo{db: db} }

func (r *BuyInquiryRepo) Create(ctx context.Context, in *domain.BuyInquiry) error {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(in).Error
}

type SellListingRepo struct{ db *gorm.DB }

func NewSellListingRepo(db *gorm.DB) *SellListingRepo { return &SellListingRepo{db: db} }

func (r *SellListingRepo) Create(ctx context.Context, l *domain.SellListing) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(l).Error
}

type ContactMessageRepo struct{ db *gorm.DB }

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo { return &ContactMessageRepo{db: db} }

func (r *ContactMessageRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(m).Error
}
