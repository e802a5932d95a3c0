package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/texlink/loomtrade/internal/domain"
)

type JobApplicationRepo struct{ db *gorm.DB }

func NewJobApplicationRepo(db *gorm.DB) *JobApplicationRepo { return &JobApplicationRepo{db: db} }

func (r *JobApplicationRepo) Create(ctx context.Context, a *domain.JobApplication) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(a).Error
}
