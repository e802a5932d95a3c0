package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/texlink/loomtrade/internal/adapters/export"
	"github.com/texlink/loomtrade/internal/adapters/httpserver"
	"github.com/texlink/loomtrade/internal/adapters/mailer"
	"github.com/texlink/loomtrade/internal/adapters/repo/postgres"
	"github.com/texlink/loomtrade/internal/config"
	"github.com/texlink/loomtrade/internal/domain"
	"github.com/texlink/loomtrade/internal/usecase"
)

type App struct {
	DB      *gorm.DB
	Handler http.Handler
}

func NewApp(db *gorm.DB, cfg *config.Config) (*App, error) {
	buys := postgres.NewBuyInquiryRepo(db)
	sells := postgres.NewSellListingRepo(db)
	contacts := postgres.NewContactMessageRepo(db)
	applications := postgres.NewJobApplicationRepo(db)
	subscribers := postgres.NewSubscriberRepo(db)

	mail, err := mailer.NewSMTP(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	inquiries := &usecase.InquiryUC{
		Buys:     buys,
		Sells:    sells,
		Contacts: contacts,
		Mail:     mail,
		Operator: cfg.SMTP.Operator,
	}
	appUC := &usecase.ApplicationUC{
		Applications: applications,
		Mail:         mail,
		Operator:     cfg.SMTP.Operator,
	}
	subUC := &usecase.SubscriberUC{
		Subscribers: subscribers,
		Mail:        mail,
		Operator:    cfg.SMTP.Operator,
	}

	handler := httpserver.New(inquiries, appUC, subUC, export.New(db), cfg.Admin.ExportToken, cfg.Server.AllowedOrigins)

	return &App{DB: db, Handler: handler}, nil
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.BuyInquiry{}, &domain.SellListing{}, &domain.ContactMessage{},
		&domain.JobApplication{}, &domain.Subscriber{},
	); err != nil {
		return err
	}
	return ensureIndexes(a.DB)
}

func ensureIndexes(db *gorm.DB) error {
	// The store, not a pre-check query, owns the uniqueness invariant, so
	// a missing unique index is fatal.
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_subscribers_list_email_lower ON subscribers (list, LOWER(email))").Error; err != nil {
		return fmt.Errorf("create subscriber unique index: %w", err)
	}

	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_buy_inquiries_created_at ON buy_inquiries(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_sell_listings_created_at ON sell_listings(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at)",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Str("stmt", stmt).Msg("create index")
		}
	}
	return nil
}
