// Package export builds XLSX workbooks from stored submissions for
// operator use. Submissions are immutable, so an export is always a
// consistent point-in-time snapshot.
package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/texlink/loomtrade/internal/domain"
)

type XLSX struct{ db *gorm.DB }

func New(db *gorm.DB) *XLSX { return &XLSX{db: db} }

// Collections lists the exportable collection names.
func Collections() []string {
	return []string{"buy-inquiries", "sell-listings", "contact-messages", "job-applications", "subscribers"}
}

const timeFmt = "2006-01-02 15:04:05"

func writeSheet(f *excelize.File, header []any, rows [][]any) error {
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// Export returns a workbook for the named collection, or
// domain.ErrNotFound for an unknown name.
func (e *XLSX) Export(ctx context.Context, collection string) (*excelize.File, error) {
	f := excelize.NewFile()

	var header []any
	var rows [][]any

	switch collection {
	case "buy-inquiries":
		var list []domain.BuyInquiry
		if err := e.db.WithContext(ctx).Order("created_at").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		header = []any{"ID", "Name", "Email", "Phone", "Brand", "Model", "Technology", "Width", "Shedding system", "Additional info", "Created"}
		for _, r := range list {
			rows = append(rows, []any{r.ID.String(), r.Name, r.Email, r.Phone, r.Brand, r.Model, r.Technology, r.Width, r.SheddingSystem, r.AdditionalInfo, r.CreatedAt.Format(timeFmt)})
		}
	case "sell-listings":
		var list []domain.SellListing
		if err := e.db.WithContext(ctx).Order("created_at").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		header = []any{"ID", "Name", "Email", "Phone", "Brand", "Model", "Condition", "Asking price", "Message", "Created"}
		for _, r := range list {
			rows = append(rows, []any{r.ID.String(), r.Name, r.Email, r.Phone, r.Brand, r.Model, r.Condition, r.AskingPrice, r.Message, r.CreatedAt.Format(timeFmt)})
		}
	case "contact-messages":
		var list []domain.ContactMessage
		if err := e.db.WithContext(ctx).Order("created_at").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		header = []any{"ID", "Name", "Email", "Company", "Phone", "Message", "Created"}
		for _, r := range list {
			rows = append(rows, []any{r.ID.String(), r.Name, r.Email, r.Company, r.Phone, r.Message, r.CreatedAt.Format(timeFmt)})
		}
	case "job-applications":
		var list []domain.JobApplication
		if err := e.db.WithContext(ctx).Order("created_at").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		header = []any{"ID", "Name", "Email", "Phone", "Job", "Title", "Experience", "Skills", "Created"}
		for _, r := range list {
			rows = append(rows, []any{r.ID.String(), r.Name, r.Email, r.Phone, r.JobID, r.JobTitle, r.Experience, r.Skills, r.CreatedAt.Format(timeFmt)})
		}
	case "subscribers":
		var list []domain.Subscriber
		if err := e.db.WithContext(ctx).Order("subscribed_at").Find(&list).Error; err != nil {
			return nil, fmt.Errorf("load %s: %w", collection, err)
		}
		header = []any{"ID", "List", "Email", "Source", "Status", "Subscribed"}
		for _, r := range list {
			rows = append(rows, []any{r.ID.String(), string(r.List), r.Email, r.Source, r.Status, r.SubscribedAt.Format(timeFmt)})
		}
	default:
		return nil, domain.ErrNotFound
	}

	if err := writeSheet(f, header, rows); err != nil {
		return nil, fmt.Errorf("write sheet: %w", err)
	}
	return f, nil
}
