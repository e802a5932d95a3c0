package domain

import (
	"time"

	"github.com/google/uuid"
)

// BuyInquiry is a request from a visitor looking to purchase a machine.
// Machine details are optional; contact details are not.
type BuyInquiry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Brand          string    `gorm:"size:120" json:"brand,omitempty"`
	Model          string    `gorm:"size:140" json:"model,omitempty"`
	Technology     string    `gorm:"size:80" json:"technology,omitempty"`
	Width          string    `gorm:"size:40" json:"width,omitempty"`
	SheddingSystem string    `gorm:"size:80" json:"sheddingSystem,omitempty"`
	AdditionalInfo string    `gorm:"type:text" json:"additionalInfo,omitempty"`
	Name           string    `gorm:"size:140" json:"name"`
	Phone          string    `gorm:"size:50" json:"phone"`
	Email          string    `gorm:"size:140;index" json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (BuyInquiry) TableName() string { return "buy_inquiries" }

// SellListing is a machine a visitor wants to sell to us.
type SellListing struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:140" json:"name"`
	Email       string    `gorm:"size:140;index" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Brand       string    `gorm:"size:120" json:"brand"`
	Model       string    `gorm:"size:140" json:"model"`
	Condition   string    `gorm:"size:80" json:"condition,omitempty"`
	AskingPrice string    `gorm:"size:60" json:"askingPrice,omitempty"`
	Message     string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (SellListing) TableName() string { return "sell_listings" }

// ContactMessage is a general contact-form submission.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:140" json:"name"`
	Email     string    `gorm:"size:140;index" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	Company   string    `gorm:"size:140" json:"company,omitempty"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
