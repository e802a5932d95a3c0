package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobApplication is a submission against one of the static job listings.
// The resume travels to the operator as an email attachment only; it is
// never written to the store.
type JobApplication struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:140" json:"name"`
	Email      string    `gorm:"size:140;index" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Experience string    `gorm:"type:text" json:"experience,omitempty"`
	Skills     string    `gorm:"type:text" json:"skills,omitempty"`
	JobID      string    `gorm:"size:40" json:"jobId"`
	JobTitle   string    `gorm:"size:180" json:"jobTitle"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (JobApplication) TableName() string { return "job_applications" }

// Job is a career listing. Listings are static and kept in memory; only
// applications against them are persisted.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

var jobs = []Job{
	{
		ID:          "sales-engineer",
		Title:       "Sales Engineer - Weaving Machinery",
		Location:    "Ahmedabad, IN",
		Type:        "Full-time",
		Description: "Own the buy-side pipeline for second-hand rapier and airjet looms, from first inquiry to delivery.",
		Requirements: []string{
			"3+ years selling industrial capital equipment",
			"Working knowledge of shedding systems (cam, dobby, jacquard)",
			"Willingness to travel to mills and auctions",
		},
	},
	{
		ID:          "service-technician",
		Title:       "Service Technician",
		Location:    "Surat, IN",
		Type:        "Full-time",
		Description: "Inspect, recondition and certify incoming machines before resale.",
		Requirements: []string{
			"Hands-on experience with loom electronics and drives",
			"Comfortable reading wiring diagrams",
		},
	},
	{
		ID:          "content-marketer",
		Title:       "Content Marketer",
		Location:    "Remote",
		Type:        "Contract",
		Description: "Write the blog, the machine listings and the email sequences that keep mills coming back.",
		Requirements: []string{
			"Portfolio of B2B industrial content",
			"SEO fundamentals",
		},
	},
}

// Jobs returns the static career listings.
func Jobs() []Job { return jobs }

// JobByID returns the listing with the given id, or false.
func JobByID(id string) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}
