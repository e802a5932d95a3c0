// Package forms declares the validation schema for every public form.
// Each form takes raw string input, trims it, and either yields the
// normalized values or a list of per-field violations. No cross-field
// rules exist; whatever narrowing the frontend does is not authoritative.
package forms

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// FieldError names one offending field and a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}

func validEmail(errs []FieldError, field, value string) []FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return errs
	}
	if !emailRe.MatchString(v) {
		errs = append(errs, FieldError{Field: field, Message: field + " must be a valid email address"})
	}
	return errs
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// NormalizeEmail lower-cases and trims an address for uniqueness purposes.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type BuyForm struct {
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Technology     string `json:"technology"`
	Width          string `json:"width"`
	SheddingSystem string `json:"sheddingSystem"`
	AdditionalInfo string `json:"additionalInfo"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (f *BuyForm) Validate() []FieldError {
	f.trim()
	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "phone", f.Phone)
	errs = required(errs, "email", f.Email)
	errs = validEmail(errs, "email", f.Email)
	return errs
}

func (f *BuyForm) trim() {
	f.Brand = strings.TrimSpace(f.Brand)
	f.Model = strings.TrimSpace(f.Model)
	f.Technology = strings.TrimSpace(f.Technology)
	f.Width = strings.TrimSpace(f.Width)
	f.SheddingSystem = strings.TrimSpace(f.SheddingSystem)
	f.AdditionalInfo = strings.TrimSpace(f.AdditionalInfo)
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
}

type SellForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Condition   string `json:"condition"`
	AskingPrice string `json:"askingPrice"`
	Message     string `json:"message"`
}

func (f *SellForm) Validate() []FieldError {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Brand = strings.TrimSpace(f.Brand)
	f.Model = strings.TrimSpace(f.Model)
	f.Condition = strings.TrimSpace(f.Condition)
	f.AskingPrice = strings.TrimSpace(f.AskingPrice)
	f.Message = strings.TrimSpace(f.Message)

	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "email", f.Email)
	errs = validEmail(errs, "email", f.Email)
	errs = required(errs, "phone", f.Phone)
	if f.Phone != "" {
		if d := digitCount(f.Phone); d < 10 || d > 15 {
			errs = append(errs, FieldError{Field: "phone", Message: "phone must contain 10 to 15 digits"})
		}
	}
	errs = required(errs, "brand", f.Brand)
	errs = required(errs, "model", f.Model)
	return errs
}

const contactMessageMinLen = 10

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

func (f *ContactForm) Validate() []FieldError {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	f.Company = strings.TrimSpace(f.Company)
	f.Phone = strings.TrimSpace(f.Phone)

	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "email", f.Email)
	errs = validEmail(errs, "email", f.Email)
	errs = required(errs, "message", f.Message)
	if f.Message != "" && utf8.RuneCountInString(f.Message) < contactMessageMinLen {
		errs = append(errs, FieldError{
			Field:   "message",
			Message: fmt.Sprintf("message must be at least %d characters", contactMessageMinLen),
		})
	}
	return errs
}

type ApplicationForm struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Skills     string
	JobID      string
	JobTitle   string
}

func (f *ApplicationForm) Validate() []FieldError {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Experience = strings.TrimSpace(f.Experience)
	f.Skills = strings.TrimSpace(f.Skills)
	f.JobID = strings.TrimSpace(f.JobID)
	f.JobTitle = strings.TrimSpace(f.JobTitle)

	var errs []FieldError
	errs = required(errs, "name", f.Name)
	errs = required(errs, "email", f.Email)
	errs = validEmail(errs, "email", f.Email)
	errs = required(errs, "phone", f.Phone)
	errs = required(errs, "jobId", f.JobID)
	errs = required(errs, "jobTitle", f.JobTitle)
	return errs
}

type SubscribeForm struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

func (f *SubscribeForm) Validate() []FieldError {
	f.Email = strings.TrimSpace(f.Email)
	f.Source = strings.TrimSpace(f.Source)

	var errs []FieldError
	errs = required(errs, "email", f.Email)
	errs = validEmail(errs, "email", f.Email)
	return errs
}

// Normalized returns the email lower-cased for storage and comparison.
func (f *SubscribeForm) Normalized() string { return NormalizeEmail(f.Email) }
