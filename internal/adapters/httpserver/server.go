package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/texlink/loomtrade/internal/domain"
	"github.com/texlink/loomtrade/internal/forms"
	"github.com/texlink/loomtrade/internal/metrics"
	"github.com/texlink/loomtrade/internal/usecase"
)

const (
	maxJSONBody   = 16 << 10
	maxResumeSize = 5 << 20
	maxMultipart  = 8 << 20
)

// Exporter produces an XLSX snapshot of one submission collection.
type Exporter interface {
	Export(ctx context.Context, collection string) (*excelize.File, error)
}

type Server struct {
	inquiries    *usecase.InquiryUC
	applications *usecase.ApplicationUC
	subscribers  *usecase.SubscriberUC
	exporter     Exporter
	exportToken  string
}

func New(inq *usecase.InquiryUC, apps *usecase.ApplicationUC, subs *usecase.SubscriberUC, exp Exporter, exportToken string, allowedOrigins []string) http.Handler {
	s := &Server{
		inquiries:    inq,
		applications: apps,
		subscribers:  subs,
		exporter:     exp,
		exportToken:  exportToken,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Admin-Token"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Method("GET", "/metrics", metrics.Handler())

	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/buy", s.handleBuy)
		r.Post("/sell", s.handleSell)
		r.Post("/contact", s.handleContact)
		r.Post("/applications", s.handleApplication)
		r.Get("/jobs", s.handleJobs)
		r.Post("/blog-newsletter", s.handleSubscribe(domain.ListNewsletter))
		r.Get("/blog-newsletter", s.handleCount(domain.ListNewsletter))
		r.Post("/waitlist", s.handleSubscribe(domain.ListWaitlist))
		r.Get("/waitlist", s.handleCount(domain.ListWaitlist))
		r.Get("/admin/export", s.handleExport)
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	return dec.Decode(dst)
}

func violationSummary(errs []forms.FieldError) string {
	s := ""
	for i, e := range errs {
		if i > 0 {
			s += "; "
		}
		s += e.Message
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{"status": "ok", "time": time.Now().UTC()})
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, domain.Jobs())
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var f forms.BuyForm
	if err := decodeJSON(r, &f); err != nil {
		metrics.Submissions.WithLabelValues("buy", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": "invalid JSON body"})
		return
	}
	if errs := f.Validate(); len(errs) > 0 {
		metrics.Submissions.WithLabelValues("buy", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": violationSummary(errs), "errors": errs})
		return
	}

	in := &domain.BuyInquiry{
		Brand: f.Brand, Model: f.Model, Technology: f.Technology,
		Width: f.Width, SheddingSystem: f.SheddingSystem, AdditionalInfo: f.AdditionalInfo,
		Name: f.Name, Phone: f.Phone, Email: f.Email,
	}
	notified, err := s.inquiries.SubmitBuy(r.Context(), in)
	if err != nil {
		metrics.Submissions.WithLabelValues("buy", "error").Inc()
		log.Error().Err(err).Msg("buy inquiry")
		writeJSON(w, 500, map[string]any{"success": false, "error": "Failed to save inquiry"})
		return
	}
	metrics.Submissions.WithLabelValues("buy", "accepted").Inc()
	resp := map[string]any{"success": true, "data": in}
	if !notified {
		resp["warning"] = "inquiry saved but a notification email could not be sent"
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	var f forms.SellForm
	if err := decodeJSON(r, &f); err != nil {
		metrics.Submissions.WithLabelValues("sell", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": "invalid JSON body"})
		return
	}
	if errs := f.Validate(); len(errs) > 0 {
		metrics.Submissions.WithLabelValues("sell", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": violationSummary(errs), "errors": errs})
		return
	}

	l := &domain.SellListing{
		Name: f.Name, Email: f.Email, Phone: f.Phone,
		Brand: f.Brand, Model: f.Model, Condition: f.Condition,
		AskingPrice: f.AskingPrice, Message: f.Message,
	}
	notified, err := s.inquiries.SubmitSell(r.Context(), l)
	if err != nil {
		metrics.Submissions.WithLabelValues("sell", "error").Inc()
		log.Error().Err(err).Msg("sell listing")
		writeJSON(w, 500, map[string]any{"success": false, "error": "Failed to save listing"})
		return
	}
	metrics.Submissions.WithLabelValues("sell", "accepted").Inc()
	resp := map[string]any{"success": true, "data": l}
	if !notified {
		resp["warning"] = "listing saved but a notification email could not be sent"
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var f forms.ContactForm
	if err := decodeJSON(r, &f); err != nil {
		metrics.Submissions.WithLabelValues("contact", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"error": "invalid JSON body"})
		return
	}
	if errs := f.Validate(); len(errs) > 0 {
		metrics.Submissions.WithLabelValues("contact", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"error": violationSummary(errs), "errors": errs})
		return
	}

	m := &domain.ContactMessage{
		Name: f.Name, Email: f.Email, Message: f.Message,
		Company: f.Company, Phone: f.Phone,
	}
	notified, err := s.inquiries.SubmitContact(r.Context(), m)
	if err != nil {
		metrics.Submissions.WithLabelValues("contact", "error").Inc()
		log.Error().Err(err).Msg("contact message")
		writeJSON(w, 500, map[string]any{"error": "Failed to save message"})
		return
	}
	metrics.Submissions.WithLabelValues("contact", "accepted").Inc()
	resp := map[string]any{"message": "Message saved & emails sent successfully!"}
	if !notified {
		resp["warning"] = "message saved but a notification email could not be sent"
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipart); err != nil {
		metrics.Submissions.WithLabelValues("application", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": "invalid multipart body"})
		return
	}

	f := forms.ApplicationForm{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Experience: r.FormValue("experience"),
		Skills:     r.FormValue("skills"),
		JobID:      r.FormValue("jobId"),
		JobTitle:   r.FormValue("jobTitle"),
	}
	errs := f.Validate()
	if len(errs) == 0 {
		if _, ok := domain.JobByID(f.JobID); !ok {
			errs = append(errs, forms.FieldError{Field: "jobId", Message: "unknown job listing"})
		}
	}
	if len(errs) > 0 {
		metrics.Submissions.WithLabelValues("application", "invalid").Inc()
		writeJSON(w, 400, map[string]any{"success": false, "error": violationSummary(errs), "errors": errs})
		return
	}

	var resume *domain.Attachment
	if file, hdr, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		if hdr.Size > maxResumeSize {
			metrics.Submissions.WithLabelValues("application", "invalid").Inc()
			writeJSON(w, 400, map[string]any{"success": false, "error": "resume exceeds 5MB"})
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
		if err != nil {
			metrics.Submissions.WithLabelValues("application", "error").Inc()
			writeJSON(w, 500, map[string]any{"success": false, "error": "failed to read resume"})
			return
		}
		resume = &domain.Attachment{
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	a := &domain.JobApplication{
		Name: f.Name, Email: f.Email, Phone: f.Phone,
		Experience: f.Experience, Skills: f.Skills,
		JobID: f.JobID, JobTitle: f.JobTitle,
	}
	notified, err := s.applications.Submit(r.Context(), a, resume)
	if err != nil {
		metrics.Submissions.WithLabelValues("application", "error").Inc()
		log.Error().Err(err).Msg("job application")
		writeJSON(w, 500, map[string]any{"success": false, "error": "Failed to save application"})
		return
	}
	metrics.Submissions.WithLabelValues("application", "accepted").Inc()
	resp := map[string]any{"success": true}
	if !notified {
		resp["warning"] = "application saved but the notification email could not be sent"
	}
	writeJSON(w, 200, resp)
}

func (s *Server) handleSubscribe(list domain.SubscriberList) http.HandlerFunc {
	form := string(list)
	return func(w http.ResponseWriter, r *http.Request) {
		var f forms.SubscribeForm
		if err := decodeJSON(r, &f); err != nil {
			metrics.Submissions.WithLabelValues(form, "invalid").Inc()
			writeJSON(w, 400, map[string]any{"error": "invalid JSON body"})
			return
		}
		if errs := f.Validate(); len(errs) > 0 {
			metrics.Submissions.WithLabelValues(form, "invalid").Inc()
			writeJSON(w, 400, map[string]any{"error": "Valid email is required"})
			return
		}

		source := f.Source
		if source == "" && list == domain.ListNewsletter {
			source = "blog"
		}
		_, notified, err := s.subscribers.Subscribe(r.Context(), list, f.Normalized(), source)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				metrics.Submissions.WithLabelValues(form, "conflict").Inc()
				if list == domain.ListWaitlist {
					writeJSON(w, 409, map[string]any{"error": "Email already registered for waitlist"})
				} else {
					writeJSON(w, 409, map[string]any{"error": "Email already subscribed to newsletter"})
				}
				return
			}
			metrics.Submissions.WithLabelValues(form, "error").Inc()
			log.Error().Err(err).Str("list", form).Msg("subscribe")
			writeJSON(w, 500, map[string]any{"error": "Failed to save subscription"})
			return
		}
		metrics.Submissions.WithLabelValues(form, "accepted").Inc()

		msg := "Successfully subscribed to newsletter!"
		if list == domain.ListWaitlist {
			msg = "Successfully joined the waitlist!"
		}
		resp := map[string]any{"message": msg}
		if !notified {
			resp["warning"] = "subscription saved but the welcome email could not be sent"
		}
		writeJSON(w, 200, resp)
	}
}

func (s *Server) handleCount(list domain.SubscriberList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := s.subscribers.Count(r.Context(), list)
		if err != nil {
			log.Error().Err(err).Str("list", string(list)).Msg("count")
			writeJSON(w, 500, map[string]any{"error": "Failed to count subscribers"})
			return
		}
		writeJSON(w, 200, map[string]any{"count": n})
	}
}

// handleExport is operator tooling behind a shared token; it is not a
// visitor-facing auth surface.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exportToken == "" || r.Header.Get("X-Admin-Token") != s.exportToken {
		writeJSON(w, 401, map[string]any{"error": "unauthorized"})
		return
	}
	collection := r.URL.Query().Get("collection")
	f, err := s.exporter.Export(r.Context(), collection)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, 404, map[string]any{"error": "unknown collection"})
			return
		}
		log.Error().Err(err).Str("collection", collection).Msg("export")
		writeJSON(w, 500, map[string]any{"error": "export failed"})
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-%s.xlsx", collection, time.Now().Format("20060102")))
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export write")
	}
}
