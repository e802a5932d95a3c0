package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/texlink/loomtrade/internal/domain"
)

// ApplicationUC persists job applications and forwards them to the
// operator with the resume attached. The resume lives only on that email;
// it is not written to the store. Applications are operator-only: no
// confirmation goes back to the applicant.
type ApplicationUC struct {
	Applications domain.JobApplicationRepo
	Mail         domain.Mailer
	Operator     string
}

func (uc *ApplicationUC) Submit(ctx context.Context, a *domain.JobApplication, resume *domain.Attachment) (bool, error) {
	if err := uc.Applications.Create(ctx, a); err != nil {
		return false, fmt.Errorf("persist job application: %w", err)
	}
	msg := domain.Message{
		Template: "application_operator.html",
		Subject:  fmt.Sprintf("Job application: %s - %s", a.JobTitle, a.Name),
		To:       []string{uc.Operator},
		Data: map[string]any{
			"Name": a.Name, "Email": a.Email, "Phone": a.Phone,
			"Experience": a.Experience, "Skills": a.Skills,
			"JobID": a.JobID, "JobTitle": a.JobTitle,
			"HasResume": resume != nil,
		},
		Attachment: resume,
	}
	if err := uc.Mail.Send(ctx, msg); err != nil {
		log.Warn().Err(err).Str("job", a.JobID).Msg("application notification failed")
		return false, nil
	}
	return true, nil
}
