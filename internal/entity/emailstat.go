package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailStatNotFound = errors.New("email stat not found")

// Entidade: EmailStat — registro de UMA tentativa de outreach enviada.
// Append-only: criado no envio, os contadores crescem conforme os
// eventos de engajamento chegam, nunca é editado de outra forma.
type EmailStat struct {
	ID            string `json:"id"`
	PersonID      string `json:"personId"`
	CompanyID     string `json:"companyId"`
	AttemptNumber int    `json:"attemptNumber"` // 1..3
	SentDate      string `json:"sentDate"`      // YYYY-MM-DD
	Subject       string `json:"subject"`

	OpenCount       int  `json:"openCount"`
	ClickCount      int  `json:"clickCount"`
	ResumeOpenCount int  `json:"resumeOpenCount"`
	Responded       bool `json:"responded"`

	CreatedAt time.Time `json:"created_at"`
}

// Factory
func NewEmailStat(personID, companyID string, attemptNumber int, sentDate, subject string) (*EmailStat, error) {
	stat := &EmailStat{
		ID:            uuid.New().String(),
		PersonID:      personID,
		CompanyID:     companyID,
		AttemptNumber: attemptNumber,
		SentDate:      sentDate,
		Subject:       subject,
		CreatedAt:     time.Now(),
	}

	if err := stat.Validate(); err != nil {
		return nil, err
	}

	return stat, nil
}

func (s *EmailStat) Validate() error {
	if s.PersonID == "" {
		return errors.New("personId is required")
	}
	if s.CompanyID == "" {
		return errors.New("companyId is required")
	}
	if s.AttemptNumber < 1 || s.AttemptNumber > MaxAttempts {
		return errors.New("attemptNumber must be between 1 and 3")
	}
	if s.SentDate == "" {
		return errors.New("sentDate is required")
	}
	if s.Subject == "" {
		return errors.New("subject is required")
	}
	return nil
}

// EmailStatPatch só cobre o que eventos de engajamento podem mexer.
type EmailStatPatch struct {
	OpenCount       *int  `json:"openCount"`
	ClickCount      *int  `json:"clickCount"`
	ResumeOpenCount *int  `json:"resumeOpenCount"`
	Responded       *bool `json:"responded"`
}

func (s *EmailStat) Apply(p *EmailStatPatch) {
	if p == nil {
		return
	}
	if p.OpenCount != nil {
		s.OpenCount = *p.OpenCount
	}
	if p.ClickCount != nil {
		s.ClickCount = *p.ClickCount
	}
	if p.ResumeOpenCount != nil {
		s.ResumeOpenCount = *p.ResumeOpenCount
	}
	if p.Responded != nil {
		s.Responded = *p.Responded
	}
}

// EmailStatRepositoryInterface define os métodos do repositório de tentativas
type EmailStatRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*EmailStat, error)
	FindByPersonID(ctx context.Context, personID string) ([]*EmailStat, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]*EmailStat, error)
	FindByID(ctx context.Context, id string) (*EmailStat, error)
	Create(ctx context.Context, stat *EmailStat) error
	Update(ctx context.Context, id string, patch *EmailStatPatch) (*EmailStat, error)
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, stat *EmailStat) error
}
