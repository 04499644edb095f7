package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/infra/queue"
)

// SendAttemptUseCase dispara uma tentativa de outreach: checa
// elegibilidade, grava o EmailStat, sobe os contadores de pessoa e
// empresa, e em background manda o email e publica o evento na fila.
type SendAttemptUseCase struct {
	People    entity.PersonRepositoryInterface
	Companies entity.CompanyRepositoryInterface
	Stats     entity.EmailStatRepositoryInterface
	Mail      EmailService
	Queue     QueueProducerInterface
	Now       func() time.Time
}

func NewSendAttemptUseCase(
	people entity.PersonRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
	mail EmailService,
	producer QueueProducerInterface,
) *SendAttemptUseCase {
	return &SendAttemptUseCase{
		People:    people,
		Companies: companies,
		Stats:     stats,
		Mail:      mail,
		Queue:     producer,
		Now:       time.Now,
	}
}

func (uc *SendAttemptUseCase) Execute(ctx context.Context, input SendAttemptInput) (*SendAttemptOutput, error) {
	person, err := uc.People.FindByID(ctx, input.PersonID)
	if err != nil {
		return nil, &DomainError{
			Code:    "PERSON_NOT_FOUND",
			Message: "person not found: " + input.PersonID,
		}
	}

	// Portão de elegibilidade: attempts < 3 e ninguém respondeu.
	if person.Responded {
		return nil, &DomainError{
			Code:    "ALREADY_RESPONDED",
			Message: "person already responded, no follow-up needed",
		}
	}
	if person.Attempts >= entity.MaxAttempts {
		return nil, &DomainError{
			Code:    "MAX_ATTEMPTS_REACHED",
			Message: "person already received the maximum of 3 outreach emails",
		}
	}

	company, err := uc.Companies.FindByID(ctx, person.CompanyID)
	if err != nil {
		return nil, &DomainError{
			Code:    "COMPANY_NOT_FOUND",
			Message: "company not found: " + person.CompanyID,
		}
	}

	attempt := person.Attempts + 1
	sentDate := uc.Now().Format("2006-01-02")

	subject := input.Subject
	if subject == "" {
		subject = defaultSubject(person, company, attempt)
	}

	stat, err := entity.NewEmailStat(person.ID, company.ID, attempt, sentDate, subject)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_STAT", Message: err.Error()}
	}

	attempts := attempt
	totalEmails := company.TotalEmails + 1

	prevAttempts := person.Attempts
	prevLastEmail := person.LastEmailDate
	prevTotalEmails := company.TotalEmails
	prevLastAttempt := company.LastAttempt

	txn := NewTransaction()

	txn.AddOperation("create_stat", func(ctx context.Context) error {
		return uc.Stats.Create(ctx, stat)
	})
	txn.AddCompensation("delete_stat", func(ctx context.Context) error {
		_, err := uc.Stats.Delete(ctx, stat.ID)
		return err
	})

	txn.AddOperation("bump_person", func(ctx context.Context) error {
		_, err := uc.People.Update(ctx, person.ID, &entity.PersonPatch{
			Attempts:      &attempts,
			LastEmailDate: &sentDate,
		})
		return err
	})
	txn.AddCompensation("unbump_person", func(ctx context.Context) error {
		_, err := uc.People.Update(ctx, person.ID, &entity.PersonPatch{
			Attempts:      &prevAttempts,
			LastEmailDate: &prevLastEmail,
		})
		return err
	})

	txn.AddOperation("bump_company", func(ctx context.Context) error {
		_, err := uc.Companies.Update(ctx, company.ID, &entity.CompanyPatch{
			TotalEmails: &totalEmails,
			LastAttempt: &sentDate,
		})
		return err
	})
	txn.AddCompensation("unbump_company", func(ctx context.Context) error {
		_, err := uc.Companies.Update(ctx, company.ID, &entity.CompanyPatch{
			TotalEmails: &prevTotalEmails,
			LastAttempt: &prevLastAttempt,
		})
		return err
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to persist outreach attempt: " + err.Error(),
		}
	}

	// Side effects fora do caminho crítico, igual ao padrão do welcome
	// email: falha aqui não desfaz o envio já registrado.
	go func() {
		if uc.Mail != nil {
			if err := uc.Mail.SendOutreach(person.Email, person.Name, company.Name, subject, attempt); err != nil {
				log.Printf("⚠️ Falha ao enviar email de outreach para %s: %v", person.Email, err)
			}
		}

		if uc.Queue != nil {
			err := uc.Queue.PublishAttemptSent(context.Background(), queue.AttemptSentPayload{
				StatID:        stat.ID,
				PersonID:      person.ID,
				CompanyID:     company.ID,
				AttemptNumber: attempt,
				Email:         person.Email,
				Subject:       subject,
				SentDate:      sentDate,
			})
			if err != nil {
				log.Printf("⚠️ Falha ao publicar evento de envio: %v", err)
			}
		}
	}()

	person.Attempts = attempts
	person.LastEmailDate = sentDate

	return &SendAttemptOutput{
		Stat:    stat,
		Person:  person,
		Attempt: attempt,
	}, nil
}

func defaultSubject(p *entity.Person, c *entity.Company, attempt int) string {
	if attempt == 1 {
		return "Reaching out about engineering roles at " + c.Name
	}
	return "Following up on my previous email"
}
