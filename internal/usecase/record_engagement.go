package usecase

import (
	"context"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// RecordEngagementUseCase aplica um evento de engajamento (open, click,
// resume_open, reply) vindo do pipeline de tracking.
//
// Contadores da pessoa são brutos (cada evento soma). Contadores da
// empresa contam pessoas DISTINTAS: só o primeiro evento de cada tipo
// de uma pessoa sobe o contador da empresa — é isso que mantém
// openCount/clickCount/resumeOpenCount <= totalPeople.
type RecordEngagementUseCase struct {
	People    entity.PersonRepositoryInterface
	Companies entity.CompanyRepositoryInterface
	Stats     entity.EmailStatRepositoryInterface
}

func NewRecordEngagementUseCase(
	people entity.PersonRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
) *RecordEngagementUseCase {
	return &RecordEngagementUseCase{
		People:    people,
		Companies: companies,
		Stats:     stats,
	}
}

// Record implementa queue.EngagementRecorder.
func (uc *RecordEngagementUseCase) Record(ctx context.Context, personID, statID, eventType string) error {
	return uc.Execute(ctx, RecordEngagementInput{
		PersonID: personID,
		StatID:   statID,
		Type:     eventType,
	})
}

func (uc *RecordEngagementUseCase) Execute(ctx context.Context, input RecordEngagementInput) error {
	if errs := ValidateRecordEngagementInput(input); len(errs) > 0 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: errs[0].Error()}
	}

	person, err := uc.People.FindByID(ctx, input.PersonID)
	if err != nil {
		return &DomainError{
			Code:    "PERSON_NOT_FOUND",
			Message: "person not found: " + input.PersonID,
		}
	}

	stat, err := uc.resolveStat(ctx, person, input.StatID)
	if err != nil {
		return err
	}

	company, err := uc.Companies.FindByID(ctx, person.CompanyID)
	if err != nil {
		return &DomainError{
			Code:    "COMPANY_NOT_FOUND",
			Message: "company not found: " + person.CompanyID,
		}
	}

	statPatch := &entity.EmailStatPatch{}
	personPatch := &entity.PersonPatch{}
	companyPatch := &entity.CompanyPatch{}
	flagTrue := true

	switch entity.EngagementType(input.Type) {
	case entity.EngagementOpen:
		opens := stat.OpenCount + 1
		statPatch.OpenCount = &opens

		pOpens := person.OpenCount + 1
		personPatch.Opened = &flagTrue
		personPatch.OpenCount = &pOpens

		if !person.Opened {
			// primeira abertura dessa pessoa: conta para a empresa
			cOpens := company.OpenCount + 1
			if cOpens <= company.TotalPeople {
				companyPatch.OpenCount = &cOpens
			}
			companyPatch.HasOpened = &flagTrue
		}

	case entity.EngagementClick:
		clicks := stat.ClickCount + 1
		statPatch.ClickCount = &clicks

		pClicks := person.ClickCount + 1
		personPatch.Clicked = &flagTrue
		personPatch.ClickCount = &pClicks

		if !person.Clicked {
			cClicks := company.ClickCount + 1
			if cClicks <= company.TotalPeople {
				companyPatch.ClickCount = &cClicks
			}
			companyPatch.HasClicked = &flagTrue
		}

	case entity.EngagementResumeOpen:
		opens := stat.ResumeOpenCount + 1
		statPatch.ResumeOpenCount = &opens

		pOpens := person.ResumeOpenCount + 1
		personPatch.ResumeOpened = &flagTrue
		personPatch.ResumeOpenCount = &pOpens

		if !person.ResumeOpened {
			cOpens := company.ResumeOpenCount + 1
			if cOpens <= company.TotalPeople {
				companyPatch.ResumeOpenCount = &cOpens
			}
		}

	case entity.EngagementReply:
		// Responded é monotônico: sobe e nunca volta
		statPatch.Responded = &flagTrue
		personPatch.Responded = &flagTrue
		companyPatch.HasResponded = &flagTrue
	}

	if _, err := uc.Stats.Update(ctx, stat.ID, statPatch); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}
	if _, err := uc.People.Update(ctx, person.ID, personPatch); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}
	if _, err := uc.Companies.Update(ctx, company.ID, companyPatch); err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}

	return nil
}

// resolveStat acha o EmailStat alvo: o informado, ou a tentativa mais
// recente da pessoa quando o callback não identifica o email.
func (uc *RecordEngagementUseCase) resolveStat(ctx context.Context, person *entity.Person, statID string) (*entity.EmailStat, error) {
	if statID != "" {
		stat, err := uc.Stats.FindByID(ctx, statID)
		if err != nil {
			return nil, &DomainError{
				Code:    "STAT_NOT_FOUND",
				Message: "email stat not found: " + statID,
			}
		}
		return stat, nil
	}

	stats, err := uc.Stats.FindByPersonID(ctx, person.ID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}
	if len(stats) == 0 {
		return nil, &DomainError{
			Code:    "STAT_NOT_FOUND",
			Message: "person has no outreach attempts yet",
		}
	}

	latest := stats[0]
	for _, s := range stats[1:] {
		if s.AttemptNumber > latest.AttemptNumber {
			latest = s
		}
	}
	return latest, nil
}
