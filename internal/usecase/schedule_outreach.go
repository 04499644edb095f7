package usecase

import (
	"context"

	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/report"
)

// ScheduleOutreachUseCase preenche os slots de agendamento dos
// contatos. Slot já agendado nunca é re-gerado: ler de novo devolve a
// mesma data (idempotente depois da primeira chamada).
type ScheduleOutreachUseCase struct {
	People    entity.PersonRepositoryInterface
	Companies entity.CompanyRepositoryInterface
	Scheduler DateScheduler
}

func NewScheduleOutreachUseCase(
	people entity.PersonRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
	scheduler DateScheduler,
) *ScheduleOutreachUseCase {
	return &ScheduleOutreachUseCase{
		People:    people,
		Companies: companies,
		Scheduler: scheduler,
	}
}

// ExecuteCompany agenda em massa: todo slot vazio de toda pessoa da
// empresa ganha data. O rótulo devolvido reflete o estado ANTES do
// agendamento ("Schedule All" vs "Schedule Remaining") — é o que o
// botão dizia quando foi clicado.
func (uc *ScheduleOutreachUseCase) ExecuteCompany(ctx context.Context, input ScheduleCompanyInput) (*ScheduleCompanyOutput, error) {
	if _, err := uc.Companies.FindByID(ctx, input.CompanyID); err != nil {
		return nil, &DomainError{
			Code:    "COMPANY_NOT_FOUND",
			Message: "company not found: " + input.CompanyID,
		}
	}

	people, err := uc.People.FindByCompanyID(ctx, input.CompanyID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}

	label := report.ScheduleButtonLabel(people)

	scheduled := 0
	for _, person := range people {
		if person.FullyScheduled() {
			continue
		}

		dates := uc.Scheduler.NextDates()
		patch := &entity.PersonPatch{}

		fill := func(slot entity.ScheduleSlot, date string) *entity.ScheduleSlot {
			if slot.Scheduled {
				return nil // preserva a data existente
			}
			return &entity.ScheduleSlot{Scheduled: true, Date: date}
		}

		patch.FirstEmail = fill(person.FirstEmail, dates[0])
		patch.SecondEmail = fill(person.SecondEmail, dates[1])
		patch.ThirdEmail = fill(person.ThirdEmail, dates[2])

		if _, err := uc.People.Update(ctx, person.ID, patch); err != nil {
			return nil, &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
		}
		scheduled++
	}

	return &ScheduleCompanyOutput{
		Label:           label,
		PeopleScheduled: scheduled,
	}, nil
}

// ExecutePerson agenda um slot específico. Com data explícita é
// atribuição direta (sobrescreve); sem data, gera pelo scheduler — mas
// só se o slot ainda estiver vazio.
func (uc *ScheduleOutreachUseCase) ExecutePerson(ctx context.Context, input SchedulePersonInput) (*SchedulePersonOutput, error) {
	if input.Slot < 1 || input.Slot > entity.MaxAttempts {
		return nil, &DomainError{
			Code:    "INVALID_SLOT",
			Message: "slot must be between 1 and 3",
		}
	}
	if input.Date != "" && !isValidDate(input.Date) {
		return nil, &DomainError{
			Code:    "INVALID_DATE",
			Message: "date must be a valid date (YYYY-MM-DD)",
		}
	}

	person, err := uc.People.FindByID(ctx, input.PersonID)
	if err != nil {
		return nil, &DomainError{
			Code:    "PERSON_NOT_FOUND",
			Message: "person not found: " + input.PersonID,
		}
	}

	current := person.Slot(input.Slot)

	date := input.Date
	if date == "" {
		if current.Scheduled {
			// idempotência: nada de re-sortear data já atribuída
			return &SchedulePersonOutput{Slot: input.Slot, Date: current.Date}, nil
		}
		date = uc.Scheduler.NextDates()[input.Slot-1]
	}

	slot := &entity.ScheduleSlot{Scheduled: true, Date: date}
	patch := &entity.PersonPatch{}
	switch input.Slot {
	case 1:
		patch.FirstEmail = slot
	case 2:
		patch.SecondEmail = slot
	case 3:
		patch.ThirdEmail = slot
	}

	if _, err := uc.People.Update(ctx, person.ID, patch); err != nil {
		return nil, &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}

	return &SchedulePersonOutput{Slot: input.Slot, Date: date}, nil
}
