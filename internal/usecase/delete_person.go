package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// DeletePersonUseCase remove o contato em cascata: as tentativas dele,
// depois o contato, depois o decremento de totalPeople da empresa.
// Mesma saga de compensações do delete de empresa: se o contador não
// descer, tudo volta e o estado fica consistente.
type DeletePersonUseCase struct {
	People    entity.PersonRepositoryInterface
	Companies entity.CompanyRepositoryInterface
	Stats     entity.EmailStatRepositoryInterface
}

func NewDeletePersonUseCase(
	people entity.PersonRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
) *DeletePersonUseCase {
	return &DeletePersonUseCase{People: people, Companies: companies, Stats: stats}
}

func (uc *DeletePersonUseCase) Execute(ctx context.Context, input DeletePersonInput) error {
	person, err := uc.People.FindByID(ctx, input.PersonID)
	if err != nil {
		return &DomainError{
			Code:    "PERSON_NOT_FOUND",
			Message: "person not found: " + input.PersonID,
		}
	}

	stats, err := uc.Stats.FindByPersonID(ctx, person.ID)
	if err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}

	txn := NewTransaction()

	deletedStats := []*entity.EmailStat{}
	txn.AddOperation("delete_stats", func(ctx context.Context) error {
		for _, s := range stats {
			if _, err := uc.Stats.Delete(ctx, s.ID); err != nil {
				return err
			}
			deletedStats = append(deletedStats, s)
		}
		return nil
	})
	txn.AddCompensation("restore_stats", func(ctx context.Context) error {
		for _, s := range deletedStats {
			if err := uc.Stats.Restore(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})

	txn.AddOperation("delete_person", func(ctx context.Context) error {
		ok, err := uc.People.Delete(ctx, person.ID)
		if err != nil {
			return err
		}
		if !ok {
			return entity.ErrPersonNotFound
		}
		return nil
	})
	txn.AddCompensation("restore_person", func(ctx context.Context) error {
		return uc.People.Restore(ctx, person)
	})

	txn.AddOperation("decrement_total_people", func(ctx context.Context) error {
		company, err := uc.Companies.FindByID(ctx, person.CompanyID)
		if err != nil {
			// empresa já removida: não há contador para ajustar
			return nil
		}
		if company.TotalPeople == 0 {
			return nil
		}
		totalPeople := company.TotalPeople - 1
		_, err = uc.Companies.Update(ctx, company.ID, &entity.CompanyPatch{TotalPeople: &totalPeople})
		return err
	})

	if err := txn.Execute(ctx); err != nil {
		return &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to delete person: " + err.Error(),
		}
	}

	log.Printf("🗑️ Contato %s removido (%d tentativas)", person.Name, len(stats))

	return nil
}
