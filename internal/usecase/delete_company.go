package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// DeleteCompanyUseCase remove uma empresa em cascata: as tentativas,
// depois as pessoas, depois a empresa — tudo numa saga com
// compensações, para não deixar órfão se algo falhar no meio.
//
// A confirmação por nome é validada AQUI, não só no cliente: o nome
// digitado tem que bater exatamente (case-sensitive) com o da empresa.
type DeleteCompanyUseCase struct {
	Companies entity.CompanyRepositoryInterface
	People    entity.PersonRepositoryInterface
	Stats     entity.EmailStatRepositoryInterface
}

func NewDeleteCompanyUseCase(
	companies entity.CompanyRepositoryInterface,
	people entity.PersonRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		Companies: companies,
		People:    people,
		Stats:     stats,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, input DeleteCompanyInput) error {
	company, err := uc.Companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return &DomainError{
			Code:    "COMPANY_NOT_FOUND",
			Message: "company not found: " + input.CompanyID,
		}
	}

	if input.ConfirmName != company.Name {
		return &DomainError{
			Code:    "NAME_MISMATCH",
			Message: "confirmation name does not match company name",
		}
	}

	stats, err := uc.Stats.FindByCompanyID(ctx, company.ID)
	if err != nil {
		return &TechnicalError{Code: "STORE_ERROR", Message: err.Error()}
	}
	people, err := uc.People.FindByCompanyID(ctx, company.ID)
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

	deletedPeople := []*entity.Person{}
	txn.AddOperation("delete_people", func(ctx context.Context) error {
		for _, p := range people {
			if _, err := uc.People.Delete(ctx, p.ID); err != nil {
				return err
			}
			deletedPeople = append(deletedPeople, p)
		}
		return nil
	})
	txn.AddCompensation("restore_people", func(ctx context.Context) error {
		for _, p := range deletedPeople {
			if err := uc.People.Restore(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})

	txn.AddOperation("delete_company", func(ctx context.Context) error {
		ok, err := uc.Companies.Delete(ctx, company.ID)
		if err != nil {
			return err
		}
		if !ok {
			return entity.ErrCompanyNotFound
		}
		return nil
	})

	if err := txn.Execute(ctx); err != nil {
		return &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to delete company: " + err.Error(),
		}
	}

	log.Printf("🗑️ Empresa %s removida (%d pessoas, %d tentativas)",
		company.Name, len(people), len(stats))

	return nil
}
