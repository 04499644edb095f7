package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// CreatePersonUseCase cadastra o contato e incrementa totalPeople da
// empresa numa saga: se o contador não subir, o contato criado é
// removido na compensação. O contador é o denominador dos "k/n" do
// dashboard, então ele não pode derivar do número real de contatos.
type CreatePersonUseCase struct {
	People    entity.PersonRepositoryInterface
	Companies entity.CompanyRepositoryInterface
}

func NewCreatePersonUseCase(
	people entity.PersonRepositoryInterface,
	companies entity.CompanyRepositoryInterface,
) *CreatePersonUseCase {
	return &CreatePersonUseCase{People: people, Companies: companies}
}

func (uc *CreatePersonUseCase) Execute(ctx context.Context, input CreatePersonInput) (*entity.Person, error) {
	company, err := uc.Companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, &DomainError{
			Code:    "COMPANY_NOT_FOUND",
			Message: "company not found: " + input.CompanyID,
		}
	}

	person, err := entity.NewPerson(input.CompanyID, input.Name, input.Email, input.Position, input.Linkedin, input.City, input.Country)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	txn := NewTransaction()

	txn.AddOperation("create_person", func(ctx context.Context) error {
		return uc.People.Create(ctx, person)
	})
	txn.AddCompensation("remove_person", func(ctx context.Context) error {
		_, err := uc.People.Delete(ctx, person.ID)
		return err
	})

	txn.AddOperation("increment_total_people", func(ctx context.Context) error {
		totalPeople := company.TotalPeople + 1
		_, err := uc.Companies.Update(ctx, company.ID, &entity.CompanyPatch{TotalPeople: &totalPeople})
		return err
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to create person: " + err.Error(),
		}
	}

	log.Printf("👤 Contato %s cadastrado na empresa %s", person.Name, company.Name)

	return person, nil
}
