package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// brokenCounterStore delega tudo menos o Update, que sempre falha.
// Serve para provar que a saga desfaz o passo anterior quando o
// contador da empresa não acompanha.
type brokenCounterStore struct {
	entity.CompanyRepositoryInterface
}

func (s *brokenCounterStore) Update(ctx context.Context, id string, patch *entity.CompanyPatch) (*entity.Company, error) {
	return nil, errors.New("store offline")
}

// ============ TESTES ============

func TestCreatePersonIncrementsTotalPeople(t *testing.T) {
	ctx := context.Background()
	companies, people, _ := seededRepos()
	uc := NewCreatePersonUseCase(people, companies)

	person, err := uc.Execute(ctx, CreatePersonInput{
		CompanyID: "4",
		Name:      "Grace Lee",
		Email:     "grace@figma.com",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, person.ID)

	company, _ := companies.FindByID(ctx, "4")
	assert.Equal(t, 2, company.TotalPeople)

	folks, _ := people.FindByCompanyID(ctx, "4")
	assert.Len(t, folks, 2)
}

func TestCreatePersonCompanyNotFound(t *testing.T) {
	ctx := context.Background()
	companies, people, _ := seededRepos()
	uc := NewCreatePersonUseCase(people, companies)

	_, err := uc.Execute(ctx, CreatePersonInput{
		CompanyID: "ghost",
		Name:      "Grace Lee",
		Email:     "grace@figma.com",
	})
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, "COMPANY_NOT_FOUND", domainErr.Code)

	folks, _ := people.FindAll(ctx)
	assert.Len(t, folks, 6)
}

// Se o incremento falhar, o contato recém-criado sai junto: totalPeople
// é o denominador dos "k/n" e não pode divergir do número de contatos.
func TestCreatePersonRollsBackWhenCounterFails(t *testing.T) {
	ctx := context.Background()
	companies, people, _ := seededRepos()
	uc := NewCreatePersonUseCase(people, &brokenCounterStore{companies})

	_, err := uc.Execute(ctx, CreatePersonInput{
		CompanyID: "4",
		Name:      "Grace Lee",
		Email:     "grace@figma.com",
	})
	techErr, ok := err.(*TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, "STORE_ERROR", techErr.Code)

	folks, _ := people.FindByCompanyID(ctx, "4")
	assert.Len(t, folks, 1)
	company, _ := companies.FindByID(ctx, "4")
	assert.Equal(t, 1, company.TotalPeople)
}
