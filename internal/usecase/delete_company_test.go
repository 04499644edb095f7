package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteCompanyCascade(t *testing.T) {
	ctx := context.Background()
	companies, people, stats := seededRepos()
	uc := NewDeleteCompanyUseCase(companies, people, stats)

	err := uc.Execute(ctx, DeleteCompanyInput{CompanyID: "3", ConfirmName: "Stripe"})
	assert.NoError(t, err)

	_, err = companies.FindByID(ctx, "3")
	assert.Error(t, err)

	remaining, _ := people.FindByCompanyID(ctx, "3")
	assert.Empty(t, remaining)

	orphanStats, _ := stats.FindByCompanyID(ctx, "3")
	assert.Empty(t, orphanStats)

	// as outras empresas continuam intactas
	_, err = companies.FindByID(ctx, "1")
	assert.NoError(t, err)
	others, _ := people.FindByCompanyID(ctx, "1")
	assert.Len(t, others, 2)
}

// Nome errado não apaga nada: a confirmação é case-sensitive e exata.
func TestDeleteCompanyNameMismatch(t *testing.T) {
	ctx := context.Background()
	companies, people, stats := seededRepos()
	uc := NewDeleteCompanyUseCase(companies, people, stats)

	for _, confirm := range []string{"stripe", "Stripe ", ""} {
		err := uc.Execute(ctx, DeleteCompanyInput{CompanyID: "3", ConfirmName: confirm})
		domainErr, ok := err.(*DomainError)
		assert.True(t, ok)
		assert.Equal(t, "NAME_MISMATCH", domainErr.Code)
	}

	// tudo ainda lá
	company, err := companies.FindByID(ctx, "3")
	assert.NoError(t, err)
	assert.Equal(t, "Stripe", company.Name)
	folks, _ := people.FindByCompanyID(ctx, "3")
	assert.Len(t, folks, 2)
	attempts, _ := stats.FindByCompanyID(ctx, "3")
	assert.Len(t, attempts, 4)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	ctx := context.Background()
	companies, people, stats := seededRepos()
	uc := NewDeleteCompanyUseCase(companies, people, stats)

	err := uc.Execute(ctx, DeleteCompanyInput{CompanyID: "ghost", ConfirmName: "Ghost"})
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, "COMPANY_NOT_FOUND", domainErr.Code)
}
