package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

func TestMemoryCompanyRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCompanyRepository()

	company := &entity.Company{ID: "id-do-cliente", Name: "Acme", Website: "acme.com"}
	err := repo.Create(ctx, company)
	assert.NoError(t, err)
	// id sempre do servidor
	assert.NotEqual(t, "id-do-cliente", company.ID)
	assert.Equal(t, entity.CompanyStatusActive, company.Status)

	found, err := repo.FindByID(ctx, company.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)

	name := "Acme Corp"
	updated, err := repo.Update(ctx, company.ID, &entity.CompanyPatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	// merge: o resto não mudou
	assert.Equal(t, "acme.com", updated.Website)

	ok, err := repo.Delete(ctx, company.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByID(ctx, company.ID)
	assert.ErrorIs(t, err, entity.ErrCompanyNotFound)

	// delete de id inexistente devolve false, não erro
	ok, err = repo.Delete(ctx, "nope")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCompanyRepositoryFindAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCompanyRepository()

	for _, name := range []string{"A", "B", "C"} {
		repo.Create(ctx, &entity.Company{Name: name, Website: name + ".com"})
	}

	all, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "C", all[2].Name)
}

// FindAll devolve cópias: mexer no resultado não vaza para o store.
func TestMemoryCompanyRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCompanyRepository()
	repo.Create(ctx, &entity.Company{Name: "Acme", Website: "acme.com"})

	all, _ := repo.FindAll(ctx)
	all[0].Name = "Hackeada"

	again, _ := repo.FindAll(ctx)
	assert.Equal(t, "Acme", again[0].Name)
}

func TestMemoryCompanyRepositoryRestoreKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCompanyRepository()

	company := &entity.Company{Name: "Acme", Website: "acme.com"}
	repo.Create(ctx, company)
	originalID := company.ID

	ok, _ := repo.Delete(ctx, originalID)
	assert.True(t, ok)

	err := repo.Restore(ctx, company)
	assert.NoError(t, err)

	found, err := repo.FindByID(ctx, originalID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", found.Name)
}

func TestMemoryPersonRepositoryFindByCompanyID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPersonRepository()

	repo.Create(ctx, &entity.Person{CompanyID: "c1", Name: "Ana", Email: "ana@a.com"})
	repo.Create(ctx, &entity.Person{CompanyID: "c2", Name: "Beto", Email: "beto@b.com"})
	repo.Create(ctx, &entity.Person{CompanyID: "c1", Name: "Caio", Email: "caio@a.com"})

	people, err := repo.FindByCompanyID(ctx, "c1")
	assert.NoError(t, err)
	assert.Len(t, people, 2)
	assert.Equal(t, "Ana", people[0].Name)
	assert.Equal(t, "Caio", people[1].Name)
}

func TestMemoryEmailStatRepositoryFindByPersonID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEmailStatRepository()

	repo.Create(ctx, &entity.EmailStat{PersonID: "p1", CompanyID: "c1", AttemptNumber: 1, SentDate: "2026-01-05", Subject: "Oi"})
	repo.Create(ctx, &entity.EmailStat{PersonID: "p2", CompanyID: "c1", AttemptNumber: 1, SentDate: "2026-01-05", Subject: "Oi"})
	repo.Create(ctx, &entity.EmailStat{PersonID: "p1", CompanyID: "c1", AttemptNumber: 2, SentDate: "2026-01-08", Subject: "Follow up"})

	stats, err := repo.FindByPersonID(ctx, "p1")
	assert.NoError(t, err)
	assert.Len(t, stats, 2)

	byCompany, err := repo.FindByCompanyID(ctx, "c1")
	assert.NoError(t, err)
	assert.Len(t, byCompany, 3)
}

func TestSeedDataConsistent(t *testing.T) {
	ctx := context.Background()
	companies := NewMemoryCompanyRepository()
	people := NewMemoryPersonRepository()
	stats := NewMemoryEmailStatRepository()

	Seed(companies, people, stats)

	allCompanies, _ := companies.FindAll(ctx)
	assert.NotEmpty(t, allCompanies)

	for _, c := range allCompanies {
		// contadores de pessoas distintas nunca passam do total
		assert.True(t, c.CountersBounded(), "empresa %s viola contadores", c.Name)

		folks, _ := people.FindByCompanyID(ctx, c.ID)
		assert.Equal(t, c.TotalPeople, len(folks), "totalPeople de %s", c.Name)
	}
}
