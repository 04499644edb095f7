package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// MemoryCompanyRepository guarda tudo em memória. É o modo padrão do
// serviço quando não há DATABASE_URL: os dados vivem só no processo e
// são re-semeados a cada start.
type MemoryCompanyRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Company
	order []string // preserva ordem de inserção nas listagens
}

func NewMemoryCompanyRepository() *MemoryCompanyRepository {
	return &MemoryCompanyRepository{
		items: make(map[string]*entity.Company),
		order: []string{},
	}
}

func (r *MemoryCompanyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]*entity.Company, 0, len(r.order))
	for _, id := range r.order {
		c := *r.items[id]
		companies = append(companies, &c)
	}
	return companies, nil
}

func (r *MemoryCompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.items[id]
	if !ok {
		return nil, entity.ErrCompanyNotFound
	}
	c := *company
	return &c, nil
}

func (r *MemoryCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ID sempre do servidor: ignora qualquer id vindo do cliente
	company.ID = uuid.New().String()
	if company.Status == "" {
		company.Status = entity.CompanyStatusActive
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
		company.UpdatedAt = company.CreatedAt
	}

	c := *company
	r.items[c.ID] = &c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *MemoryCompanyRepository) Update(ctx context.Context, id string, patch *entity.CompanyPatch) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	company, ok := r.items[id]
	if !ok {
		return nil, entity.ErrCompanyNotFound
	}

	company.Apply(patch)
	c := *company
	return &c, nil
}

func (r *MemoryCompanyRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}

	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// restore devolve um registro apagado (compensação da saga de delete).
func (r *MemoryCompanyRepository) restore(company *entity.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *company
	r.items[c.ID] = &c
	r.order = append(r.order, c.ID)
}

// Restore reinsere uma empresa com o id original. Usado pelas
// compensações do DeleteCompanyUseCase.
func (r *MemoryCompanyRepository) Restore(ctx context.Context, company *entity.Company) error {
	r.restore(company)
	return nil
}
