package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

type MemoryPersonRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Person
	order []string
}

func NewMemoryPersonRepository() *MemoryPersonRepository {
	return &MemoryPersonRepository{
		items: make(map[string]*entity.Person),
		order: []string{},
	}
}

func (r *MemoryPersonRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	people := make([]*entity.Person, 0, len(r.order))
	for _, id := range r.order {
		p := *r.items[id]
		people = append(people, &p)
	}
	return people, nil
}

func (r *MemoryPersonRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	people := []*entity.Person{}
	for _, id := range r.order {
		if r.items[id].CompanyID == companyID {
			p := *r.items[id]
			people = append(people, &p)
		}
	}
	return people, nil
}

func (r *MemoryPersonRepository) FindByID(ctx context.Context, id string) (*entity.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.items[id]
	if !ok {
		return nil, entity.ErrPersonNotFound
	}
	p := *person
	return &p, nil
}

func (r *MemoryPersonRepository) Create(ctx context.Context, person *entity.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	person.ID = uuid.New().String()
	if person.CreatedAt.IsZero() {
		person.CreatedAt = time.Now()
		person.UpdatedAt = person.CreatedAt
	}

	p := *person
	r.items[p.ID] = &p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemoryPersonRepository) Update(ctx context.Context, id string, patch *entity.PersonPatch) (*entity.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	person, ok := r.items[id]
	if !ok {
		return nil, entity.ErrPersonNotFound
	}

	person.ApplyPatch(patch)
	p := *person
	return &p, nil
}

func (r *MemoryPersonRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *MemoryPersonRepository) Restore(ctx context.Context, person *entity.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *person
	r.items[p.ID] = &p
	r.order = append(r.order, p.ID)
	return nil
}
