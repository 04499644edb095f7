package database

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

type MemoryEmailStatRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.EmailStat
	order []string
}

func NewMemoryEmailStatRepository() *MemoryEmailStatRepository {
	return &MemoryEmailStatRepository{
		items: make(map[string]*entity.EmailStat),
		order: []string{},
	}
}

func (r *MemoryEmailStatRepository) FindAll(ctx context.Context) ([]*entity.EmailStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]*entity.EmailStat, 0, len(r.order))
	for _, id := range r.order {
		s := *r.items[id]
		stats = append(stats, &s)
	}
	return stats, nil
}

func (r *MemoryEmailStatRepository) FindByPersonID(ctx context.Context, personID string) ([]*entity.EmailStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := []*entity.EmailStat{}
	for _, id := range r.order {
		if r.items[id].PersonID == personID {
			s := *r.items[id]
			stats = append(stats, &s)
		}
	}
	return stats, nil
}

func (r *MemoryEmailStatRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.EmailStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := []*entity.EmailStat{}
	for _, id := range r.order {
		if r.items[id].CompanyID == companyID {
			s := *r.items[id]
			stats = append(stats, &s)
		}
	}
	return stats, nil
}

func (r *MemoryEmailStatRepository) FindByID(ctx context.Context, id string) (*entity.EmailStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stat, ok := r.items[id]
	if !ok {
		return nil, entity.ErrEmailStatNotFound
	}
	s := *stat
	return &s, nil
}

func (r *MemoryEmailStatRepository) Create(ctx context.Context, stat *entity.EmailStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stat.ID = uuid.New().String()
	if stat.CreatedAt.IsZero() {
		stat.CreatedAt = time.Now()
	}

	s := *stat
	r.items[s.ID] = &s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *MemoryEmailStatRepository) Update(ctx context.Context, id string, patch *entity.EmailStatPatch) (*entity.EmailStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stat, ok := r.items[id]
	if !ok {
		return nil, entity.ErrEmailStatNotFound
	}

	stat.Apply(patch)
	s := *stat
	return &s, nil
}

func (r *MemoryEmailStatRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *MemoryEmailStatRepository) Restore(ctx context.Context, stat *entity.EmailStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *stat
	r.items[s.ID] = &s
	r.order = append(r.order, s.ID)
	return nil
}
