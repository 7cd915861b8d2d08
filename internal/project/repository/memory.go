package repository

import (
	"context"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used for tests and as a fallback when
// MongoDB is not configured. IDs use the same ObjectID hex form as MongoRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]*project.Project
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*project.Project)}
}

// All snapshots the store and yields copies, so callers may write while ranging.
func (m *MemoryRepo) All(ctx context.Context) iter.Seq2[*project.Project, error] {
	return func(yield func(*project.Project, error) bool) {
		m.mu.RLock()
		snapshot := make([]project.Project, 0, len(m.order))
		for _, id := range m.order {
			snapshot = append(snapshot, *m.store[id])
		}
		m.mu.RUnlock()

		for i := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(&snapshot[i], nil) {
				return
			}
		}
	}
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*project.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := &project.Project{
		ID:          primitive.NewObjectID().Hex(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	m.store[stored.ID] = stored
	m.order = append(m.order, stored.ID)
	cp := *stored
	return &cp, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id, name, description string) (*project.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Name = name
	p.Description = description
	cp := *p
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}
