package service

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"github.com/reactivedemo/demo/backend/go-services/internal/project/repository"
	"github.com/reactivedemo/demo/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("not found")
)

// Service defines the project operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]*project.Project, error)
	// Stream yields the same projects as List, pausing delay before each one.
	Stream(ctx context.Context, delay time.Duration) iter.Seq2[*project.Project, error]
	Create(ctx context.Context, in project.Input) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	Update(ctx context.Context, id string, in project.Input) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// New returns a Service over any repository.
func New(repo repository.Repository) Service {
	return &projectService{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type projectService struct {
	repo repository.Repository
}

func observe(op string, err error) {
	outcome := "ok"
	var verr *project.ValidationError
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	case errors.As(err, &verr):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	metrics.ProjectOperations.WithLabelValues(op, outcome).Inc()
}

// notFound maps the repository sentinel onto the service one.
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *projectService) List(ctx context.Context) (out []*project.Project, err error) {
	defer func() { observe("list", err) }()
	out = []*project.Project{}
	for p, err := range s.repo.All(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *projectService) Stream(ctx context.Context, delay time.Duration) iter.Seq2[*project.Project, error] {
	return func(yield func(*project.Project, error) bool) {
		for p, err := range s.repo.All(ctx) {
			if err != nil {
				observe("stream", err)
				yield(nil, err)
				return
			}
			if err := wait(ctx, delay); err != nil {
				observe("stream", err)
				yield(nil, err)
				return
			}
			metrics.ProjectsStreamed.Inc()
			if !yield(p, nil) {
				return
			}
		}
		observe("stream", nil)
	}
}

// wait pauses for d without holding anything but a timer; ctx cancels it.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *projectService) Create(ctx context.Context, in project.Input) (p *project.Project, err error) {
	defer func() { observe("create", err) }()
	candidate := in.Project()
	if err := project.Check(candidate); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, candidate)
}

func (s *projectService) Get(ctx context.Context, id string) (p *project.Project, err error) {
	defer func() { observe("get", err) }()
	p, err = s.repo.Get(ctx, id)
	return p, notFound(err)
}

// Update is a read followed by a write. An unknown id is reported before the
// body is validated. The write only touches name and description, and reports
// ErrNotFound if the project vanished in between.
func (s *projectService) Update(ctx context.Context, id string, in project.Input) (p *project.Project, err error) {
	defer func() { observe("update", err) }()
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	candidate := in.Project()
	if err := project.Check(candidate); err != nil {
		return nil, err
	}
	p, err = s.repo.Update(ctx, existing.ID, candidate.Name, candidate.Description)
	return p, notFound(err)
}

func (s *projectService) Delete(ctx context.Context, id string) (err error) {
	defer func() { observe("delete", err) }()
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	return notFound(s.repo.Delete(ctx, existing.ID))
}

func (s *projectService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
