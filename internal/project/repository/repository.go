package repository

import (
	"context"
	"errors"
	"iter"

	"github.com/reactivedemo/demo/backend/go-services/internal/project"
)

var (
	ErrNotFound = errors.New("project not found")
)

// Repository is the persistence boundary for projects. The store owns
// identity: Create assigns ID and CreatedAt.
type Repository interface {
	// All lazily yields every stored project. Iteration ends early when the
	// consumer stops ranging or ctx is cancelled.
	All(ctx context.Context) iter.Seq2[*project.Project, error]
	Get(ctx context.Context, id string) (*project.Project, error)
	Create(ctx context.Context, p *project.Project) (*project.Project, error)
	// Update sets only name and description. Identity and CreatedAt are untouched.
	Update(ctx context.Context, id, name, description string) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
