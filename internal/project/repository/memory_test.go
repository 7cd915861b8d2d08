package repository

import (
	"context"
	"testing"

	"github.com/reactivedemo/demo/backend/go-services/internal/project"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	created, err := r.Create(ctx, &project.Project{Name: "alpha", Description: "first"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	_, err = primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err, "ids should use the ObjectID hex form")

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	updated, err := r.Update(ctx, created.ID, "beta", "")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "beta", updated.Name)
	require.Empty(t, updated.Description)

	require.NoError(t, r.Delete(ctx, created.ID))
	_, err = r.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, created.ID), ErrNotFound)

	_, err = r.Update(ctx, created.ID, "x", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	for _, name := range []string{"a", "b", "c"} {
		_, err := r.Create(ctx, &project.Project{Name: name})
		require.NoError(t, err)
	}

	var names []string
	for p, err := range r.All(ctx) {
		require.NoError(t, err)
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestMemoryRepoAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := NewMemoryRepo()
	for _, name := range []string{"a", "b"} {
		_, err := r.Create(ctx, &project.Project{Name: name})
		require.NoError(t, err)
	}

	seen := 0
	var lastErr error
	for p, err := range r.All(ctx) {
		if err != nil {
			lastErr = err
			break
		}
		seen++
		require.Equal(t, "a", p.Name)
		cancel()
	}
	require.Equal(t, 1, seen)
	require.ErrorIs(t, lastErr, context.Canceled)
}

func TestMemoryRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	created, err := r.Create(ctx, &project.Project{Name: "orig"})
	require.NoError(t, err)

	created.Name = "mutated"
	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "orig", got.Name)
}
