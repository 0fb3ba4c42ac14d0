package access

import (
	"context"
	"fmt"

	"github.com/five82/foodie/internal/cookbook"
	"github.com/five82/foodie/internal/store"
)

// Local reads and writes a cookbook kept in a SQLite file.
type Local struct {
	store *store.Store
}

// NewLocal wraps an open store.
func NewLocal(s *store.Store) *Local {
	return &Local{store: s}
}

func (l *Local) Cookbook(ctx context.Context) (cookbook.Cookbook, error) {
	cb, err := l.store.Load(ctx)
	if err != nil {
		return cookbook.Cookbook{}, fmt.Errorf("load cookbook: %w", err)
	}
	return cb, nil
}

// AddRecipe runs the domain operation against the loaded cookbook before
// persisting, so errors match the in-memory and remote backends.
func (l *Local) AddRecipe(ctx context.Context, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	cb, err := l.Cookbook(ctx)
	if err != nil {
		return err
	}
	if err := cb.Add(r); err != nil {
		return err
	}
	return l.store.Add(ctx, r)
}

func (l *Local) EditRecipe(ctx context.Context, name string, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	cb, err := l.Cookbook(ctx)
	if err != nil {
		return err
	}
	if err := cb.Replace(name, r); err != nil {
		return err
	}
	return l.store.Replace(ctx, name, r)
}

func (l *Local) DeleteRecipe(ctx context.Context, name string) error {
	cb, err := l.Cookbook(ctx)
	if err != nil {
		return err
	}
	if err := cb.Remove(name); err != nil {
		return err
	}
	return l.store.Delete(ctx, name)
}

func (l *Local) Describe() string {
	return l.store.Path()
}
