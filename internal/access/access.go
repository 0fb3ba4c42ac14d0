// Package access defines how the UI and CLI reach a cookbook, wherever it is
// kept: a local SQLite file, a foodie server, or memory.
package access

import (
	"context"
	"errors"

	"github.com/five82/foodie/internal/cookbook"
)

// Cookbook is the data-access contract shared by every backend.
type Cookbook interface {
	// Cookbook returns the current cookbook contents.
	Cookbook(ctx context.Context) (cookbook.Cookbook, error)
	// AddRecipe stores a new recipe at the end of the cookbook.
	AddRecipe(ctx context.Context, r cookbook.Recipe) error
	// EditRecipe replaces the recipe titled name with r.
	EditRecipe(ctx context.Context, name string, r cookbook.Recipe) error
	// DeleteRecipe removes the recipe titled name.
	DeleteRecipe(ctx context.Context, name string) error
	// Describe names where the data lives, for display.
	Describe() string
}

// ErrInvalid marks a recipe rejected by the backend's validation.
var ErrInvalid = errors.New("invalid recipe")

// Ensure implementations satisfy Cookbook at compile time.
var (
	_ Cookbook = (*Local)(nil)
	_ Cookbook = (*Memory)(nil)
	_ Cookbook = (*Remote)(nil)
)

// Favorite flips the favorite flag of the recipe titled name through any backend.
func Favorite(ctx context.Context, c Cookbook, name string, fav bool) error {
	cb, err := c.Cookbook(ctx)
	if err != nil {
		return err
	}
	r, ok := cb.Get(name)
	if !ok {
		return cookbook.ErrNotFound
	}
	r.Fav = fav
	return c.EditRecipe(ctx, name, r)
}

// check runs recipe validation and marks failures with ErrInvalid.
func check(r cookbook.Recipe) error {
	if err := r.Validate(); err != nil {
		return errors.Join(ErrInvalid, err)
	}
	return nil
}
