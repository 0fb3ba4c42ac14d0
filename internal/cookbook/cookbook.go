package cookbook

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicate is returned when a recipe name is already taken.
	ErrDuplicate = errors.New("recipe title already exists")
	// ErrNotFound is returned when no recipe has the requested name.
	ErrNotFound = errors.New("recipe not found")
	// ErrOutOfRange is returned for an index outside the list.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidLabel is returned for a label outside Labels.
	ErrInvalidLabel = errors.New("invalid label")
)

// Cookbook is an ordered collection of recipes. The zero value is empty and
// ready to use. A Cookbook is not safe for concurrent mutation.
type Cookbook struct {
	recipes []Recipe
}

// New returns a cookbook holding copies of recipes in the given order.
func New(recipes ...Recipe) Cookbook {
	cb := Cookbook{recipes: make([]Recipe, 0, len(recipes))}
	for _, r := range recipes {
		cb.recipes = append(cb.recipes, r.Clone())
	}
	return cb
}

// Recipes returns a copy of every recipe in order.
func (c Cookbook) Recipes() []Recipe {
	return cloneRecipes(c.recipes)
}

// Len returns the number of recipes.
func (c Cookbook) Len() int {
	return len(c.recipes)
}

// Clone returns an independent copy of the cookbook.
func (c Cookbook) Clone() Cookbook {
	return Cookbook{recipes: cloneRecipes(c.recipes)}
}

// Add appends r to the end of the cookbook.
func (c *Cookbook) Add(r Recipe) error {
	if c.Contains(r.Name) {
		return fmt.Errorf("add %q: %w", r.Name, ErrDuplicate)
	}
	c.recipes = append(c.recipes, r.Clone())
	return nil
}

// RemoveAt removes the recipe at index.
func (c *Cookbook) RemoveAt(index int) error {
	if index < 0 || index >= len(c.recipes) {
		return fmt.Errorf("remove recipe %d of %d: %w", index, len(c.recipes), ErrOutOfRange)
	}
	c.recipes = slices.Delete(c.recipes, index, index+1)
	return nil
}

// Remove removes the recipe titled name.
func (c *Cookbook) Remove(name string) error {
	idx := c.Index(name)
	if idx < 0 {
		return fmt.Errorf("remove %q: %w", name, ErrNotFound)
	}
	return c.RemoveAt(idx)
}

// Replace puts r where the recipe titled name was. r may carry a new name as
// long as no other recipe already uses it.
func (c *Cookbook) Replace(name string, r Recipe) error {
	idx := c.Index(name)
	if idx < 0 {
		return fmt.Errorf("replace %q: %w", name, ErrNotFound)
	}
	if r.Name != name && c.Contains(r.Name) {
		return fmt.Errorf("replace %q with %q: %w", name, r.Name, ErrDuplicate)
	}
	c.recipes[idx] = r.Clone()
	return nil
}

// SetFavorite flags or unflags the recipe titled name.
func (c *Cookbook) SetFavorite(name string, fav bool) error {
	idx := c.Index(name)
	if idx < 0 {
		return fmt.Errorf("favorite %q: %w", name, ErrNotFound)
	}
	c.recipes[idx].Fav = fav
	return nil
}

// Favorites returns the recipes flagged as favorite, in order.
func (c Cookbook) Favorites() []Recipe {
	return c.filter(func(r Recipe) bool { return r.Fav })
}

// WithLabel returns the recipes filed under label, in order. An unknown label
// is an error; a known label with no recipes is an empty result.
func (c Cookbook) WithLabel(label string) ([]Recipe, error) {
	normalized, err := NormalizeLabel(label)
	if err != nil {
		return nil, err
	}
	return c.filter(func(r Recipe) bool { return r.Label == normalized }), nil
}

// Search returns recipes whose name contains query, ignoring case. A blank
// query matches everything.
func (c Cookbook) Search(query string) []Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Recipes()
	}
	return c.filter(func(r Recipe) bool {
		return strings.Contains(strings.ToLower(r.Name), q)
	})
}

// Contains reports whether a recipe titled name exists.
func (c Cookbook) Contains(name string) bool {
	return c.Index(name) >= 0
}

// Index returns the position of the recipe titled name, or -1.
func (c Cookbook) Index(name string) int {
	return slices.IndexFunc(c.recipes, func(r Recipe) bool { return r.Name == name })
}

// Get returns the recipe titled name.
func (c Cookbook) Get(name string) (Recipe, bool) {
	idx := c.Index(name)
	if idx < 0 {
		return Recipe{}, false
	}
	return c.recipes[idx].Clone(), true
}

func (c Cookbook) filter(keep func(Recipe) bool) []Recipe {
	out := make([]Recipe, 0)
	for _, r := range c.recipes {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func cloneRecipes(recipes []Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}
