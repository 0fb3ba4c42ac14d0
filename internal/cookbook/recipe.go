package cookbook

import (
	"fmt"
	"slices"
	"strings"
)

// Labels lists the categories a recipe may be filed under.
var Labels = []string{"breakfast", "lunch", "dinner", "dessert"}

// Recipe is a named dish with its ingredients.
type Recipe struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Portions    int          `json:"portions"`
	Label       string       `json:"label,omitempty"`
	Fav         bool         `json:"fav"`
	Ingredients []Ingredient `json:"ingredients"`
}

// NewRecipe returns an empty recipe with a validated name.
func NewRecipe(name string) (Recipe, error) {
	name = strings.TrimSpace(name)
	if err := validateName("title", name); err != nil {
		return Recipe{}, err
	}
	return Recipe{Name: name}, nil
}

// SetPortions sets the portion count. Zero clears it.
func (r *Recipe) SetPortions(n int) error {
	if n < 0 {
		return &ValidationError{Field: "portions", Message: "Must not be negative"}
	}
	r.Portions = n
	return nil
}

// SetLabel files the recipe under label.
func (r *Recipe) SetLabel(label string) error {
	normalized, err := NormalizeLabel(label)
	if err != nil {
		return err
	}
	r.Label = normalized
	return nil
}

// RemoveLabel clears the label.
func (r *Recipe) RemoveLabel() {
	r.Label = ""
}

// AddIngredient appends ing to the ingredient list.
func (r *Recipe) AddIngredient(ing Ingredient) {
	r.Ingredients = append(r.Ingredients, ing)
}

// RemoveIngredient removes the ingredient at index.
func (r *Recipe) RemoveIngredient(index int) error {
	if index < 0 || index >= len(r.Ingredients) {
		return fmt.Errorf("ingredient %d of %d: %w", index, len(r.Ingredients), ErrOutOfRange)
	}
	r.Ingredients = slices.Delete(r.Ingredients, index, index+1)
	return nil
}

// Validate checks every field of the recipe.
func (r Recipe) Validate() error {
	if err := validateName("title", r.Name); err != nil {
		return err
	}
	if r.Portions < 0 {
		return &ValidationError{Field: "portions", Message: "Must not be negative"}
	}
	if r.Label != "" && !IsLabel(r.Label) {
		return fmt.Errorf("label %q: %w", r.Label, ErrInvalidLabel)
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = slices.Clone(r.Ingredients)
	return out
}

// IsLabel reports whether label is one of Labels.
func IsLabel(label string) bool {
	return slices.Contains(Labels, label)
}

// NormalizeLabel lower-cases label and checks it is known.
func NormalizeLabel(label string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if !IsLabel(normalized) {
		return "", fmt.Errorf("label %q: %w", label, ErrInvalidLabel)
	}
	return normalized, nil
}
