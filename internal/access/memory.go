package access

import (
	"context"
	"sync"

	"github.com/five82/foodie/internal/cookbook"
)

// Memory keeps a cookbook in process memory. It backs --demo mode and tests.
type Memory struct {
	mu   sync.RWMutex
	book cookbook.Cookbook
}

// NewMemory returns a Memory backend seeded with recipes.
func NewMemory(recipes ...cookbook.Recipe) *Memory {
	return &Memory{book: cookbook.New(recipes...)}
}

func (m *Memory) Cookbook(ctx context.Context) (cookbook.Cookbook, error) {
	if err := ctx.Err(); err != nil {
		return cookbook.Cookbook{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.book.Clone(), nil
}

func (m *Memory) AddRecipe(ctx context.Context, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Add(r)
}

func (m *Memory) EditRecipe(ctx context.Context, name string, r cookbook.Recipe) error {
	if err := check(r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Replace(name, r)
}

func (m *Memory) DeleteRecipe(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.book.Remove(name)
}

func (m *Memory) Describe() string {
	return "memory"
}
