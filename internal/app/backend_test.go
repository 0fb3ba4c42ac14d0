package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/five82/foodie/internal/access"
	"github.com/five82/foodie/internal/config"
	"github.com/five82/foodie/internal/cookbook"
)

func TestOpenBook_Demo(t *testing.T) {
	book, closeBook, err := OpenBook(context.Background(), config.Default(), true)
	if err != nil {
		t.Fatalf("OpenBook demo: %v", err)
	}
	defer func() { _ = closeBook() }()

	cb, err := book.Cookbook(context.Background())
	if err != nil {
		t.Fatalf("Cookbook: %v", err)
	}
	if cb.Len() != len(DemoRecipes()) {
		t.Fatalf("demo cookbook has %d recipes, want %d", cb.Len(), len(DemoRecipes()))
	}
}

func TestDemoRecipes_AreValid(t *testing.T) {
	for _, r := range DemoRecipes() {
		if err := r.Validate(); err != nil {
			t.Fatalf("demo recipe %q invalid: %v", r.Name, err)
		}
	}
}

func TestOpenBook_Local(t *testing.T) {
	cfg := config.Default()
	cfg.DataPath = filepath.Join(t.TempDir(), "nested", "cookbook.db")

	book, closeBook, err := OpenBook(context.Background(), cfg, false)
	if err != nil {
		t.Fatalf("OpenBook local: %v", err)
	}
	defer func() {
		if err := closeBook(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	if _, ok := book.(*access.Local); !ok {
		t.Fatalf("book = %T, want *access.Local", book)
	}
	if err := book.AddRecipe(context.Background(), cookbook.Recipe{Name: "Wok"}); err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	if book.Describe() != cfg.DataPath {
		t.Fatalf("Describe = %q, want %q", book.Describe(), cfg.DataPath)
	}
}

func TestOpenBook_Remote(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendRemote

	book, _, err := OpenBook(context.Background(), cfg, false)
	if err != nil {
		t.Fatalf("OpenBook remote: %v", err)
	}
	if _, ok := book.(*access.Remote); !ok {
		t.Fatalf("book = %T, want *access.Remote", book)
	}
}
