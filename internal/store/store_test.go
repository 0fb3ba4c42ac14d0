package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/five82/foodie/internal/cookbook"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "cookbook.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRecipes() []cookbook.Recipe {
	return []cookbook.Recipe{
		{
			Name: "Bløtkake", Description: "Den beste", Portions: 8, Label: "dessert", Fav: true,
			Ingredients: []cookbook.Ingredient{{Name: "Mel", Amount: 200, Unit: "g"}, {Name: "Egg", Amount: 4, Unit: "stk"}},
		},
		{Name: "Kjøttkaker", Description: "Mormor sin", Portions: 4, Label: "dinner"},
		{Name: "Wok", Ingredients: []cookbook.Ingredient{{Name: "Ris", Amount: 3, Unit: "dl"}, {Name: "Soyasaus"}}},
	}
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	for _, r := range sampleRecipes() {
		if err := s.Add(context.Background(), r); err != nil {
			t.Fatalf("Add(%q): %v", r.Name, err)
		}
	}
}

func TestStore_AddAndLoadRoundTrip(t *testing.T) {
	s := openTemp(t)
	seed(t, s)

	cb, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(sampleRecipes(), cb.Recipes(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_AddDuplicate(t *testing.T) {
	s := openTemp(t)
	seed(t, s)
	err := s.Add(context.Background(), cookbook.Recipe{Name: "Wok"})
	if !errors.Is(err, cookbook.ErrDuplicate) {
		t.Fatalf("Add duplicate error = %v, want ErrDuplicate", err)
	}
}

func TestStore_ReplaceKeepsPosition(t *testing.T) {
	s := openTemp(t)
	seed(t, s)
	ctx := context.Background()

	bread := cookbook.Recipe{Name: "Brød", Portions: 2, Ingredients: []cookbook.Ingredient{{Name: "Gjær", Amount: 1, Unit: "pk"}}}
	if err := s.Replace(ctx, "Kjøttkaker", bread); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	cb, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cb.Index("Brød"); got != 1 {
		t.Fatalf("Index(Brød) = %d, want 1", got)
	}
	if cb.Contains("Kjøttkaker") {
		t.Fatalf("replaced recipe still present")
	}
	got, _ := cb.Get("Brød")
	if diff := cmp.Diff(bread, got); diff != "" {
		t.Fatalf("replaced recipe mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ReplaceErrors(t *testing.T) {
	s := openTemp(t)
	seed(t, s)
	ctx := context.Background()

	if err := s.Replace(ctx, "Pannekaker", cookbook.Recipe{Name: "Pannekaker"}); !errors.Is(err, cookbook.ErrNotFound) {
		t.Fatalf("Replace unknown error = %v, want ErrNotFound", err)
	}
	if err := s.Replace(ctx, "Wok", cookbook.Recipe{Name: "Bløtkake"}); !errors.Is(err, cookbook.ErrDuplicate) {
		t.Fatalf("Replace onto existing error = %v, want ErrDuplicate", err)
	}
}

func TestStore_DeleteCompactsPositions(t *testing.T) {
	s := openTemp(t)
	seed(t, s)
	ctx := context.Background()

	if err := s.Delete(ctx, "Bløtkake"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := s.Add(ctx, cookbook.Recipe{Name: "Taco"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	cb, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var names []string
	for _, r := range cb.Recipes() {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"Kjøttkaker", "Wok", "Taco"}, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if err := s.Delete(ctx, "Bløtkake"); !errors.Is(err, cookbook.ErrNotFound) {
		t.Fatalf("Delete twice error = %v, want ErrNotFound", err)
	}
}

func TestStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookbook.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	seed(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	cb, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cb.Len() != 3 {
		t.Fatalf("Len = %d after reopen, want 3", cb.Len())
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("Open(\"\") returned nil error")
	}
}
