package cookbook

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fixture struct {
	cake, meatballs, wok Recipe
	book                 Cookbook
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	honey, err := NewIngredient("Mel", 200, "g")
	if err != nil {
		t.Fatalf("NewIngredient: %v", err)
	}
	egg, err := NewIngredient("Egg", 2, "stk")
	if err != nil {
		t.Fatalf("NewIngredient: %v", err)
	}
	ingredients := []Ingredient{honey, egg}

	cake := Recipe{Name: "Bløtkake", Description: "Den beste oppskriften på bløtkake!", Portions: 1, Label: "dessert", Fav: true, Ingredients: ingredients}
	meatballs := Recipe{Name: "Kjøttkaker", Description: "Mormor sin oppskrift", Portions: 4, Label: "dinner", Ingredients: ingredients}
	wok := Recipe{Name: "Wok", Description: "Rask middag", Portions: 5, Label: "dinner", Ingredients: ingredients}

	return fixture{cake: cake, meatballs: meatballs, wok: wok, book: New(cake, meatballs)}
}

func names(recipes []Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestNew_KeepsOrder(t *testing.T) {
	f := newFixture(t)
	if diff := cmp.Diff([]Recipe{f.cake, f.meatballs}, f.book.Recipes()); diff != "" {
		t.Fatalf("Recipes() mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var cb Cookbook
	if cb.Len() != 0 {
		t.Fatalf("Len = %d, want 0", cb.Len())
	}
	if diff := cmp.Diff([]Recipe{}, cb.Recipes(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Recipes() mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_AppendsAndRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	if err := f.book.Add(f.wok); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Bløtkake", "Kjøttkaker", "Wok"}, names(f.book.Recipes())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if err := f.book.Add(f.wok); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Add duplicate error = %v, want ErrDuplicate", err)
	}
}

func TestRemoveAt(t *testing.T) {
	f := newFixture(t)
	if err := f.book.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Kjøttkaker"}, names(f.book.Recipes())); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	for _, idx := range []int{-1, 1, 5} {
		if err := f.book.RemoveAt(idx); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("RemoveAt(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
}

func TestRemoveByName(t *testing.T) {
	f := newFixture(t)
	if err := f.book.Remove("Bløtkake"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Kjøttkaker"}, names(f.book.Recipes())); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := f.book.Remove("Pannekaker"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove unknown error = %v, want ErrNotFound", err)
	}
}

func TestReplace_KeepsIndex(t *testing.T) {
	f := newFixture(t)
	index := f.book.Index("Bløtkake")
	bread, err := NewRecipe("Brød")
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}

	if err := f.book.Replace("Bløtkake", bread); err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if f.book.Contains("Bløtkake") {
		t.Fatalf("old recipe still present")
	}
	if !f.book.Contains("Brød") {
		t.Fatalf("new recipe missing")
	}
	if got := f.book.Index("Brød"); got != index {
		t.Fatalf("Index(Brød) = %d, want %d", got, index)
	}
}

func TestReplace_Errors(t *testing.T) {
	f := newFixture(t)
	if err := f.book.Replace("Pannekaker", f.wok); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Replace unknown error = %v, want ErrNotFound", err)
	}
	renamed := f.cake.Clone()
	renamed.Name = "Kjøttkaker"
	if err := f.book.Replace("Bløtkake", renamed); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Replace onto existing title error = %v, want ErrDuplicate", err)
	}
	same := f.cake.Clone()
	same.Description = "ny"
	if err := f.book.Replace("Bløtkake", same); err != nil {
		t.Fatalf("Replace with same title returned error: %v", err)
	}
}

func TestFavorites(t *testing.T) {
	f := newFixture(t)
	if diff := cmp.Diff([]Recipe{f.cake}, f.book.Favorites()); diff != "" {
		t.Fatalf("Favorites mismatch (-want +got):\n%s", diff)
	}
	if err := f.book.SetFavorite("Bløtkake", false); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if got := f.book.Favorites(); len(got) != 0 {
		t.Fatalf("Favorites = %v, want empty", names(got))
	}
	if err := f.book.SetFavorite("Pannekaker", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetFavorite unknown error = %v, want ErrNotFound", err)
	}
}

func TestWithLabel(t *testing.T) {
	f := newFixture(t)

	dinner, err := f.book.WithLabel("dinner")
	if err != nil {
		t.Fatalf("WithLabel(dinner) returned error: %v", err)
	}
	if diff := cmp.Diff([]Recipe{f.meatballs}, dinner); diff != "" {
		t.Fatalf("WithLabel(dinner) mismatch (-want +got):\n%s", diff)
	}

	breakfast, err := f.book.WithLabel("breakfast")
	if err != nil {
		t.Fatalf("WithLabel(breakfast) returned error: %v", err)
	}
	if len(breakfast) != 0 {
		t.Fatalf("WithLabel(breakfast) = %v, want empty", names(breakfast))
	}

	if _, err := f.book.WithLabel("Snacks"); !errors.Is(err, ErrInvalidLabel) {
		t.Fatalf("WithLabel(Snacks) error = %v, want ErrInvalidLabel", err)
	}
}

func TestContains(t *testing.T) {
	f := newFixture(t)
	if !f.book.Contains("Bløtkake") {
		t.Fatalf("Contains(Bløtkake) = false, want true")
	}
	if f.book.Contains("Pannekaker") {
		t.Fatalf("Contains(Pannekaker) = true, want false")
	}
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	_ = f.book.Add(f.wok)

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"Bløtkake", "Kjøttkaker", "Wok"}},
		{"KAKE", []string{"Bløtkake", "Kjøttkaker"}},
		{"wo", []string{"Wok"}},
		{"pizza", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, names(f.book.Search(tc.query))); diff != "" {
				t.Fatalf("Search(%q) mismatch (-want +got):\n%s", tc.query, diff)
			}
		})
	}
}

func TestRecipesReturnsCopies(t *testing.T) {
	f := newFixture(t)
	got := f.book.Recipes()
	got[0].Name = "changed"
	got[0].Ingredients[0].Name = "changed"

	again, _ := f.book.Get("Bløtkake")
	if again.Ingredients[0].Name != "Mel" {
		t.Fatalf("ingredient mutated through Recipes(): %q", again.Ingredients[0].Name)
	}
	if !f.book.Contains("Bløtkake") {
		t.Fatalf("recipe renamed through Recipes()")
	}
}
