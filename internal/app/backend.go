package app

import (
	"context"
	"fmt"

	"github.com/five82/foodie/internal/access"
	"github.com/five82/foodie/internal/config"
	"github.com/five82/foodie/internal/cookbook"
	"github.com/five82/foodie/internal/store"
)

// OpenBook opens the cookbook backend named by cfg. The returned close
// function releases it and is never nil. With demo set an in-memory sample
// cookbook is used instead.
func OpenBook(ctx context.Context, cfg config.Config, demo bool) (access.Cookbook, func() error, error) {
	noop := func() error { return nil }

	if demo {
		return access.NewMemory(DemoRecipes()...), noop, nil
	}

	switch cfg.Backend {
	case config.BackendRemote:
		client, err := access.NewRemote(cfg.APIBind)
		if err != nil {
			return nil, noop, fmt.Errorf("init remote cookbook: %w", err)
		}
		return client, noop, nil
	default:
		db, err := store.Open(ctx, cfg.DataPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open cookbook store: %w", err)
		}
		return access.NewLocal(db), db.Close, nil
	}
}

// DemoRecipes returns the sample cookbook used by --demo.
func DemoRecipes() []cookbook.Recipe {
	return []cookbook.Recipe{
		demoRecipe("Pannekaker", "Rør mel og melk klumpfritt. Tilsett egg og stek tynne kaker.", 4, "breakfast", true,
			cookbook.Ingredient{Name: "Hvetemel", Amount: 3, Unit: "dl"},
			cookbook.Ingredient{Name: "Melk", Amount: 6, Unit: "dl"},
			cookbook.Ingredient{Name: "Egg", Amount: 3, Unit: "stk"},
			cookbook.Ingredient{Name: "Salt"},
		),
		demoRecipe("Kyllingsalat", "Bland alt og server med godt brød.", 2, "lunch", false,
			cookbook.Ingredient{Name: "Kyllingfilet", Amount: 300, Unit: "g"},
			cookbook.Ingredient{Name: "Salat", Amount: 1, Unit: "pk"},
			cookbook.Ingredient{Name: "Olivenolje", Amount: 2, Unit: "ss"},
		),
		demoRecipe("Kjøttkaker", "Form kakene, brun dem og la dem småkoke i brun saus.", 4, "dinner", false,
			cookbook.Ingredient{Name: "Kjøttdeig", Amount: 400, Unit: "g"},
			cookbook.Ingredient{Name: "Potetmel", Amount: 1, Unit: "ss"},
			cookbook.Ingredient{Name: "Melk", Amount: 1, Unit: "dl"},
		),
		demoRecipe("Bløtkake", "Del bunnen i tre og fyll med krem og bær.", 8, "dessert", true,
			cookbook.Ingredient{Name: "Kakebunn", Amount: 1, Unit: "stk"},
			cookbook.Ingredient{Name: "Kremfløte", Amount: 5, Unit: "dl"},
			cookbook.Ingredient{Name: "Jordbær", Amount: 0.5, Unit: "kg"},
		),
	}
}

func demoRecipe(name, description string, portions int, label string, fav bool, ings ...cookbook.Ingredient) cookbook.Recipe {
	r := cookbook.Recipe{
		Name:        name,
		Description: description,
		Portions:    portions,
		Label:       label,
		Fav:         fav,
	}
	for _, ing := range ings {
		r.AddIngredient(ing)
	}
	return r
}
