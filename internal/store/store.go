// Package store persists a cookbook in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/five82/foodie/internal/cookbook"
)

const schema = `
CREATE TABLE IF NOT EXISTS recipes (
	name        TEXT PRIMARY KEY,
	position    INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	portions    INTEGER NOT NULL DEFAULT 0,
	label       TEXT NOT NULL DEFAULT '',
	fav         INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS ingredients (
	recipe   TEXT NOT NULL REFERENCES recipes(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	amount   REAL NOT NULL DEFAULT 0,
	unit     TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (recipe, position)
);
`

// Store is a SQLite-backed cookbook.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps :memory: databases and the foreign_keys pragma consistent.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the whole cookbook in stored order.
func (s *Store) Load(ctx context.Context) (cookbook.Cookbook, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, description, portions, label, fav FROM recipes ORDER BY position`)
	if err != nil {
		return cookbook.Cookbook{}, fmt.Errorf("query recipes: %w", err)
	}
	var recipes []cookbook.Recipe
	index := map[string]int{}
	for rows.Next() {
		var r cookbook.Recipe
		var fav int
		if err := rows.Scan(&r.Name, &r.Description, &r.Portions, &r.Label, &fav); err != nil {
			_ = rows.Close()
			return cookbook.Cookbook{}, fmt.Errorf("scan recipe: %w", err)
		}
		r.Fav = fav != 0
		index[r.Name] = len(recipes)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return cookbook.Cookbook{}, fmt.Errorf("iterate recipes: %w", err)
	}
	_ = rows.Close()

	ingRows, err := s.db.QueryContext(ctx,
		`SELECT recipe, name, amount, unit FROM ingredients ORDER BY recipe, position`)
	if err != nil {
		return cookbook.Cookbook{}, fmt.Errorf("query ingredients: %w", err)
	}
	defer func() { _ = ingRows.Close() }()
	for ingRows.Next() {
		var recipe string
		var ing cookbook.Ingredient
		if err := ingRows.Scan(&recipe, &ing.Name, &ing.Amount, &ing.Unit); err != nil {
			return cookbook.Cookbook{}, fmt.Errorf("scan ingredient: %w", err)
		}
		if idx, ok := index[recipe]; ok {
			recipes[idx].Ingredients = append(recipes[idx].Ingredients, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return cookbook.Cookbook{}, fmt.Errorf("iterate ingredients: %w", err)
	}
	return cookbook.New(recipes...), nil
}

// Add appends r after the last stored recipe.
func (s *Store) Add(ctx context.Context, r cookbook.Recipe) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := recipeExists(ctx, tx, r.Name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("add %q: %w", r.Name, cookbook.ErrDuplicate)
		}
		var next int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM recipes`).Scan(&next); err != nil {
			return fmt.Errorf("next position: %w", err)
		}
		return insertRecipe(ctx, tx, r, next)
	})
}

// Replace swaps the recipe titled name for r, keeping its position.
func (s *Store) Replace(ctx context.Context, name string, r cookbook.Recipe) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var position int
		err := tx.QueryRowContext(ctx, `SELECT position FROM recipes WHERE name = ?`, name).Scan(&position)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("replace %q: %w", name, cookbook.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lookup %q: %w", name, err)
		}
		if r.Name != name {
			exists, err := recipeExists(ctx, tx, r.Name)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("replace %q with %q: %w", name, r.Name, cookbook.ErrDuplicate)
			}
		}
		if err := deleteRecipe(ctx, tx, name); err != nil {
			return err
		}
		return insertRecipe(ctx, tx, r, position)
	})
}

// Delete removes the recipe titled name and closes the gap it leaves.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var position int
		err := tx.QueryRowContext(ctx, `SELECT position FROM recipes WHERE name = ?`, name).Scan(&position)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("delete %q: %w", name, cookbook.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lookup %q: %w", name, err)
		}
		if err := deleteRecipe(ctx, tx, name); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE recipes SET position = position - 1 WHERE position > ?`, position); err != nil {
			return fmt.Errorf("compact positions: %w", err)
		}
		return nil
	})
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func recipeExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM recipes WHERE name = ?`, name).Scan(&n); err != nil {
		return false, fmt.Errorf("lookup %q: %w", name, err)
	}
	return n > 0, nil
}

func deleteRecipe(ctx context.Context, tx *sql.Tx, name string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe = ?`, name); err != nil {
		return fmt.Errorf("delete ingredients of %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	return nil
}

func insertRecipe(ctx context.Context, tx *sql.Tx, r cookbook.Recipe, position int) error {
	fav := 0
	if r.Fav {
		fav = 1
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO recipes (name, position, description, portions, label, fav) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Name, position, r.Description, r.Portions, r.Label, fav); err != nil {
		return fmt.Errorf("insert %q: %w", r.Name, err)
	}
	for i, ing := range r.Ingredients {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ingredients (recipe, position, name, amount, unit) VALUES (?, ?, ?, ?, ?)`,
			r.Name, i, ing.Name, ing.Amount, ing.Unit); err != nil {
			return fmt.Errorf("insert ingredient %q of %q: %w", ing.Name, r.Name, err)
		}
	}
	return nil
}
