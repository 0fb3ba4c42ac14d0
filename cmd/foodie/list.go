package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/foodie/internal/access"
	"github.com/five82/foodie/internal/app"
	"github.com/five82/foodie/internal/cookbook"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		label     string
		favorites bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print recipes",
		Long: `Print the recipes in the cookbook.

Examples:
  foodie list                    # Every recipe
  foodie list --label dessert    # Only desserts
  foodie list --favorites        # Only favorites
  foodie list --json             # Output as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			book, closeBook, err := app.OpenBook(cmd.Context(), cfg, opts.demo)
			if err != nil {
				return err
			}
			defer func() { _ = closeBook() }()

			cb, err := book.Cookbook(cmd.Context())
			if err != nil {
				return fmt.Errorf("load cookbook: %w", err)
			}
			recipes, err := selectRecipes(cb, label, favorites)
			if err != nil {
				return err
			}

			if jsonOut {
				return listJSON(cmd.OutOrStdout(), recipes)
			}
			return listTable(cmd.OutOrStdout(), recipes)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "only recipes with this label (breakfast, lunch, dinner, dessert)")
	cmd.Flags().BoolVarP(&favorites, "favorites", "f", false, "only favorite recipes")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	return cmd
}

// selectRecipes applies the label and favorite filters in cookbook order.
func selectRecipes(cb cookbook.Cookbook, label string, favorites bool) ([]cookbook.Recipe, error) {
	if favorites {
		cb = cookbook.New(cb.Favorites()...)
	}
	if label == "" {
		return cb.Recipes(), nil
	}
	return cb.WithLabel(label)
}

func listJSON(w io.Writer, recipes []cookbook.Recipe) error {
	if recipes == nil {
		recipes = []cookbook.Recipe{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(access.RecipeList{Recipes: recipes})
}

func listTable(w io.Writer, recipes []cookbook.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, "No recipes.")
		return err
	}

	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		fav := ""
		if r.Fav {
			fav = "★"
		}
		portions := "-"
		if r.Portions > 0 {
			portions = strconv.Itoa(r.Portions)
		}
		label := r.Label
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{fav, r.Name, label, portions, strconv.Itoa(len(r.Ingredients))})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "Name", "Label", "Portions", "Ingredients").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
