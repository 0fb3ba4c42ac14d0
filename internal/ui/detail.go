package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodie/internal/cookbook"
)

// openRecipe switches to the recipe view for the recipe titled name.
func (m Model) openRecipe(name string) Model {
	m.recipeName = name
	m.currentView = ViewRecipe
	m.recipeViewport.GotoTop()
	m.updateRecipeViewport()
	return m
}

// currentRecipe returns the recipe open in the recipe view.
func (m Model) currentRecipe() (cookbook.Recipe, bool) {
	return m.snapshot.Cookbook.Get(m.recipeName)
}

func (m *Model) initRecipeViewport() {
	m.recipeViewport = viewport.New(max(m.width-4, 1), max(m.height-4, 1))
	m.recipeViewport.Style = lipgloss.NewStyle()
}

// updateRecipeViewport resizes the viewport and re-renders the open recipe.
func (m *Model) updateRecipeViewport() {
	if m.recipeViewport.Width == 0 {
		m.initRecipeViewport()
	}
	// Box height = m.height - 2 (header, cmdbar); inner = box - 2 borders
	m.recipeViewport.Width = max(m.width-4, 1)
	m.recipeViewport.Height = max(m.height-4, 1)
	m.recipeViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	r, ok := m.currentRecipe()
	if !ok {
		m.recipeViewport.SetContent("")
		return
	}
	m.recipeViewport.SetContent(m.renderRecipeContent(r, m.recipeViewport.Width, m.theme.FocusBg))
}

// handleRecipeKey processes keyboard input for the recipe view.
func (m Model) handleRecipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.currentRecipe()
	if !ok {
		m.currentView = ViewList
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewList
		m.selectByName(r.Name)
	case key.Matches(msg, m.keys.Edit):
		return m.openForm(editRecipeForm(r))
	case key.Matches(msg, m.keys.Favorite):
		return m, m.toggleFavoriteCmd(r)
	case key.Matches(msg, m.keys.Delete):
		m.modal = newConfirmDelete(r.Name, m.deleteCmd(r.Name))
	case key.Matches(msg, m.keys.Down):
		m.recipeViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.recipeViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.recipeViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.recipeViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.recipeViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.recipeViewport.HalfPageUp()
	}
	return m, nil
}

// renderRecipeView renders the full-screen recipe view.
func (m Model) renderRecipeView() string {
	contentHeight := m.height - 2
	title := "Recipe"
	if r, ok := m.currentRecipe(); ok {
		title = truncate(r.Name, max(m.width-10, 10))
	}
	return m.renderTitledBox(title, m.recipeViewport.View(), m.width, contentHeight, true)
}

// renderRecipeContent renders a recipe's details for a pane of the given width.
func (m Model) renderRecipeContent(r cookbook.Recipe, width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	width = max(width, 10)

	var b strings.Builder

	b.WriteString(bg.Render(r.Name, styles.Text.Bold(true)))
	b.WriteString("\n")

	var badges []string
	if r.Label != "" {
		badges = append(badges, styles.LabelBadge(r.Label).Render(titleCase(r.Label)))
	}
	if r.Fav {
		badges = append(badges, bg.Render("★ Favorite", styles.WarningText))
	}
	badges = append(badges,
		bg.Render("Portions:", styles.MutedText)+bg.Space()+bg.Render(formatPortions(r.Portions), styles.Text))
	b.WriteString(bg.Join(badges, "  "))
	b.WriteString("\n\n")

	b.WriteString(bg.Render("Description", styles.AccentText.Bold(true)))
	b.WriteString("\n")
	if strings.TrimSpace(r.Description) == "" {
		b.WriteString(bg.Render("No description", styles.FaintText))
	} else {
		wrapped := lipgloss.NewStyle().Width(width).Render(r.Description)
		for i, line := range strings.Split(wrapped, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(bg.Render(strings.TrimRight(line, " "), styles.Text))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(bg.Render(fmt.Sprintf("Ingredients (%d)", len(r.Ingredients)), styles.AccentText.Bold(true)))
	if len(r.Ingredients) == 0 {
		b.WriteString("\n")
		b.WriteString(bg.Render("No ingredients", styles.FaintText))
	}
	for _, ing := range r.Ingredients {
		b.WriteString("\n")
		b.WriteString(m.renderIngredientLine(ing, width, styles, bg))
	}
	return b.String()
}

// renderIngredientLine renders "• 200 g  Mel" with the quantity column muted.
func (m Model) renderIngredientLine(ing cookbook.Ingredient, width int, styles Styles, bg BgStyle) string {
	qty := ""
	if ing.HasAmount() {
		qty = strings.TrimSpace(formatAmount(ing.Amount) + " " + ing.Unit)
	}
	name := truncate(ing.Name, max(width-14, 8))
	return bg.Render("•", styles.FaintText) + bg.Space() +
		bg.Render(padRight(qty, 9), styles.MutedText) + bg.Space() +
		bg.Render(name, styles.Text)
}
