package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodie/internal/cookbook"
)

// Filter selects which recipes the list shows.
type Filter int

const (
	FilterAll Filter = iota
	FilterFavorites
	FilterBreakfast
	FilterLunch
	FilterDinner
	FilterDessert
)

var filterNames = []string{"all", "favorites", "breakfast", "lunch", "dinner", "dessert"}

// String returns the name the filter is saved under in prefs.
func (f Filter) String() string {
	if int(f) < 0 || int(f) >= len(filterNames) {
		return filterNames[0]
	}
	return filterNames[f]
}

// Title returns the display name of the filter.
func (f Filter) Title() string {
	return titleCase(f.String())
}

// label returns the recipe label the filter selects, or "".
func (f Filter) label() string {
	if f < FilterBreakfast {
		return ""
	}
	return f.String()
}

// Next returns the following filter in the cycle.
func (f Filter) Next() Filter {
	return Filter(wrap(int(f)+1, len(filterNames)))
}

// ParseFilter maps a saved filter name back to a Filter, defaulting to All.
func ParseFilter(name string) Filter {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range filterNames {
		if candidate == name {
			return Filter(i)
		}
	}
	return FilterAll
}

// visibleRecipes returns the recipes that pass the filter and search query, in cookbook order.
func (m Model) visibleRecipes() []cookbook.Recipe {
	cb := m.snapshot.Cookbook
	var recipes []cookbook.Recipe
	switch m.filterMode {
	case FilterAll:
		recipes = cb.Recipes()
	case FilterFavorites:
		recipes = cb.Favorites()
	default:
		recipes, _ = cb.WithLabel(m.filterMode.label())
	}
	if q := strings.TrimSpace(m.searchQuery); q != "" {
		recipes = cookbook.New(recipes...).Search(q)
	}
	return recipes
}

// selectedRecipe returns the highlighted recipe in the list.
func (m Model) selectedRecipe() (cookbook.Recipe, bool) {
	recipes := m.visibleRecipes()
	if m.selectedRow < 0 || m.selectedRow >= len(recipes) {
		return cookbook.Recipe{}, false
	}
	return recipes[m.selectedRow], true
}

// selectByName moves the selection to the recipe titled name if it is visible.
func (m *Model) selectByName(name string) bool {
	for i, r := range m.visibleRecipes() {
		if r.Name == name {
			m.selectedRow = i
			return true
		}
	}
	return false
}

// updateSelection keeps the selection on the same recipe when the list
// changes, clamping it when that recipe is gone.
func (m *Model) updateSelection(previous string) {
	if previous != "" && m.selectByName(previous) {
		return
	}
	count := len(m.visibleRecipes())
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// handleListKey processes keyboard input for the list view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.CycleFilter):
		current, _ := m.selectedRecipe()
		m.filterMode = m.filterMode.Next()
		m.updateSelection(current.Name)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.SetValue(m.searchQuery)
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			current, _ := m.selectedRecipe()
			m.searchQuery = ""
			m.updateSelection(current.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.openForm(newRecipeForm())
	}

	recipes := m.visibleRecipes()
	if len(recipes) == 0 {
		return m, nil
	}
	selected := recipes[min(m.selectedRow, len(recipes)-1)]

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(recipes)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = len(recipes) - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.selectedRow = min(m.selectedRow+m.listPageSize()/2, len(recipes)-1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.selectedRow = max(m.selectedRow-m.listPageSize()/2, 0)
	case key.Matches(msg, m.keys.Open):
		return m.openRecipe(selected.Name), nil
	case key.Matches(msg, m.keys.Edit):
		return m.openForm(editRecipeForm(selected))
	case key.Matches(msg, m.keys.Favorite):
		return m, m.toggleFavoriteCmd(selected)
	case key.Matches(msg, m.keys.Delete):
		m.modal = newConfirmDelete(selected.Name, m.deleteCmd(selected.Name))
	}
	return m, nil
}

// handleSearchInput handles keyboard input while the search prompt is open.
// The list narrows as the user types.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, _ := m.selectedRecipe()
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchQuery = strings.TrimSpace(m.searchInput.Value())
		m.updateSelection(current.Name)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.updateSelection(current.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.updateSelection(current.Name)
	return m, cmd
}

// listPageSize returns how many rows fit in the list pane.
func (m Model) listPageSize() int {
	return max(m.height-4, 1)
}

// renderList renders the list view: recipe rows on the left and a preview of
// the selected recipe on the right.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // header + cmdbar
	if m.searchActive {
		contentHeight--
	}

	var body string
	if m.snapshot.Cookbook.Len() == 0 {
		emptyMsg := styles.MutedText.Render("No recipes yet. Press n to create one.")
		body = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	} else if m.width < LayoutCompactWidth {
		body = m.renderTitledBox(m.listTitle(), m.renderListRows(m.width-2, m.theme.FocusBg, contentHeight-2), m.width, contentHeight, true)
	} else {
		listWidth := m.width * 45 / 100
		if m.width >= LayoutExtraWideWidth {
			listWidth = m.width * 35 / 100
		}
		previewWidth := m.width - listWidth

		listPane := m.renderTitledBox(m.listTitle(), m.renderListRows(listWidth-2, m.theme.FocusBg, contentHeight-2), listWidth, contentHeight, true)

		var preview string
		if r, ok := m.selectedRecipe(); ok {
			preview = m.renderRecipeContent(r, previewWidth-4, m.theme.SurfaceAlt)
		} else {
			preview = NewBgStyle(m.theme.SurfaceAlt).Render("No recipe matches", styles.MutedText)
		}
		previewPane := m.renderTitledBox("Preview", preview, previewWidth, contentHeight, false)
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	}

	if m.searchActive {
		bg := NewBgStyle(m.theme.Surface)
		prompt := bg.Render("/", styles.AccentText) + m.searchInput.View()
		return body + "\n" + bg.FillLine(prompt, m.width)
	}
	return body
}

// renderListRows renders the visible recipes, scrolled so the selection stays in view.
func (m Model) renderListRows(width int, bgColor string, height int) string {
	recipes := m.visibleRecipes()
	if len(recipes) == 0 {
		return NewBgStyle(bgColor).Render("No recipes match "+m.filterMode.Title(), m.theme.Styles().MutedText)
	}

	offset := 0
	if height > 0 && m.selectedRow >= height {
		offset = m.selectedRow - height + 1
	}

	var lines []string
	for i := offset; i < len(recipes); i++ {
		if height > 0 && len(lines) >= height {
			break
		}
		selected := i == m.selectedRow
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		content := m.formatRecipeRow(recipes[i], width, rowBg, selected)
		lines = append(lines, NewBgStyle(rowBg).FillLine(content, width))
	}
	return strings.Join(lines, "\n")
}

// formatRecipeRow formats one list row: "★ Title · Label 4p 6 ingr".
// Selected rows use SelectionText for every part to keep contrast.
func (m Model) formatRecipeRow(r cookbook.Recipe, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	star := ternary(r.Fav, "★", " ")
	meta := []string{}
	if r.Label != "" {
		meta = append(meta, titleCase(r.Label))
	}
	if r.Portions > 0 {
		meta = append(meta, fmt.Sprintf("%dp", r.Portions))
	}
	if width >= LayoutCompactWidth/2 {
		meta = append(meta, fmt.Sprintf("%d ingr", len(r.Ingredients)))
	}
	metaStr := strings.Join(meta, " ")

	titleWidth := max(width-len([]rune(metaStr))-6, 8)

	var starStyle, titleStyle, sepStyle, metaStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		starStyle, titleStyle, sepStyle, metaStyle = selText, selText, selText, selText
	} else {
		starStyle = styles.WarningText
		titleStyle = styles.Text
		sepStyle = styles.FaintText
		metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.LabelColor(r.Label)))
	}

	row := bg.Render(star, starStyle) + bg.Space() + bg.Render(truncate(r.Name, titleWidth), titleStyle)
	if metaStr != "" {
		row += bg.Render(" · ", sepStyle) + bg.Render(metaStr, metaStyle)
	}
	return row
}

// listTitle returns the list pane title with the filter and search state.
func (m Model) listTitle() string {
	total := m.snapshot.Cookbook.Len()
	visible := len(m.visibleRecipes())
	title := fmt.Sprintf("Recipes (%d)", total)
	if m.filterMode != FilterAll || m.searchQuery != "" {
		title = fmt.Sprintf("Recipes (%d/%d) %s", visible, total, m.filterMode.Title())
	}
	if q := strings.TrimSpace(m.searchQuery); q != "" {
		title += " /" + truncate(q, 16)
	}
	return title
}
