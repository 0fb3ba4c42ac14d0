package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodie/internal/cookbook"
)

// Messages shown on the form's error line.
const (
	msgMissingFields   = "You have missing fields"
	msgEmptyFields     = "You have empty fields"
	msgAmountNotNumber = "Invalid input: ingredient amount must be a number"
	msgBadIngredient   = "Invalid Ingredient name"
	msgDuplicateTitle  = "This recipe title already exists"
)

const (
	formLabelColumn     = 13
	formInputWidth      = 32
	formDescriptionRows = 4
)

// formField identifies a focusable element of the recipe form, in tab order.
type formField int

const (
	fieldTitle formField = iota
	fieldPortions
	fieldLabel
	fieldDescription
	fieldIngredientName
	fieldIngredientAmount
	fieldIngredientUnit
	fieldIngredients
	fieldCount
)

// formAction tells the Model what the form wants after a key press.
type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

// recipeForm holds the create/edit recipe form. label and unit are indexes
// into cookbook.Labels and cookbook.Units offset by one; zero means none.
type recipeForm struct {
	editing  bool
	original string
	fav      bool

	focus       formField
	title       textinput.Model
	portions    textinput.Model
	description textarea.Model
	ingName     textinput.Model
	ingAmount   textinput.Model
	label       int
	unit        int

	ingredients []cookbook.Ingredient
	selected    int

	invalid map[formField]bool
	message string
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = formInputWidth
	ti.Prompt = ""
	return ti
}

// newRecipeForm returns an empty form for creating a recipe.
func newRecipeForm() recipeForm {
	desc := textarea.New()
	desc.Placeholder = "How to make it..."
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetWidth(formInputWidth * 2)
	desc.SetHeight(formDescriptionRows)

	f := recipeForm{
		title:       newTextInput("Recipe title", 80),
		portions:    newTextInput("4", 4),
		description: desc,
		ingName:     newTextInput("Ingredient", 60),
		ingAmount:   newTextInput("200", 10),
		invalid:     make(map[formField]bool),
	}
	f.ingAmount.Width = 10
	f.portions.Width = 6
	f.setFocus(fieldTitle)
	return f
}

// editRecipeForm returns a form prepopulated from r.
func editRecipeForm(r cookbook.Recipe) recipeForm {
	f := newRecipeForm()
	f.editing = true
	f.original = r.Name
	f.fav = r.Fav
	f.title.SetValue(r.Name)
	if r.Portions != 0 {
		f.portions.SetValue(fmt.Sprint(r.Portions))
	}
	f.description.SetValue(r.Description)
	f.label = indexOf(cookbook.Labels, r.Label) + 1
	f.ingredients = append([]cookbook.Ingredient(nil), r.Ingredients...)
	return f
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

// labelValue returns the selected label, or "" for none.
func (f recipeForm) labelValue() string {
	if f.label <= 0 || f.label > len(cookbook.Labels) {
		return ""
	}
	return cookbook.Labels[f.label-1]
}

// unitValue returns the selected unit, or "" for none.
func (f recipeForm) unitValue() string {
	if f.unit <= 0 || f.unit > len(cookbook.Units) {
		return ""
	}
	return cookbook.Units[f.unit-1]
}

func (f *recipeForm) cycleLabel(delta int) {
	f.label = wrap(f.label+delta, len(cookbook.Labels)+1)
}

func (f *recipeForm) cycleUnit(delta int) {
	f.unit = wrap(f.unit+delta, len(cookbook.Units)+1)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// setFocus moves focus to field, blurring every other input.
func (f *recipeForm) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.portions.Blur()
	f.description.Blur()
	f.ingName.Blur()
	f.ingAmount.Blur()

	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldPortions:
		return f.portions.Focus()
	case fieldDescription:
		return f.description.Focus()
	case fieldIngredientName:
		return f.ingName.Focus()
	case fieldIngredientAmount:
		return f.ingAmount.Focus()
	}
	return nil
}

func (f *recipeForm) focusStep(delta int) tea.Cmd {
	next := f.focus
	for range fieldCount {
		next = formField(wrap(int(next)+delta, int(fieldCount)))
		if next == fieldIngredients && len(f.ingredients) == 0 {
			continue
		}
		break
	}
	return f.setFocus(next)
}

// validateField runs the live check for the focused text field. Empty
// numeric fields only clear their highlight.
func (f *recipeForm) validateField(field formField) {
	var (
		value string
		check func(string) error
	)
	switch field {
	case fieldTitle:
		value, check = f.title.Value(), cookbook.ValidateText
	case fieldIngredientName:
		value, check = f.ingName.Value(), cookbook.ValidateText
	case fieldPortions:
		value = f.portions.Value()
		check = func(s string) error { _, err := cookbook.ParsePortions(s); return err }
	case fieldIngredientAmount:
		value = f.ingAmount.Value()
		check = func(s string) error { _, err := cookbook.ParseAmount(s); return err }
	default:
		return
	}

	numeric := field == fieldPortions || field == fieldIngredientAmount
	if numeric && strings.TrimSpace(value) == "" {
		delete(f.invalid, field)
		return
	}
	if err := check(value); err != nil {
		f.invalid[field] = true
		f.message = errMessage(err)
		return
	}
	delete(f.invalid, field)
	f.message = ""
}

// addIngredient builds an ingredient from the ingredient fields. With an
// amount a unit is required; without one only the name is kept.
func (f *recipeForm) addIngredient() bool {
	name := f.ingName.Value()
	amountText := strings.TrimSpace(f.ingAmount.Value())

	var (
		ing cookbook.Ingredient
		err error
	)
	if amountText != "" {
		amount, parseErr := cookbook.ParseAmount(amountText)
		if parseErr != nil {
			f.message = msgAmountNotNumber
			return false
		}
		if f.unitValue() == "" {
			f.message = msgMissingFields
			return false
		}
		ing, err = cookbook.NewIngredient(name, amount, f.unitValue())
	} else {
		ing, err = cookbook.NamedIngredient(name)
	}
	if err != nil {
		f.message = msgBadIngredient
		return false
	}

	f.ingredients = append(f.ingredients, ing)
	f.selected = len(f.ingredients) - 1
	f.ingName.SetValue("")
	f.ingAmount.SetValue("")
	f.unit = 0
	delete(f.invalid, fieldIngredientName)
	delete(f.invalid, fieldIngredientAmount)
	f.message = ""
	return true
}

// editSelectedIngredient removes the selected ingredient from the list and
// loads it back into the ingredient fields.
func (f *recipeForm) editSelectedIngredient() tea.Cmd {
	if f.selected < 0 || f.selected >= len(f.ingredients) {
		return nil
	}
	ing := f.ingredients[f.selected]
	f.removeSelectedIngredient()

	f.ingName.SetValue(ing.Name)
	f.ingAmount.SetValue("")
	if ing.HasAmount() {
		f.ingAmount.SetValue(formatAmount(ing.Amount))
	}
	f.unit = indexOf(cookbook.Units, ing.Unit) + 1
	return f.setFocus(fieldIngredientName)
}

func (f *recipeForm) removeSelectedIngredient() {
	if f.selected < 0 || f.selected >= len(f.ingredients) {
		return
	}
	f.ingredients = append(f.ingredients[:f.selected], f.ingredients[f.selected+1:]...)
	if f.selected >= len(f.ingredients) {
		f.selected = len(f.ingredients) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
	if len(f.ingredients) == 0 && f.focus == fieldIngredients {
		f.setFocus(fieldIngredientName)
	}
}

// build assembles the recipe. A new recipe may not reuse a title already in
// cb; on that error the title field is cleared.
func (f *recipeForm) build(cb cookbook.Cookbook) (cookbook.Recipe, error) {
	title := strings.TrimSpace(f.title.Value())
	if !f.editing && cb.Contains(title) {
		f.title.SetValue("")
		return cookbook.Recipe{}, errors.New(msgDuplicateTitle)
	}
	if title == "" {
		return cookbook.Recipe{}, errors.New(msgEmptyFields)
	}

	r, err := cookbook.NewRecipe(title)
	if err != nil {
		return cookbook.Recipe{}, err
	}
	portions, err := cookbook.ParsePortions(f.portions.Value())
	if err != nil {
		return cookbook.Recipe{}, err
	}
	if err := r.SetPortions(portions); err != nil {
		return cookbook.Recipe{}, err
	}
	r.Description = f.description.Value()
	for _, ing := range f.ingredients {
		r.AddIngredient(ing)
	}
	if label := f.labelValue(); label != "" {
		if err := r.SetLabel(label); err != nil {
			return cookbook.Recipe{}, err
		}
	} else {
		r.RemoveLabel()
	}
	r.Fav = f.fav
	return r, nil
}

// update handles one key press.
func (f *recipeForm) update(msg tea.KeyMsg, keys keyMap) (tea.Cmd, formAction) {
	switch {
	case key.Matches(msg, keys.Escape):
		return nil, formCancel
	case key.Matches(msg, keys.Save):
		return nil, formSubmit
	case key.Matches(msg, keys.NextField):
		return f.focusStep(1), formContinue
	case key.Matches(msg, keys.PrevField):
		return f.focusStep(-1), formContinue
	}

	switch f.focus {
	case fieldLabel:
		switch {
		case key.Matches(msg, keys.PrevOption):
			f.cycleLabel(-1)
		case key.Matches(msg, keys.NextOption):
			f.cycleLabel(1)
		case key.Matches(msg, keys.Confirm):
			return f.focusStep(1), formContinue
		}
		return nil, formContinue

	case fieldIngredientUnit:
		switch {
		case key.Matches(msg, keys.PrevOption):
			f.cycleUnit(-1)
		case key.Matches(msg, keys.NextOption):
			f.cycleUnit(1)
		case key.Matches(msg, keys.AddIngredient):
			if f.addIngredient() {
				return f.setFocus(fieldIngredientName), formContinue
			}
		}
		return nil, formContinue

	case fieldIngredients:
		switch {
		case key.Matches(msg, keys.Up):
			if f.selected > 0 {
				f.selected--
			}
		case key.Matches(msg, keys.Down):
			if f.selected < len(f.ingredients)-1 {
				f.selected++
			}
		case key.Matches(msg, keys.EditIngredient):
			return f.editSelectedIngredient(), formContinue
		case key.Matches(msg, keys.DropIngredient):
			f.removeSelectedIngredient()
		}
		return nil, formContinue

	case fieldDescription:
		var cmd tea.Cmd
		f.description, cmd = f.description.Update(msg)
		return cmd, formContinue
	}

	if key.Matches(msg, keys.Confirm) {
		switch f.focus {
		case fieldIngredientName, fieldIngredientAmount:
			if f.addIngredient() {
				return f.setFocus(fieldIngredientName), formContinue
			}
			return nil, formContinue
		default:
			return f.focusStep(1), formContinue
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldPortions:
		f.portions, cmd = f.portions.Update(msg)
	case fieldIngredientName:
		f.ingName, cmd = f.ingName.Update(msg)
	case fieldIngredientAmount:
		f.ingAmount, cmd = f.ingAmount.Update(msg)
	}
	f.validateField(f.focus)
	return cmd, formContinue
}

// heading returns the form title shown in its frame.
func (f recipeForm) heading() string {
	if f.editing {
		return "Edit your recipe!"
	}
	return "Create a new recipe!"
}

// view renders the form body for a pane of the given width on bgColor.
func (f recipeForm) view(theme Theme, width int, bgColor string) string {
	styles := theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	labelFor := func(field formField, text string) string {
		style := styles.MutedText
		switch {
		case f.invalid[field]:
			style = styles.DangerText
		case f.focus == field:
			style = styles.AccentText.Bold(true)
		}
		return bg.Render(padRight(text, formLabelColumn), style)
	}
	inputFor := func(field formField, rendered string) string {
		if f.invalid[field] {
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Danger)).
				Underline(true).
				Render(rendered)
		}
		return rendered
	}

	var lines []string
	lines = append(lines,
		labelFor(fieldTitle, "Title")+inputFor(fieldTitle, f.title.View()),
		labelFor(fieldPortions, "Portions")+inputFor(fieldPortions, f.portions.View()),
		labelFor(fieldLabel, "Label")+f.renderOptions(cookbook.Labels, f.label, f.focus == fieldLabel, styles, bg),
		"",
		labelFor(fieldDescription, "Description"),
	)
	for _, row := range strings.Split(f.description.View(), "\n") {
		lines = append(lines, bg.Spaces(formLabelColumn)+row)
	}
	lines = append(lines,
		"",
		labelFor(fieldIngredientName, "Ingredient")+inputFor(fieldIngredientName, f.ingName.View()),
		labelFor(fieldIngredientAmount, "Amount")+inputFor(fieldIngredientAmount, f.ingAmount.View())+
			bg.Spaces(2)+labelFor(fieldIngredientUnit, "Unit")+f.renderUnit(styles, bg),
		"",
		labelFor(fieldIngredients, fmt.Sprintf("Ingredients (%d)", len(f.ingredients))),
	)

	if len(f.ingredients) == 0 {
		lines = append(lines, bg.Spaces(2)+bg.Render("No ingredients yet", styles.FaintText))
	}
	for i, ing := range f.ingredients {
		text := truncate(ing.String(), max(width-6, 10))
		if i == f.selected && f.focus == fieldIngredients {
			lines = append(lines, bg.Spaces(2)+styles.Selected.Render(" "+text+" "))
			continue
		}
		lines = append(lines, bg.Spaces(3)+bg.Render(text, styles.Text))
	}

	lines = append(lines, "")
	if f.message != "" {
		lines = append(lines, bg.Render(f.message, styles.DangerText))
	}
	return strings.Join(lines, "\n")
}

// renderOptions renders a toggle group where at most one option is active.
func (f recipeForm) renderOptions(options []string, active int, focused bool, styles Styles, bg BgStyle) string {
	parts := make([]string, 0, len(options))
	for i, option := range options {
		text := titleCase(option)
		if active == i+1 {
			parts = append(parts, styles.LabelBadge(option).Bold(focused).Render(text))
			continue
		}
		style := styles.FaintText
		if focused {
			style = styles.MutedText
		}
		parts = append(parts, bg.Render("["+text+"]", style))
	}
	return bg.Join(parts, " ")
}

func (f recipeForm) renderUnit(styles Styles, bg BgStyle) string {
	unit := f.unitValue()
	if unit == "" {
		unit = "-"
	}
	style := styles.Text
	if f.focus == fieldIngredientUnit {
		style = styles.AccentText.Bold(true)
	}
	return bg.Render("< "+unit+" >", style)
}

// errMessage returns the user-facing part of err.
func errMessage(err error) string {
	var ve *cookbook.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
