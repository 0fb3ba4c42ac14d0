package cookbook

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Units lists the measurement units an ingredient may use, in display order.
var Units = []string{"g", "kg", "dl", "l", "ts", "ss", "stk", "pk"}

// Ingredient is a named quantity.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount,omitempty"`
	Unit   string  `json:"unit,omitempty"`
}

// NewIngredient builds a validated ingredient with an amount and unit.
// A zero amount drops the unit.
func NewIngredient(name string, amount float64, unit string) (Ingredient, error) {
	ing := Ingredient{Name: strings.TrimSpace(name), Amount: amount, Unit: strings.TrimSpace(unit)}
	if amount == 0 {
		ing.Unit = ""
	}
	if err := ing.Validate(); err != nil {
		return Ingredient{}, err
	}
	return ing, nil
}

// NamedIngredient builds an ingredient that has only a name.
func NamedIngredient(name string) (Ingredient, error) {
	return NewIngredient(name, 0, "")
}

// Validate checks the name, amount and unit.
func (i Ingredient) Validate() error {
	if err := validateName("ingredient", i.Name); err != nil {
		return err
	}
	if math.IsNaN(i.Amount) || math.IsInf(i.Amount, 0) {
		return &ValidationError{Field: "amount", Message: MsgDecimal}
	}
	if i.Amount < 0 {
		return &ValidationError{Field: "amount", Message: "Must not be negative"}
	}
	if i.Unit == "" {
		if i.Amount != 0 {
			return &ValidationError{Field: "unit", Message: "Unit is required when an amount is set"}
		}
		return nil
	}
	if !IsUnit(i.Unit) {
		return &ValidationError{Field: "unit", Message: fmt.Sprintf("Unknown unit %q", i.Unit)}
	}
	return nil
}

// HasAmount reports whether the ingredient carries a quantity.
func (i Ingredient) HasAmount() bool {
	return i.Amount != 0
}

// String renders "200 g Mel", or just the name when there is no amount.
func (i Ingredient) String() string {
	if !i.HasAmount() {
		return i.Name
	}
	amount := strconv.FormatFloat(i.Amount, 'f', -1, 64)
	if i.Unit == "" {
		return amount + " " + i.Name
	}
	return amount + " " + i.Unit + " " + i.Name
}

// IsUnit reports whether unit is one of Units.
func IsUnit(unit string) bool {
	return slices.Contains(Units, unit)
}
