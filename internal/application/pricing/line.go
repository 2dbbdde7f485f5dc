package pricing

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoVariant is returned when a menu item has no variants to price from.
// Callers surface this as a selection warning; the line is not added.
var ErrNoVariant = errors.New("pricing: menu item has no variants")

// Variant is a priced size/type option of a menu item.
type Variant struct {
	ID    uuid.UUID
	Price float64
}

// Modifier is a paid add-on available on a menu item.
type Modifier struct {
	ID    uuid.UUID
	Price float64
}

// Option is a single choice within a customization group.
type Option struct {
	ID    uuid.UUID
	Price float64
}

// CustomizationGroup is a named group of mutually exclusive options.
type CustomizationGroup struct {
	ID      uuid.UUID
	Options []Option
}

// Discount is a percentage reduction attached to a menu item or deal.
type Discount struct {
	Value float64 // percentage, 0-100
}

// Selection is the orderable kind of a line: a menu item with variants,
// or a fixed-price deal.
type Selection interface {
	basePrice() (float64, error)
	modifierCatalog() []Modifier
	customizationCatalog() []CustomizationGroup
}

// MenuItemSelection prices a menu item through its chosen variant.
// If no variant is chosen the item's first variant is used.
type MenuItemSelection struct {
	Variants        []Variant
	ChosenVariantID *uuid.UUID
	Modifiers       []Modifier
	Customizations  []CustomizationGroup
}

func (s MenuItemSelection) basePrice() (float64, error) {
	if len(s.Variants) == 0 {
		return 0, ErrNoVariant
	}
	if s.ChosenVariantID != nil {
		for _, v := range s.Variants {
			if v.ID == *s.ChosenVariantID {
				return v.Price, nil
			}
		}
	}
	return s.Variants[0].Price, nil
}

func (s MenuItemSelection) modifierCatalog() []Modifier { return s.Modifiers }

func (s MenuItemSelection) customizationCatalog() []CustomizationGroup { return s.Customizations }

// DealSelection prices a fixed-price bundle. Deals have no variants and
// carry no add-on catalog of their own.
type DealSelection struct {
	Price float64
}

func (s DealSelection) basePrice() (float64, error) { return s.Price, nil }

func (s DealSelection) modifierCatalog() []Modifier { return nil }

func (s DealSelection) customizationCatalog() []CustomizationGroup { return nil }

// ModifierChoice is a selected modifier with its quantity.
type ModifierChoice struct {
	ModifierID uuid.UUID
	Quantity   int
}

// CustomizationChoice is the chosen option within one customization group.
type CustomizationChoice struct {
	CustomizationID uuid.UUID
	OptionID        uuid.UUID
}

// Line is one order line before pricing: what was selected and how many.
type Line struct {
	Selection      Selection
	Quantity       int
	Modifiers      []ModifierChoice
	Customizations []CustomizationChoice
	Discount       *Discount
}

// UnitPrice resolves the price of one unit of the line: base price plus
// selected modifiers and customization options, then the item discount.
// Unknown modifier or customization ids contribute zero.
func UnitPrice(line Line) (float64, error) {
	price, err := line.Selection.basePrice()
	if err != nil {
		return 0, err
	}

	mods := line.Selection.modifierCatalog()
	for _, choice := range line.Modifiers {
		for _, m := range mods {
			if m.ID == choice.ModifierID {
				price += m.Price * float64(choice.Quantity)
				break
			}
		}
	}

	groups := line.Selection.customizationCatalog()
	for _, choice := range line.Customizations {
		for _, g := range groups {
			if g.ID != choice.CustomizationID {
				continue
			}
			for _, opt := range g.Options {
				if opt.ID == choice.OptionID {
					price += opt.Price
					break
				}
			}
			break
		}
	}

	if line.Discount != nil {
		price *= 1 - clampPercent(line.Discount.Value)/100
	}
	if price < 0 {
		price = 0
	}
	return price, nil
}

// LineTotal is the unit price extended by quantity.
func LineTotal(line Line) (float64, error) {
	unit, err := UnitPrice(line)
	if err != nil {
		return 0, err
	}
	return unit * float64(line.Quantity), nil
}

// Subtotal sums the extended totals of all lines.
func Subtotal(lines []Line) (float64, error) {
	var sum float64
	for _, l := range lines {
		total, err := LineTotal(l)
		if err != nil {
			return 0, err
		}
		sum += total
	}
	return sum, nil
}

func clampPercent(pct float64) float64 {
	if pct != pct || pct < 0 { // NaN or negative
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
