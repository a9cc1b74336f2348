package catalog

import (
	"cmp"
	"coursework/internal/apperr"
	"coursework/internal/engine"
	"coursework/internal/models"
	"fmt"
	"strconv"
)

// Filter keeps the products whose category and subcategory equal the given
// values exactly. An empty value matches everything at that level.
func Filter(products []models.Product, category, subcategory string) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if subcategory != "" && p.Subcategory != subcategory {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Listable reports whether a product can be shown in a listing.
func Listable(p models.Product) bool {
	return p.Name != ""
}

// FindItem resolves the item addressed by /item/:category/:subcategory/:id.
func FindItem(products []models.Product, category, subcategory, id string) (models.Product, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return models.Product{}, false
	}
	for _, p := range products {
		if p.ID == n && p.Category == category && p.Subcategory == subcategory && Listable(p) {
			return p, true
		}
	}
	return models.Product{}, false
}

// SortMode is a listing order offered on the products page.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortAlpha     SortMode = "alpha"
)

func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(s); m {
	case "":
		return SortDefault, nil
	case SortDefault, SortPriceAsc, SortPriceDesc, SortAlpha:
		return m, nil
	default:
		return SortDefault, apperr.Validation(fmt.Sprintf("Unknown sort %q.", s))
	}
}

// Sort returns the listed products in the given order. Default keeps the
// stored order. products is not modified.
func Sort(products []models.Product, mode SortMode, c *engine.Collator) []models.Product {
	switch mode {
	case SortPriceAsc:
		return engine.OrderRecords(products, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		return engine.OrderRecords(products, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortAlpha:
		return engine.SortByText(products, func(p models.Product) string { return p.Name }, c)
	default:
		return engine.OrderRecords(products, func(a, b models.Product) int { return 0 })
	}
}
