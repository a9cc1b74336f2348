// Package catalog holds the storefront's product navigation logic: the
// category table, breadcrumbs, category filtering and listing order.
package catalog

import (
	"coursework/internal/models"
	"net/url"
)

// Categories is the fixed category table of the storefront, in menu order.
var Categories = []models.Category{
	{
		Slug:  "prevention",
		Title: "Prevention",
		Subcategories: []string{
			"Bracing + Supports", "Compression Gear", "Protective Equipment",
			"Warm-up + Mobility Tools", "Tape + Wrapping",
		},
	},
	{
		Slug:  "recovery",
		Title: "Recovery",
		Subcategories: []string{
			"Massage Tools", "Cold + Heat Therapy", "Sleep Aids", "Hydration + Nutrition",
		},
	},
	{
		Slug:  "rehab",
		Title: "Rehabilitation",
		Subcategories: []string{
			"Resistance Training", "Balance Training", "Range of Motion Tools",
			"Rehab Monitoring Tools", "PT Kits",
		},
	},
}

// LookupCategory finds a category by slug.
func LookupCategory(slug string) (models.Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

// Breadcrumbs returns the navigation trail for a listing or item page:
// Home, Products, then the category and subcategory when given.
// Unknown category slugs are shown as-is.
func Breadcrumbs(category, subcategory string) []models.Crumb {
	crumbs := []models.Crumb{
		{Label: "Home", Href: "index.html"},
		{Label: "Products", Href: "products.html"},
	}
	if category == "" {
		return crumbs
	}

	label := category
	if c, ok := LookupCategory(category); ok {
		label = c.Title
	}
	crumbs = append(crumbs, models.Crumb{
		Label: label,
		Href:  "products.html?" + url.Values{"category": {category}}.Encode(),
	})

	if subcategory != "" {
		crumbs = append(crumbs, models.Crumb{
			Label: subcategory,
			Href: "products.html?" + url.Values{
				"category":    {category},
				"subcategory": {subcategory},
			}.Encode(),
		})
	}
	return crumbs
}
