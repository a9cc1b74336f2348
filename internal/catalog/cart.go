package catalog

import (
	"coursework/internal/models"
	"math"
)

// Quote prices a cart against the catalog. References that do not resolve
// to a listable product are reported as missing and left out of the total.
func Quote(products []models.Product, refs []models.CartRef) models.CartQuote {
	q := models.CartQuote{Lines: []models.CartLine{}}
	var total float64
	for _, ref := range refs {
		p, ok := FindItem(products, ref.Category, ref.Subcategory, ref.ID)
		if !ok {
			q.Missing = append(q.Missing, ref)
			continue
		}
		q.Lines = append(q.Lines, models.CartLine{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			ImageURL: p.ImageURL,
		})
		total += p.Price
	}
	q.Total = math.Round(total*100) / 100
	return q
}
