package countries

import (
	"coursework/internal/engine"
	"coursework/internal/models"
)

// Build runs the grouping and ordering pipeline over the full collection and
// projects the result into a view. countries is never modified.
func Build(countries []models.Country, f Filter, c *engine.Collator, opts ...engine.Option) models.CountryView {
	view := models.CountryView{Filter: f.String(), Groups: []models.CountryGroup{}}

	if f == FilterSubregion {
		tree := engine.GroupByTwoLevel(countries, RegionKey, SubregionKey, opts...)
		for _, br := range engine.OrderTree(tree) {
			g := models.CountryGroup{Key: br.Key, Count: br.Size()}
			for _, b := range br.Buckets {
				g.Groups = append(g.Groups, bucketGroup(b, c))
			}
			view.Groups = append(view.Groups, g)
		}
		return view
	}

	var groups engine.Groups[models.Country]
	switch f {
	case FilterCurrency:
		groups = engine.GroupByEach(countries, CurrencyKeys, opts...)
	case FilterLanguage:
		groups = engine.GroupByEach(countries, LanguageKeys, opts...)
	default:
		groups = engine.GroupBy(countries, RegionKey, opts...)
	}
	for _, b := range engine.OrderGroups(groups) {
		view.Groups = append(view.Groups, bucketGroup(b, c))
	}
	return view
}

func bucketGroup(b engine.Bucket[models.Country], c *engine.Collator) models.CountryGroup {
	sorted := engine.SortByText(b.Items, CommonName, c)
	cards := make([]models.CountryCard, len(sorted))
	for i, country := range sorted {
		cards[i] = Card(country)
	}
	return models.CountryGroup{Key: b.Key, Count: b.Len(), Countries: cards}
}
