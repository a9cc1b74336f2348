package countries

import (
	"coursework/internal/models"
	"slices"
	"strings"
)

// RegionKey keys a country by region.
func RegionKey(c models.Country) (string, bool) {
	return c.Region, c.Region != ""
}

// SubregionKey keys a country by subregion.
func SubregionKey(c models.Country) (string, bool) {
	return c.Subregion, c.Subregion != ""
}

// CurrencyKeys returns the currency names of a country, ordered by currency
// code so a country's bucket placement does not depend on map order.
func CurrencyKeys(c models.Country) []string {
	codes := sortedKeys(c.Currencies)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := c.Currencies[code].Name; name != "" {
			names = append(names, name)
		}
	}
	return names
}

// LanguageKeys returns the language names of a country ordered by code.
func LanguageKeys(c models.Country) []string {
	codes := sortedKeys(c.Languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := c.Languages[code]; name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CommonName is the field countries are ordered by inside a bucket.
func CommonName(c models.Country) string { return c.Name.Common }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

const notAvailable = "N/A"

// Card projects a country into its display card.
func Card(c models.Country) models.CountryCard {
	return models.CountryCard{
		Name:       c.Name.Common,
		Flag:       c.Flags.SVG,
		Region:     orNA(c.Region),
		Capital:    orNA(strings.Join(c.Capital, ", ")),
		Currencies: orNA(strings.Join(CurrencyKeys(c), ", ")),
		Languages:  orNA(strings.Join(LanguageKeys(c), ", ")),
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
