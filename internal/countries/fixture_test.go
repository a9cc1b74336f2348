package countries

import (
	"context"
	"coursework/internal/engine"
	"coursework/internal/models"
)

type sourceFunc func(ctx context.Context) ([]models.Country, error)

func (f sourceFunc) Fetch(ctx context.Context) ([]models.Country, error) { return f(ctx) }

func staticSource(countries []models.Country) Source {
	return sourceFunc(func(context.Context) ([]models.Country, error) { return countries, nil })
}

func country(name, region, subregion, capital string, currencies map[string]string, languages map[string]string) models.Country {
	c := models.Country{
		Name:      models.CountryName{Common: name},
		Region:    region,
		Subregion: subregion,
		Languages: languages,
		Flags:     models.Flags{SVG: "https://flagcdn.example/" + name + ".svg"},
	}
	if capital != "" {
		c.Capital = []string{capital}
	}
	if currencies != nil {
		c.Currencies = make(map[string]models.Currency, len(currencies))
		for code, n := range currencies {
			c.Currencies[code] = models.Currency{Name: n}
		}
	}
	return c
}

func fixture() []models.Country {
	return []models.Country{
		country("France", "Europe", "Western Europe", "Paris", map[string]string{"EUR": "Euro"}, map[string]string{"fra": "French"}),
		country("Germany", "Europe", "Western Europe", "Berlin", map[string]string{"EUR": "Euro"}, map[string]string{"deu": "German"}),
		country("Switzerland", "Europe", "Western Europe", "Bern", map[string]string{"CHF": "Swiss franc"},
			map[string]string{"fra": "French", "gsw": "Swiss German", "ita": "Italian", "roh": "Romansh"}),
		country("Poland", "Europe", "Central Europe", "Warsaw", map[string]string{"PLN": "Polish złoty"}, map[string]string{"pol": "Polish"}),
		country("Japan", "Asia", "Eastern Asia", "Tokyo", map[string]string{"JPY": "Japanese yen"}, map[string]string{"jpn": "Japanese"}),
		country("Åland Islands", "Europe", "Northern Europe", "Mariehamn", map[string]string{"EUR": "Euro"}, map[string]string{"swe": "Swedish"}),
		country("Antarctica", "Antarctic", "", "", nil, nil),
		country("Peru", "Americas", "South America", "Lima", map[string]string{"PEN": "Peruvian sol"},
			map[string]string{"aym": "Aymara", "que": "Quechua", "spa": "Spanish"}),
	}
}

func collator() *engine.Collator { return engine.MustCollator("en") }
