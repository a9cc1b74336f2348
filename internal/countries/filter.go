package countries

import (
	"coursework/internal/apperr"
	"fmt"
)

// Filter is the grouping mode selected on the countries page.
// The modes are mutually exclusive and never compose.
type Filter int

const (
	FilterRegion Filter = iota
	FilterSubregion
	FilterCurrency
	FilterLanguage
)

var filterNames = [...]string{"region", "subregion", "currency", "language"}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// Filters lists every mode in display order.
func Filters() []Filter {
	return []Filter{FilterRegion, FilterSubregion, FilterCurrency, FilterLanguage}
}

// ParseFilter maps a filter name to its mode. The empty string selects the
// initial mode, region.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterRegion, nil
	}
	for i, name := range filterNames {
		if name == s {
			return Filter(i), nil
		}
	}
	return FilterRegion, apperr.Validation(fmt.Sprintf("Unknown filter %q.", s))
}
