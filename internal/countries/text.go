package countries

import (
	"bufio"
	"coursework/internal/models"
	"fmt"
	"io"
	"strings"
)

// WriteText renders a view as an indented plain-text tree.
func WriteText(w io.Writer, view models.CountryView) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Grouped by %s\n", view.Filter)
	for _, g := range view.Groups {
		writeGroup(bw, g, 0)
	}
	return bw.Flush()
}

func writeGroup(w *bufio.Writer, g models.CountryGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s (%d)\n", indent, g.Key, g.Count)
	for _, sub := range g.Groups {
		writeGroup(w, sub, depth+1)
	}
	for _, c := range g.Countries {
		fmt.Fprintf(w, "%s  - %s | capital: %s | currencies: %s | languages: %s\n",
			indent, c.Name, c.Capital, c.Currencies, c.Languages)
	}
}
