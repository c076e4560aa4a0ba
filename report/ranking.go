package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bitmark-inc/pandemic-report/schema"
)

const (
	logPrefix = "report"
)

// RankByDeathRate returns the countries with a defined per-million
// death rate, ordered from highest to lowest. Countries whose rate is
// undefined (zero population) cannot be ranked and are left out.
func RankByDeathRate(totals []schema.CountryTotal) []schema.CountryTotal {
	ranked := make([]schema.CountryTotal, 0, len(totals))
	for _, t := range totals {
		if t.DeathsPerMillion == nil {
			continue
		}
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return *ranked[i].DeathsPerMillion > *ranked[j].DeathsPerMillion
	})
	return ranked
}

// WriteRankings prints the top-n and bottom-n countries by deaths per
// million as aligned tables.
func WriteRankings(w io.Writer, totals []schema.CountryTotal, n int) {
	ranked := RankByDeathRate(totals)
	if n > len(ranked) {
		n = len(ranked)
	}

	fmt.Fprintf(w, "Top %d countries by deaths per million\n", n)
	writeRankingTable(w, ranked[:n])

	fmt.Fprintf(w, "\nBottom %d countries by deaths per million\n", n)
	bottom := make([]schema.CountryTotal, n)
	copy(bottom, ranked[len(ranked)-n:])
	for i, j := 0, len(bottom)-1; i < j; i, j = i+1, j-1 {
		bottom[i], bottom[j] = bottom[j], bottom[i]
	}
	writeRankingTable(w, bottom)
}

func writeRankingTable(w io.Writer, rows []schema.CountryTotal) {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "country\tcases\tdeaths\tpopulation\tdeaths/million")
	for _, t := range rows {
		p.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%.2f\n",
			t.Country, t.Cases, t.Deaths, t.Population, *t.DeathsPerMillion)
	}
	tw.Flush()
}
