package display

import (
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// histogramWidth is the bar length of the most frequent outcome.
const histogramWidth = 40

// Histogram renders measurement counts as a sorted bar chart. Outcomes
// are ordered by descending count, ties broken by ascending bitstring.
func Histogram(counts map[string]int, shots int) {
	if len(counts) == 0 || shots <= 0 {
		pterm.Info.Println("No counts to display")
		return
	}

	type entry struct {
		bitstring string
		count     int
	}
	entries := make([]entry, 0, len(counts))
	max := 0
	for bs, n := range counts {
		entries = append(entries, entry{bs, n})
		if n > max {
			max = n
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].bitstring < entries[j].bitstring
	})

	for _, e := range entries {
		bar := strings.Repeat("█", e.count*histogramWidth/max)
		pterm.Printf("  %s  %5d  (%5.1f%%)  %s\n",
			e.bitstring, e.count, 100*float64(e.count)/float64(shots), bar)
	}
}
