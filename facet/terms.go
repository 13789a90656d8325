package facet

import (
	"cmp"
	"slices"

	"github.com/hupe1980/fielddata"
)

// Entry is one term of a terms facet.
type Entry struct {
	Term  string
	Count int64
}

// Terms counts documents per distinct value, keyed by the value's text.
type Terms struct {
	counts  map[string]int64
	total   int64
	missing int64
}

var _ Collector[*Terms] = (*Terms)(nil)

// NewTerms returns an empty terms counter.
func NewTerms() *Terms {
	return &Terms{counts: make(map[string]int64)}
}

// Collect implements Collector.
func (t *Terms) Collect(fd fielddata.NumericFieldData, docID int) {
	term := fd.StringValue(docID)
	if term == "" {
		t.missing++
		return
	}
	t.Add(term)
}

// Add counts one occurrence of term.
func (t *Terms) Add(term string) {
	t.counts[term]++
	t.total++
}

// Merge implements Collector.
func (t *Terms) Merge(other *Terms) {
	for term, n := range other.counts {
		t.counts[term] += n
	}
	t.total += other.total
	t.missing += other.missing
}

// Total returns the number of values counted.
func (t *Terms) Total() int64 { return t.total }

// Missing returns the number of visited documents without a value.
func (t *Terms) Missing() int64 { return t.missing }

// Count returns the count for term.
func (t *Terms) Count(term string) int64 { return t.counts[term] }

// Top returns the n most frequent terms, ties broken by term.
// n <= 0 returns every term.
func (t *Terms) Top(n int) []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for term, c := range t.counts {
		entries = append(entries, Entry{Term: term, Count: c})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Term, b.Term)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
