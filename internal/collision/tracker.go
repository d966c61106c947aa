// Package collision tracks field names while a schema is parsed and reports
// names that occur more than once.
package collision

import "github.com/arloliu/luxdta/internal/hash"

// Tracker records field names in first-seen order.
//
// Names are keyed by their xxHash64 ID. Two different names sharing an ID
// are kept apart through a per-ID name list, so the tracker never conflates
// distinct names.
type Tracker struct {
	byID       map[uint64][]string // ID → distinct names with that ID
	names      []string            // Distinct names in first-seen order
	duplicates []string            // Names seen more than once, in order of the first repeat
	repeats    map[string]int      // Name → number of repeats
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byID:    make(map[uint64][]string),
		repeats: make(map[string]int),
	}
}

// Track records name. It returns true the first time a name is seen and
// false for every repeat.
func (t *Tracker) Track(name string) bool {
	id := hash.ID(name)
	for _, existing := range t.byID[id] {
		if existing == name {
			if t.repeats[name] == 0 {
				t.duplicates = append(t.duplicates, name)
			}
			t.repeats[name]++

			return false
		}
	}

	t.byID[id] = append(t.byID[id], name)
	t.names = append(t.names, name)

	return true
}

// HasDuplicates reports whether any name was tracked more than once.
func (t *Tracker) HasDuplicates() bool {
	return len(t.duplicates) > 0
}

// Duplicates returns the repeated names, in the order of their first repeat.
func (t *Tracker) Duplicates() []string {
	return t.duplicates
}

// Repeats returns how many times name was seen after its first occurrence.
func (t *Tracker) Repeats(name string) int {
	return t.repeats[name]
}

// Names returns the distinct names in first-seen order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of distinct names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names.
func (t *Tracker) Reset() {
	clear(t.byID)
	clear(t.repeats)
	t.names = t.names[:0]
	t.duplicates = t.duplicates[:0]
}
