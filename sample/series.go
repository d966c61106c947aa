package sample

import (
	"slices"
	"sort"
)

// Series is an ordered sequence of samples.
type Series []*Sample

// Names returns the union of field names, in first-seen order.
func (s Series) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, smp := range s {
		for _, name := range smp.names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}

// DropConstant removes, from every sample, the fields whose value and unit
// never change across the series. The time field is always kept. Series with
// fewer than two samples are returned unchanged.
func (s Series) DropConstant() Series {
	if len(s) < 2 {
		return s
	}

	var constant []string
	for _, name := range s.Names() {
		if name == TimeField {
			continue
		}
		first, ok := s[0].Get(name)
		if !ok {
			continue
		}

		same := true
		for _, smp := range s[1:] {
			v, ok := smp.Get(name)
			if !ok || !v.Equal(first) {
				same = false
				break
			}
		}
		if same {
			constant = append(constant, name)
		}
	}

	for _, smp := range s {
		for _, name := range constant {
			smp.Delete(name)
		}
	}

	return s
}

// SortByTime orders samples by their time field. Samples without time keep
// their relative order and sort first.
func (s Series) SortByTime() {
	sort.SliceStable(s, func(i, j int) bool {
		ti, _ := s[i].Time()
		tj, _ := s[j].Time()

		return ti < tj
	})
}

// Merge returns a new series holding the samples of s and other, ordered by
// time. When both contain a sample with the same time, the one from s wins.
// Samples without time are dropped.
func Merge(s, other Series) Series {
	byTime := make(map[int64]*Sample, len(s)+len(other))
	for _, src := range []Series{other, s} {
		for _, smp := range src {
			if t, ok := smp.Time(); ok {
				byTime[t] = smp
			}
		}
	}

	times := make([]int64, 0, len(byTime))
	for t := range byTime {
		times = append(times, t)
	}
	slices.Sort(times)

	out := make(Series, 0, len(times))
	for _, t := range times {
		out = append(out, byTime[t])
	}

	return out
}
