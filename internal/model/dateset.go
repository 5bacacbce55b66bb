package model

import "sort"

// DateSet is an ordered set of calendar days (YYYY-MM-DD). It marshals as a
// plain JSON array, which is the persisted shape, while keeping the
// at-most-once invariant structural: Add never introduces a duplicate and
// always returns a new set, leaving the receiver untouched.
type DateSet []string

// Has reports whether date is a member of the set.
func (s DateSet) Has(date string) bool {
	i := sort.SearchStrings(s, date)
	return i < len(s) && s[i] == date
}

// Add returns a copy of the set with date included.
func (s DateSet) Add(date string) DateSet {
	if s.Has(date) {
		return s.Clone()
	}
	out := make(DateSet, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, date)
	sort.Strings(out)
	return out
}

// Remove returns a copy of the set with date excluded.
func (s DateSet) Remove(date string) DateSet {
	out := make(DateSet, 0, len(s))
	for _, d := range s {
		if d != date {
			out = append(out, d)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s DateSet) Clone() DateSet {
	if s == nil {
		return nil
	}
	out := make(DateSet, len(s))
	copy(out, s)
	return out
}

// Normalize sorts and de-duplicates a set loaded from persisted state, where
// older snapshots may not have maintained ordering.
func (s DateSet) Normalize() DateSet {
	if len(s) == 0 {
		return s.Clone()
	}
	out := s.Clone()
	sort.Strings(out)
	dedup := out[:1]
	for _, d := range out[1:] {
		if d != dedup[len(dedup)-1] {
			dedup = append(dedup, d)
		}
	}
	return dedup
}
