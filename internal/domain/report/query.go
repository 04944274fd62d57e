package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator performs locale-aware case-insensitive string comparison. Project
// and client names are predominantly Japanese.
var collator = collate.New(language.Japanese, collate.IgnoreCase)

// CompareStrings compares two strings with the engine's collation rules.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// Predicate reports whether an item matches a filter condition.
type Predicate[T any] func(T) bool

// FilterItems returns a new slice holding the items matching every predicate.
// The input slice is never modified.
func FilterItems[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// EqualsString builds an exact-match predicate. An empty wanted value means
// no constraint on that field.
func EqualsString[T any](get func(T) string, want string) Predicate[T] {
	return func(item T) bool {
		return want == "" || get(item) == want
	}
}

// RangeInt64 builds an inclusive range predicate over a numeric field.
// Either bound may be nil.
func RangeInt64[T any](get func(T) int64, min, max *int64) Predicate[T] {
	return func(item T) bool {
		v := get(item)
		if min != nil && v < *min {
			return false
		}
		if max != nil && v > *max {
			return false
		}
		return true
	}
}

// RangeDate builds an inclusive range predicate over a date field. Items
// without a value never match a bounded range.
func RangeDate[T any](get func(T) *time.Time, from, to *time.Time) Predicate[T] {
	return func(item T) bool {
		if from == nil && to == nil {
			return true
		}
		v := get(item)
		if v == nil {
			return false
		}
		if from != nil && v.Before(*from) {
			return false
		}
		if to != nil && v.After(*to) {
			return false
		}
		return true
	}
}

// SearchItems returns the items where any of the given fields contains the
// term, case-insensitively. An empty term matches everything.
func SearchItems[T any](items []T, term string, fields ...func(T) string) []T {
	if term == "" {
		return append([]T(nil), items...)
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortKey compares two items for ordering. Compare is only called when both
// items have a value; items where Missing reports true always sort last,
// whichever direction is requested.
type SortKey[T any] struct {
	Compare func(a, b T) int
	Missing func(T) bool
}

// ByString builds a sort key over a string field using locale collation.
// Empty strings are treated as missing.
func ByString[T any](get func(T) string) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int { return CompareStrings(get(a), get(b)) },
		Missing: func(item T) bool { return get(item) == "" },
	}
}

// ByInt64 builds a numeric sort key.
func ByInt64[T any](get func(T) int64) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int {
			va, vb := get(a), get(b)
			switch {
			case va < vb:
				return -1
			case va > vb:
				return 1
			default:
				return 0
			}
		},
		Missing: func(T) bool { return false },
	}
}

// ByDate builds a sort key over an optional date field. Nil dates sort last.
func ByDate[T any](get func(T) *time.Time) SortKey[T] {
	return SortKey[T]{
		Compare: func(a, b T) int {
			va, vb := get(a), get(b)
			switch {
			case va.Before(*vb):
				return -1
			case va.After(*vb):
				return 1
			default:
				return 0
			}
		},
		Missing: func(item T) bool { return get(item) == nil },
	}
}

// SortItems returns a new slice ordered by the key. Missing values sort last
// regardless of direction; the sort is stable so equal keys keep their
// relative input order.
func SortItems[T any](items []T, key SortKey[T], descending bool) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := key.Missing(out[i]), key.Missing(out[j])
		if mi || mj {
			return !mi && mj
		}
		cmp := key.Compare(out[i], out[j])
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// SortState tracks the list-screen sort selection. Selecting a new key resets
// to ascending; selecting the same key again flips the direction.
type SortState struct {
	Key        string
	Descending bool
}

// Toggle applies a key selection to the state.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key {
		return SortState{Key: key, Descending: !s.Descending}
	}
	return SortState{Key: key, Descending: false}
}

// FullProjectCode derives the displayed project code. When the project
// carries a fiscal period and its owner has a staff code, the code is
// prefixed with the zero-padded period and the staff code; otherwise the raw
// code is returned.
func FullProjectCode(p ProjectRecord, staffCodeDigits int) string {
	if p.Period <= 0 || p.StaffCode == "" || staffCodeDigits <= 0 {
		return p.Code
	}
	return fmt.Sprintf("%0*d%s-%s", staffCodeDigits, p.Period, p.StaffCode, p.Code)
}

// ProjectSearchFields returns the standard search accessors for project
// lists: name, client, raw code and the derived full code.
func ProjectSearchFields(staffCodeDigits int) []func(ProjectRecord) string {
	return []func(ProjectRecord) string{
		func(p ProjectRecord) string { return p.Name },
		func(p ProjectRecord) string { return p.ClientName },
		func(p ProjectRecord) string { return p.Code },
		func(p ProjectRecord) string { return FullProjectCode(p, staffCodeDigits) },
	}
}
