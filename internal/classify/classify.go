// Package classify holds the client-local list logic: splitting
// subscriptions into the upcoming and active groups, sorting them, and
// filtering by category. All functions are pure projections over the
// snapshot they are handed; nothing is cached or mutated.
package classify

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"subtrack/internal/entity"
)

// SortKey selects the ordering inside each list group.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByPrice SortKey = "price"
	SortByDate  SortKey = "date"
)

// UpcomingWindowDays - renewals this many days out (inclusive) count as upcoming
const UpcomingWindowDays = 7

// CategoryAll - sentinel label that disables category filtering
const CategoryAll = "Alle"

// Categories - the fixed label set offered by the list view, the "all"
// sentinel first.
var Categories = []string{
	CategoryAll,
	"Streaming",
	"Musik",
	"Nyheder",
	"Opbevaring",
	"Fitness",
	"Importeret",
	"Andet",
}

// Partition splits subs into (upcoming, active) relative to today and
// sorts both groups by key. Upcoming holds every subscription whose
// renewal date parses and falls within [start of today, end of the 7th
// day from today]; everything else, unparsable dates included, stays
// active. The input slice is left untouched.
func Partition(subs []entity.Subscription, today time.Time, key SortKey) (upcoming, active []entity.Subscription) {
	start := startOfDay(today)
	end := startOfDay(today.AddDate(0, 0, UpcomingWindowDays+1))

	upcoming = make([]entity.Subscription, 0, len(subs))
	active = make([]entity.Subscription, 0, len(subs))
	for _, s := range subs {
		renewal, ok := s.RenewalTime()
		if ok && !renewal.Before(start) && renewal.Before(end) {
			upcoming = append(upcoming, s)
		} else {
			active = append(active, s)
		}
	}

	Sort(upcoming, key)
	Sort(active, key)
	return upcoming, active
}

// Sort orders subs in place by the given key. Unknown keys leave the
// order as-is.
func Sort(subs []entity.Subscription, key SortKey) {
	switch key {
	case SortByName:
		c := collate.New(language.Danish, collate.IgnoreCase)
		sort.SliceStable(subs, func(i, j int) bool {
			return c.CompareString(subs[i].Title, subs[j].Title) < 0
		})
	case SortByPrice:
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].Amount > subs[j].Amount
		})
	case SortByDate:
		sort.SliceStable(subs, func(i, j int) bool {
			return dateLess(subs[i], subs[j])
		})
	}
}

// dateLess is a total order: parsable dates first in chronological
// order, unparsable ones after them by raw string.
func dateLess(a, b entity.Subscription) bool {
	at, aok := a.RenewalTime()
	bt, bok := b.RenewalTime()
	switch {
	case aok && bok:
		return at.Before(bt)
	case aok:
		return true
	case bok:
		return false
	default:
		return a.RenewalDate < b.RenewalDate
	}
}

// FilterCategory keeps subscriptions whose category equals label,
// preserving order. The Alle sentinel passes the input through as-is.
func FilterCategory(subs []entity.Subscription, label string) []entity.Subscription {
	if label == "" || label == CategoryAll {
		return subs
	}
	out := make([]entity.Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Category == label {
			out = append(out, s)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
