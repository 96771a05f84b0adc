package expiry

import (
	"slices"
	"strings"

	"github.com/MKhiriev/nudge/models"
)

// Sort returns a copy of items ordered by expiry date, soonest first.
// Items sharing a date keep their input order. Status plays no part.
func Sort(items []models.ClassifiedItem) []models.ClassifiedItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.ClassifiedItem) int {
		// YYYY-MM-DD compares lexicographically in calendar order.
		return strings.Compare(a.ExpiryDate, b.ExpiryDate)
	})
	return sorted
}

// Filter keeps the items whose status is visible in pref, preserving order.
func Filter(items []models.ClassifiedItem, pref models.FilterPreference) []models.ClassifiedItem {
	filtered := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		if pref.Visible(item.Status) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Organize sorts items and then applies pref.
func Organize(items []models.ClassifiedItem, pref models.FilterPreference) []models.ClassifiedItem {
	return Filter(Sort(items), pref)
}

// DefaultFilter picks the visibility used when no preference was saved:
// only critical items if there are any, otherwise only approaching items,
// otherwise only safe items.
func DefaultFilter(items []models.ClassifiedItem) models.FilterPreference {
	counts := CountByStatus(items)
	switch {
	case counts[models.StatusCritical] > 0:
		return models.OnlyStatus(models.StatusCritical)
	case counts[models.StatusApproaching] > 0:
		return models.OnlyStatus(models.StatusApproaching)
	default:
		return models.OnlyStatus(models.StatusSafe)
	}
}

// CountByStatus tallies items per status. Every status is present in the
// result, with zero when no item has it.
func CountByStatus(items []models.ClassifiedItem) map[models.Status]int {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, s := range models.Statuses {
		counts[s] = 0
	}
	for _, item := range items {
		counts[item.Status]++
	}
	return counts
}
