package models

// FilterPreference maps each status bucket to a visibility flag.
//
// The all-false value is a legitimate preference: it hides every item and
// must not be confused with an absent preference.
type FilterPreference struct {
	Safe        bool `json:"safe"`
	Approaching bool `json:"approaching"`
	Critical    bool `json:"critical"`
}

// ShowAll returns a preference with every bucket visible.
func ShowAll() FilterPreference {
	return FilterPreference{Safe: true, Approaching: true, Critical: true}
}

// OnlyStatus returns a preference where only status is visible.
func OnlyStatus(status Status) FilterPreference {
	var pref FilterPreference
	pref.Set(status, true)
	return pref
}

// Visible reports whether items with the given status pass the filter.
func (f FilterPreference) Visible(status Status) bool {
	switch status {
	case StatusSafe:
		return f.Safe
	case StatusApproaching:
		return f.Approaching
	case StatusCritical:
		return f.Critical
	}
	return false
}

// Set changes the visibility of a single bucket.
func (f *FilterPreference) Set(status Status, visible bool) {
	switch status {
	case StatusSafe:
		f.Safe = visible
	case StatusApproaching:
		f.Approaching = visible
	case StatusCritical:
		f.Critical = visible
	}
}

// Toggle flips the visibility of a single bucket and returns the new mapping.
func (f FilterPreference) Toggle(status Status) FilterPreference {
	f.Set(status, !f.Visible(status))
	return f
}
