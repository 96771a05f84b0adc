// Package expiry turns stored items into classified, ordered and filtered
// lists.
//
// It has three parts:
//   - [Classifier] maps an item's expiry date and today's date to a
//     [models.Status] and a signed day count;
//   - [Sort], [Filter], [Organize] and [DefaultFilter] order a classified
//     list and apply a [models.FilterPreference];
//   - [FilterSession] tracks which preference is in effect for one client
//     session and persists user toggles through a [PreferenceStore].
//
// Classifier and organizer functions are pure and safe for concurrent use.
package expiry
