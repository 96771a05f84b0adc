// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expiry

import (
	"time"

	"github.com/MKhiriev/nudge/models"
)

const (
	// CriticalThresholdDays is the largest day count still classified as
	// critical.
	CriticalThresholdDays = 7

	// ApproachingThresholdDays is the largest day count still classified as
	// approaching.
	ApproachingThresholdDays = 30

	secondsPerDay = 24 * 60 * 60
)

// Classifier attaches a status and a day count to items.
//
// The zero value is not usable; construct one with [NewClassifier].
type Classifier struct {
	now      func() time.Time
	location *time.Location
}

// Option configures a [Classifier].
type Option func(*Classifier)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the time zone in which "today" is evaluated.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Classifier) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewClassifier returns a Classifier reading the wall clock in the local
// time zone unless overridden by opts.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Today returns the current calendar date in the classifier's time zone,
// at midnight.
func (c *Classifier) Today() time.Time {
	now := c.now().In(c.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.location)
}

// Classify computes the status of a single item.
func (c *Classifier) Classify(item models.Item) (models.ClassifiedItem, error) {
	return classifyOn(c.Today(), item)
}

// ClassifyAll classifies items against a single reading of the clock.
// It fails on the first item with a malformed expiry date.
func (c *Classifier) ClassifyAll(items []models.Item) ([]models.ClassifiedItem, error) {
	today := c.Today()

	classified := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		ci, err := classifyOn(today, item)
		if err != nil {
			return nil, err
		}
		classified = append(classified, ci)
	}
	return classified, nil
}

// Result is the outcome of classifying one item with [Classifier.ClassifyEach].
// Exactly one of Item and Err is meaningful.
type Result struct {
	Item models.ClassifiedItem
	Err  error
}

// ClassifyEach classifies every item and reports failures per item instead
// of aborting, so callers can hide bad rows and still show the rest.
func (c *Classifier) ClassifyEach(items []models.Item) []Result {
	today := c.Today()

	results := make([]Result, len(items))
	for i, item := range items {
		results[i].Item, results[i].Err = classifyOn(today, item)
	}
	return results
}

func classifyOn(today time.Time, item models.Item) (models.ClassifiedItem, error) {
	expiry, err := ParseExpiryDate(item.ExpiryDate)
	if err != nil {
		return models.ClassifiedItem{}, &MalformedDateError{ItemID: item.ID, Value: item.ExpiryDate, Err: err}
	}

	days := DaysUntil(today, expiry)
	return models.ClassifiedItem{
		Item:            item,
		Status:          StatusFor(days),
		DaysUntilExpiry: days,
	}, nil
}

// ParseExpiryDate parses a strict YYYY-MM-DD calendar date.
func ParseExpiryDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// DaysUntil returns the signed number of calendar days from today to expiry.
// Only the calendar date of each argument (in its own location) is used.
func DaysUntil(today, expiry time.Time) int {
	return int(dayNumber(expiry) - dayNumber(today))
}

// dayNumber maps a calendar date to a day count since the Unix epoch.
// The date is rebuilt in UTC so daylight-saving shifts cannot skew it.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// StatusFor maps a day count to its status bucket.
func StatusFor(days int) models.Status {
	switch {
	case days <= CriticalThresholdDays:
		return models.StatusCritical
	case days <= ApproachingThresholdDays:
		return models.StatusApproaching
	default:
		return models.StatusSafe
	}
}
