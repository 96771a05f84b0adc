package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

// errAlreadySeeded is returned when the demo account exists.
var errAlreadySeeded = errors.New("demo user already exists")

// demoItems returns the sample items. Items given as an offset are dated
// relative to today.
func demoItems(today time.Time) []models.ItemInput {
	fromToday := func(days int) string {
		return today.AddDate(0, 0, days).Format(models.DateLayout)
	}

	return []models.ItemInput{
		{Name: "Passport", ExpiryDate: "2028-06-15"},
		{Name: "Gym membership", ExpiryDate: fromToday(5)},
		{Name: "Milk", ExpiryDate: fromToday(1)},
		{Name: "Laptop warranty", ExpiryDate: "2026-12-31"},
		{Name: "Driving licence", ExpiryDate: "2027-03-20"},
		{Name: "Netflix subscription", ExpiryDate: fromToday(4)},
		{Name: "Medicine", ExpiryDate: fromToday(10)},
		{Name: "Car insurance", ExpiryDate: "2026-06-01"},
	}
}

type seeder struct {
	auth   service.AuthService
	items  service.ItemService
	logger *logger.Logger
}

// seed creates the demo user and its items. An existing demo user is left
// untouched.
func (s *seeder) seed(ctx context.Context, user models.User, today time.Time) (int, error) {
	created, err := s.auth.RegisterUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return 0, fmt.Errorf("%w: %s", errAlreadySeeded, user.Email)
	}
	if err != nil {
		return 0, fmt.Errorf("error creating demo user: %w", err)
	}
	s.logger.Info().Str("email", created.Email).Int64("user_id", created.UserID).Msg("demo user created")

	for i, input := range demoItems(today) {
		item, err := s.items.Create(ctx, created.UserID, input)
		if err != nil {
			return i, fmt.Errorf("error creating item %q: %w", input.Name, err)
		}
		s.logger.Info().
			Str("name", item.Name).
			Str("expiry_date", item.ExpiryDate).
			Str("status", item.Status.String()).
			Msg("item created")
	}

	return len(demoItems(today)), nil
}
