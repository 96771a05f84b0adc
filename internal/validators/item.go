package validators

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/nudge/models"
	"github.com/microcosm-cc/bluemonday"
)

// Field name constants restrict validation to a subset of fields.
const (
	FieldName       = "name"
	FieldExpiryDate = "expiry_date"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldUserID     = "user_id"
	FieldItemID     = "id"
)

// Limits applied to user input.
const (
	MaxNameLength     = 200
	MaxYearsAhead     = 50
	MinPasswordLength = 8
)

var namePolicy = bluemonday.StrictPolicy()

// SanitizeName strips markup and surrounding whitespace from an item name.
// Entities escaped by the policy are turned back into text.
func SanitizeName(name string) string {
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(name)))
}

// ItemValidator checks item input and account credentials.
type ItemValidator struct {
	now func() time.Time
}

// NewItemValidator constructs an [ItemValidator]. now supplies the current
// time for the expiry horizon check; nil means time.Now.
func NewItemValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &ItemValidator{now: now}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemInput:
		return v.validateItemInput(ctx, value, fields...)
	case *models.ItemInput:
		return v.validateItemInput(ctx, *value, fields...)

	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ItemValidator) validateItemInput(_ context.Context, input models.ItemInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldExpiryDate}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = v.validateName(input.Name)
		case FieldExpiryDate:
			err = v.validateExpiryDate(input.ExpiryDate)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *ItemValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldUserID, FieldName, FieldExpiryDate}
	}

	var inputFields []string
	for _, field := range fields {
		switch field {
		case FieldItemID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldUserID:
			if item.OwnerID == nil || *item.OwnerID <= 0 {
				return ErrInvalidUserID
			}
		default:
			inputFields = append(inputFields, field)
		}
	}
	if len(inputFields) == 0 {
		return nil
	}

	return v.validateItemInput(ctx, models.ItemInput{Name: item.Name, ExpiryDate: item.ExpiryDate}, inputFields...)
}

func (v *ItemValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if _, err := mail.ParseAddress(user.Email); err != nil || strings.ContainsAny(user.Email, " <>") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *ItemValidator) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (v *ItemValidator) validateExpiryDate(value string) error {
	expiry, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return ErrInvalidExpiryDate
	}

	now := v.now()
	limit := time.Date(now.Year()+MaxYearsAhead, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if expiry.After(limit) {
		return ErrExpiryDateTooFar
	}
	return nil
}
