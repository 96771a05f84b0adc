package tui

import (
	"github.com/MKhiriev/nudge/models"
)

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// AuthResult finishes the auth flow. Guest is set when the user chose to
// keep items on this device.
type AuthResult struct {
	Err   error
	Email string
	Guest bool
}

type listLoadedMsg struct {
	items    []models.ClassifiedItem
	archived bool
	err      error
}

type itemSavedMsg struct {
	item models.ClassifiedItem
	err  error
}

type itemsChangedMsg struct {
	status string
	err    error
}

type copiedMsg struct {
	err error
}
