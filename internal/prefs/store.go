// Package prefs persists per-user preferences: the emoji skin tone, the
// recently used emoji list and tutorial progress.
package prefs

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a preference has never been set.
var ErrNotFound = errors.New("preference not found")

// Preference is a single stored value, addressed by category and name.
type Preference struct {
	Category string
	Name     string
	Value    string
}

// Store is the persistence layer behind Service.
type Store interface {
	Get(ctx context.Context, category, name string) (string, error)
	Set(ctx context.Context, category, name, value string) error
	Delete(ctx context.Context, category, name string) error
	List(ctx context.Context, category string) ([]Preference, error)
	Close() error
}
