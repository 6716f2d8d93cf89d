package store

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound means the medium holds nothing under the key.
	ErrNotFound = errors.New(config.ErrRecordNotFound)

	// ErrUnavailable means the medium could not be read or written.
	// It is never fatal: the in-memory form state stays authoritative.
	ErrUnavailable = errors.New(config.ErrStoreUnavailable)
)

// Medium is a durable, client-local key/value slot holder.
type Medium interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// PreferencesMedium stores values in the application's Fyne preferences.
type PreferencesMedium struct {
	Prefs fyne.Preferences
}

// Get returns ErrNotFound for an absent or empty value.
func (m PreferencesMedium) Get(key string) (string, error) {
	if m.Prefs == nil {
		return "", ErrUnavailable
	}
	v := m.Prefs.String(key)
	if v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

func (m PreferencesMedium) Set(key, value string) error {
	if m.Prefs == nil {
		return ErrUnavailable
	}
	m.Prefs.SetString(key, value)
	return nil
}

func (m PreferencesMedium) Delete(key string) error {
	if m.Prefs == nil {
		return ErrUnavailable
	}
	m.Prefs.RemoveValue(key)
	return nil
}

// KeyringMedium stores values in the operating system's secret store.
// A birth date is personal data; this keeps it out of plain preference files.
type KeyringMedium struct {
	Service string
}

func (m KeyringMedium) Get(key string) (string, error) {
	v, err := keyring.Get(m.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return v, nil
}

func (m KeyringMedium) Set(key, value string) error {
	if err := keyring.Set(m.Service, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Delete treats a missing entry as success.
func (m KeyringMedium) Delete(key string) error {
	err := keyring.Delete(m.Service, key)
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// KnownBackend reports whether NewMedium accepts the name.
func KnownBackend(backend string) bool {
	switch backend {
	case config.StoreBackendPreferences, config.StoreBackendKeyring:
		return true
	default:
		return false
	}
}

// NewMedium selects the storage medium by name (config.StoreBackend*).
func NewMedium(backend string, prefs fyne.Preferences) (Medium, error) {
	var m Medium
	switch backend {
	case "", config.StoreBackendPreferences:
		backend = config.StoreBackendPreferences
		m = PreferencesMedium{Prefs: prefs}
	case config.StoreBackendKeyring:
		m = KeyringMedium{Service: config.KeyringService}
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrStoreBackend, backend)
	}

	slog.Debug(config.MsgStoreSelected,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyBackend, backend)
	return m, nil
}
