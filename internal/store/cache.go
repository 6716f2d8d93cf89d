package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// Record is the last successful calculation as persisted.
type Record struct {
	// RawInput is the form value exactly as submitted (YYYY-MM-DD).
	RawInput string `json:"rawInput"`

	// Result may be nil when only the input was kept.
	Result *engine.AgeBreakdown `json:"result"`

	// ComputedOn is the "today" the result was computed against.
	ComputedOn string `json:"computedOn,omitempty"`
}

// NewRecord captures a fresh calculation.
func NewRecord(raw string, age engine.AgeBreakdown, today engine.CalendarDate) Record {
	return Record{RawInput: raw, Result: &age, ComputedOn: today.String()}
}

// Stale reports whether the stored result was computed on another day and
// must be recomputed from RawInput before display.
func (r Record) Stale(today engine.CalendarDate) bool {
	return r.Result != nil && r.ComputedOn != today.String()
}

// clone returns a copy that shares no memory with r.
func (r Record) clone() Record {
	if r.Result != nil {
		age := *r.Result
		r.Result = &age
	}
	return r
}

func (r Record) check() error {
	if _, err := engine.ParseDate(r.RawInput); err != nil {
		return err
	}
	if r.Result != nil && !r.Result.Valid() {
		return fmt.Errorf("%s: breakdown %+v out of range", config.ErrRecordCorrupt, *r.Result)
	}
	if r.ComputedOn != "" {
		if _, err := engine.ParseDate(r.ComputedOn); err != nil {
			return err
		}
	}
	return nil
}

// Cache owns the single persisted record under config.StoreKey.
// Callers only ever receive copies.
type Cache struct {
	medium Medium
	key    string
}

// NewCache binds the cache to a storage medium.
func NewCache(m Medium) *Cache {
	return &Cache{medium: m, key: config.StoreKey}
}

// Load returns the stored record. Absent, corrupted and unreadable records all
// yield false; read failures are logged and never surface to the caller.
func (c *Cache) Load() (Record, bool) {
	log := slog.With(config.LogKeyComponent, config.CompStore, config.LogKeyKey, c.key)

	raw, err := c.medium.Get(c.key)
	if errors.Is(err, ErrNotFound) {
		return Record{}, false
	}
	if err != nil {
		log.Warn(config.MsgStoreReadFail, config.LogKeyError, err)
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Warn(config.MsgRecordCorrupt, config.LogKeyError, err)
		return Record{}, false
	}
	if err := rec.check(); err != nil {
		log.Warn(config.MsgRecordCorrupt, config.LogKeyError, err)
		return Record{}, false
	}

	log.Debug(config.MsgRecordLoaded, config.LogKeyInput, rec.RawInput, config.LogKeyComputed, rec.ComputedOn)
	return rec.clone(), true
}

// Save overwrites the stored record. Failures wrap ErrUnavailable; the caller
// logs them and carries on.
func (c *Cache) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrRecordEncode, err)
	}
	if err := c.medium.Set(c.key, string(data)); err != nil {
		return unavailable(err)
	}

	slog.Debug(config.MsgRecordSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyKey, c.key,
		config.LogKeySizeBytes, len(data))
	return nil
}

// Clear removes the stored record. Clearing an empty cache is not an error.
func (c *Cache) Clear() error {
	err := c.medium.Delete(c.key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return unavailable(err)
	}

	slog.Debug(config.MsgRecordCleared,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyKey, c.key)
	return nil
}

func unavailable(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
