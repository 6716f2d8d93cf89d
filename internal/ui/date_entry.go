package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
)

// DateEntry is an Entry restricted to YYYY-MM-DD keystrokes.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.PlaceholderDate
	return entry
}

// TypedRune accepts digits and the separator, up to the length of a full date.
// Pasted text bypasses this filter; the calculator validates on submit.
func (e *DateEntry) TypedRune(r rune) {
	if len([]rune(e.Text)) >= config.DateEntryMaxLen {
		return
	}
	if (r >= '0' && r <= '9') || string(r) == config.DateSeparator {
		e.Entry.TypedRune(r)
	}
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
