package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ImportBirthDate scans a vCard stream and returns the BDAY of the first card
// that carries a full date, formatted as YYYY-MM-DD for the date field.
// Cards with a year-less birthday (--MM-DD) are skipped: no age can be derived.
func ImportBirthDate(ctx context.Context, r io.Reader) (string, error) {
	decoder := vcard.NewDecoder(r)
	processed := 0

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Stop at the first broken card; the ones before it had no usable BDAY.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			if processed == 0 {
				return "", fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			break
		}
		processed++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, err := parseBirthday(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		slog.Info(config.MsgVCardImported,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyTotal, processed)
		return birth.String(), nil
	}

	return "", errors.New(config.ErrNoBirthDate)
}

// parseBirthday handles the vCard date forms that include a year.
func parseBirthday(value string) (CalendarDate, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		// Only the wall-clock fields are kept, whatever offset the value carries.
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), nil
		}
	}
	return CalendarDate{}, errors.New(config.ErrDateParse)
}
