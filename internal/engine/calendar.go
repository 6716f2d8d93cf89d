package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// SummaryFormatter lets the UI inject localized event titles.
type SummaryFormatter func(age int) string

// BirthdayCalendar encodes all-day birthday events for the previous, current and
// next year around now. Years before the birth year are skipped.
func BirthdayCalendar(birth CalendarDate, now time.Time, formatSummary SummaryFormatter) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local time drives the dates; only the stamp is UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	input := fmt.Sprintf(config.FormatHashInput, birth.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	for _, e := range birthdayEvents(birth, now, uidBase, formatSummary) {
		e.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, e.Component)
	}

	var buf bytes.Buffer
	if len(cal.Children) == 0 {
		// The encoder rejects a calendar without components.
		buf.WriteString(config.StubVCalendar)
		return buf.Bytes(), nil
	}
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalExported,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyEvents, len(cal.Children),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

func birthdayEvents(birth CalendarDate, now time.Time, uidBase string, formatSummary SummaryFormatter) []*ical.Event {
	currentYear := now.Year()
	loc := now.Location()

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birth.Year {
			continue
		}
		age := y - birth.Year

		summary := fallbackSummary(age)
		if formatSummary != nil {
			summary = formatSummary(age)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		// time.Date moves Feb 29 to Mar 1 in common years.
		eventDate := time.Date(y, birth.Month, birth.Day, 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

func fallbackSummary(age int) string {
	if age == 0 {
		return config.FallbackSummaryBirth
	}
	return fmt.Sprintf(config.FallbackSummaryAge, age)
}
