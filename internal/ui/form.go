package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/store"
)

// buildContent creates the form widgets. The typed text survives a rebuild.
func (app *GoAgeApp) buildContent() fyne.CanvasObject {
	text := ""
	if app.Entry != nil {
		text = app.Entry.Text
	}

	// --- 1. Feedback labels ---
	app.PreviewLabel = widget.NewLabel("")
	app.PreviewLabel.TextStyle = fyne.TextStyle{Italic: true}

	app.ErrorLabel = widget.NewLabel("")
	app.ErrorLabel.Importance = widget.DangerImportance
	app.ErrorLabel.Wrapping = fyne.TextWrapWord

	// --- 2. Date input ---
	app.Entry = NewDateEntry()
	app.Entry.SetText(text)
	app.Entry.OnChanged = func(string) { app.updatePreview() }
	app.Entry.OnSubmitted = func(string) { app.submit() }

	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	langSelect.SetSelected(app.currentLanguage())
	langSelect.OnChanged = app.switchLanguage

	itemDate := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), app.Entry)
	itemDate.HintText = app.GetMsg(config.TKeyHelpBirthDate)
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), langSelect)

	formCard := widget.NewCard(app.GetMsg(config.TKeyWinTitle), app.GetMsg(config.TKeySubtitle), container.NewVBox(
		widget.NewForm(itemDate, itemLang),
		app.PreviewLabel,
		app.ErrorLabel,
	))

	// --- 3. Result ---
	newValueLabel := func() *widget.Label {
		l := widget.NewLabel("")
		l.Alignment = fyne.TextAlignCenter
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}
	app.YearsLabel = newValueLabel()
	app.MonthsLabel = newValueLabel()
	app.DaysLabel = newValueLabel()
	app.BornLabel = widget.NewLabel("")
	app.BornLabel.Alignment = fyne.TextAlignCenter

	app.ResultCard = widget.NewCard(app.GetMsg(config.TKeyLblResultTitle), "", container.NewVBox(
		container.NewGridWithColumns(config.LayoutColumnsTriple, app.YearsLabel, app.MonthsLabel, app.DaysLabel),
		app.BornLabel,
	))

	// --- 4. Actions ---
	btnCalc := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.submit)
	btnCalc.Importance = widget.HighImportance

	app.ClearButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnClear), theme.DeleteIcon(), app.clear)
	app.ClearButton.Importance = widget.DangerImportance

	btnImport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.showImportDialog)
	app.ExportButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.showExportDialog)

	// --- 5. Info ---
	infoBox := container.NewVBox()
	for _, key := range []string{config.TKeyInfoFormat, config.TKeyInfoPast, config.TKeyInfoRequired, config.TKeyInfoLocal} {
		l := widget.NewLabel("• " + app.GetMsg(key))
		l.Wrapping = fyne.TextWrapWord
		infoBox.Add(l)
	}
	infoCard := widget.NewCard(app.GetMsg(config.TKeyLblInfoTitle), "", infoBox)

	app.refresh()

	return container.NewVScroll(container.NewPadded(container.NewVBox(
		formCard,
		btnCalc,
		app.ResultCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnImport, app.ExportButton),
		app.ClearButton,
		infoCard,
	)))
}

// submit validates the typed date, shows the breakdown and saves it.
func (app *GoAgeApp) submit() {
	raw := strings.TrimSpace(app.Entry.Text)
	today := engine.Today(app.Clock)

	birth, age, err := engine.Calculate(raw, today)
	if err != nil {
		slog.Info(config.MsgInputRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyInput, raw,
			config.LogKeyError, err)
		app.lastErr = err
		app.result = nil
		app.refresh()
		return
	}

	app.lastErr = nil
	app.birth = birth
	app.result = &age
	app.persist(store.NewRecord(raw, age, today))
	app.refresh()
}

// persist saves best-effort; the on-screen result does not depend on it.
func (app *GoAgeApp) persist(rec store.Record) {
	if err := app.Cache.Save(rec); err != nil {
		slog.Warn(config.MsgStoreWriteFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	app.saved = true
}

// clear drops the saved record and resets the form.
func (app *GoAgeApp) clear() {
	if err := app.Cache.Clear(); err != nil {
		// The record is still stored; keep the button for a retry.
		slog.Warn(config.MsgStoreWriteFail,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	} else {
		app.saved = false
	}

	app.result = nil
	app.lastErr = nil
	app.Entry.SetText("")
	app.refresh()

	if app.Window != nil {
		app.Window.Canvas().Focus(app.Entry)
	}
}

// restore re-displays the saved calculation. A result from another day is
// recomputed; an input that no longer validates is cleared.
func (app *GoAgeApp) restore() {
	rec, ok := app.Cache.Load()
	if !ok {
		return
	}
	log := slog.With(config.LogKeyComponent, config.CompUI, config.LogKeyInput, rec.RawInput)

	app.saved = true
	app.Entry.SetText(rec.RawInput)

	today := engine.Today(app.Clock)
	switch {
	case rec.Result == nil:
		// Input only.
	case !rec.Stale(today):
		// Load already checked RawInput.
		app.birth, _ = engine.ParseDate(rec.RawInput)
		app.result = rec.Result
	default:
		log.Info(config.MsgRecordStale,
			config.LogKeyComputed, rec.ComputedOn,
			config.LogKeyToday, today.String())

		birth, age, err := engine.Calculate(rec.RawInput, today)
		if err != nil {
			log.Warn(config.MsgRecordInvalid, config.LogKeyError, err)
			app.clear()
			return
		}
		app.birth = birth
		app.result = &age
		app.persist(store.NewRecord(rec.RawInput, age, today))
	}

	app.refresh()
}

// refresh syncs every widget with the session state.
func (app *GoAgeApp) refresh() {
	if app.ResultCard == nil {
		return
	}

	app.updatePreview()

	if app.lastErr != nil {
		app.ErrorLabel.SetText(app.validationMessage(app.lastErr))
		app.ErrorLabel.Show()
	} else {
		app.ErrorLabel.SetText("")
		app.ErrorLabel.Hide()
	}

	if app.result != nil {
		app.YearsLabel.SetText(app.unitMsg(config.TKeyUnitYears, app.result.Years))
		app.MonthsLabel.SetText(app.unitMsg(config.TKeyUnitMonths, app.result.Months))
		app.DaysLabel.SetText(app.unitMsg(config.TKeyUnitDays, app.result.Days))
		app.BornLabel.SetText(app.dateMsg(config.TKeyLblBornOn, config.FallbackBornOn, app.birth))
		app.ResultCard.Show()
		app.ExportButton.Enable()
	} else {
		app.ResultCard.Hide()
		app.ExportButton.Disable()
	}

	if app.saved {
		app.ClearButton.Show()
	} else {
		app.ClearButton.Hide()
	}
}

// updatePreview shows the typed date in the locale's format once it parses.
func (app *GoAgeApp) updatePreview() {
	if app.PreviewLabel == nil || app.Entry == nil {
		return
	}

	d, err := engine.ParseDate(strings.TrimSpace(app.Entry.Text))
	if err != nil {
		app.PreviewLabel.SetText("")
		app.PreviewLabel.Hide()
		return
	}
	app.PreviewLabel.SetText(app.dateMsg(config.TKeyLblPreview, config.FallbackPreview, d))
	app.PreviewLabel.Show()
}

// validationMessage maps a validation failure to its user-facing text.
func (app *GoAgeApp) validationMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrMissingInput):
		return app.GetMsg(config.TKeyErrRequired)
	case errors.Is(err, engine.ErrFutureDate):
		return app.GetMsg(config.TKeyErrFuture)
	default:
		return app.GetMsg(config.TKeyErrInvalid)
	}
}

func (app *GoAgeApp) unitMsg(key string, count int) string {
	if msg, ok := app.countMsg(key, count); ok {
		return msg
	}
	return strconv.Itoa(count)
}

func (app *GoAgeApp) dateMsg(key, fallback string, d engine.CalendarDate) string {
	formatted := d.Format(app.dateLayout())
	msg, ok := app.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Date": formatted},
	})
	if !ok {
		return fmt.Sprintf(fallback, formatted)
	}
	return msg
}

// -----------------------------------------------------------------------------
// vCard import & iCalendar export
// -----------------------------------------------------------------------------

func (app *GoAgeApp) showImportDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		if err := app.importVCard(reader); err != nil {
			dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrImport)), app.Window)
		}
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// importVCard fills the field from the first dated contact and submits it.
func (app *GoAgeApp) importVCard(r io.Reader) error {
	raw, err := engine.ImportBirthDate(app.Ctx, r)
	if err != nil {
		slog.Warn(config.MsgImportFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return err
	}

	app.Entry.SetText(raw)
	app.submit()
	return nil
}

func (app *GoAgeApp) showExportDialog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := app.exportCalendar(writer); err != nil {
			dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrExport)), app.Window)
		}
	}, app.Window)
	d.SetFileName(config.ExportFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// exportCalendar writes the birthday events for the displayed result.
func (app *GoAgeApp) exportCalendar(w io.Writer) error {
	if app.result == nil {
		return engine.ErrMissingInput
	}

	data, err := engine.BirthdayCalendar(app.birth, app.Clock.Now(), app.buildSummaryFormatter())
	if err == nil {
		_, err = w.Write(data)
	}
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return err
	}
	return nil
}

// buildSummaryFormatter returns a closure that localizes the event summary.
func (app *GoAgeApp) buildSummaryFormatter() engine.SummaryFormatter {
	return func(age int) string {
		// Age 0 is the birth itself.
		if age == 0 {
			if msg, ok := app.localize(&i18n.LocalizeConfig{MessageID: config.TKeyEvtSummaryBirth}); ok {
				return msg
			}
			return config.FallbackSummaryBirth
		}

		msg, ok := app.localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyEvtSummaryAge,
			TemplateData: map[string]interface{}{"Age": age},
		})
		if !ok {
			return fmt.Sprintf(config.FallbackSummaryAge, age)
		}
		return msg
	}
}
