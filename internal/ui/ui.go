package ui

import (
	"context"
	_ "embed"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/tartampluch/go-age/internal/store"
)

//go:embed Icon.png
var appIconData []byte

// GoAgeApp encapsulates the UI state, preferences, and the saved calculation.
type GoAgeApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Cache *store.Cache
	Clock engine.Clock // Injected clock for testability

	SupportedLanguages []string

	// Form widgets, rebuilt on language change.
	Entry        *DateEntry
	PreviewLabel *widget.Label
	ErrorLabel   *widget.Label
	ResultCard   *widget.Card
	YearsLabel   *widget.Label
	MonthsLabel  *widget.Label
	DaysLabel    *widget.Label
	BornLabel    *widget.Label
	ClearButton  *widget.Button
	ExportButton *widget.Button

	// Session state. The cache only ever receives copies of it.
	birth   engine.CalendarDate
	result  *engine.AgeBreakdown
	lastErr error
	saved   bool
}

// NewGoAgeApp constructs the application and wires dependencies.
func NewGoAgeApp(a fyne.App, ctx context.Context, cache *store.Cache) *GoAgeApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &GoAgeApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Cache:              cache,
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run loads translations, restores the last calculation and enters the UI loop.
func (app *GoAgeApp) Run() {
	app.SetupI18n()
	app.ShowMainWindow()
	app.restore()
	app.App.Run()
}

// ShowMainWindow opens the calculator window, or focuses it if already open.
func (app *GoAgeApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	slog.Debug("Opening main window", config.LogKeyComponent, config.CompUI)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	w.SetMaster()
	w.SetContent(app.buildContent())
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() {
		app.Window = nil
	})
	w.Show()
	w.Canvas().Focus(app.Entry)
}

// switchLanguage stores the choice and rebuilds the window in the new language.
func (app *GoAgeApp) switchLanguage(lang string) {
	if lang == "" || lang == app.currentLanguage() {
		return
	}

	slog.Info("Language changed",
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang)

	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()

	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
		app.Window.SetContent(app.buildContent())
	}
}
