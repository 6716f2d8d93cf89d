package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n initializes the translation bundle and detects available languages.
func (app *GoAgeApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	app.SupportedLanguages = detectedLangs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *GoAgeApp) UpdateLocalizer() {
	if app.I18nBundle == nil {
		return
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, app.currentLanguage())
}

func (app *GoAgeApp) currentLanguage() string {
	return app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
}

// GetMsg is a helper to translate a key safely.
func (app *GoAgeApp) GetMsg(key string) string {
	if msg, ok := app.localize(&i18n.LocalizeConfig{MessageID: key}); ok {
		return msg
	}
	return key
}

// localize returns false when the localizer is missing or the key cannot be rendered,
// leaving the fallback choice to the caller.
func (app *GoAgeApp) localize(lc *i18n.LocalizeConfig) (string, bool) {
	if app.Localizer == nil {
		return "", false
	}
	msg, err := app.Localizer.Localize(lc)
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
		return "", false
	}
	return msg, true
}

// countMsg renders a pluralized "{{.Count}} unit" message.
func (app *GoAgeApp) countMsg(key string, count int) (string, bool) {
	return app.localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Count": count},
		PluralCount:  count,
	})
}

// dateLayout is the locale's display format for dates.
func (app *GoAgeApp) dateLayout() string {
	format := app.GetMsg(config.TKeyFormatDate)
	if format == config.TKeyFormatDate {
		return config.DateFormatISO
	}
	return format
}
