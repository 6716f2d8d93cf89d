package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Go Age"
	AppID          = "com.github.tartampluch.go-age"
	KeyringService = "com.github.tartampluch.go-age"
	EnvPrefix      = "GOAGE"
	LogFileName    = "app.log"
	IconFile       = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagVersionShort = "v"
	FlagDebug        = "debug"
	FlagStore        = "store"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescStore    = "Storage medium for the last calculation (preferences|keyring)"
	FlagDescLang     = "Interface language (en|pt), overrides the saved preference"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Persistence
// -----------------------------------------------------------------------------

const (
	// StoreKey is the single slot holding the last calculation.
	StoreKey = "formData"

	StoreBackendPreferences = "preferences"
	StoreBackendKeyring     = "keyring"
	DefaultStoreBackend     = StoreBackendPreferences
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 420
	MainWindowHeight = 560

	// Preference Keys
	PrefLanguage     = "language"
	PrefStoreBackend = "store_backend"
	PrefLastRun      = "last_run_version"

	// DateEntryMaxLen is the length of a YYYY-MM-DD string.
	DateEntryMaxLen = 10
	DateSeparator   = "-"
	PlaceholderDate = "YYYY-MM-DD"

	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "pt"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeySubtitle       = "lbl_subtitle"
	TKeyLblBirthDate   = "lbl_birth_date"
	TKeyHelpBirthDate  = "help_birth_date"
	TKeyLblLanguage    = "lbl_language"
	TKeyBtnCalculate   = "btn_calculate"
	TKeyBtnClear       = "btn_clear_saved"
	TKeyBtnImport      = "btn_import_vcard"
	TKeyBtnExport      = "btn_export_ics"
	TKeyLblPreview     = "lbl_preview" // Requires Date
	TKeyLblResultTitle = "lbl_result_title"
	TKeyLblBornOn      = "lbl_born_on" // Requires Date
	TKeyUnitYears      = "unit_years"  // Plural, requires Count
	TKeyUnitMonths     = "unit_months" // Plural, requires Count
	TKeyUnitDays       = "unit_days"   // Plural, requires Count
	TKeyLblInfoTitle   = "lbl_info_title"
	TKeyInfoFormat     = "info_format"
	TKeyInfoPast       = "info_past"
	TKeyInfoRequired   = "info_required"
	TKeyInfoLocal      = "info_local"
	TKeyFormatDate     = "format_date_short" // Date format pattern (e.g., "02/01/2006")

	// Calendar export
	TKeyEvtSummaryAge   = "event_summary_age" // Requires Age
	TKeyEvtSummaryBirth = "event_summary_birth"

	// Validation Errors (UI)
	TKeyErrRequired = "err_required"
	TKeyErrInvalid  = "err_invalid_date"
	TKeyErrFuture   = "err_future_date"
	TKeyErrImport   = "err_import"
	TKeyErrExport   = "err_export"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	MonthsPerYear   = 12
	MaxMonths       = 11
	MaxDays         = 30
	UIDSalt         = "go-age-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age//Engine//EN"
	ICalCalName = "Birthday"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goage"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"

	ExportFileName = "birthday.ics"

	// StubVCalendar is the minimal valid iCalendar object used when no events are produced.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the raw input and storage layout.
	DateFormatISO = "2006-01-02"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = "2006-01-02T15:04:05Z07:00"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// FormatISODate renders a CalendarDate as YYYY-MM-DD.
	FormatISODate = "%04d-%02d-%02d"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMissingInput     = "birth date is required"
	ErrInvalidDate      = "invalid date"
	ErrFutureDate       = "birth date cannot be in the future"
	ErrStoreUnavailable = "persistence unavailable"
	ErrRecordNotFound   = "no stored record"
	ErrRecordCorrupt    = "stored record is corrupted"
	ErrRecordEncode     = "failed to encode record"
	ErrStoreBackend     = "unsupported storage backend"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrNoBirthDate      = "no contact with a full birth date"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "Birthday (%d)"
	FallbackSummaryBirth = "Birth"
	FallbackBornOn       = "Birth date: %s"
	FallbackPreview      = "Date entered: %s"

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgAgeComputed    = "Age computed"
	MsgInputRejected  = "Birth date rejected"
	MsgRecordLoaded   = "Saved calculation restored"
	MsgRecordStale    = "Saved calculation is from another day, recomputing"
	MsgRecordInvalid  = "Saved input no longer valid, clearing"
	MsgRecordCorrupt  = "Ignoring corrupted saved record"
	MsgRecordSaved    = "Calculation saved"
	MsgRecordCleared  = "Saved calculation cleared"
	MsgStoreReadFail  = "Storage read failed, continuing without saved data"
	MsgStoreWriteFail = "Storage write failed, result kept in memory only"
	MsgStoreSelected  = "Storage medium selected"
	MsgBackendUnknown = "Unknown saved storage backend, using default"
	MsgLangIgnored    = "Unsupported language ignored"
	MsgImportFailed   = "vCard import failed"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgVCardImported  = "Birth date imported from vCard"
	MsgCalExported    = "Birthday calendar exported"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyInput     = "input"
	LogKeyBackend   = "backend"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyToday     = "today"
	LogKeyComputed  = "computed_on"
	LogKeySizeBytes = "size_bytes"
	LogKeyTotal     = "total_cards"
	LogKeyEvents    = "events"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompStore  = "store"
	CompMain   = "main"
	CompI18n   = "i18n"
)
