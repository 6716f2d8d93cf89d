package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/store"
	"github.com/tartampluch/go-age/internal/ui"
)

// settings holds the startup options resolved from flags and GOAGE_* variables.
type settings struct {
	Version bool
	Debug   bool
	Store   string
	Lang    string
}

// main delegates to runMain so deferred calls (like closing the log file)
// run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. Flags & Environment
	// -------------------------------------------------------------------------
	opts, err := loadSettings(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	if opts.Version {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(opts.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// loadSettings parses args and layers GOAGE_* environment variables under them.
func loadSettings(args []string) (settings, error) {
	fs := flag.NewFlagSet(config.AppID, flag.ContinueOnError)
	fs.BoolP(config.FlagVersion, config.FlagVersionShort, false, config.FlagDescVersion)
	fs.Bool(config.FlagDebug, false, config.FlagDescDebug)
	fs.String(config.FlagStore, "", config.FlagDescStore)
	fs.String(config.FlagLang, "", config.FlagDescLang)

	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return settings{}, err
	}
	v.AutomaticEnv()

	return settings{
		Version: v.GetBool(config.FlagVersion),
		Debug:   v.GetBool(config.FlagDebug),
		Store:   v.GetString(config.FlagStore),
		Lang:    v.GetString(config.FlagLang),
	}, nil
}

// applySettings stores valid explicit choices in preferences and returns the
// storage backend to use. Without an explicit choice the saved one wins.
// An unknown explicit backend is an error and is never saved.
func applySettings(prefs fyne.Preferences, opts settings) (string, error) {
	log := slog.With(config.LogKeyComponent, config.CompMain)

	if opts.Lang != "" {
		if slices.Contains(config.SupportedLanguages, opts.Lang) {
			prefs.SetString(config.PrefLanguage, opts.Lang)
		} else {
			log.Warn(config.MsgLangIgnored, config.LogKeyLang, opts.Lang)
		}
	}

	if opts.Store != "" {
		if !store.KnownBackend(opts.Store) {
			return "", fmt.Errorf("%s: %q", config.ErrStoreBackend, opts.Store)
		}
		prefs.SetString(config.PrefStoreBackend, opts.Store)
		return opts.Store, nil
	}

	backend := prefs.StringWithFallback(config.PrefStoreBackend, config.DefaultStoreBackend)
	if !store.KnownBackend(backend) {
		log.Warn(config.MsgBackendUnknown, config.LogKeyBackend, backend)
		backend = config.DefaultStoreBackend
		prefs.SetString(config.PrefStoreBackend, backend)
	}
	return backend, nil
}

// run initializes the Fyne application, wires dependencies, and starts the UI loop.
func run(ctx context.Context, opts settings) error {
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	backend, err := applySettings(a.Preferences(), opts)
	if err != nil {
		return err
	}
	medium, err := store.NewMedium(backend, a.Preferences())
	if err != nil {
		return err
	}

	gui := ui.NewGoAgeApp(a, ctx, store.NewCache(medium))

	// Quit the UI when the context is cancelled (signal).
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		fyne.Do(a.Quit)
	}()

	// Blocks until the main window closes.
	gui.Run()

	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog logger writing to stdout and, when
// possible, to a log file in the user's cache directory.
func setupLogging(debugMode bool) io.Closer {
	writers := []io.Writer{os.Stdout}
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
