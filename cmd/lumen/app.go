package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/catalog"
	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/prefs"
)

// appContext bundles what every command needs after flag parsing.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	closers []io.Closer
}

func (a *appContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// newAppContext loads configuration and builds the logger. Interactive
// commands must not write logs to the terminal, so they log to a file or
// nowhere; plain commands log to stderr.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*appContext, error) {
	configPath := flags.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), fmt.Sprintf("loading config %q", configPath), err, "Fix the config file or remove it to use defaults.")
	}
	if flags.catalogPath != "" {
		cfg.Catalog = flags.catalogPath
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	app := &appContext{cfg: cfg}

	var writer io.Writer = cmd.ErrOrStderr()
	human := true
	if interactive {
		writer = io.Discard
		human = cfg.Log.Human
		if cfg.Log.File != "" {
			f, err := openLogFile(cfg.Log.File)
			if err != nil {
				return nil, newCommandError(cmd.Name(), fmt.Sprintf("opening log file %q", cfg.Log.File), err, "Check that the directory exists and is writable.")
			}
			app.closers = append(app.closers, f)
			writer = f
		}
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: human,
		Writer:        writer,
		Component:     "command." + cmd.Name(),
	})
	if err != nil {
		app.Close()
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Set log.level to one of trace, debug, info, warn or error.")
	}
	app.log = log

	return app, nil
}

// loadCatalog returns the configured catalog, or the built-in demo catalog
// when none is configured.
func (a *appContext) loadCatalog(operation string) (*catalog.Catalog, error) {
	if a.cfg.Catalog == "" {
		a.log.Debug("no catalog configured; using built-in catalog")
		return catalog.Default(), nil
	}

	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("loading catalog %q", a.cfg.Catalog), err, "Check the catalog YAML against the documented format.")
	}
	a.log.Debug("catalog loaded", "path", a.cfg.Catalog, "items", c.Len())
	return c, nil
}

// openPrefs opens the preference store at the configured path.
func (a *appContext) openPrefs(operation string) (*prefs.Store, error) {
	store, err := prefs.Open(a.cfg.PrefsPath)
	if err != nil {
		return nil, newCommandError(operation, fmt.Sprintf("opening preferences %q", a.cfg.PrefsPath), err, "Check preference file permissions or delete the corrupt file.")
	}
	return store, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
