package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/logging"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const interactiveLogFile = "~/.arcade/arcade.log"

// loadEnv reads .env and fills every persistent flag not given on the
// command line from its ARCADE_* variable.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read .env: %w", err)
	}
	flags := cmd.Flags()
	for name, key := range envFlags {
		v, ok := os.LookupEnv(key)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// app holds what every command builds from the global flags.
type app struct {
	logger  *log.Logger
	logs    io.Closer
	arcade  config.ArcadeConfig
	catalog *catalog.Catalog
	store   ledger.Store
}

// setup opens the logger, configuration, catalog and ledger. Interactive
// commands log to a file so the terminal UI is not disturbed.
func setup(ctx context.Context, interactive bool) (*app, error) {
	logFile := flagLogFile
	if logFile == "" && interactive {
		logFile = interactiveLogFile
	}
	logger, logs, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		Format: flagLogFormat,
		Prefix: "arcade",
		File:   logFile,
	})
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, logs: logs}

	a.arcade, err = config.LoadArcade(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.catalog, err = catalog.Load(flagCatalog)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store, err = openStore(ctx, a.arcade.Ledger.StartingCredits)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Debug("ready", "ledger", flagLedger, "games", a.catalog.Len())
	return a, nil
}

// openStore picks the ledger backend named by --ledger.
func openStore(ctx context.Context, starting int) (ledger.Store, error) {
	switch flagLedger {
	case "sqlite", "":
		s, err := storage.Open(flagDBPath, starting)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		r, err := ledger.NewRedis(ctx, flagRedisURL, "", starting)
		if err != nil {
			return nil, err
		}
		return r, nil
	case "memory":
		return ledger.NewMemory(starting), nil
	}
	return nil, fmt.Errorf("unknown ledger %q (sqlite, redis, memory)", flagLedger)
}

// Close releases the ledger and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("close ledger", "error", err)
		}
	}
	if a.logs != nil {
		_ = a.logs.Close()
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
