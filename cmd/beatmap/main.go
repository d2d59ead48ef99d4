// Command beatmap converts level descriptor records between their binary
// and JSON forms. The mode argument selects the direction; data is read from
// standard input and written to standard output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/levelforge/beatmap/internal/config"
	"github.com/levelforge/beatmap/internal/convert"
	"github.com/levelforge/beatmap/internal/logging"
	"github.com/levelforge/beatmap/internal/storage"
	"github.com/levelforge/beatmap/pkg/beatmap"
)

// module defs - Version can be set at build time via ldflags
var (
	Version string = "0.0.1"

	ExtensionName string = "beatmap"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Must provide mode!")
		return exitUsage
	}

	mode := convert.Mode(args[0])
	if mode != convert.ModeToJSON && mode != convert.ModeFromJSON {
		fmt.Fprintln(stderr, "Mode must be to_json or from_json!")
		return exitFail
	}

	configErr := loadConfig()

	logManager, closeLogs := setupLogging(stderr)
	defer closeLogs()
	logger := logManager.Logger()

	if errors.Is(configErr, config.ErrConfigNotFound) {
		logger.Debug("No config file, using defaults", "error", configErr)
	} else if configErr != nil {
		logger.Warn("Failed to load config, using defaults!", "error", configErr)
	}
	logger.Debug("Starting up", "version", Version, "mode", string(mode))

	outCfg := config.GetOutputConfig()
	padding, err := beatmap.ParsePadding(outCfg.Padding)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ExtensionName, err)
		return exitFail
	}

	archive, err := openArchive(stderr)
	if err != nil {
		logger.Error("Failed to initialize archive", "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", ExtensionName, err)
		return exitFail
	}

	c, err := convert.New(convert.Options{
		Indent:  outCfg.Indent,
		Padding: padding,
		Archive: archive,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ExtensionName, err)
		return exitFail
	}

	code := exitOK
	if err := c.Run(ctx, mode, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ExtensionName, err)
		code = exitFail
	}

	if archive != nil {
		if err := closeArchive(archive, logger); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", ExtensionName, err)
			code = exitFail
		}
	}

	return code
}

func loadConfig() error {
	dir := os.Getenv("BEATMAP_CONFIG_DIR")
	if dir == "" {
		dir = "."
	}
	return config.Load(dir)
}

// setupLogging configures the log sinks and returns a func that closes them.
func setupLogging(stderr io.Writer) (*logging.SlogManager, func()) {
	logCfg := config.GetLoggingConfig()
	var closers []io.Closer

	var file io.Writer
	if logCfg.LogsDir != "" {
		if err := os.MkdirAll(logCfg.LogsDir, 0755); err != nil {
			fmt.Fprintf(stderr, "Failed to create logs dir: %v\n", err)
		} else {
			path := logging.LogFilePath(logCfg.LogsDir, ExtensionName, time.Now())
			f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to create/open log file %s: %v\n", path, err)
			} else {
				file = f
				closers = append(closers, f)
			}
		}
	}

	var graylog io.Writer
	if logCfg.GraylogEnabled {
		gw, err := logging.NewGraylogWriter(logCfg.GraylogAddress)
		if err != nil {
			fmt.Fprintf(stderr, "Graylog disabled: %v\n", err)
		} else {
			graylog = gw
			closers = append(closers, gw)
		}
	}

	m := logging.NewSlogManager()
	m.Setup(file, logCfg.Level, graylog)

	return m, func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
}

func openArchive(stderr io.Writer) (storage.Backend, error) {
	cfg := config.GetArchiveConfig()
	if !cfg.Enabled {
		return nil, nil
	}

	dbLog := logging.NewZerolog(stderr, config.GetLoggingConfig().Level)
	backend, err := storage.NewBackend(cfg, dbLog)
	if err != nil {
		return nil, err
	}
	if err := backend.Init(); err != nil {
		return nil, err
	}
	return backend, nil
}

func closeArchive(b storage.Backend, logger *slog.Logger) error {
	if err := b.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	if e, ok := b.(storage.Exporter); ok {
		for _, p := range e.ExportedPaths() {
			logger.Info("Archive written", "path", p)
		}
	}
	return nil
}
