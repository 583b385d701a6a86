package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/sealion/internal/config"
	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/history"
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/paths"
	"github.com/footprint-tools/sealion/internal/ui"
	"github.com/footprint-tools/sealion/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Output defaults to stdout.
	Output        io.Writer
	PagerDisabled bool

	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	StyleEnabled bool
	StyleConfig  map[string]string

	HistoryEnabled bool
	HistoryPath    string
}

// DefaultOptions reads the options from the config file.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		LogEnabled:     isTrue(cfg["enable_log"]),
		LogLevel:       log.ParseLevel(cfg["log_level"]),
		LogPath:        paths.LogFilePath(),
		StyleEnabled:   true,
		StyleConfig:    cfg,
		HistoryEnabled: isTrue(cfg["history"]),
		HistoryPath:    paths.HistoryDBPath(),
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// New creates an Application with all dependencies wired up. A logger or
// history store that cannot be opened is replaced by a no-op one, so a
// broken data directory never stops a command from running.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		if l, err := log.New(opts.LogPath, opts.LogLevel); err == nil {
			logger = l
			log.SetDefault(l)
		}
	}

	var store domain.HistoryStore
	if opts.HistoryEnabled && opts.HistoryPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HistoryPath), 0700); err != nil {
			logger.Warn("app: history directory: %v", err)
		} else if s, err := history.New(opts.HistoryPath); err != nil {
			logger.Warn("app: history disabled: %v", err)
		} else {
			store = s
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  newWriter(opts.Output, writerOpts),
		Styler:  style.NewStyler(),
		History: store,
	}, nil
}

func newWriter(out io.Writer, opts []ui.WriterOption) *ui.Writer {
	if out == nil {
		return ui.NewWriter(opts...)
	}
	return ui.NewWriterTo(out, opts...)
}

// NewForTesting creates an Application with no logging, history or styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		if l, ok := app.Logger.(*log.Logger); ok && log.GetLogger() == l {
			log.SetDefault(nil)
		}
		_ = app.Logger.Close()
	}
	if app.History != nil {
		return app.History.Close()
	}
	return nil
}
