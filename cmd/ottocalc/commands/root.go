package commands

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocalc/internal/config"
	"github.com/hammamikhairi/ottocalc/internal/display"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/input"
	"github.com/hammamikhairi/ottocalc/internal/logger"
	"github.com/hammamikhairi/ottocalc/internal/sound"
	"github.com/hammamikhairi/ottocalc/internal/storage"
)

var (
	configPath string
	verbose    bool
	quiet      bool
	logFile    string
	maxLength  int
	precision  int
	withSound  bool

	appCtx *app
)

// app is the wiring shared by every command.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	keys     *input.KeyParser
	styles   display.Styles
	opts     []engine.Option
	closeLog func()
}

// newEngine returns an engine over a fresh in-memory store.
func (a *app) newEngine(extra ...engine.Option) *engine.Engine {
	opts := append(append([]engine.Option{}, a.opts...), extra...)
	return engine.New(storage.NewMemoryStore(a.log), a.log, opts...)
}

// Execute builds the command tree and runs it.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := execute(ctx, newRootCmd())
	if err != nil {
		fmt.Fprintln(os.Stderr, "ottocalc:", err)
	}
	return err
}

func execute(ctx context.Context, root *cobra.Command) error {
	defer closeApp()
	return root.ExecuteContext(ctx)
}

// closeApp releases the log sink opened by setup. Cobra skips post-run
// hooks when a command fails, so it runs after Execute returns instead.
func closeApp() {
	if appCtx != nil && appCtx.closeLog != nil {
		appCtx.closeLog()
		appCtx.closeLog = nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ottocalc",
		Short:         "Terminal calculator with a clickable keypad",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+" if present)")
	pf.BoolVar(&verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&quiet, "quiet", false, "disable all logging")
	pf.StringVar(&logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	pf.IntVar(&maxLength, "max-length", 0, "longest expression accepted, in characters")
	pf.IntVar(&precision, "precision", 0, "significant digits kept in a result")
	pf.BoolVar(&withSound, "sound", false, "play a click per key and a tone on errors")

	root.AddCommand(evalCmd(), keysCmd(), batchCmd())
	return root
}

// setup loads config, applies flags that were set explicitly, and opens
// the log sink.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("max-length") {
		cfg.MaxLength = maxLength
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("sound") {
		cfg.Sound = withSound
	}
	if verbose {
		cfg.LogLevel = logger.LevelVerbose.String()
	}
	if quiet {
		cfg.LogLevel = logger.LevelOff.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	out, closeLog := openLog(cfg.LogFile)

	// Redirect Go's default log package to the same output so nothing
	// else writes over the keypad.
	stdlog.SetOutput(out)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, out)
	log.Debug("config: max_length=%d precision=%d sound=%v", cfg.MaxLength, cfg.Precision, cfg.Sound)

	return &app{
		cfg:    cfg,
		log:    log,
		keys:   input.NewKeyParser(log),
		styles: display.NewStyles(cfg.Theme),
		opts: []engine.Option{
			engine.WithMaxLength(cfg.MaxLength),
			engine.WithPrecision(cfg.Precision),
		},
		closeLog: closeLog,
	}, nil
}

// openLog directs logs to a file by default so the keypad stays clean.
// It falls back to stderr when the file cannot be opened.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return os.Stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

func runInteractive(ctx context.Context) error {
	a := appCtx
	fb := sound.New(a.cfg.Sound, a.log)
	if p, ok := fb.(*sound.Player); ok {
		defer p.Stop()
	}

	eng := a.newEngine(engine.WithFeedback(fb))
	ui := display.NewUI(eng, a.keys, input.DefaultKeypad, a.styles, a.log)

	a.log.Info("starting interactive calculator")
	if err := ui.Run(ctx); err != nil {
		a.log.Error("display: %v", err)
		return err
	}
	return nil
}
