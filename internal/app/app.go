// Package app wires the console stack together: configuration, logging,
// the terminal screen, the console proper, and the interactive event loop.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/jdjurisic/vgacons/internal/config"
	"github.com/jdjurisic/vgacons/internal/console"
	"github.com/jdjurisic/vgacons/internal/keys"
	"github.com/jdjurisic/vgacons/internal/linebuf"
	"github.com/jdjurisic/vgacons/internal/serial"
	"github.com/jdjurisic/vgacons/internal/term"
)

// flushInterval paces background screen updates. Output produced by the
// reader goroutine between key events still reaches the terminal within
// one tick.
const flushInterval = 50 * time.Millisecond

// quitKey ends the session.
var quitKey = keys.Ctrl('q')

// Options configures the application.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty means built-in
	// defaults.
	ConfigPath string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
	// LogPath overrides the configured log file when non-empty.
	LogPath string
	// SerialPath overrides the configured serial mirror file when
	// non-empty.
	SerialPath string
	// NoWatch disables live configuration reloading.
	NoWatch bool
}

// App is the assembled console application.
type App struct {
	opts    Options
	cfg     *config.Config
	logger  *Logger
	session string
	started time.Time

	cons   *console.Console
	screen *term.Screen

	// newScreen is swapped for a simulation screen in tests.
	newScreen func() (*term.Screen, error)

	closers []func() error
}

// New loads configuration and prepares the application. The terminal is
// not touched until Run.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		opts:      opts,
		cfg:       cfg,
		session:   uuid.NewString(),
		started:   time.Now(),
		newScreen: term.New,
	}

	if err := a.setupLogger(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) setupLogger() error {
	lc := DefaultLoggerConfig()

	level := a.cfg.Logging.Level
	if a.opts.LogLevel != "" {
		level = a.opts.LogLevel
	}
	lc.Level = ParseLogLevel(level)

	path := a.cfg.Logging.Path
	if a.opts.LogPath != "" {
		path = a.opts.LogPath
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("app: open log file: %w", err)
		}
		lc.Output = f
		a.closers = append(a.closers, f.Close)
	}

	a.logger = NewLogger(lc).WithField("session", a.session)
	return nil
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	if a.logger == nil {
		return NullLogger
	}
	return a.logger
}

// Session returns the session identifier.
func (a *App) Session() string {
	return a.session
}

// Close releases files opened by the application.
func (a *App) Close() error {
	var first error
	for _, fn := range a.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// Run drives the interactive session until the quit key, context
// cancellation, or a console halt. A clean quit returns ErrQuit.
func (a *App) Run(ctx context.Context) error {
	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("app: open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("app: init terminal: %w", err)
	}
	defer screen.Fini()
	a.screen = screen

	sink, err := a.openSerial()
	if err != nil {
		return err
	}

	attr, err := a.cfg.Attr()
	if err != nil {
		return err
	}

	a.cons = console.New(screen,
		console.WithAttr(attr),
		console.WithSerial(sink),
		console.WithDump(a.dump),
	)
	a.banner()

	if w := a.watchConfig(); w != nil {
		defer w.Close()
	}

	rctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.readLoop(rctx)

	a.logger.Info("session started")
	err = a.eventLoop(ctx, screen)
	a.logger.Info("session ended: %v", err)
	return err
}

// openSerial opens the serial mirror file, if one is configured.
func (a *App) openSerial() (serial.Sink, error) {
	path := a.cfg.Serial.Path
	if a.opts.SerialPath != "" {
		path = a.opts.SerialPath
	}
	if path == "" {
		return serial.Discard, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("app: open serial mirror: %w", err)
	}
	a.closers = append(a.closers, f.Close)
	return serial.NewWriter(f), nil
}

// watchConfig starts the live-reload watcher. Watch failures are logged
// and the session continues with the startup configuration.
func (a *App) watchConfig() *config.Watcher {
	if a.opts.ConfigPath == "" || a.opts.NoWatch {
		return nil
	}

	w, err := config.Watch(a.opts.ConfigPath, func(cfg *config.Config) {
		attr, err := cfg.Attr()
		if err != nil {
			a.logger.Warn("config reload rejected: %v", err)
			return
		}
		a.cons.SetAttr(attr)
		a.logger.Info("config reloaded, attribute %#04x", uint16(attr))
	})
	if err != nil {
		a.logger.Warn("config watch failed: %v", err)
		return nil
	}
	return w
}

func (a *App) banner() {
	a.cons.Printf("vgacons on %s\n", runtime.GOOS)
	a.cons.Printf("Alt-C Alt-O Alt-L opens the color picker; Ctrl-Q quits.\n\n")
}

// eventLoop translates terminal events into console interrupts.
func (a *App) eventLoop(ctx context.Context, screen *term.Screen) error {
	events := make(chan tcell.Event, 8)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	screen.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			screen.Flush()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if err := a.handleKey(ev); err != nil {
					return err
				}
			}
			screen.Flush()
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) error {
	code, ok := term.TranslateKey(ev)
	if !ok {
		return nil
	}
	if code == quitKey {
		return ErrQuit
	}

	delivered := false
	a.cons.Intr(func() int {
		if delivered {
			return keys.None
		}
		delivered = true
		return code
	})

	if a.cons.Halted() {
		return console.ErrHalted
	}
	return nil
}

// readLoop consumes published input lines the way a shell would, so the
// blocking read path is exercised during interactive use.
func (a *App) readLoop(ctx context.Context) {
	buf := make([]byte, linebuf.Capacity)
	pending := 0
	for {
		n, err := a.cons.Read(ctx, buf)
		if err != nil {
			return
		}
		if n == 0 {
			a.cons.Printf("[eof]\n")
			pending = 0
			continue
		}
		pending += n
		if buf[n-1] == '\n' {
			a.logger.Debug("line read, %d bytes", pending)
			pending = 0
		}
	}
}

// dump prints session diagnostics. The console invokes it outside its
// lock, so calling back into Printf here is safe.
func (a *App) dump() {
	a.cons.Printf("\nsession: %s\n", a.session)
	a.cons.Printf("uptime: %d s\n", int(time.Since(a.started).Seconds()))
	a.cons.Printf("goroutines: %d\n", runtime.NumGoroutine())
	a.cons.Printf("attribute: %x\n", int(a.cons.Attr()))
}
