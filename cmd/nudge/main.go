package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/nudge/pkg/config"
	"github.com/umputun/nudge/pkg/dialog"
	"github.com/umputun/nudge/pkg/rating"
	"github.com/umputun/nudge/pkg/store"
	"github.com/umputun/nudge/server"
)

// Opts with all CLI options
type Opts struct {
	Config      string `short:"f" long:"config" env:"CONFIG" default:"nudge.yml" description:"config file"`
	Listen      string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Interactive bool   `short:"i" long:"interactive" description:"run one rating flow in the terminal instead of serving"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting nudge version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	prefs, err := makeStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer func() {
		if err := prefs.Close(); err != nil {
			log.Printf("[WARN] failed to close preference store: %v", err)
		}
	}()

	ratingCfg := rating.Config{
		Primary:    promptContent(cfg.Rating.Primary),
		Secondary:  promptContent(cfg.Rating.Secondary),
		Snooze:     time.Duration(cfg.Rating.SnoozeDays) * 24 * time.Hour,
		MinActions: cfg.Rating.MinActions,
	}

	if opts.Interactive {
		svc := rating.NewService(prefs, dialog.NewTerminal(os.Stdin, os.Stdout))
		if err := svc.Configure(ratingCfg); err != nil {
			return fmt.Errorf("failed to configure rating service: %w", err)
		}
		return svc.StartRatingFlow(ctx, func(e rating.Event) {
			log.Printf("[INFO] rating event: %s", e)
		})
	}

	// the server is both the HTTP surface and the dialog presenter, resolve
	// the cycle with a late-bound presenter
	presenter := &webPresenter{}
	svc := rating.NewService(prefs, presenter)
	if err := svc.Configure(ratingCfg); err != nil {
		return fmt.Errorf("failed to configure rating service: %w", err)
	}

	srv := server.New(cfg, svc, revision, opts.Debug)
	presenter.srv = srv

	return srv.Run(ctx)
}

// makeStore builds the preference store from config: sqlite backend, wrapped
// with value encryption when a key is configured
func makeStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	sqlite, err := store.NewSQLite(ctx, store.SQLiteConfig{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	var backend store.Backend = sqlite

	key, err := cfg.DecodedEncryptionKey()
	if err != nil {
		return nil, err
	}
	if key != nil {
		if backend, err = store.NewEncrypted(backend, key); err != nil {
			return nil, err
		}
		log.Print("[INFO] preference values encrypted at rest")
	}

	return store.New(backend, cfg.Storage.Namespace), nil
}

func promptContent(p config.PromptConfig) rating.Content {
	return rating.Content{Title: p.Title, Message: p.Message, Positive: p.Positive, Negative: p.Negative}
}

// webPresenter delegates dialog presentation to the HTTP server, assigned
// after the server is constructed
type webPresenter struct {
	srv *server.Server
}

func (p *webPresenter) Show(ctx context.Context, content rating.Content) (rating.Outcome, error) {
	return p.srv.Show(ctx, content)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
