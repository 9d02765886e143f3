package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/marketmood/moodscope/pkg/config"
	"github.com/marketmood/moodscope/pkg/content"
	"github.com/marketmood/moodscope/pkg/news"
	"github.com/marketmood/moodscope/pkg/scheduler"
	"github.com/marketmood/moodscope/pkg/sentiment"
	"github.com/marketmood/moodscope/pkg/store"
	"github.com/marketmood/moodscope/pkg/summarizer"
	"github.com/marketmood/moodscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

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

	lgr.Printf("[INFO] starting moodscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] moodscope failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires the pipeline and serves until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	slotStore, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer slotStore.Close()

	source, err := newSource(cfg.GetNewsConfig())
	if err != nil {
		return err
	}

	pipeline := scheduler.NewPipeline(scheduler.PipelineConfig{
		Source:      source,
		Extractor:   content.NewHTTPExtractor(cfg.GetExtractionConfig()),
		Summarizer:  summarizer.New(cfg.Summarizer),
		Classifier:  sentiment.NewClassifier(cfg.Sentiment),
		Store:       slotStore,
		MaxArticles: cfg.News.MaxArticles,
		MaxWorkers:  cfg.Schedule.MaxWorkers,
	})

	sched := scheduler.NewScheduler(scheduler.NewWeeklyJob(pipeline), scheduler.Config{
		Interval:   cfg.Schedule.Interval,
		RunOnStart: cfg.Schedule.RunOnStart,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, slotStore, sched, revision, opts.Debug)
	return srv.Run(ctx)
}

// newSource picks the news provider from config
func newSource(cfg config.NewsConfig) (scheduler.Source, error) {
	switch cfg.Provider {
	case "alphavantage", "":
		return news.NewClient(cfg), nil
	case "rss":
		return news.NewRSSSource(cfg), nil
	default:
		return nil, fmt.Errorf("unknown news provider %q", cfg.Provider)
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
