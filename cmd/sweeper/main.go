package main

import (
	"context"
	"errors"
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"sweeper/internal/config"
	"sweeper/internal/mines"
	"sweeper/internal/scores"
	"sweeper/internal/tui"
)

var (
	log = logrus.New()
	dec = schema.NewDecoder()

	configPath string
	presetName string
	customSpec string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&presetName, "preset", "",
		"difficulty preset (beginner, intermediate, expert)")
	flag.StringVar(&customSpec, "custom", "",
		`custom difficulty, e.g. "width=30&height=16&mine_count=99"`)

	dec.IgnoreUnknownKeys(true)
}

// setupLogging routes logs to a rotating file: the TUI owns the
// terminal, so nothing may write to stdout or stderr while it runs.
func setupLogging(cfg config.Config) {
	log.SetOutput(io.Discard)

	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogPath,
		MaxSize:    5, // MB
		MaxBackups: 2,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		return // no log file, play on silently
	}
	log.AddHook(hook)

	mines.Log = log
}

type customParams struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	MineCount int  `schema:"mine_count,required"`
	SafeStart bool `schema:"safe_start"`
}

// resolveParams picks the starting difficulty: -custom beats -preset
// beats the config file's preset.
func resolveParams(cfg config.Config) (mines.GameParams, error) {
	if customSpec != "" {
		query, err := url.ParseQuery(customSpec)
		if err != nil {
			return mines.GameParams{}, err
		}
		custom := customParams{SafeStart: cfg.SafeStart}
		if err := dec.Decode(&custom, query); err != nil {
			return mines.GameParams{}, err
		}
		params := mines.GameParams{
			Width:     custom.Width,
			Height:    custom.Height,
			MineCount: custom.MineCount,
			SafeStart: custom.SafeStart,
		}
		return params, params.Validate()
	}

	name := cfg.Preset
	if presetName != "" {
		name = presetName
	}
	params, ok := mines.Preset(name)
	if !ok {
		return mines.GameParams{}, errors.New("unknown preset " + name)
	}
	params.SafeStart = cfg.SafeStart
	return params, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		if err := config.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("unable to read config %s: %s", configPath, err.Error())
		}
	}
	cfg.ApplyEnv()

	_ = os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755)
	_ = os.MkdirAll(filepath.Dir(cfg.ScoresPath), 0o755)

	setupLogging(cfg)

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	params, err := resolveParams(cfg)
	if err != nil {
		log.SetOutput(os.Stderr) // screen not up yet, user should see this
		log.Fatal(err)
	}

	store, err := scores.Open(cfg.ScoresPath)
	if err != nil {
		log.WithError(err).Error("best times unavailable")
		store = nil
	} else {
		defer store.Close()
	}

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))

	app := tui.New(log, cfg, params, store, rnd)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop() // quitting the UI also winds down the group
		return app.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatalf("exit reason: %s", err)
	}
}
