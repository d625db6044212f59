package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/owenfaulkner29/jargon/internal/app"
	"github.com/owenfaulkner29/jargon/internal/config"
	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/logging"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/store"
)

// runtime bundles what every command needs once flags are parsed.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	decks    *deck.Set
	closeLog func() error
}

func (r *runtime) Close() {
	if r.closeLog != nil {
		_ = r.closeLog()
	}
}

// setup loads config, applies flag overrides, configures logging and loads
// the decks.
func setup(cmd *cobra.Command) (*runtime, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if f, _ := cmd.Flags().GetString("decks"); f != "" {
		cfg.Decks.File = f
	}

	logger, closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	rt := &runtime{cfg: cfg, logger: logger, closeLog: closeLog}

	if cfg.Decks.File != "" {
		rt.decks, err = deck.LoadFile(cfg.Decks.File)
	} else {
		rt.decks, err = deck.Default()
	}
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load decks: %w", err)
	}
	logger.Debug("decks loaded", "file", cfg.Decks.File, "counts", rt.decks.Counts())
	return rt, nil
}

// openStore resolves the database path and opens the event store.
func openStore(cmd *cobra.Command, rt *runtime) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, rt.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.logger.Debug("store opened", "path", dbPath)
	return st, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	startDeck, err := deck.ParseName(rt.cfg.Study.StartDeck)
	if err != nil {
		return err
	}
	if name, _ := cmd.Flags().GetString("deck"); name != "" {
		startDeck, err = deck.ParseName(name)
		if err != nil {
			return err
		}
	}

	st, err := openStore(cmd, rt)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	tracker := mastery.NewTracker(eventRepo, rt.logger)
	if err := tracker.Load(ctx); err != nil {
		return err
	}

	rt.logger.Info("starting jargon", "version", version, "start_deck", startDeck)
	return app.Run(app.Options{
		Decks:     rt.decks,
		Tracker:   tracker,
		EventRepo: eventRepo,
		StartDeck: startDeck,
		Logger:    rt.logger,
	})
}
