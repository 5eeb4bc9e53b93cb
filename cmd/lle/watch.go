package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/lle/world"
)

func newWatchCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <map>",
		Short: "Re-parse and re-build a map file on every save, reporting errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doWatch(cmd.Context(), args[0], stdout, stderr); err != nil {
				fmt.Fprintf(stderr, "lle watch: %v\n", err) //nolint:errcheck
				return errExit
			}
			return nil
		},
	}
}

// doWatch watches the directory containing ref (not ref itself, to
// survive editor rename-swap saves) and rebuilds the map on every
// event until interrupted.
func doWatch(ctx context.Context, ref string, stdout, stderr io.Writer) error {
	log := zerolog.New(stdout).With().Timestamp().Str("map", ref).Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	dir := filepath.Dir(ref)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	rebuild := func() {
		d, err := loadDescriptor(ref)
		if err != nil {
			log.Error().Err(err).Msg("parse failed")
			return
		}
		if _, err := world.Build(d, viper.GetUint64("seed")); err != nil {
			log.Error().Err(err).Msg("build failed")
			return
		}
		log.Info().Msg("ok")
	}

	rebuild()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(ref) {
				continue
			}
			rebuild()
		case ev, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(ev).Msg("watcher error")
		case <-ctx.Done():
			return nil
		}
	}
}
