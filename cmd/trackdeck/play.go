// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ik5/trackdeck"
	"github.com/ik5/trackdeck/logger"
	"github.com/ik5/trackdeck/player"
	"github.com/ik5/trackdeck/sink"
)

// playCmd runs the interactive player
var playCmd = &cobra.Command{
	Use:   "play [files...]",
	Short: "Play tracks interactively",
	Long: `Play the catalog on the configured audio backend.

Keys: left/right or b/n switch track, a or space pause, l/r seek,
s stop, p replay the current track, q quit.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntP("track", "t", 1, "track number to start with (1-based)")
	playCmd.Flags().Bool("auto-advance", false, "play the next track when one ends")
	playCmd.Flags().Duration("seek-step", 0, "seek distance for l/r (default from config)")

	v.BindPFlag("player.auto_advance", playCmd.Flags().Lookup("auto-advance"))

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The screen owns stdout; logs are kept for display under the status.
	ring := logger.NewRing(logger.DefaultRingSize, logger.ParseLevel(cfg.Logging.Level))
	slog.SetDefault(slog.New(ring))

	cat, err := loadCatalog(cfg, args)
	if err != nil {
		return err
	}

	out, err := sink.New(cfg.Audio.Backend)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.Audio.Backend, err)
	}

	opts := cfg.Options()
	opts.Registry = trackdeck.NewRegistry()
	opts.Logger = logger.WithComponent("player")

	eng, err := player.New(out, cat, opts)
	if err != nil {
		out.Close()
		return err
	}
	defer eng.Close()

	start, _ := cmd.Flags().GetInt("track")
	if err := eng.Play(start - 1); err != nil {
		slog.Error("play failed", slog.Any("error", err))
	}

	step := cfg.Player.SeekStep
	if s, _ := cmd.Flags().GetDuration("seek-step"); s > 0 {
		step = s
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return inputLoop(ctx, cmd.InOrStdin(), eng, step)
	})
	g.Go(func() error {
		return statusLoop(ctx, cmd.OutOrStdout(), cat.Names(), eng, ring.Lines)
	})

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
