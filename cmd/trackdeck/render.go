// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/trackdeck"
	"github.com/ik5/trackdeck/logger"
)

// renderCmd decodes one track to a WAV file without opening a device
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Decode a track to WAV",
	Long: `Decode a track and write it as 16-bit PCM WAV at the configured output
format. Without a file argument, --track picks a track from the catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntP("track", "t", 1, "catalog track number (1-based)")
	renderCmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout may carry the WAV stream, so logs go to stderr.
	if err := logger.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	cat, err := loadCatalog(cfg, args)
	if err != nil {
		return err
	}

	index, _ := cmd.Flags().GetInt("track")
	if len(args) > 0 {
		index = 1
	}

	track, err := cat.Track(index - 1)
	if err != nil {
		return err
	}

	src, raw, err := decodeTrack(track)
	if err != nil {
		return err
	}
	defer raw.Close()
	defer src.Close()

	output, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	slog.Info("rendering",
		slog.String("track", track.Name()),
		slog.String("format", cfg.Format().String()),
		slog.String("output", output))

	return trackdeck.RenderWAV(out, src, cfg.Format())
}
