// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/trackdeck/config"
	"github.com/ik5/trackdeck/sink"
)

var (
	cfgFile string
	verbose bool

	v = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackdeck",
	Short: "A streaming audio track player",
	Long: `Trackdeck decodes Ogg Vorbis, MP3, WAV and AIFF tracks a buffer at a time
and plays them on the local sound device.

Tracks come from a YAML manifest, a directory, or files given on the
command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./trackdeck.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.String("backend", sink.BackendOto, "audio backend (oto, beep, clock)")
	flags.String("manifest", "", "track manifest (YAML)")
	flags.String("dir", "", "directory of tracks")
	flags.Int("sample-rate", 44100, "output sample rate")
	flags.Int("channels", 2, "output channels")
	flags.Int("quantum", 1024, "frames per buffer")
	flags.Int("buffers", 2, "number of buffers in flight")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	// Bind flags to viper
	v.BindPFlag("audio.backend", flags.Lookup("backend"))
	v.BindPFlag("catalog.manifest", flags.Lookup("manifest"))
	v.BindPFlag("catalog.dir", flags.Lookup("dir"))
	v.BindPFlag("audio.sample_rate", flags.Lookup("sample-rate"))
	v.BindPFlag("audio.channels", flags.Lookup("channels"))
	v.BindPFlag("audio.quantum_frames", flags.Lookup("quantum"))
	v.BindPFlag("audio.buffers", flags.Lookup("buffers"))
	v.BindPFlag("logging.level", flags.Lookup("log-level"))
	v.BindPFlag("logging.format", flags.Lookup("log-format"))
}

// initConfig applies flags that override the whole configuration
func initConfig() {
	if verbose {
		v.Set("logging.level", "debug")
	}
}

// loadConfig loads and validates the configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
