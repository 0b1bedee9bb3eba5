// SPDX-License-Identifier: EPL-2.0

// Package config loads trackdeck settings with viper.
//
// Values come, in increasing precedence, from built-in defaults, a YAML
// file (trackdeck.yaml in ., $HOME/.trackdeck or /etc/trackdeck, or the
// file given with --config), TRACKDECK_* environment variables and bound
// command line flags:
//
//	audio:
//	  sample_rate: 44100
//	  channels: 2
//	  quantum_frames: 1024
//	  buffers: 2
//	  backend: oto
//	player:
//	  auto_advance: false
//	  seek_step: 5s
//	catalog:
//	  manifest: tracks.yaml
//	logging:
//	  level: info
//	  format: text
package config
