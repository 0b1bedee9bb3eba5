// SPDX-License-Identifier: EPL-2.0

// Package logger sets up log/slog for the player and provides Ring, a
// handler that keeps the most recent records for on-screen display.
package logger
