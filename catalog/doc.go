// SPDX-License-Identifier: EPL-2.0

// Package catalog holds the fixed list of tracks a player can choose from.
//
// A catalog is built once and never changes. Tracks come from a YAML
// manifest, a directory scan, or an fs.FS bundle such as an embed.FS; bundle
// tracks are always kept in memory.
package catalog
