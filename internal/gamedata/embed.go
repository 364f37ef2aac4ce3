// Package gamedata provides the embedded entity catalog and per-stage room
// tables that populate generated dungeons.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
