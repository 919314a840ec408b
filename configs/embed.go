// Package configs embeds the default arena settings and stages.
package configs

import "embed"

//go:embed arena.json stages
var FS embed.FS
