package lexdraft

import "embed"

//go:embed locales/*.toml
var Locales embed.FS
