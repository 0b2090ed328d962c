// Package config holds the command line host's settings and loads them from
// an optional TOML file.
package config

import "github.com/metcalfc/simpletoc/internal/toc"

type Config struct {
	Position        string
	Title           string
	IDPrefix        string
	StripDiacritics bool
	Enabled         bool
	Cache           bool
}

func Default() Config {
	return Config{
		Position:        "top",
		Title:           toc.DefaultTitle,
		StripDiacritics: true,
		Enabled:         true,
	}
}

// Settings converts the host configuration into the per-document settings the
// toc package works with. Unknown positions fall back to top.
func (c Config) Settings() toc.Settings {
	return toc.Settings{
		Enabled:         c.Enabled,
		Position:        toc.ParsePosition(c.Position),
		Title:           c.Title,
		IDPrefix:        c.IDPrefix,
		StripDiacritics: c.StripDiacritics,
	}
}
