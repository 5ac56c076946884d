package config

// Config is the complete kifetch configuration.
type Config struct {
	General General           `koanf:"general" toml:"general"`
	Colors  map[string]string `koanf:"colors" toml:"colors"`
	Modules Modules           `koanf:"modules" toml:"modules"`
	Layout  Layout            `koanf:"layout" toml:"layout"`
}

// General holds logo and spacing settings.
type General struct {
	Logo      string `koanf:"logo" toml:"logo"`
	LogoPath  string `koanf:"logo_path" toml:"logo_path,omitempty"`
	Separator string `koanf:"separator" toml:"separator"`
	Padding   int    `koanf:"padding" toml:"padding"`
}

// Modules selects built-in modules and defines custom ones.
type Modules struct {
	Enabled []string          `koanf:"enabled" toml:"enabled"`
	Custom  map[string]string `koanf:"custom" toml:"custom"`
}

// Layout is the ordered list of template lines.
type Layout struct {
	Lines []string `koanf:"lines" toml:"lines"`
}

// IsEnabled reports whether a built-in module is in the enabled list.
func (c *Config) IsEnabled(module string) bool {
	for _, m := range c.Modules.Enabled {
		if m == module {
			return true
		}
	}
	return false
}
