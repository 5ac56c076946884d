package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
	"github.com/arthur-debert/kifetch/pkg/logging"
)

const (
	// EnvPrefix starts every configuration environment variable
	EnvPrefix = "KIFETCH_"

	// EnvDebug enables per-module timing output when set to any value
	EnvDebug = "KIFETCH_DEBUG"

	// envSectionSep separates section and key in variable names
	envSectionSep = "__"
)

// DebugEnabled reports whether the debug environment signal is set.
func DebugEnabled() bool {
	_, ok := os.LookupEnv(EnvDebug)
	return ok
}

// Default returns the built-in configuration.
func Default() *Config {
	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds the configuration from the defaults, the file at path and the
// environment. A missing file is not an error. When the file cannot be read
// or parsed, Load still returns a usable Config (defaults plus environment)
// together with an ErrConfigLoad or ErrConfigParse error.
func Load(fs filesystem.FS, path string) (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	k := koanf.New(".")
	if err := loadDefaults(k); err != nil {
		return nil, err
	}

	fileErr := loadFile(k, fs, path)
	if fileErr != nil {
		logger.Debug().Err(fileErr).Str("path", path).Msg("Ignoring config file")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	return cfg, fileErr
}

func loadDefaults(k *koanf.Koanf) error {
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	return nil
}

func loadFile(k *koanf.Koanf, fs filesystem.FS, path string) error {
	if path == "" || !filesystem.Exists(fs, path) {
		return nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps KIFETCH_GENERAL__LOGO_PATH to general.logo_path. Variables
// without a section separator (KIFETCH_DEBUG, KIFETCH_CONFIG_DIR) are not
// configuration keys and are skipped.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if !strings.Contains(key, envSectionSep) {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), envSectionSep, ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcess(&cfg)
	return &cfg, nil
}

func postProcess(cfg *Config) {
	if cfg.Colors == nil {
		cfg.Colors = map[string]string{}
	}
	if cfg.Modules.Custom == nil {
		cfg.Modules.Custom = map[string]string{}
	}
	if cfg.General.Padding < 0 {
		cfg.General.Padding = 0
	}
}
