package config

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/logging"
	"github.com/arthur-debert/edit-move/pkg/paths"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EDIT_MOVE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the effective configuration.
type Config struct {
	Editor        string `koanf:"editor" toml:"editor"`
	Preview       bool   `koanf:"preview" toml:"preview"`
	Absolute      bool   `koanf:"absolute" toml:"absolute"`
	Sanitize      bool   `koanf:"sanitize" toml:"sanitize"`
	Instructions  bool   `koanf:"instructions" toml:"instructions"`
	ScratchPrefix string `koanf:"scratch_prefix" toml:"scratch_prefix"`
	Format        string `koanf:"format" toml:"format"`
}

// LoadOptions selects the user file and flag overrides.
type LoadOptions struct {
	// ConfigFile must exist when set. Otherwise the XDG location is used if present.
	ConfigFile string
	// Flags holds values of flags the user set explicitly, keyed like the TOML file.
	Flags map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path := opts.ConfigFile
	if path == "" {
		if candidate := paths.ConfigFilePath(); fileExists(candidate) {
			path = candidate
		}
	} else if !fileExists(path) {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %q not found", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %q", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	logger.Debug().Interface("config", cfg).Msg("Configuration loaded")
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() *Config {
	var cfg Config
	if err := gotoml.Unmarshal(defaultConfig, &cfg); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return &cfg
}

// DefaultContent returns the commented defaults file.
func DefaultContent() string {
	return string(defaultConfig)
}

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) (string, error) {
	var buf bytes.Buffer
	enc := gotoml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
