package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const defaultGlob = "**/*.proto"

// Config holds the options of a generation run. Every field may come from a
// config file, command line flags take precedence.
type Config struct {
	Input    string   `toml:"input" yaml:"input"`
	Output   string   `toml:"output" yaml:"output"`
	Includes []string `toml:"includes" yaml:"includes"`
	Glob     string   `toml:"glob" yaml:"glob"`
	Protos   []string `toml:"protos" yaml:"protos"`
	Verbose  bool     `toml:"verbose" yaml:"verbose"`
}

func Default() Config {
	return Config{
		Glob: defaultGlob,
	}
}

// Load reads a config file, choosing the decoder from its extension. Keys
// that are not options are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("load config: unknown key `%s`", undecoded[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported config format `%s`", filepath.Ext(path))
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Input = strings.TrimSpace(c.Input)
	c.Output = strings.TrimSpace(c.Output)
	c.Glob = strings.TrimSpace(c.Glob)
	if c.Glob == "" {
		c.Glob = defaultGlob
	}
	c.Includes = normalizePaths(c.Includes)
	c.Protos = normalizePaths(c.Protos)
}

func normalizePaths(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, p := range in {
		v := strings.TrimSpace(p)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Validate reports the first missing option needed to run.
func (c Config) Validate() error {
	if c.Input == "" && len(c.Protos) == 0 {
		return errors.New("no input provided, set an input dir with `--input=\"<dir>\"` or list `protos` in the config file")
	}
	if c.Output == "" {
		return errors.New("no output provided, set an output dir with `--output=\"<dir>\"`")
	}
	return nil
}
