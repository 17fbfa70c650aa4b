package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"rdparser/internals"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = ".rdparser.yaml"

const DefaultPrompt = ">> "

type Config struct {
	Prompt   string `yaml:"prompt"`
	Sentinel string `yaml:"sentinel"`
	Color    bool   `yaml:"color"`
	Trace    bool   `yaml:"trace"`

	// where trace lines go, stderr when nil
	TraceOutput io.Writer `yaml:"-"`
}

func Default() Config {
	return Config{
		Prompt:   DefaultPrompt,
		Sentinel: internals.DefaultSentinel,
	}
}

// Load reads a yaml config file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("config: parse %s: %w", abs, err)
	}
	return cfg, nil
}

// Resolve loads path when set, else DefaultFile from dir if it exists, else
// returns the defaults
func Resolve(path, dir string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	candidate := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: stat %s: %w", candidate, err)
	}
	return Load(candidate)
}

func (c Config) TraceWriter() io.Writer {
	if !c.Trace {
		return nil
	}
	if c.TraceOutput != nil {
		return c.TraceOutput
	}
	return os.Stderr
}
