// Copyright 2026 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	InvalidConfigError = errors.New("invalid config")
	IsInvalidConfig    = func(err error) bool {
		return err == InvalidConfigError || errors.Cause(err) == InvalidConfigError
	}
)

// Config holds the settings that can be given in a config file.
// All fields are optional; command line flags override them.
type Config struct {
	Bridge      string   `yaml:"bridge"`
	Chip        string   `yaml:"chip"`
	Pin         int      `yaml:"pin"`
	Frequency   float64  `yaml:"frequency"`
	Sequence    []string `yaml:"sequence"`
	NoColor     bool     `yaml:"no_color"`
	Level       string   `yaml:"level"`
	LogFile     string   `yaml:"log_file"`
	MetricsFile string   `yaml:"metrics_file"`
}

// Load reads a config file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "Failed to read config file '%s'", path)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, errors.Wrapf(err, "in '%s'", path)
	}
	return cfg, nil
}

// Parse parses the content of a config file.
func Parse(content []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			// Empty file
			return Config{}, nil
		}
		return Config{}, errors.Wrap(InvalidConfigError, err.Error())
	}
	if cfg.Frequency < 0 {
		return Config{}, errors.Wrapf(InvalidConfigError, "frequency must be > 0, got %v", cfg.Frequency)
	}
	if cfg.Pin < 0 {
		return Config{}, errors.Wrapf(InvalidConfigError, "pin must be > 0, got %d", cfg.Pin)
	}
	return cfg, nil
}
