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

package tool

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/binkynet/SoftPWMTool/pkg/bridge"
	"github.com/binkynet/SoftPWMTool/pkg/config"
	"github.com/binkynet/SoftPWMTool/pkg/sequence"
)

const (
	// NoColorEnv is the environment variable that disables colored output
	NoColorEnv = "NO_CLI_COLOR"

	defaultFrequency = 50.0
	defaultLevel     = "info"
)

// options holds all command line settings.
type options struct {
	pin         bridge.Pin
	frequency   float64
	steps       []sequence.Step
	noColor     bool
	bridgeType  string
	chip        string
	configPath  string
	level       string
	dryRun      bool
	metricsFile string
	logFile     string
	help        bool
	version     bool

	fs *pflag.FlagSet
}

// newFlagSet creates the flag set that parses into the given options.
func newFlagSet(name string, o *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.VarP(bridge.PinValue{Pin: &o.pin}, "pin", "p", "BCM pin to drive (1..27)")
	fs.Float64VarP(&o.frequency, "frequency", "f", defaultFrequency, "Frequency of the PWM signal in Hz")
	fs.VarP(sequence.Value{Steps: &o.steps}, "sequence", "s", "Comma separated list of angle:time steps (degrees 0..180, milliseconds). Can be repeated")
	fs.BoolVarP(&o.noColor, "no-color", "n", false, "Disable colors in output (env "+NoColorEnv+")")
	fs.StringVarP(&o.bridgeType, "bridge", "b", string(bridge.TypeAuto), "Type of bridge to use ("+bridge.TypeNames()+")")
	fs.StringVar(&o.chip, "chip", bridge.DefaultChip, "GPIO chip used by the cdev bridge")
	fs.StringVarP(&o.configPath, "config", "c", "", "Path of a YAML config file")
	fs.StringVarP(&o.level, "level", "l", defaultLevel, "Set log level")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Print the planned sequence without touching any hardware")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")
	fs.StringVar(&o.logFile, "log-file", "", "Also write all output to this file")
	fs.BoolVarP(&o.version, "version", "V", false, "Print version information")
	fs.BoolVarP(&o.help, "help", "h", false, "Print help")
	o.fs = fs
	return fs
}

// applyEnv fills options that were not set on the command line from
// the environment.
func (o *options) applyEnv(getenv func(string) string) {
	if o.fs.Changed("no-color") {
		return
	}
	if v := strings.TrimSpace(getenv(NoColorEnv)); v != "" {
		o.noColor = parseEnvBool(v)
	}
}

// parseEnvBool interprets a boolean environment value.
// Any set value other than a known false word counts as true.
func parseEnvBool(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "no", "n", "off":
		return false
	}
	return true
}

// applyConfig fills options that were not set on the command line from
// the given config.
func (o *options) applyConfig(cfg config.Config) error {
	changed := o.fs.Changed
	if cfg.Bridge != "" && !changed("bridge") {
		if _, err := bridge.ParseType(cfg.Bridge); err != nil {
			return errors.Wrap(err, "bridge")
		}
		o.bridgeType = cfg.Bridge
	}
	if cfg.Chip != "" && !changed("chip") {
		o.chip = cfg.Chip
	}
	if cfg.Pin != 0 && !changed("pin") {
		p, err := bridge.ParsePin(strconv.Itoa(cfg.Pin))
		if err != nil {
			return errors.Wrap(err, "pin")
		}
		o.pin = p
	}
	if cfg.Frequency != 0 && !changed("frequency") {
		o.frequency = cfg.Frequency
	}
	if len(cfg.Sequence) > 0 && !changed("sequence") {
		steps, err := sequence.ParseAll(cfg.Sequence...)
		if err != nil {
			return errors.Wrap(err, "sequence")
		}
		o.steps = steps
	}
	if cfg.NoColor && !changed("no-color") {
		o.noColor = true
	}
	if cfg.Level != "" && !changed("level") {
		if _, err := zerolog.ParseLevel(cfg.Level); err != nil {
			return errors.Wrapf(config.InvalidConfigError, "level: unknown log level '%s'", cfg.Level)
		}
		o.level = cfg.Level
	}
	if cfg.LogFile != "" && !changed("log-file") {
		o.logFile = cfg.LogFile
	}
	if cfg.MetricsFile != "" && !changed("metrics-file") {
		o.metricsFile = cfg.MetricsFile
	}
	return nil
}

// validate checks that all required options are set.
func (o *options) validate() (bridge.Type, zerolog.Level, error) {
	if o.pin == 0 {
		return "", 0, errors.Wrap(UsageError, "the following required argument was not provided: --pin <pin>")
	}
	if len(o.steps) == 0 {
		return "", 0, errors.Wrap(UsageError, "the following required argument was not provided: --sequence <angle:time,...>")
	}
	if !(o.frequency > 0) {
		return "", 0, errors.Wrapf(UsageError, "invalid value '%v' for '--frequency': must be > 0", o.frequency)
	}
	bt, err := bridge.ParseType(o.bridgeType)
	if err != nil {
		return "", 0, errors.Wrapf(UsageError, "invalid value for '--bridge': %s", err)
	}
	level, err := zerolog.ParseLevel(o.level)
	if err != nil {
		return "", 0, errors.Wrapf(UsageError, "invalid value '%s' for '--level'", o.level)
	}
	return bt, level, nil
}

// openLogFile opens the log file for appending.
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open log file '%s'", path)
	}
	return f, nil
}
