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

// Package tool implements the softpwm command.
//
// The tool drives a single GPIO pin with a servo compatible PWM signal.
// It walks a sequence of angle:time steps, programs the duty cycle that
// belongs to each angle, holds it for the requested time and clears
// the PWM signal once the sequence completes.
package tool

import (
	"io"
	"os"
	"strings"

	"github.com/benbjohnson/clock"
	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SoftPWMTool/pkg/bridge"
	"github.com/binkynet/SoftPWMTool/pkg/config"
	"github.com/binkynet/SoftPWMTool/pkg/logging"
	"github.com/binkynet/SoftPWMTool/pkg/metrics"
	"github.com/binkynet/SoftPWMTool/pkg/sequence"
	"github.com/binkynet/SoftPWMTool/pkg/service"
	"github.com/binkynet/SoftPWMTool/pkg/ui"
)

const (
	// ProgramName is the name of the command
	ProgramName = "softpwm"
	about       = "Drive a servo on a Raspberry Pi GPIO pin with a PWM signal"
)

// BridgeBuilder creates a bridge of given type.
type BridgeBuilder func(t bridge.Type, opts bridge.Options, log zerolog.Logger) (bridge.API, error)

// Dependencies of the tool
type Dependencies struct {
	// Log receives all user facing messages (required)
	Log logging.Log
	// NewBridge creates the bridge. Defaults to bridge.New
	NewBridge BridgeBuilder
	// Clock used to hold steps. Defaults to the real clock
	Clock clock.Clock
	// Getenv looks up environment variables. Defaults to os.Getenv
	Getenv func(string) string
	// Version and build shown by --version
	Version string
	Build   string
}

// Tool is the softpwm command.
type Tool struct {
	Dependencies
}

// New creates a new tool.
func New(deps Dependencies) *Tool {
	if deps.NewBridge == nil {
		deps.NewBridge = bridge.New
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	return &Tool{Dependencies: deps}
}

// Run the tool with given arguments (excluding the program name).
// Argument errors are reported on the log output and do not
// result in an error.
func (t *Tool) Run(args []string) error {
	var o options
	fs := newFlagSet(ProgramName, &o)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		t.usageError(err)
		return nil
	}
	if o.help {
		t.Log.Output("%s\n\nUsage: %s [OPTIONS] --pin <pin> --sequence <angle:time,...>\n\nOptions:\n%s", about, ProgramName, fs.FlagUsages())
		return nil
	}
	if o.version {
		t.Log.Output("%s %s (build %s)", ProgramName, t.Version, t.Build)
		return nil
	}
	if rest := fs.Args(); len(rest) > 0 {
		t.usageError(errors.Errorf("unexpected argument '%s' found", rest[0]))
		return nil
	}

	o.applyEnv(t.Getenv)
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return maskAny(err)
		}
		if err := o.applyConfig(cfg); err != nil {
			return errors.Wrapf(err, "in config file '%s'", o.configPath)
		}
	}
	bridgeType, level, err := o.validate()
	if err != nil {
		t.usageError(err)
		return nil
	}

	// Prepare logging
	if o.noColor {
		if cs, ok := t.Log.(logging.ColorSwitch); ok {
			cs.SetNoColor(true)
		}
	}
	if ls, ok := t.Log.(interface{ SetLevel(zerolog.Level) }); ok {
		ls.SetLevel(level)
	}
	if o.logFile != "" {
		f, err := openLogFile(o.logFile)
		if err != nil {
			return maskAny(err)
		}
		defer f.Close()
		if ao, ok := t.Log.(interface{ AddOutput(io.Writer) }); ok {
			ao.AddOutput(f)
		} else {
			t.Log.Warning("Log does not support --log-file")
		}
	}
	logger := zerolog.Nop()
	if lp, ok := t.Log.(logging.LoggerProvider); ok {
		logger = lp.Logger()
	}

	if o.dryRun {
		t.Log.Output("%s", ui.RenderPlan(ui.Plan{
			Bridge:    bridge.ResolveType(bridgeType, logger),
			Pin:       o.pin,
			Frequency: o.frequency,
			Steps:     o.steps,
		}, o.noColor))
		return nil
	}

	runErr := t.run(o, bridgeType, logger)
	if o.metricsFile != "" {
		if err := metrics.WriteTextfile(o.metricsFile); err != nil {
			if runErr == nil {
				return maskAny(err)
			}
			t.Log.Warning("%s", err)
		}
	}
	return runErr
}

// run acquires the pin and plays the sequence on it.
func (t *Tool) run(o options, bridgeType bridge.Type, logger zerolog.Logger) error {
	runner, err := service.NewRunner(service.Config{
		Frequency: o.frequency,
		Steps:     o.steps,
	}, service.Dependencies{
		Log:    t.Log,
		Logger: logger,
		Clock:  t.Clock,
	})
	if err != nil {
		return maskAny(err)
	}

	br, err := t.NewBridge(bridgeType, bridge.Options{Chip: o.chip}, logger)
	if err != nil {
		return maskAny(err)
	}
	pin, err := br.PWM(o.pin)
	if err != nil {
		closeErr := br.Close()
		var ae aerr.AggregateError
		ae.Add(errors.Wrapf(err, "Failed to acquire pin %s", o.pin))
		ae.Add(closeErr)
		return ae.AsError()
	}
	logger.Debug().
		Str("pin", o.pin.String()).
		Int("pins", br.PinCount()).
		Float64("frequency", o.frequency).
		Int("steps", len(o.steps)).
		Msg("Starting sequence")

	var ae aerr.AggregateError
	ae.Add(runner.Run(pin))
	ae.Add(br.Close())
	return ae.AsError()
}

// usageError reports an argument error on the output channel.
func (t *Tool) usageError(err error) {
	msg := err.Error()
	if IsUsage(err) {
		msg = strings.TrimSuffix(msg, ": "+UsageError.Error())
	}
	// pflag flattens errors of flag values to text
	msg = strings.TrimSuffix(msg, ": "+sequence.InvalidStepError.Error())
	t.Log.Output("error: %s\n\nUsage: %s [OPTIONS] --pin <pin> --sequence <angle:time,...>\n\nFor more information, try '--help'.", msg, ProgramName)
}
