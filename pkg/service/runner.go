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

package service

import (
	"github.com/benbjohnson/clock"
	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SoftPWMTool/pkg/bridge"
	"github.com/binkynet/SoftPWMTool/pkg/logging"
	"github.com/binkynet/SoftPWMTool/pkg/sequence"
)

// Config of a sequence run
type Config struct {
	// Frequency of the PWM signal in Hz
	Frequency float64
	// Steps to play, in order
	Steps []sequence.Step
}

// Dependencies of a Runner
type Dependencies struct {
	Log    logging.Log
	Logger zerolog.Logger
	Clock  clock.Clock
}

// Runner plays a sequence of steps on a single pin.
type Runner struct {
	Config
	Dependencies
}

// NewRunner creates a Runner.
func NewRunner(conf Config, deps Dependencies) (*Runner, error) {
	if !(conf.Frequency > 0) {
		return nil, errors.Errorf("frequency must be > 0, got %v", conf.Frequency)
	}
	if len(conf.Steps) == 0 {
		return nil, errors.Wrap(sequence.EmptySequenceError, "nothing to run")
	}
	if deps.Log == nil {
		return nil, errors.New("Log is required")
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	return &Runner{
		Config:       conf,
		Dependencies: deps,
	}, nil
}

// Run programs the pin for every step, holds it for the duration of the step
// and finally clears the PWM signal.
// A failure to program the pin aborts the remaining steps.
func (r *Runner) Run(pin bridge.PWMPin) error {
	var ae aerr.AggregateError
	ae.Add(r.play(pin))
	if err := pin.ClearPWM(); err != nil {
		ae.Add(errors.Wrap(err, "ClearPWM failed"))
	} else {
		r.Logger.Debug().Msg("Cleared PWM")
	}
	return ae.AsError()
}

func (r *Runner) play(pin bridge.PWMPin) error {
	for i, step := range r.Steps {
		duty := step.DutyCycle()
		if err := pin.SetPWMFrequency(r.Frequency, duty); err != nil {
			stepErrorsTotal.Inc()
			return errors.Wrapf(err, "step %d (%s): SetPWMFrequency failed", i+1, step)
		}
		stepsTotal.Inc()
		lastAngleDegrees.Set(step.Angle)
		r.Logger.Debug().
			Int("step", i+1).
			Float64("angle", step.Angle).
			Float64("duty", duty).
			Dur("hold", step.Hold).
			Msg("Programmed step")

		r.Clock.Sleep(step.Hold)
		holdSecondsTotal.Add(step.Hold.Seconds())
		r.Log.Output("Moved to %g° (duty cycle %.2f%%), held for %s", step.Angle, duty*100, step.Hold)
	}
	return nil
}
