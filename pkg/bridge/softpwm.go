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

package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// softPWM generates a PWM signal on a plain output pin
// by toggling it from a goroutine.
type softPWM struct {
	mutex    sync.Mutex
	log      zerolog.Logger
	pin      OutputPin
	closer   func() error
	bridge   Type
	period   time.Duration
	high     time.Duration
	cancel   func()
	done     chan struct{}
	lastErr  error
	hasValue bool
	value    bool
}

var _ PWMPin = &softPWM{}

// newSoftPWM wraps the given output pin.
// The optional closer is called when the PWM pin is closed.
func newSoftPWM(pin OutputPin, closer func() error, bridge Type, log zerolog.Logger) *softPWM {
	return &softPWM{
		log:    log,
		pin:    pin,
		closer: closer,
		bridge: bridge,
	}
}

// validatePWM checks the frequency & duty cycle arguments.
func validatePWM(frequency, dutyCycle float64) error {
	if !(frequency > 0) {
		return errors.Wrapf(InvalidArgumentError, "frequency must be > 0, got %v", frequency)
	}
	if !(dutyCycle >= 0 && dutyCycle <= 1) {
		return errors.Wrapf(InvalidArgumentError, "duty cycle must be in 0..1, got %v", dutyCycle)
	}
	return nil
}

// SetPWMFrequency configures the PWM signal. The change takes
// effect at the end of the current period.
func (p *softPWM) SetPWMFrequency(frequency float64, dutyCycle float64) error {
	pwmSetTotal.WithLabelValues(string(p.bridge)).Inc()
	if err := validatePWM(frequency, dutyCycle); err != nil {
		pwmSetErrorTotal.WithLabelValues(string(p.bridge)).Inc()
		return err
	}
	period := time.Duration(float64(time.Second) / frequency)
	if period <= 0 {
		pwmSetErrorTotal.WithLabelValues(string(p.bridge)).Inc()
		return errors.Wrapf(InvalidArgumentError, "frequency %v is too high", frequency)
	}
	high := time.Duration(float64(period) * dutyCycle)

	p.mutex.Lock()
	defer p.mutex.Unlock()
	if err := p.lastErr; err != nil {
		p.lastErr = nil
		pwmSetErrorTotal.WithLabelValues(string(p.bridge)).Inc()
		return errors.Wrap(err, "software PWM loop failed")
	}
	p.period = period
	p.high = high
	if p.cancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		p.done = make(chan struct{})
		go p.run(ctx, p.done)
	}
	p.log.Debug().
		Dur("period", period).
		Dur("high", high).
		Msg("Updated software PWM")
	return nil
}

// ClearPWM stops the PWM loop and drives the pin low.
func (p *softPWM) ClearPWM() error {
	p.mutex.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mutex.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.lastErr = nil
	return p.write(false)
}

// Close stops the PWM loop and releases the pin.
func (p *softPWM) Close() error {
	if err := p.ClearPWM(); err != nil {
		p.log.Warn().Err(err).Msg("Failed to clear PWM on close")
	}
	if p.closer != nil {
		if err := p.closer(); err != nil {
			return maskAny(err)
		}
	}
	return nil
}

// write sets the pin, skipping the write when the value is unchanged.
// Expects the mutex to be held.
func (p *softPWM) write(value bool) error {
	if p.hasValue && p.value == value {
		return nil
	}
	if err := p.pin.Write(value); err != nil {
		return errors.Wrap(err, "Write failed")
	}
	p.hasValue = true
	p.value = value
	return nil
}

// run toggles the pin until the given context is canceled.
// New settings are picked up after each period.
func (p *softPWM) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		p.mutex.Lock()
		high, low := p.high, p.period-p.high
		p.mutex.Unlock()

		if high > 0 {
			if !p.hold(ctx, true, high) {
				return
			}
		}
		if low > 0 {
			if !p.hold(ctx, false, low) {
				return
			}
		}
	}
}

// hold sets the pin to the given value and waits for the given duration.
// Returns false when the context is canceled.
func (p *softPWM) hold(ctx context.Context, value bool, d time.Duration) bool {
	p.mutex.Lock()
	if err := p.write(value); err != nil {
		p.lastErr = err
		p.log.Error().Err(err).Bool("value", value).Msg("Failed to set pin")
	}
	p.mutex.Unlock()

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
