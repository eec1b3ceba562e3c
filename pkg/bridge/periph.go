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
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

type periphBridge struct {
	pins pinSet
	log  zerolog.Logger
}

// NewPeriphBridge implements the bridge using periph.io.
// PWM signals are generated by the host drivers, not by this process.
func NewPeriphBridge(log zerolog.Logger) (API, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "host.Init failed")
	}
	return &periphBridge{
		log: log.With().Str("bridge", string(TypePeriph)).Logger(),
	}, nil
}

// Returns number of local pins
func (p *periphBridge) PinCount() int {
	return PinCount
}

// PWM looks up the given pin in the periph registry.
func (p *periphBridge) PWM(pin Pin) (PWMPin, error) {
	if !pin.IsValid() {
		return nil, errors.Wrapf(InvalidPinError, "pin %d", pin)
	}
	if err := p.pins.checkFree(pin); err != nil {
		return nil, err
	}
	gp := gpioreg.ByName(pin.Name())
	if gp == nil {
		return nil, errors.Wrapf(InvalidPinError, "%s not found in gpio registry", pin.Name())
	}
	if err := gp.Out(gpio.Low); err != nil {
		return nil, errors.Wrapf(err, "Out[%s] failed", pin.Name())
	}
	result := &periphPWM{
		pin: gp,
		log: p.log.With().Int("pin", int(pin)).Logger(),
	}
	if err := p.pins.add(pin, result); err != nil {
		return nil, err
	}
	pinAcquiredTotal.WithLabelValues(string(TypePeriph)).Inc()
	return result, nil
}

func (p *periphBridge) Close() error {
	return p.pins.closeAll()
}

type periphPWM struct {
	mutex sync.Mutex
	pin   gpio.PinIO
	log   zerolog.Logger
}

// SetPWMFrequency converts the arguments to periph units and hands them to the pin.
func (p *periphPWM) SetPWMFrequency(frequency float64, dutyCycle float64) error {
	pwmSetTotal.WithLabelValues(string(TypePeriph)).Inc()
	if err := validatePWM(frequency, dutyCycle); err != nil {
		pwmSetErrorTotal.WithLabelValues(string(TypePeriph)).Inc()
		return err
	}
	duty := gpio.Duty(dutyCycle * float64(gpio.DutyMax))
	freq := physic.Frequency(frequency * float64(physic.Hertz))

	p.mutex.Lock()
	defer p.mutex.Unlock()
	if err := p.pin.PWM(duty, freq); err != nil {
		pwmSetErrorTotal.WithLabelValues(string(TypePeriph)).Inc()
		return errors.Wrapf(err, "PWM[%s] failed", p.pin.Name())
	}
	p.log.Debug().
		Str("duty", duty.String()).
		Str("frequency", freq.String()).
		Msg("Updated PWM")
	return nil
}

// ClearPWM halts the PWM signal and drives the pin low.
func (p *periphPWM) ClearPWM() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if err := p.pin.Halt(); err != nil {
		return errors.Wrapf(err, "Halt[%s] failed", p.pin.Name())
	}
	if err := p.pin.Out(gpio.Low); err != nil {
		return errors.Wrapf(err, "Out[%s] failed", p.pin.Name())
	}
	return nil
}

// Close clears the PWM signal.
func (p *periphPWM) Close() error {
	return maskAny(p.ClearPWM())
}
