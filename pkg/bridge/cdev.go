//go:build linux

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
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/warthog618/go-gpiocdev"
)

const (
	consumer = "softpwm"
)

type cdevBridge struct {
	chip string
	pins pinSet
	log  zerolog.Logger
}

// NewCharacterDeviceBridge implements the bridge using the GPIO
// character device (/dev/gpiochipN) of the given chip.
func NewCharacterDeviceBridge(chip string, log zerolog.Logger) (API, error) {
	if chip == "" {
		chip = DefaultChip
	}
	return &cdevBridge{
		chip: chip,
		log:  log.With().Str("bridge", string(TypeCharacterDevice)).Str("chip", chip).Logger(),
	}, nil
}

// Returns number of local pins
func (p *cdevBridge) PinCount() int {
	return PinCount
}

// PWM requests the line of given pin as output
// and wraps it in a software PWM generator.
func (p *cdevBridge) PWM(pin Pin) (PWMPin, error) {
	if !pin.IsValid() {
		return nil, errors.Wrapf(InvalidPinError, "pin %d", pin)
	}
	if err := p.pins.checkFree(pin); err != nil {
		return nil, err
	}
	line, err := gpiocdev.RequestLine(p.chip, int(pin), gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, errors.Wrapf(err, "RequestLine[%s:%d] failed", p.chip, pin)
	}
	pwm := newSoftPWM(cdevLine{line}, line.Close, TypeCharacterDevice, p.log.With().Int("pin", int(pin)).Logger())
	if err := p.pins.add(pin, pwm); err != nil {
		line.Close()
		return nil, err
	}
	pinAcquiredTotal.WithLabelValues(string(TypeCharacterDevice)).Inc()
	return pwm, nil
}

func (p *cdevBridge) Close() error {
	return p.pins.closeAll()
}

// cdevLine adapts a requested line to OutputPin.
type cdevLine struct {
	line *gpiocdev.Line
}

func (l cdevLine) Write(value bool) error {
	v := 0
	if value {
		v = 1
	}
	return l.line.SetValue(v)
}
