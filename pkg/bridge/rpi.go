//go:build linux

//    Copyright 2017 Ewout Prangsma
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package bridge

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ecc1/gpio"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type piBridge struct {
	pins pinSet
	log  zerolog.Logger
}

// NewRaspberryPiBridge implements the bridge for Raspberry PI's,
// using the sysfs GPIO interface.
func NewRaspberryPiBridge(log zerolog.Logger) (API, error) {
	return &piBridge{
		log: log.With().Str("bridge", string(TypeRaspberryPi)).Logger(),
	}, nil
}

// Returns number of local pins
func (p *piBridge) PinCount() int {
	return PinCount
}

// PWM initializes a GPIO output pin with the given pin number
// and wraps it in a software PWM generator.
func (p *piBridge) PWM(pin Pin) (PWMPin, error) {
	if !pin.IsValid() {
		return nil, errors.Wrapf(InvalidPinError, "pin %d", pin)
	}
	if err := p.pins.checkFree(pin); err != nil {
		return nil, err
	}
	activeLow := false
	initialValue := false
	out, err := gpio.Output(int(pin), activeLow, initialValue)
	if err != nil {
		return nil, errors.Wrapf(err, "Output[%d] failed", pin)
	}
	release := func() error { return releaseSysfsPin(out, pin) }
	pwm := newSoftPWM(out, release, TypeRaspberryPi, p.log.With().Int("pin", int(pin)).Logger())
	if err := p.pins.add(pin, pwm); err != nil {
		release()
		return nil, err
	}
	pinAcquiredTotal.WithLabelValues(string(TypeRaspberryPi)).Inc()
	return pwm, nil
}

func (p *piBridge) Close() error {
	return p.pins.closeAll()
}

// sysfsUnexportPath is the file that hands a GPIO pin back to the kernel.
var sysfsUnexportPath = "/sys/class/gpio/unexport"

// releaseSysfsPin closes the given output (when it can be closed)
// and unexports its pin.
// ecc1/gpio has no release call of its own.
func releaseSysfsPin(out OutputPin, pin Pin) error {
	if c, ok := out.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return errors.Wrapf(err, "Close[%d] failed", pin)
		}
	}
	if err := os.WriteFile(sysfsUnexportPath, []byte(strconv.Itoa(int(pin))), 0); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "Unexport[%d] in %s failed", pin, filepath.Dir(sysfsUnexportPath))
	}
	return nil
}
