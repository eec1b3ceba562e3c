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

// Type of bridge
type Type string

const (
	// TypeAuto selects a bridge based on the environment
	TypeAuto Type = "auto"
	// TypeRaspberryPi uses the sysfs GPIO interface
	TypeRaspberryPi Type = "rpi"
	// TypeCharacterDevice uses the GPIO character device (/dev/gpiochipN)
	TypeCharacterDevice Type = "cdev"
	// TypePeriph uses periph.io, with PWM generated by the host drivers
	TypePeriph Type = "periph"
	// TypeVirtual does not touch any hardware
	TypeVirtual Type = "virtual"
)

// DefaultChip is the GPIO character device used when none is given.
const DefaultChip = "gpiochip0"

// AllTypes lists all bridge types that can be selected.
var AllTypes = []Type{TypeAuto, TypeRaspberryPi, TypeCharacterDevice, TypePeriph, TypeVirtual}

// API of the bridge, the platform specific provider of GPIO pins.
type API interface {
	// Returns number of local pins
	PinCount() int
	// PWM acquires the given pin as an output with PWM support.
	PWM(pin Pin) (PWMPin, error)
	// Close releases all pins acquired through this bridge.
	Close() error
}

// OutputPin is the interface satisfied by GPIO output pins.
type OutputPin interface {
	Write(bool) error
}

// PWMPin is the interface satisfied by pins that can generate a PWM signal.
type PWMPin interface {
	// SetPWMFrequency configures the PWM signal with given frequency (in Hz)
	// and duty cycle (fraction 0..1).
	SetPWMFrequency(frequency float64, dutyCycle float64) error
	// ClearPWM stops the PWM signal and drives the pin low.
	ClearPWM() error
	// Close releases the pin.
	Close() error
}
