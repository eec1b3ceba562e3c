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

// Package servo converts servo angles to PWM duty cycles.
package servo

import (
	"math"
	"time"
)

const (
	// DutyCycle0Degrees is the duty cycle (percentage) at 0 degrees
	DutyCycle0Degrees = 2.5
	// DutyCycle180Degrees is the duty cycle (percentage) at 180 degrees
	DutyCycle180Degrees = 12.5
	// DutyCycleRange is the duty cycle range (percentage) for the full angle range
	DutyCycleRange = DutyCycle180Degrees - DutyCycle0Degrees

	// MinDegrees is the lowest valid angle
	MinDegrees = 0.0
	// MaxDegrees is the highest valid angle
	MaxDegrees = 180.0
)

// DegreesToDutyCycle maps an angle (0..180) linearly onto a duty cycle
// fraction (0.025..0.125).
// The angle must be validated by the caller.
func DegreesToDutyCycle(degrees float64) float64 {
	return (degrees*(DutyCycleRange/MaxDegrees) + DutyCycle0Degrees) / 100.0
}

// DutyCycleToPulseWidth returns the time the signal is high in every
// period for given duty cycle fraction and frequency (Hz).
func DutyCycleToPulseWidth(dutyCycle, frequency float64) time.Duration {
	if frequency <= 0 {
		return 0
	}
	return time.Duration(math.Round(dutyCycle / frequency * float64(time.Second)))
}

// IsValidAngle returns true if the given angle is within MinDegrees..MaxDegrees.
func IsValidAngle(degrees float64) bool {
	return degrees >= MinDegrees && degrees <= MaxDegrees
}
