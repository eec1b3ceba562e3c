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

package servo

import (
	"math"
	"testing"
	"time"
)

func TestDegreesToDutyCycleBounds(t *testing.T) {
	if v := DegreesToDutyCycle(0); math.Abs(v-0.025) > 1e-12 {
		t.Errorf("Expected 0.025 at 0 degrees, got %v", v)
	}
	if v := DegreesToDutyCycle(180); math.Abs(v-0.125) > 1e-12 {
		t.Errorf("Expected 0.125 at 180 degrees, got %v", v)
	}
	if v := DegreesToDutyCycle(90); math.Abs(v-0.075) > 1e-12 {
		t.Errorf("Expected 0.075 at 90 degrees, got %v", v)
	}
}

func TestDegreesToDutyCycleMonotonic(t *testing.T) {
	last := DegreesToDutyCycle(MinDegrees)
	for a := 0.0; a <= MaxDegrees; a += 0.25 {
		v := DegreesToDutyCycle(a)
		if v < last {
			t.Fatalf("Duty cycle decreased at %v degrees: %v < %v", a, v, last)
		}
		if v < DegreesToDutyCycle(MinDegrees) || v > DegreesToDutyCycle(MaxDegrees) {
			t.Fatalf("Duty cycle %v at %v degrees is out of range", v, a)
		}
		last = v
	}
}

func TestDutyCycleToPulseWidth(t *testing.T) {
	// 50Hz has a 20ms period
	if d := DutyCycleToPulseWidth(0.075, 50); d != 1500*time.Microsecond {
		t.Errorf("Expected 1.5ms, got %s", d)
	}
	if d := DutyCycleToPulseWidth(0.5, 0); d != 0 {
		t.Errorf("Expected 0 for zero frequency, got %s", d)
	}
}

func TestIsValidAngle(t *testing.T) {
	for _, a := range []float64{0, 0.5, 90, 180} {
		if !IsValidAngle(a) {
			t.Errorf("Expected %v to be valid", a)
		}
	}
	for _, a := range []float64{-0.1, 180.01, math.NaN(), math.Inf(1)} {
		if IsValidAngle(a) {
			t.Errorf("Expected %v to be invalid", a)
		}
	}
}
