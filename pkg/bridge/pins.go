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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pin is a BCM GPIO number.
type Pin uint8

const (
	// MinPin is the lowest addressable BCM pin
	MinPin Pin = 1
	// MaxPin is the highest addressable BCM pin
	MaxPin Pin = 27
)

// PinCount is the number of addressable BCM pins.
const PinCount = int(MaxPin-MinPin) + 1

// IsValid returns true if the pin is within the addressable range.
func (p Pin) IsValid() bool {
	return p >= MinPin && p <= MaxPin
}

// String returns the pin number as decimal string.
func (p Pin) String() string {
	return strconv.Itoa(int(p))
}

// Name returns the line name of the pin as used by the kernel (GPIO<n>).
func (p Pin) Name() string {
	return fmt.Sprintf("GPIO%d", p)
}

// ParsePin parses a BCM pin number.
// A "GPIO" prefix (any case) is accepted.
func ParsePin(s string) (Pin, error) {
	s = strings.TrimSpace(s)
	if len(s) > 4 && strings.EqualFold(s[:4], "gpio") {
		s = s[4:]
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(InvalidPinError, "'%s' is not a number", s)
	}
	p := Pin(v)
	if !p.IsValid() {
		return 0, errors.Wrapf(InvalidPinError, "%d is out of range %d..%d", v, MinPin, MaxPin)
	}
	return p, nil
}

// PinValue implements pflag.Value for a Pin.
type PinValue struct {
	Pin *Pin
}

// String returns the current value, empty when not set.
func (v PinValue) String() string {
	if v.Pin == nil || *v.Pin == 0 {
		return ""
	}
	return v.Pin.String()
}

// Set parses the given value into the pin.
func (v PinValue) Set(s string) error {
	p, err := ParsePin(s)
	if err != nil {
		return err
	}
	*v.Pin = p
	return nil
}

// Type returns the type name shown in usage.
func (v PinValue) Type() string {
	return "pin"
}
