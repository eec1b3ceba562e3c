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
	"sync"
	"time"

	"github.com/pkg/errors"
)

// VirtualEvent is a single call recorded on a virtual pin.
type VirtualEvent struct {
	// Time of the call
	Time time.Time
	// Frequency (Hz) passed to SetPWMFrequency
	Frequency float64
	// DutyCycle passed to SetPWMFrequency
	DutyCycle float64
	// Cleared is set for ClearPWM calls
	Cleared bool
}

// VirtualBridge is a bridge that does not touch any hardware.
// It records all PWM calls so they can be inspected.
type VirtualBridge struct {
	mutex  sync.Mutex
	pins   map[Pin]*VirtualPin
	now    func() time.Time
	closed bool
}

var _ API = &VirtualBridge{}

// NewVirtualBridge implements the bridge for a virtual local worker.
func NewVirtualBridge() *VirtualBridge {
	return &VirtualBridge{
		pins: make(map[Pin]*VirtualPin),
		now:  time.Now,
	}
}

// Returns number of local pins
func (p *VirtualBridge) PinCount() int {
	return PinCount
}

// PWM acquires a virtual pin.
func (p *VirtualBridge) PWM(pin Pin) (PWMPin, error) {
	if !pin.IsValid() {
		return nil, errors.Wrapf(InvalidPinError, "pin %d", pin)
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if _, found := p.pins[pin]; found {
		return nil, errors.Wrapf(PinAlreadyInUseError, "pin %d", pin)
	}
	result := &VirtualPin{pin: pin, now: p.now}
	p.pins[pin] = result
	pinAcquiredTotal.WithLabelValues(string(TypeVirtual)).Inc()
	return result, nil
}

// Pin returns the virtual pin with given number, if acquired.
func (p *VirtualBridge) Pin(pin Pin) (*VirtualPin, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	result, found := p.pins[pin]
	return result, found
}

// IsClosed returns true once Close has been called.
func (p *VirtualBridge) IsClosed() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.closed
}

func (p *VirtualBridge) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.closed = true
	for _, vp := range p.pins {
		vp.Close()
	}
	return nil
}

// VirtualPin is a PWM pin of a VirtualBridge.
type VirtualPin struct {
	mutex   sync.Mutex
	pin     Pin
	now     func() time.Time
	events  []VirtualEvent
	failAt  int
	failErr error
	closed  bool
}

// FailAfter makes the n-th (1 based) call to SetPWMFrequency,
// and all calls after it, fail with the given error.
func (vp *VirtualPin) FailAfter(n int, err error) {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	vp.failAt = n
	vp.failErr = err
}

// Events returns a copy of all recorded events.
func (vp *VirtualPin) Events() []VirtualEvent {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	return append([]VirtualEvent(nil), vp.events...)
}

// IsClosed returns true once Close has been called.
func (vp *VirtualPin) IsClosed() bool {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	return vp.closed
}

func (vp *VirtualPin) SetPWMFrequency(frequency float64, dutyCycle float64) error {
	pwmSetTotal.WithLabelValues(string(TypeVirtual)).Inc()
	if err := validatePWM(frequency, dutyCycle); err != nil {
		pwmSetErrorTotal.WithLabelValues(string(TypeVirtual)).Inc()
		return err
	}
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	if vp.closed {
		return errors.Errorf("pin %d is closed", vp.pin)
	}
	calls := 1
	for _, e := range vp.events {
		if !e.Cleared {
			calls++
		}
	}
	if vp.failAt > 0 && calls >= vp.failAt {
		pwmSetErrorTotal.WithLabelValues(string(TypeVirtual)).Inc()
		return maskAny(vp.failErr)
	}
	vp.events = append(vp.events, VirtualEvent{
		Time:      vp.now(),
		Frequency: frequency,
		DutyCycle: dutyCycle,
	})
	return nil
}

func (vp *VirtualPin) ClearPWM() error {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	vp.events = append(vp.events, VirtualEvent{
		Time:    vp.now(),
		Cleared: true,
	})
	return nil
}

func (vp *VirtualPin) Close() error {
	vp.mutex.Lock()
	defer vp.mutex.Unlock()
	vp.closed = true
	return nil
}
