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
	"sort"
	"sync"

	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// pinSet keeps the pins acquired by a bridge.
type pinSet struct {
	mutex sync.Mutex
	pins  map[Pin]PWMPin
}

// checkFree returns an error if the given pin has already been acquired.
func (s *pinSet) checkFree(pin Pin) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, found := s.pins[pin]; found {
		return errors.Wrapf(PinAlreadyInUseError, "pin %d", pin)
	}
	return nil
}

// add registers an acquired pin.
func (s *pinSet) add(pin Pin, p PWMPin) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, found := s.pins[pin]; found {
		return errors.Wrapf(PinAlreadyInUseError, "pin %d", pin)
	}
	if s.pins == nil {
		s.pins = make(map[Pin]PWMPin)
	}
	s.pins[pin] = p
	return nil
}

// closeAll closes all acquired pins, in ascending pin order.
func (s *pinSet) closeAll() error {
	s.mutex.Lock()
	pins := s.pins
	s.pins = nil
	s.mutex.Unlock()

	keys := lo.Keys(pins)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	var ae aerr.AggregateError
	for _, k := range keys {
		if err := pins[k].Close(); err != nil {
			ae.Add(errors.Wrapf(err, "Close[%d] failed", k))
		}
	}
	return ae.AsError()
}
