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

package sequence

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/binkynet/SoftPWMTool/pkg/servo"
)

const (
	// Separator between angle and time in a step
	Separator = ":"
	// ListSeparator between steps
	ListSeparator = ","
)

// Step is a single angle to move to, and the time to hold it.
type Step struct {
	// Angle in degrees (0..180)
	Angle float64
	// Hold duration (millisecond resolution)
	Hold time.Duration
}

// String formats the step the way it is parsed.
func (s Step) String() string {
	return strconv.FormatFloat(s.Angle, 'f', -1, 64) + Separator + strconv.FormatInt(s.Hold.Milliseconds(), 10)
}

// DutyCycle returns the duty cycle fraction for the angle of this step.
func (s Step) DutyCycle() float64 {
	return servo.DegreesToDutyCycle(s.Angle)
}

// ParseStep parses a single "angle:time" token.
// Angle is in degrees (0..180), time in milliseconds.
func ParseStep(token string) (Step, error) {
	parts := strings.Split(strings.TrimSpace(token), Separator)
	if len(parts) != 2 {
		return Step{}, errors.Wrapf(InvalidStepError, "'%s': invalid format, expected angle%stime", token, Separator)
	}
	angleStr, timeStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	angle, err := strconv.ParseFloat(angleStr, 64)
	if err != nil || math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Step{}, errors.Wrapf(InvalidStepError, "'%s': invalid angle '%s'", token, angleStr)
	}
	if !servo.IsValidAngle(angle) {
		return Step{}, errors.Wrapf(InvalidStepError, "'%s': angle %s is out of range %v..%v", token, angleStr, servo.MinDegrees, servo.MaxDegrees)
	}
	ms, err := strconv.ParseUint(timeStr, 10, 63)
	if err != nil || ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return Step{}, errors.Wrapf(InvalidStepError, "'%s': invalid time '%s'", token, timeStr)
	}
	return Step{
		Angle: angle,
		Hold:  time.Duration(ms) * time.Millisecond,
	}, nil
}

// Parse parses a comma separated list of "angle:time" tokens.
func Parse(list string) ([]Step, error) {
	if strings.TrimSpace(list) == "" {
		return nil, maskAny(EmptySequenceError)
	}
	tokens := strings.Split(list, ListSeparator)
	result := make([]Step, 0, len(tokens))
	for _, token := range tokens {
		step, err := ParseStep(token)
		if err != nil {
			return nil, err
		}
		result = append(result, step)
	}
	return result, nil
}

// ParseAll parses all given lists and concatenates the results.
func ParseAll(lists ...string) ([]Step, error) {
	var result []Step
	for _, list := range lists {
		steps, err := Parse(list)
		if err != nil {
			return nil, err
		}
		result = append(result, steps...)
	}
	if len(result) == 0 {
		return nil, maskAny(EmptySequenceError)
	}
	return result, nil
}

// Format formats the given steps as a comma separated list.
func Format(steps []Step) string {
	return strings.Join(lo.Map(steps, func(s Step, _ int) string { return s.String() }), ListSeparator)
}

// TotalDuration returns the sum of all hold durations.
func TotalDuration(steps []Step) time.Duration {
	return lo.SumBy(steps, func(s Step) time.Duration { return s.Hold })
}
