//    Copyright 2021 Ewout Prangsma
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

package service

import (
	"github.com/binkynet/SoftPWMTool/pkg/metrics"
)

const (
	subSystem = "sequence"
)

var (
	// Total number of steps that have been programmed
	stepsTotal = metrics.MustRegisterCounter(subSystem,
		"steps_total",
		"Total number of steps that have been programmed")
	// Total number of steps that failed to program
	stepErrorsTotal = metrics.MustRegisterCounter(subSystem,
		"step_errors_total",
		"Total number of steps that failed to program")
	// Total time spent holding angles
	holdSecondsTotal = metrics.MustRegisterCounter(subSystem,
		"hold_seconds_total",
		"Total time spent holding angles")
	// Angle of the last programmed step
	lastAngleDegrees = metrics.MustRegisterGauge(subSystem,
		"last_angle_degrees",
		"Angle of the last programmed step")
)
