//    Copyright 2026 Ewout Prangsma
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
	"github.com/binkynet/SoftPWMTool/pkg/metrics"
)

const (
	subSystem = "bridge"
)

var (
	// Total number of times SetPWMFrequency is called
	pwmSetTotal = metrics.MustRegisterCounterVec(subSystem,
		"pwm_set_total",
		"Total number of times SetPWMFrequency is called",
		"bridge")
	// Total number of times SetPWMFrequency failed
	pwmSetErrorTotal = metrics.MustRegisterCounterVec(subSystem,
		"pwm_set_error_total",
		"Total number of times SetPWMFrequency failed",
		"bridge")
	// Total number of pins acquired
	pinAcquiredTotal = metrics.MustRegisterCounterVec(subSystem,
		"pin_acquired_total",
		"Total number of pins acquired",
		"bridge")
)
