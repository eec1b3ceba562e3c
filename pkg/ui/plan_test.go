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

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/binkynet/SoftPWMTool/pkg/bridge"
	"github.com/binkynet/SoftPWMTool/pkg/sequence"
)

func TestRenderPlan(t *testing.T) {
	s := RenderPlan(Plan{
		Bridge:    bridge.TypeVirtual,
		Pin:       18,
		Frequency: 50,
		Steps: []sequence.Step{
			{Angle: 0, Hold: 500 * time.Millisecond},
			{Angle: 90, Hold: 1500 * time.Millisecond},
		},
	}, true)
	for _, expected := range []string{
		"Pin 18 (virtual bridge) at 50 Hz",
		"Duty cycle",
		"2.50%",
		"7.50%",
		"1.5ms",
		"500ms",
		"2s in total, 100 periods",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("Expected '%s' in plan:\n%s", expected, s)
		}
	}
	if strings.Contains(s, "\x1b[") {
		t.Errorf("Expected no color codes in plan:\n%s", s)
	}
	if h, d := strings.Index(s, "Angle"), strings.Index(s, "2.50%"); h < 0 || d < h {
		t.Errorf("Expected headers above the first step:\n%s", s)
	}
}

func TestRenderPlanStyled(t *testing.T) {
	s := RenderPlan(Plan{
		Bridge:    bridge.TypeCharacterDevice,
		Pin:       4,
		Frequency: 50,
		Steps:     []sequence.Step{{Angle: 180, Hold: time.Second}},
	}, false)
	lines := strings.Split(s, "\n")
	header, row := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "Duty cycle") {
			header = i
		}
		if strings.Contains(line, "12.50%") {
			row = i
		}
	}
	if header < 0 || row <= header {
		t.Errorf("Expected a header line above the step line:\n%s", s)
	}
	if !strings.Contains(s, "Pin 4 (cdev bridge)") {
		t.Errorf("Expected title in plan:\n%s", s)
	}
}
