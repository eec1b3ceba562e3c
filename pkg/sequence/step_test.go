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
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestParseStep(t *testing.T) {
	s, err := ParseStep("90:500")
	if err != nil {
		t.Fatalf("ParseStep failed: %v", err)
	}
	if s.Angle != 90 {
		t.Errorf("Expected angle 90, got %v", s.Angle)
	}
	if s.Hold != 500*time.Millisecond {
		t.Errorf("Expected hold 500ms, got %s", s.Hold)
	}

	s, err = ParseStep(" 12.5 : 0 ")
	if err != nil {
		t.Fatalf("ParseStep failed: %v", err)
	}
	if s.Angle != 12.5 || s.Hold != 0 {
		t.Errorf("Unexpected step %+v", s)
	}
}

func TestParseStepInvalid(t *testing.T) {
	tests := []struct {
		Token    string
		Contains string
	}{
		{"90", "invalid format"},
		{"90:100:5", "invalid format"},
		{"abc:100", "invalid angle"},
		{"NaN:100", "invalid angle"},
		{"90:abc", "invalid time"},
		{"90:-5", "invalid time"},
		{"90:1.5", "invalid time"},
		{"181:100", "out of range"},
		{"-1:100", "out of range"},
	}
	for _, test := range tests {
		_, err := ParseStep(test.Token)
		if err == nil {
			t.Errorf("Expected error for '%s'", test.Token)
			continue
		}
		if !IsInvalidStep(err) {
			t.Errorf("Expected InvalidStepError for '%s', got %v", test.Token, err)
		}
		if !strings.Contains(err.Error(), test.Contains) {
			t.Errorf("Expected error for '%s' to contain '%s', got '%s'", test.Token, test.Contains, err.Error())
		}
	}
}

func TestParse(t *testing.T) {
	steps, err := Parse("0:100, 180:200,90:0")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := []Step{
		{Angle: 0, Hold: 100 * time.Millisecond},
		{Angle: 180, Hold: 200 * time.Millisecond},
		{Angle: 90, Hold: 0},
	}
	if len(steps) != len(expected) {
		t.Fatalf("Expected %d steps, got %d", len(expected), len(steps))
	}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Errorf("Step %d: expected %+v, got %+v", i, expected[i], steps[i])
		}
	}
	if d := TotalDuration(steps); d != 300*time.Millisecond {
		t.Errorf("Expected total of 300ms, got %s", d)
	}
	if s := Format(steps); s != "0:100,180:200,90:0" {
		t.Errorf("Unexpected format '%s'", s)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse("  "); !IsEmptySequence(err) {
		t.Errorf("Expected EmptySequenceError, got %v", err)
	}
	if _, err := Parse("0:100,"); !IsInvalidStep(err) {
		t.Errorf("Expected InvalidStepError for trailing comma, got %v", err)
	}
	if _, err := ParseAll(); !IsEmptySequence(err) {
		t.Errorf("Expected EmptySequenceError, got %v", err)
	}
}

func TestValueRepeated(t *testing.T) {
	var steps []Step
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.VarP(Value{Steps: &steps}, "sequence", "s", "")
	if err := fs.Parse([]string{"-s", "0:10,45:20", "--sequence", "180:30"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("Expected 3 steps, got %d", len(steps))
	}
	if steps[2].Angle != 180 || steps[2].Hold != 30*time.Millisecond {
		t.Errorf("Unexpected last step %+v", steps[2])
	}
}

func TestValueInvalid(t *testing.T) {
	var steps []Step
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.VarP(Value{Steps: &steps}, "sequence", "s", "")
	err := fs.Parse([]string{"--sequence", "200:10"})
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("Unexpected error '%s'", err.Error())
	}
}
