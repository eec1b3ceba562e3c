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

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func TestConsoleOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewConsole(&stdout, &stderr)
	c.Output("Moved to %d", 90)
	if s := stdout.String(); s != "Moved to 90\n" {
		t.Errorf("Unexpected stdout '%s'", s)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected empty stderr, got '%s'", stderr.String())
	}
}

func TestConsoleWarningAndError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewConsole(&stdout, &stderr)
	c.SetNoColor(true)
	c.Warning("careful %s", "now")
	c.Error("failed: %v", errors.New("boom"))
	s := stderr.String()
	if !strings.Contains(s, "WRN") || !strings.Contains(s, "careful now") {
		t.Errorf("Expected warning in '%s'", s)
	}
	if !strings.Contains(s, "ERR") || !strings.Contains(s, "failed: boom") {
		t.Errorf("Expected error in '%s'", s)
	}
	if strings.Contains(s, "\x1b[") {
		t.Errorf("Expected no color codes in '%s'", s)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected empty stdout, got '%s'", stdout.String())
	}
}

func TestConsoleLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewConsole(&stdout, &stderr)
	c.SetLevel(zerolog.ErrorLevel)
	c.Warning("hidden")
	if stderr.Len() != 0 {
		t.Errorf("Expected warning to be filtered, got '%s'", stderr.String())
	}
	logger := c.Logger()
	logger.Debug().Msg("also hidden")
	if stderr.Len() != 0 {
		t.Errorf("Expected debug to be filtered, got '%s'", stderr.String())
	}
}

func TestConsoleAddOutput(t *testing.T) {
	var stdout, stderr, file bytes.Buffer
	c := NewConsole(&stdout, &stderr)
	c.AddOutput(&file)
	c.Output("hello")
	c.Warning("world")
	s := file.String()
	if !strings.Contains(s, "hello") || !strings.Contains(s, "world") {
		t.Errorf("Expected both messages in extra output, got '%s'", s)
	}
}

func TestConsoleAddOutputLevel(t *testing.T) {
	var stdout, stderr, file bytes.Buffer
	c := NewConsole(&stdout, &stderr)
	c.SetLevel(zerolog.ErrorLevel)
	c.AddOutput(&file)
	logger := c.Logger()
	logger.Debug().Msg("details")
	if stderr.Len() != 0 {
		t.Errorf("Expected debug to be filtered on console, got '%s'", stderr.String())
	}
	if !strings.Contains(file.String(), "details") {
		t.Errorf("Expected debug in extra output, got '%s'", file.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("failed") }

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := NewMultiWriter(&a, failingWriter{}, &b)
	n, err := w.Write([]byte("x"))
	if n != 1 {
		t.Errorf("Expected n=1, got %d", n)
	}
	if err == nil {
		t.Error("Expected error")
	}
	if a.String() != "x" || b.String() != "x" {
		t.Errorf("Expected all writers to receive data, got '%s' and '%s'", a.String(), b.String())
	}
}

func TestLevelWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := NewMultiWriter(NewLevelWriter(&a, zerolog.WarnLevel), &b)
	w.WriteLevel(zerolog.InfoLevel, []byte("info "))
	w.WriteLevel(zerolog.ErrorLevel, []byte("error "))
	w.Write([]byte("plain"))
	if s := a.String(); s != "error plain" {
		t.Errorf("Unexpected filtered output '%s'", s)
	}
	if s := b.String(); s != "info error plain" {
		t.Errorf("Unexpected unfiltered output '%s'", s)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Output("a%d", 1)
	r.Warning("b")
	r.Error("c")
	r.SetNoColor(true)
	if r.Text() != "a1" {
		t.Errorf("Unexpected text '%s'", r.Text())
	}
	if len(r.Warnings()) != 1 || len(r.Errors()) != 1 {
		t.Error("Expected 1 warning and 1 error")
	}
	if !r.NoColor() {
		t.Error("Expected NoColor")
	}
}
