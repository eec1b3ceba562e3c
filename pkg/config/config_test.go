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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
bridge: cdev
chip: gpiochip4
pin: 18
frequency: 60
sequence:
  - 0:500
  - 180:500,90:250
no_color: true
level: debug
metrics_file: /tmp/softpwm.prom
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Bridge != "cdev" || cfg.Chip != "gpiochip4" {
		t.Errorf("Unexpected bridge settings %+v", cfg)
	}
	if cfg.Pin != 18 {
		t.Errorf("Expected pin 18, got %d", cfg.Pin)
	}
	if cfg.Frequency != 60 {
		t.Errorf("Expected frequency 60, got %v", cfg.Frequency)
	}
	if len(cfg.Sequence) != 2 || cfg.Sequence[1] != "180:500,90:250" {
		t.Errorf("Unexpected sequence %v", cfg.Sequence)
	}
	if !cfg.NoColor || cfg.Level != "debug" || cfg.MetricsFile != "/tmp/softpwm.prom" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Pin != 0 || len(cfg.Sequence) != 0 {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, content := range []string{
		"unknown_key: 1",
		"frequency: -5",
		"pin: -1",
		"pin: [1, 2]",
	} {
		if _, err := Parse([]byte(content)); !IsInvalidConfig(err) {
			t.Errorf("Expected InvalidConfigError for '%s', got %v", content, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "softpwm.yaml")
	if err := os.WriteFile(path, []byte("pin: 4\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pin != 4 {
		t.Errorf("Expected pin 4, got %d", cfg.Pin)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
