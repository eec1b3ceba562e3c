//go:build linux

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
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// closablePin is an OutputPin that records Close calls.
type closablePin struct {
	recordingPin
	closed   int
	closeErr error
}

func (p *closablePin) Close() error {
	p.closed++
	return p.closeErr
}

func TestReleaseSysfsPin(t *testing.T) {
	defer func(path string) { sysfsUnexportPath = path }(sysfsUnexportPath)
	sysfsUnexportPath = filepath.Join(t.TempDir(), "unexport")
	if err := os.WriteFile(sysfsUnexportPath, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	out := &closablePin{}
	if err := releaseSysfsPin(out, 17); err != nil {
		t.Fatalf("releaseSysfsPin failed: %v", err)
	}
	if out.closed != 1 {
		t.Errorf("Expected output to be closed once, got %d", out.closed)
	}
	content, err := os.ReadFile(sysfsUnexportPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "17" {
		t.Errorf("Expected pin 17 to be unexported, got '%s'", content)
	}

	failure := errors.New("busy")
	if err := releaseSysfsPin(&closablePin{closeErr: failure}, 17); errors.Cause(err) != failure {
		t.Errorf("Expected close failure, got %v", err)
	}
}

func TestReleaseSysfsPinWithoutSysfs(t *testing.T) {
	defer func(path string) { sysfsUnexportPath = path }(sysfsUnexportPath)
	sysfsUnexportPath = filepath.Join(t.TempDir(), "missing", "unexport")
	if err := releaseSysfsPin(&recordingPin{}, 4); err != nil {
		t.Errorf("Expected no error without sysfs, got %v", err)
	}
}

func TestSoftPWMCloseReleasesSysfsPin(t *testing.T) {
	defer func(path string) { sysfsUnexportPath = path }(sysfsUnexportPath)
	sysfsUnexportPath = filepath.Join(t.TempDir(), "unexport")
	if err := os.WriteFile(sysfsUnexportPath, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	out := &closablePin{}
	p := newSoftPWM(out, func() error { return releaseSysfsPin(out, 22) }, TypeRaspberryPi, zerolog.Nop())
	if err := p.SetPWMFrequency(100, 0.5); err != nil {
		t.Fatalf("SetPWMFrequency failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if out.closed != 1 {
		t.Errorf("Expected output to be closed once, got %d", out.closed)
	}
	writes := out.Writes()
	if len(writes) == 0 || writes[len(writes)-1] {
		t.Errorf("Expected pin to end low before release, got %v", writes)
	}
}
