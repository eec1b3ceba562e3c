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
	"fmt"
	"strings"
	"sync"
)

// Recorder is a Log that keeps all messages in memory.
type Recorder struct {
	mutex    sync.Mutex
	outputs  []string
	warnings []string
	errors   []string
	noColor  bool
}

var (
	_ Log         = &Recorder{}
	_ ColorSwitch = &Recorder{}
)

// Output records a normal message.
func (r *Recorder) Output(format string, args ...interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.outputs = append(r.outputs, fmt.Sprintf(format, args...))
}

// Warning records a warning message.
func (r *Recorder) Warning(format string, args ...interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// Error records an error message.
func (r *Recorder) Error(format string, args ...interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// SetNoColor records the color setting.
func (r *Recorder) SetNoColor(noColor bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.noColor = noColor
}

// NoColor returns the last value passed to SetNoColor.
func (r *Recorder) NoColor() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.noColor
}

// Outputs returns all recorded normal messages.
func (r *Recorder) Outputs() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]string(nil), r.outputs...)
}

// Warnings returns all recorded warnings.
func (r *Recorder) Warnings() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]string(nil), r.warnings...)
}

// Errors returns all recorded errors.
func (r *Recorder) Errors() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]string(nil), r.errors...)
}

// Text returns all normal messages joined by newlines.
func (r *Recorder) Text() string {
	return strings.Join(r.Outputs(), "\n")
}
