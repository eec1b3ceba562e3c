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

// Value implements pflag.Value for a list of steps.
// Every call to Set appends the parsed steps, so the flag can be repeated.
type Value struct {
	Steps *[]Step
}

// String returns the current steps formatted as a list.
func (v Value) String() string {
	if v.Steps == nil {
		return ""
	}
	return Format(*v.Steps)
}

// Set parses the given list and appends its steps.
func (v Value) Set(list string) error {
	steps, err := Parse(list)
	if err != nil {
		return err
	}
	*v.Steps = append(*v.Steps, steps...)
	return nil
}

// Type returns the type name shown in usage.
func (v Value) Type() string {
	return "angle:time,..."
}
