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

package bridge

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/SoftPWMTool/pkg/environment"
)

// Options for creating a bridge.
type Options struct {
	// Chip used by the character device bridge
	Chip string
}

// ParseType parses a bridge type name.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	for _, x := range AllTypes {
		if t == x {
			return t, nil
		}
	}
	return "", errors.Wrapf(UnknownBridgeError, "'%s' (%s)", s, TypeNames())
}

// ResolveType replaces TypeAuto with the type detected from the environment.
func ResolveType(t Type, log zerolog.Logger) Type {
	if t != TypeAuto && t != "" {
		return t
	}
	detected := Type(environment.AutoDetectBridgeType(log))
	log.Debug().Str("bridge", string(detected)).Msg("Detected bridge type")
	return detected
}

// New creates a bridge of the given type.
func New(t Type, opts Options, log zerolog.Logger) (API, error) {
	switch ResolveType(t, log) {
	case TypeRaspberryPi:
		br, err := NewRaspberryPiBridge(log)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to initialize Raspberry Pi Bridge")
		}
		return br, nil
	case TypeCharacterDevice:
		br, err := NewCharacterDeviceBridge(opts.Chip, log)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to initialize GPIO character device Bridge")
		}
		return br, nil
	case TypePeriph:
		br, err := NewPeriphBridge(log)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to initialize periph Bridge")
		}
		return br, nil
	case TypeVirtual:
		return NewVirtualBridge(), nil
	default:
		return nil, errors.Wrapf(UnknownBridgeError, "'%s' (%s)", t, TypeNames())
	}
}

// TypeNames returns the names of all bridge types, separated by "|".
func TypeNames() string {
	names := make([]string, 0, len(AllTypes))
	for _, t := range AllTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, "|")
}
