//    Copyright 2018 Ewout Prangsma
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

package environment

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

var (
	gpioChipPath  = "/dev/gpiochip0"
	sysfsGPIOPath = "/sys/class/gpio"
)

// AutoDetectBridgeType detects the default bridge type based on the environment.
func AutoDetectBridgeType(log zerolog.Logger) string {
	machine, release, err := uname()
	if err != nil {
		log.Debug().Err(err).Msg("Uname failed")
	} else {
		log.Debug().
			Str("machine", machine).
			Str("release", release).
			Msg("Detecting bridge type")
		if !isSingleBoardMachine(machine) {
			return "virtual"
		}
	}
	if exists(gpioChipPath) {
		return "cdev"
	}
	if exists(sysfsGPIOPath) {
		return "rpi"
	}
	return "virtual"
}

func isSingleBoardMachine(machine string) bool {
	return strings.HasPrefix(machine, "arm") || strings.HasPrefix(machine, "aarch64")
}

func uname() (machine, release string, err error) {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return "", "", err
	}
	machine = strings.TrimRight(string(name.Machine[:]), "\x00")
	release = strings.TrimRight(string(name.Release[:]), "\x00")
	return machine, release, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
