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

package main

import (
	"os"

	"github.com/binkynet/SoftPWMTool/pkg/logging"
	"github.com/binkynet/SoftPWMTool/pkg/tool"
)

var (
	projectVersion = "dev"
	projectBuild   = "dev"
)

func main() {
	log := logging.NewStdConsole()
	t := tool.New(tool.Dependencies{
		Log:     log,
		Version: projectVersion,
		Build:   projectBuild,
	})
	if err := t.Run(os.Args[1:]); err != nil {
		Exitf(log, "%s", err)
	}
}

// Report the given error message and exit with code 1
func Exitf(log logging.Log, message string, args ...interface{}) {
	log.Error(message, args...)
	os.Exit(1)
}
