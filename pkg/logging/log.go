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
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log is the destination of all user facing messages.
type Log interface {
	// Output a normal message
	Output(format string, args ...interface{})
	// Warning reports a problem that does not stop the tool
	Warning(format string, args ...interface{})
	// Error reports a problem that stops the tool
	Error(format string, args ...interface{})
}

// ColorSwitch is implemented by logs that can disable colored output.
type ColorSwitch interface {
	SetNoColor(noColor bool)
}

// LoggerProvider is implemented by logs that expose a structured logger.
type LoggerProvider interface {
	Logger() zerolog.Logger
}

// Console writes normal output to stdout and warnings & errors
// to stderr using zerolog.
type Console struct {
	mutex   sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	extra   []io.Writer
	noColor bool
	level   zerolog.Level
	logger  zerolog.Logger
}

var (
	_ Log            = &Console{}
	_ ColorSwitch    = &Console{}
	_ LoggerProvider = &Console{}
)

// NewConsole creates a console log on the given writers.
// Color is disabled when stderr is not a terminal.
func NewConsole(stdout, stderr io.Writer) *Console {
	c := &Console{
		stdout:  stdout,
		stderr:  stderr,
		noColor: !isTerminal(stderr),
		level:   zerolog.InfoLevel,
	}
	c.rebuild()
	return c
}

// NewStdConsole creates a console log on stdout & stderr.
func NewStdConsole() *Console {
	return NewConsole(os.Stdout, os.Stderr)
}

// SetNoColor enables/disables colored output.
func (c *Console) SetNoColor(noColor bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.noColor = noColor
	c.rebuild()
}

// SetLevel sets the minimum level of structured log messages.
func (c *Console) SetLevel(level zerolog.Level) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.level = level
	c.rebuild()
}

// AddOutput adds a destination that receives all messages, including
// debug messages, without color.
func (c *Console) AddOutput(w io.Writer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.extra = append(c.extra, w)
	c.rebuild()
}

// Logger returns the structured logger.
func (c *Console) Logger() zerolog.Logger {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.logger
}

// Output a normal message on stdout.
func (c *Console) Output(format string, args ...interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n") + "\n"
	io.WriteString(c.stdout, msg)
	for _, w := range c.extra {
		io.WriteString(w, msg)
	}
}

// Warning reports a message at warning level.
func (c *Console) Warning(format string, args ...interface{}) {
	logger := c.Logger()
	logger.Warn().Msgf(format, args...)
}

// Error reports a message at error level.
func (c *Console) Error(format string, args ...interface{}) {
	logger := c.Logger()
	logger.Error().Msgf(format, args...)
}

// rebuild the logger. Expects the mutex to be held.
// Extra outputs receive debug messages regardless of the console level.
func (c *Console) rebuild() {
	writers := []io.Writer{NewLevelWriter(zerolog.ConsoleWriter{
		Out:        c.stderr,
		NoColor:    c.noColor,
		TimeFormat: time.Kitchen,
	}, c.level)}
	minLevel := c.level
	for _, w := range c.extra {
		writers = append(writers, NewLevelWriter(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}, zerolog.DebugLevel))
		if zerolog.DebugLevel < minLevel {
			minLevel = zerolog.DebugLevel
		}
	}
	c.logger = zerolog.New(NewMultiWriter(writers...)).
		Level(minLevel).
		With().Timestamp().Logger()
}

// isTerminal returns true if the given writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
