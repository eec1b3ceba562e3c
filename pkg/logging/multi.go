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
	"io"

	"github.com/rs/zerolog"
)

// levelWriter passes messages at or above its level to the wrapped writer.
type levelWriter struct {
	w     io.Writer
	level zerolog.Level
}

// NewLevelWriter creates an output that drops messages below the given level.
// Messages written without a level are always passed.
func NewLevelWriter(w io.Writer, level zerolog.Level) zerolog.LevelWriter {
	return &levelWriter{w: w, level: level}
}

func (l *levelWriter) Write(p []byte) (int, error) {
	return l.w.Write(p)
}

func (l *levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < l.level {
		return len(p), nil
	}
	return l.w.Write(p)
}

type multiWriter struct {
	writers []zerolog.LevelWriter
}

// NewMultiWriter creates a new output for logs that writes to
// all given writers. Writers that implement zerolog.LevelWriter
// get to filter on level.
// Unlike io.MultiWriter, a failing writer does not stop the others.
func NewMultiWriter(writers ...io.Writer) zerolog.LevelWriter {
	l := &multiWriter{}
	for _, w := range writers {
		if lw, ok := w.(zerolog.LevelWriter); ok {
			l.writers = append(l.writers, lw)
		} else {
			l.writers = append(l.writers, NewLevelWriter(w, zerolog.DebugLevel-1))
		}
	}
	return l
}

func (l *multiWriter) Write(p []byte) (n int, err error) {
	for _, w := range l.writers {
		if _, wErr := w.Write(p); wErr != nil && err == nil {
			err = wErr
		}
	}
	return len(p), err
}

func (l *multiWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	for _, w := range l.writers {
		if _, wErr := w.WriteLevel(level, p); wErr != nil && err == nil {
			err = wErr
		}
	}
	return len(p), err
}
