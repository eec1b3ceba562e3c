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

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/binkynet/SoftPWMTool/pkg/bridge"
	"github.com/binkynet/SoftPWMTool/pkg/sequence"
	"github.com/binkynet/SoftPWMTool/pkg/servo"
)

// Plan describes a sequence run.
type Plan struct {
	Bridge    bridge.Type
	Pin       bridge.Pin
	Frequency float64
	Steps     []sequence.Step
}

// headerRow is the row index StyleFunc is called with for the headers.
const headerRow = 0

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	plainStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// RenderPlan renders the given plan as a table.
func RenderPlan(p Plan, noColor bool) string {
	rows := lo.Map(p.Steps, func(s sequence.Step, i int) []string {
		duty := s.DutyCycle()
		return []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%g°", s.Angle),
			fmt.Sprintf("%.2f%%", duty*100),
			servo.DutyCycleToPulseWidth(duty, p.Frequency).String(),
			s.Hold.String(),
		}
	})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Angle", "Duty cycle", "Pulse", "Hold").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case noColor:
				return plainStyle
			case row == headerRow:
				return headerStyle
			case col == 0:
				return numberStyle
			default:
				return cellStyle
			}
		})

	title := fmt.Sprintf("Pin %s (%s bridge) at %s", p.Pin, p.Bridge, humanize.SIWithDigits(p.Frequency, 2, "Hz"))
	if !noColor {
		title = titleStyle.Render(title)
	}
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(t.String())
	sb.WriteString("\n")
	total := sequence.TotalDuration(p.Steps)
	fmt.Fprintf(&sb, "%s in total, %s periods\n",
		total,
		humanize.Comma(int64(total.Seconds()*p.Frequency)))
	return sb.String()
}
