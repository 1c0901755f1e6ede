// This file is part of zxtape.
//
// zxtape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxtape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxtape.  If not, see <https://www.gnu.org/licenses/>.

package catalogue

import (
	"fmt"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jetsetilly/zxtape/tape/block"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	silent lipgloss.Style
	err    lipgloss.Style
}

// ANSI colour 8 is bright black (grey)
func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		silent: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func (cat *Catalogue) summary() string {
	if cat.Format == block.TZX {
		return fmt.Sprintf("TZX v%s, %d bytes, %d blocks, %v", cat.Version, cat.Size,
			len(cat.Entries), cat.Duration().Round(time.Millisecond))
	}
	return fmt.Sprintf("TAP, %d bytes, %d blocks, %v", cat.Size, len(cat.Entries),
		cat.Duration().Round(time.Millisecond))
}

// Write the catalogue to io.Writer as a table.
func (cat *Catalogue) Write(output io.Writer) {
	sty := newStyles()

	fmt.Fprintln(output, sty.title.Render(cat.summary()))

	rows := make([][]string, 0, len(cat.Entries))
	silent := make(map[int]bool)

	for i, e := range cat.Entries {
		id := ""
		if cat.Format == block.TZX {
			id = fmt.Sprintf("%#02x", e.ID)
		}

		duration := ""
		if e.Audible {
			duration = e.Duration().Round(time.Millisecond).String()
		} else {
			silent[i] = true
		}

		text := e.Text
		if e.Repeat > 0 {
			text = fmt.Sprintf("repeat x%d", e.Repeat)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%#06x", e.Offset),
			id,
			e.Name,
			fmt.Sprintf("%d", e.Length),
			duration,
			text,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("offset", "id", "block", "length", "duration", "description").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			// the header is row zero and data rows are numbered from one
			if row == 0 {
				return sty.header.Padding(0, 1)
			}
			if silent[row-1] {
				return sty.silent.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(output, t.Render())

	if cat.Truncated {
		fmt.Fprintln(output, sty.err.Render("the tape file is truncated"))
	}
}

// Dump the catalogue structure to io.Writer in the graphviz format.
func (cat *Catalogue) Dump(output io.Writer) {
	memviz.Map(output, cat)
}
