// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"fillmore-labs.com/redundantdelegate/internal/driver"
	"fillmore-labs.com/redundantdelegate/internal/rule"
)

// Printer writes results in one format.
type Printer struct {
	format Format
	color  bool
}

// NewPrinter creates a [Printer]. Colors apply to the text format only.
func NewPrinter(format Format, colored bool) *Printer {
	return &Printer{format: format, color: colored}
}

// Print writes the findings of r to w.
func (p *Printer) Print(w io.Writer, r *driver.Result) error {
	switch p.format {
	case Text:
		return p.text(w, r)
	case JSON:
		return writeJSON(w, r)
	case Table:
		return writeTable(w, r)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, p.format)
	}
}

func (p *Printer) text(w io.Writer, r *driver.Result) error {
	for _, f := range r.Findings {
		d := f.Diagnostic

		severity := p.paint(d.Severity())
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", f.Start, severity, d.ID(), d.Message()); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) paint(s rule.Severity) string {
	var c *color.Color

	switch s {
	case rule.Error:
		c = color.New(color.FgRed, color.Bold)
	case rule.Warning:
		c = color.New(color.FgYellow)
	case rule.Info:
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.Faint)
	}

	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(s)
}

// Diagnostic is the JSON form of a finding.
type Diagnostic struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Category  string   `json:"category"`
	Severity  string   `json:"severity"`
	HelpLink  string   `json:"helpLink,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	File      string   `json:"file"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	EndLine   int      `json:"endLine"`
	EndColumn int      `json:"endColumn"`
}

// Report is the JSON document written by the json format.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Files       int          `json:"files"`
	Suppressed  int          `json:"suppressed"`
}

func writeJSON(w io.Writer, r *driver.Result) error {
	report := Report{
		Diagnostics: make([]Diagnostic, 0, len(r.Findings)),
		Files:       len(r.Files),
		Suppressed:  r.Suppressed,
	}

	for _, f := range r.Findings {
		d := f.Diagnostic
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			ID:        d.ID(),
			Title:     d.Title(),
			Message:   d.Message(),
			Category:  d.Category(),
			Severity:  d.Severity().String(),
			HelpLink:  d.HelpLink(),
			Tags:      d.CustomTags(),
			File:      f.Start.Filename,
			Line:      f.Start.Line,
			Column:    f.Start.Column,
			EndLine:   f.End.Line,
			EndColumn: f.End.Column,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

func writeTable(w io.Writer, r *driver.Result) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"File", "Line", "Col", "Severity", "ID", "Message"})

	for _, f := range r.Findings {
		d := f.Diagnostic
		tbl.AppendRow(table.Row{f.Start.Filename, f.Start.Line, f.Start.Column, d.Severity(), d.ID(), d.Message()})
	}

	tbl.AppendFooter(table.Row{"Total", "", "", "", "", strconv.Itoa(len(r.Findings))})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

// Summary describes the size of a run in one line.
func Summary(r *driver.Result) string {
	s := fmt.Sprintf("%s in %s (%s lines, %s)",
		english.Plural(len(r.Findings), "diagnostic", ""),
		english.Plural(len(r.Files), "file", ""),
		humanize.Comma(int64(r.Lines)),
		humanize.Bytes(uint64(max(r.Bytes, 0))),
	)

	if r.Suppressed > 0 {
		s += fmt.Sprintf(", %s suppressed", humanize.Comma(int64(r.Suppressed)))
	}

	return s
}
