// SPDX-License-Identifier: MIT

package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Renderer writes matrices, solution vectors and small reports to Out.
// The zero value is not usable; construct it with New.
//
// Text, markdown and csv sections are written as they are added. JSON and
// YAML sections are buffered and written by Flush as one document.
type Renderer struct {
	Out       io.Writer
	Format    Format
	Precision int

	heading  lipgloss.Style
	styled   bool
	sections []any
}

// Field is one key/value line of a report.
type Field struct {
	Key   string
	Value string
}

// New returns a Renderer. When styled is true, text-mode headings are
// rendered with lipgloss using a color profile detected from out.
func New(out io.Writer, format Format, precision int, styled bool) *Renderer {
	return &Renderer{
		Out:       out,
		Format:    format,
		Precision: precision,
		heading: lipgloss.NewRenderer(out).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		styled: styled,
	}
}

// matrixDoc is the structured (json/yaml) shape of a matrix section.
type matrixDoc struct {
	Title string  `json:"title" yaml:"title"`
	Rows  [][]any `json:"rows" yaml:"rows"`
}

// resultDoc is the structured shape of the solution section.
type resultDoc struct {
	Title     string        `json:"title" yaml:"title"`
	Solutions []solutionDoc `json:"solutions" yaml:"solutions"`
}

// envelope is the single structured document written by Flush.
type envelope struct {
	Sections []any `json:"sections" yaml:"sections"`
}

// solutionDoc is one entry of the structured solution list.
type solutionDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// reportDoc is the structured shape of a report section.
type reportDoc struct {
	Title  string            `json:"title" yaml:"title"`
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// VarName returns the display label of the i-th unknown (0-based): var1, var2, ...
func VarName(i int) string {
	return "var" + strconv.Itoa(i+1)
}

// Matrix renders m under title. See Rows.
func (r *Renderer) Matrix(title string, m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return fmt.Errorf("present: Matrix: %w", err)
	}

	return r.Rows(title, rows)
}

// Rows renders raw rows under title. Ragged rows are allowed so input can be
// shown before it is validated.
func (r *Renderer) Rows(title string, rows [][]float64) error {
	switch r.Format {
	case FormatJSON, FormatYAML:
		doc := matrixDoc{Title: title, Rows: make([][]any, len(rows))}
		for i, row := range rows {
			doc.Rows[i] = make([]any, len(row))
			for j, v := range row {
				doc.Rows[i][j] = encodeValue(v, r.Precision)
			}
		}
		r.sections = append(r.sections, doc)
		return nil
	}

	width, augmented := 0, len(rows) > 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
		if len(row) != len(rows)+1 {
			augmented = false
		}
	}
	header := make(table.Row, 0, width+1)
	header = append(header, "row")
	for j := 0; j < width; j++ {
		if j == width-1 && augmented {
			header = append(header, "rhs")
			continue
		}
		header = append(header, "x"+strconv.Itoa(j+1))
	}

	t := r.newTable()
	t.AppendHeader(header)
	for i, row := range rows {
		tr := make(table.Row, 0, len(row)+1)
		tr = append(tr, i+1)
		for _, v := range row {
			tr = append(tr, FormatFloat(v, r.Precision))
		}
		t.AppendRow(tr)
	}

	return r.flush(title, t)
}

// Solutions renders xs as var1..varN under the RESULT title.
func (r *Renderer) Solutions(xs []float64) error {
	switch r.Format {
	case FormatJSON, FormatYAML:
		doc := resultDoc{Title: "RESULT", Solutions: make([]solutionDoc, len(xs))}
		for i, v := range xs {
			doc.Solutions[i] = solutionDoc{Name: VarName(i), Value: encodeValue(v, r.Precision)}
		}
		r.sections = append(r.sections, doc)
		return nil
	}

	t := r.newTable()
	t.AppendHeader(table.Row{"variable", "value"})
	for i, v := range xs {
		t.AppendRow(table.Row{VarName(i), FormatFloat(v, r.Precision)})
	}

	return r.flush("RESULT", t)
}

// Report renders a titled list of key/value fields.
func (r *Renderer) Report(title string, fields []Field) error {
	switch r.Format {
	case FormatJSON, FormatYAML:
		doc := reportDoc{Title: title, Fields: make(map[string]string, len(fields))}
		for _, f := range fields {
			doc.Fields[f.Key] = f.Value
		}
		r.sections = append(r.sections, doc)
		return nil
	}

	t := r.newTable()
	t.AppendHeader(table.Row{"key", "value"})
	for _, f := range fields {
		t.AppendRow(table.Row{f.Key, f.Value})
	}

	return r.flush(title, t)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out)
	t.SetStyle(table.StyleLight)

	return t
}

// flush writes the section heading (if the format has one) and the table.
func (r *Renderer) flush(title string, t table.Writer) error {
	switch r.Format {
	case FormatMarkdown:
		if _, err := fmt.Fprintf(r.Out, "\n### %s\n\n", title); err != nil {
			return err
		}
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	default:
		label := title + ":"
		if r.styled {
			label = r.heading.Render(label)
		}
		if _, err := fmt.Fprintf(r.Out, "\n%s\n", label); err != nil {
			return err
		}
		t.Render()
	}

	return nil
}

// Flush writes the buffered json/yaml sections as {"sections": [...]} and
// clears the buffer. It writes nothing for the other formats or when no
// section was added.
func (r *Renderer) Flush() error {
	if len(r.sections) == 0 {
		return nil
	}
	doc := envelope{Sections: r.sections}
	r.sections = nil

	return r.encode(doc)
}

// encode writes one json value or one yaml document.
func (r *Renderer) encode(v any) error {
	if r.Format == FormatYAML {
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("present: yaml: %w", err)
		}
		if _, err = fmt.Fprintf(r.Out, "---\n%s", out); err != nil {
			return err
		}
		return nil
	}

	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("present: json: %w", err)
	}

	return nil
}
