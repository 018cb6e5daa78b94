// SPDX-License-Identifier: MIT
package present_test

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/present"
)

// solved is the textbook solution as produced by elimination (a few ulps off).
var solved = []float64{2.0000000000000004, 2.9999999999999996, -0.9999999999999998}

// section is the union of the structured section shapes.
type section struct {
	Title     string            `json:"title" yaml:"title"`
	Rows      [][]float64       `json:"rows" yaml:"rows"`
	Fields    map[string]string `json:"fields" yaml:"fields"`
	Solutions []struct {
		Name  string  `json:"name" yaml:"name"`
		Value float64 `json:"value" yaml:"value"`
	} `json:"solutions" yaml:"solutions"`
}

type envelope struct {
	Sections []section `json:"sections" yaml:"sections"`
}

func newRenderer(format present.Format, prec int) (*present.Renderer, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return present.New(buf, format, prec, false), buf
}

func TestParseFormat(t *testing.T) {
	tests := map[string]present.Format{
		"":         present.FormatText,
		"TEXT":     present.FormatText,
		"table":    present.FormatText,
		"md":       present.FormatMarkdown,
		"markdown": present.FormatMarkdown,
		"csv":      present.FormatCSV,
		" json ":   present.FormatJSON,
		"yml":      present.FormatYAML,
	}
	for in, want := range tests {
		got, err := present.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := present.ParseFormat("xml")
	require.ErrorIs(t, err, present.ErrUnknownFormat)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "2", present.FormatFloat(solved[0], present.DefaultPrecision))
	assert.Equal(t, "-1", present.FormatFloat(solved[2], present.DefaultPrecision))
	assert.Equal(t, "2.0000000000000004", present.FormatFloat(solved[0], -1))
	assert.Equal(t, "0.333", present.FormatFloat(1.0/3, 3))
	assert.Equal(t, "0", present.FormatFloat(math.Copysign(0, -1), 6))
	assert.Equal(t, "NaN", present.FormatFloat(math.NaN(), 6))
	assert.Equal(t, "+Inf", present.FormatFloat(math.Inf(1), 6))
	assert.Equal(t, "-Inf", present.FormatFloat(math.Inf(-1), 6))
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "var1", present.VarName(0))
	assert.Equal(t, "var12", present.VarName(11))
}

func TestSolutions_Text(t *testing.T) {
	r, buf := newRenderer(present.FormatText, present.DefaultPrecision)
	require.NoError(t, r.Solutions(solved))

	out := buf.String()
	assert.Contains(t, out, "RESULT:")
	for _, want := range []string{"var1", "var2", "var3"} {
		assert.Contains(t, out, want)
	}
	// table headers are upper-cased by the light style
	for _, want := range []string{"variable", "value"} {
		assert.Contains(t, strings.ToLower(out), want)
	}
	assert.NotContains(t, out, "2.0000000000000004")
	assert.NotContains(t, out, "\x1b[", "unstyled renderer must not emit escape codes")
}

func TestSolutions_CSV(t *testing.T) {
	r, buf := newRenderer(present.FormatCSV, present.DefaultPrecision)
	require.NoError(t, r.Solutions(solved))

	out := buf.String()
	assert.Contains(t, out, "var1,2")
	assert.Contains(t, out, "var2,3")
	assert.Contains(t, out, "var3,-1")
	assert.NotContains(t, out, "RESULT")
}

func TestSolutions_Markdown(t *testing.T) {
	r, buf := newRenderer(present.FormatMarkdown, present.DefaultPrecision)
	require.NoError(t, r.Solutions([]float64{5, 7}))

	out := buf.String()
	assert.Contains(t, out, "### RESULT")
	assert.Contains(t, out, "| var1 | 5 |")
	assert.Contains(t, out, "| var2 | 7 |")
}

func TestSolutions_JSON(t *testing.T) {
	r, buf := newRenderer(present.FormatJSON, present.DefaultPrecision)
	require.NoError(t, r.Solutions(solved))
	require.Zero(t, buf.Len(), "structured output waits for Flush")
	require.NoError(t, r.Flush())

	var env envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env.Sections, 1)
	doc := env.Sections[0]
	assert.Equal(t, "RESULT", doc.Title)
	require.Len(t, doc.Solutions, 3)
	assert.Equal(t, "var1", doc.Solutions[0].Name)
	assert.Equal(t, 2.0, doc.Solutions[0].Value)
	assert.Equal(t, -1.0, doc.Solutions[2].Value)
}

func TestSolutions_NonFiniteJSON(t *testing.T) {
	r, buf := newRenderer(present.FormatJSON, present.DefaultPrecision)
	require.NoError(t, r.Solutions([]float64{math.NaN(), math.Inf(-1)}))
	require.NoError(t, r.Flush())

	out := buf.String()
	assert.Contains(t, out, `"NaN"`)
	assert.Contains(t, out, `"-Inf"`)
}

func TestMatrix_YAML(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0, 5}, {0, 1, 7}})
	require.NoError(t, err)

	r, buf := newRenderer(present.FormatYAML, -1)
	require.NoError(t, r.Matrix("INPUT", m))
	require.NoError(t, r.Flush())
	require.True(t, strings.HasPrefix(buf.String(), "---\n"))

	var env envelope
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env.Sections, 1)
	doc := env.Sections[0]
	assert.Equal(t, "INPUT", doc.Title)
	assert.Equal(t, [][]float64{{1, 0, 5}, {0, 1, 7}}, doc.Rows)
}

func TestRows_TextHeaders(t *testing.T) {
	r, buf := newRenderer(present.FormatText, present.DefaultPrecision)
	require.NoError(t, r.Rows("INPUT", [][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}}))

	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "input:")
	for _, want := range []string{"x1", "x2", "x3", "rhs", "-11"} {
		assert.Contains(t, out, want)
	}

	// ragged input is still shown, without an rhs column
	buf.Reset()
	require.NoError(t, r.Rows("INPUT", [][]float64{{1, 2, 3}, {4}}))
	out = strings.ToLower(buf.String())
	assert.NotContains(t, out, "rhs")
	assert.Contains(t, out, "x3")

	// so is a square matrix
	buf.Reset()
	require.NoError(t, r.Rows("INPUT", [][]float64{{1, 2}, {3, 4}}))
	assert.NotContains(t, strings.ToLower(buf.String()), "rhs")
}

func TestFlush_OneJSONDocument(t *testing.T) {
	r, buf := newRenderer(present.FormatJSON, -1)
	require.NoError(t, r.Rows("INPUT", [][]float64{{1, 0, 5}, {0, 1, 7}}))
	require.NoError(t, r.Solutions([]float64{5, 7}))
	require.NoError(t, r.Report("VERIFY", []present.Field{{Key: "canonical", Value: "yes"}}))
	require.NoError(t, r.Flush())

	dec := json.NewDecoder(bytes.NewReader(buf.Bytes()))
	var env envelope
	require.NoError(t, dec.Decode(&env))
	assert.False(t, dec.More(), "exactly one JSON value")

	require.Len(t, env.Sections, 3)
	assert.Equal(t, "INPUT", env.Sections[0].Title)
	assert.Equal(t, [][]float64{{1, 0, 5}, {0, 1, 7}}, env.Sections[0].Rows)
	assert.Equal(t, "RESULT", env.Sections[1].Title)
	assert.Equal(t, 7.0, env.Sections[1].Solutions[1].Value)
	assert.Equal(t, "yes", env.Sections[2].Fields["canonical"])

	// the buffer is cleared
	buf.Reset()
	require.NoError(t, r.Flush())
	assert.Zero(t, buf.Len())
}

func TestFlush_NoopForTables(t *testing.T) {
	r, buf := newRenderer(present.FormatCSV, 6)
	require.NoError(t, r.Solutions([]float64{1}))
	n := buf.Len()
	require.NoError(t, r.Flush())
	assert.Equal(t, n, buf.Len())
}

func TestMatrix_NilMatrix(t *testing.T) {
	r, _ := newRenderer(present.FormatText, 6)
	require.ErrorIs(t, r.Matrix("X", nil), matrix.ErrNilMatrix)
}

func TestReport(t *testing.T) {
	fields := []present.Field{{Key: "file", Value: "a.txt"}, {Key: "rref", Value: "yes"}}

	r, buf := newRenderer(present.FormatText, 6)
	require.NoError(t, r.Report("CHECK", fields))
	assert.Contains(t, buf.String(), "CHECK:")
	assert.Contains(t, buf.String(), "a.txt")

	r, buf = newRenderer(present.FormatJSON, 6)
	require.NoError(t, r.Report("CHECK", fields))
	require.NoError(t, r.Flush())
	var env envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env.Sections, 1)
	doc := env.Sections[0]
	assert.Equal(t, "CHECK", doc.Title)
	assert.Equal(t, "yes", doc.Fields["rref"])
}
