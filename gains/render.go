// SPDX-License-Identifier: MIT
// Package: popmock/gains
//
// render.go — text, CSV and YAML renderers.
//
// Column order: Tile, Population, Responder, Non Responder, then each
// selected group in AllMetrics order. All three formats share one column
// table so they never disagree on names or order.

package gains

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// column is one rendered column; value returns an int or a float64.
type column struct {
	name  string
	value func(Row) any
}

var baseColumns = []column{
	{"Tile", func(r Row) any { return r.Tile }},
	{"Population", func(r Row) any { return r.Population }},
	{"Responder", func(r Row) any { return r.Responder }},
	{"Non Responder", func(r Row) any { return r.NonResponder }},
}

var groupColumns = map[Metric][]column{
	MetricKS: {
		{"Responder %", func(r Row) any { return r.ResponderPct }},
		{"Non Responder %", func(r Row) any { return r.NonResponderPct }},
		{"Cumulative Responder %", func(r Row) any { return r.CumResponderPct }},
		{"Cumulative Non Responder %", func(r Row) any { return r.CumNonResponderPct }},
		{"KS", func(r Row) any { return r.KS }},
	},
	MetricPSI: {
		{"Population %", func(r Row) any { return r.PopulationPct }},
		{"Baseline", func(r Row) any { return r.Baseline }},
		{"PSI", func(r Row) any { return r.PSI }},
	},
	MetricCumSum: {
		{"Cumulative Population", func(r Row) any { return r.CumPopulation }},
		{"Cumulative Responder", func(r Row) any { return r.CumResponder }},
		{"Cumulative Non Responder", func(r Row) any { return r.CumNonResponder }},
	},
	MetricOdds: {
		{"Odds", func(r Row) any { return r.Odds }},
	},
	MetricLift: {
		{"Bad Rate", func(r Row) any { return r.BadRate }},
		{"Lift", func(r Row) any { return r.Lift }},
	},
	MetricSeparation: {
		{"Bad Rate", func(r Row) any { return r.BadRate }},
		{"Separation", func(r Row) any { return r.Separation }},
	},
}

// columns returns the columns of c; "Bad Rate" appears once even when both
// lift and separation are selected.
func (c Chart) columns() []column {
	cols := append([]column(nil), baseColumns...)
	seen := make(map[string]bool)
	for _, m := range c.Metrics {
		for _, col := range groupColumns[m] {
			if seen[col.name] {
				continue
			}
			seen[col.name] = true
			cols = append(cols, col)
		}
	}

	return cols
}

// Header returns the column names in rendering order.
func (c Chart) Header() []string {
	cols := c.columns()
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.name
	}

	return out
}

// Write renders c to w in format f.
func (c Chart) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return c.WriteText(w)
	case FormatCSV:
		return c.WriteCSV(w)
	case FormatYAML:
		return c.WriteYAML(w)
	default:
		return fmt.Errorf("Chart.Write(%q): %w", f, ErrUnknownFormat)
	}
}

// WriteText renders an aligned table, floats with four decimals.
func (c Chart) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	cols := c.columns()

	cells := make([]string, len(cols))
	for i, col := range cols {
		cells[i] = col.name
	}
	if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
		return err
	}
	for _, r := range c.Rows {
		for i, col := range cols {
			cells[i] = formatText(col.value(r))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteCSV renders a header row plus one record per tile; floats use the
// shortest exact representation.
func (c Chart) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.Header()); err != nil {
		return err
	}
	cols := c.columns()
	rec := make([]string, len(cols))
	for _, r := range c.Rows {
		for i, col := range cols {
			rec[i] = formatExact(col.value(r))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteYAML renders a sequence of mappings whose keys keep column order.
func (c Chart) WriteYAML(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	cols := c.columns()
	for _, r := range c.Rows {
		row := &yaml.Node{Kind: yaml.MappingNode}
		for _, col := range cols {
			row.Content = append(row.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col.name},
				yamlScalar(col.value(r)),
			)
		}
		doc.Content = append(doc.Content, row)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func formatText(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 4, 64)
	default:
		return fmt.Sprint(v)
	}
}

func formatExact(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// yamlScalar encodes ints and floats with explicit tags; ±Inf and NaN use
// the YAML spellings .inf, -.inf and .nan.
func yamlScalar(v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case int:
		n.Tag, n.Value = "!!int", strconv.Itoa(x)
	case float64:
		n.Tag = "!!float"
		switch {
		case math.IsNaN(x):
			n.Value = ".nan"
		case math.IsInf(x, 1):
			n.Value = ".inf"
		case math.IsInf(x, -1):
			n.Value = "-.inf"
		default:
			n.Value = strconv.FormatFloat(x, 'g', -1, 64)
		}
	default:
		n.Tag, n.Value = "!!str", fmt.Sprint(v)
	}

	return n
}
