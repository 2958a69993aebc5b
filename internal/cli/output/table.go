// Package output provides output formatting for the buildmeta CLI.
package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports: *Table, struct (one row per field), map (sorted by key),
// slice of structs (one row per element) and scalars.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if t, ok := data.(*Table); ok {
		return t.RenderWithOptions(w, f.NoHeaders)
	}
	return toTable(data).RenderWithOptions(w, f.NoHeaders)
}

type field struct {
	name  string
	value reflect.Value
}

// fieldsOf lists the exported fields of a struct, or the entries of a map
// sorted by key. Field names come from the json tag when present; fields
// tagged table:"-" are skipped.
func fieldsOf(v reflect.Value) []field {
	var out []field
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() || sf.Tag.Get("table") == "-" {
				continue
			}
			out = append(out, field{name: fieldName(sf), value: v.Field(i)})
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			out = append(out, field{name: rawValue(iter.Key()), value: iter.Value()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	}
	return out
}

func fieldName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return toSnakeCase(sf.Name)
}

func toTable(data any) *Table {
	v := reflect.Indirect(reflect.ValueOf(data))

	switch v.Kind() {
	case reflect.Struct, reflect.Map:
		t := &Table{Headers: []string{"FIELD", "VALUE"}}
		for _, f := range fieldsOf(v) {
			t.AddRow(f.name, cellValue(f.value))
		}
		return t
	case reflect.Slice, reflect.Array:
		return sliceToTable(v)
	default:
		return &Table{Headers: []string{"VALUE"}, Rows: [][]string{{cellValue(v)}}}
	}
}

func sliceToTable(v reflect.Value) *Table {
	if v.Len() == 0 {
		return &Table{}
	}

	t := &Table{}
	for i := 0; i < v.Len(); i++ {
		elem := reflect.Indirect(v.Index(i))
		if elem.Kind() != reflect.Struct {
			if i == 0 {
				t.SetHeaders("VALUE")
			}
			t.AddRow(cellValue(elem))
			continue
		}

		fields := fieldsOf(elem)
		if i == 0 {
			for _, f := range fields {
				t.Headers = append(t.Headers, strings.ToUpper(f.name))
			}
		}
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, cellValue(f.value))
		}
		t.AddRow(row...)
	}
	return t
}

// rawValue formats v without placeholders.
func rawValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = rawValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// cellValue formats v for a table cell; empty values render as "-".
func cellValue(v reflect.Value) string {
	if s := rawValue(v); s != "" {
		return s
	}
	return "-"
}

// toSnakeCase converts CamelCase to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table, optionally without the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(t.Headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders sets the table headers.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
