// Package output provides output formatting for the buildmeta CLI.
package output

import (
	"fmt"
	"io"
	"reflect"
)

// TextFormatter prints scalars on a line of their own and structs or maps
// as "name: value" lines.
type TextFormatter struct{}

// Format formats data as plain text.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(w, s.String())
		return err
	}

	v := reflect.Indirect(reflect.ValueOf(data))
	switch v.Kind() {
	case reflect.Struct, reflect.Map:
		for _, field := range fieldsOf(v) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", field.name, rawValue(field.value)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, rawValue(v))
		return err
	}
}
