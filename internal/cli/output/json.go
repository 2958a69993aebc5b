package output

import (
	"encoding/json"
	"io"
)

const jsonIndent = "  "

// JSONFormatter writes data as indented JSON. HTML characters are left
// unescaped so URLs and version strings appear verbatim.
type JSONFormatter struct{}

// Format encodes data followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	return enc.Encode(data)
}
