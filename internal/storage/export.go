package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortstep/internal/session"
)

// ExportJSON writes res as indented JSON. Transcript text is written
// as-is, so "5 > 2" stays readable.
func ExportJSON(w io.Writer, res *session.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func ExportJSONStdout(res *session.Result) error {
	return ExportJSON(os.Stdout, res)
}
