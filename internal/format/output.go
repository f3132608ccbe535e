package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write emits v for scriptable commands. format names the encoding; strict
// JSON ("json", or empty for the default) is the only one the CLI speaks.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
