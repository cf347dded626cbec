package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// IndentRaw pretty-prints a raw API answer, falling back to the bytes as received
func IndentRaw(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// PrintRaw writes the raw API answer as indented JSON
func PrintRaw(w io.Writer, raw []byte) error {
	_, err := fmt.Fprintln(w, IndentRaw(raw))
	return err
}
