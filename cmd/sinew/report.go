package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// writeReport encodes v to w: indented json for humans, cbor for pipelines.
func writeReport(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "cbor":
		data, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown report format %q (want json or cbor)", format)
	}
}

// splitSpec expands a routine selection; "all" (or empty) selects the full
// set for the mode.
func splitSpec(spec string, all []string) []string {
	if spec == "" || spec == "all" {
		return all
	}
	parts := strings.Split(spec, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
