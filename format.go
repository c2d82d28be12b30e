package pdfx

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FormatJSON pretty-prints a JSON payload with two-space indentation.
// Key order and number literals are kept exactly as received, so parsing
// the output yields the same value as parsing the input.
func FormatJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatFileSize formats a byte count for display, e.g. "1.5 KB" or "2 MB".
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB"}
	v := float64(size)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}
