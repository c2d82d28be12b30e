package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// WriteResult writes rendered output to path, creating parent directories.
// A trailing newline is added if missing.
func WriteResult(path, text string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return os.WriteFile(path, []byte(text), 0644)
}
