package cli

import (
	"fmt"
	"os"
	"strings"

	"freetext/internal/options"
)

// defaultOptionsPath is the options file looked up when --config is not set.
const defaultOptionsPath = "freetext.yml"

// loadOptions loads the named options file. With no explicit path it reads
// freetext.yml from the working directory when present and falls back to
// built-in defaults otherwise.
func loadOptions(path string) (options.Options, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		return options.Load(path)
	}
	if _, err := os.Stat(defaultOptionsPath); err != nil {
		if os.IsNotExist(err) {
			return options.Default(), nil
		}
		return options.Options{}, fmt.Errorf("stat %s: %w", defaultOptionsPath, err)
	}
	return options.Load(defaultOptionsPath)
}
