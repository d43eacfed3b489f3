package options

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates an options file.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Options{}, err
	}
	Normalize(&opts)
	if err := Validate(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
