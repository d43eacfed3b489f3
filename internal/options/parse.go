package options

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML option data over the defaults. Unknown keys and
// multiple documents are rejected; keys absent from the document keep
// their default values.
func Parse(data []byte) (Options, error) {
	opts := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil {
		if err == io.EOF {
			return Default(), nil
		}
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Options{}, fmt.Errorf("parse options: multiple YAML documents are not supported")
		}
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}
