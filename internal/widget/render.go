package widget

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Render renders a widget component into a string.
func Render(c templ.Component) (string, error) {
	var builder strings.Builder
	if err := c.Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
