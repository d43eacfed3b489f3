package plugin

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeDebugDumps writes before and after copies of a transformed page
// under the configured debug directory. Failures are logged and never stop
// the pass.
func (p *Processor) writeDebugDumps(pagePath, before, after string) {
	if err := os.MkdirAll(p.opts.DebugDir, 0o755); err != nil {
		p.logger.Error("create debug directory",
			zap.String("dir", p.opts.DebugDir), zap.Error(err))
		return
	}
	stem := debugStem(pagePath)
	dumps := []struct {
		suffix  string
		content string
	}{
		{"_before.html", before},
		{"_after.html", after},
	}
	for _, d := range dumps {
		path := filepath.Join(p.opts.DebugDir, stem+d.suffix)
		if err := os.WriteFile(path, []byte(d.content), 0o644); err != nil {
			p.logger.Error("write debug dump",
				zap.String("path", path), zap.Error(err))
		}
	}
}

// debugStem flattens a page path into a single file name component.
func debugStem(pagePath string) string {
	stem := strings.TrimSuffix(pagePath, filepath.Ext(pagePath))
	stem = strings.ReplaceAll(stem, "\\", "_")
	return strings.ReplaceAll(stem, "/", "_")
}
