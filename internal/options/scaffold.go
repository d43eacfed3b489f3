package options

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultOptionsFile = `# Widget classes applied to generated markup.
question_class: "freetext-question"
assessment_class: "freetext-assessment"
answer_class: "freetext-answer"
container_class: "freetext-container"

# Styling and behavior toggles.
enable_css: true
dark_mode_support: true
show_character_count: true
enable_auto_save: true

# Shuffle assessment questions on page load. Individual assessments can
# override this with a "shuffle:" directive.
shuffle_questions: false

# Per-question defaults, overridable in each question's config section.
default_answer_rows: 3
default_long_answer_rows: 6
default_placeholder: "Enter your answer..."
default_marks: 0
default_show_answer: true
default_question_type: short

# Write before/after HTML snapshots for each processed page.
debug: false
debug_dir: "debug"
`

// Scaffold writes a commented default options file at path.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("options path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("options path %q is a directory", path)
		}
		return fmt.Errorf("options file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat options file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create options dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultOptionsFile), 0o644); err != nil {
		return fmt.Errorf("write options file: %w", err)
	}
	return nil
}
