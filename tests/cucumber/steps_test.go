package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"freetext/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	projectDir  string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a docs project with a question page$`, state.aDocsProjectWithAQuestionPage)
	ctx.Step(`^a docs project with an assessment page$`, state.aDocsProjectWithAnAssessmentPage)
	ctx.Step(`^a docs project with a plain page$`, state.aDocsProjectWithAPlainPage)
	ctx.Step(`^a docs project with an invalid options file$`, state.aDocsProjectWithAnInvalidOptionsFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the built page "([^"]+)" contains a question widget$`, state.theBuiltPageContainsAQuestionWidget)
	ctx.Step(`^the built page "([^"]+)" contains an assessment widget$`, state.theBuiltPageContainsAnAssessmentWidget)
	ctx.Step(`^the built page "([^"]+)" contains no widgets$`, state.theBuiltPageContainsNoWidgets)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

func (s *featureState) initProject() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "freetext-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	if err := os.MkdirAll(filepath.Join(dir, "docs"), 0o755); err != nil {
		return fmt.Errorf("create docs dir: %w", err)
	}
	if err := s.writeOptions(validOptionsYAML()); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) aDocsProjectWithAQuestionPage() error {
	if err := s.initProject(); err != nil {
		return err
	}
	return s.writePage("index.md", questionPageMarkdown())
}

func (s *featureState) aDocsProjectWithAnAssessmentPage() error {
	if err := s.initProject(); err != nil {
		return err
	}
	return s.writePage("quiz.md", assessmentPageMarkdown())
}

func (s *featureState) aDocsProjectWithAPlainPage() error {
	if err := s.initProject(); err != nil {
		return err
	}
	return s.writePage("notes.md", plainPageMarkdown())
}

func (s *featureState) aDocsProjectWithAnInvalidOptionsFile() error {
	if err := s.initProject(); err != nil {
		return err
	}
	return s.writeOptions(invalidOptionsYAML())
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "freetext" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, strings.TrimSpace(s.stderr.String()))
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theBuiltPageContainsAQuestionWidget(name string) error {
	page, err := s.builtPage(name)
	if err != nil {
		return err
	}
	for _, marker := range []string{"freetext-container", "freetext-question", "<textarea"} {
		if !strings.Contains(page, marker) {
			return fmt.Errorf("expected %q in built page %s", marker, name)
		}
	}
	return nil
}

func (s *featureState) theBuiltPageContainsAnAssessmentWidget(name string) error {
	page, err := s.builtPage(name)
	if err != nil {
		return err
	}
	for _, marker := range []string{"freetext-container", "freetext-assessment", "<h3>Go Basics</h3>", "<textarea"} {
		if !strings.Contains(page, marker) {
			return fmt.Errorf("expected %q in built page %s", marker, name)
		}
	}
	return nil
}

func (s *featureState) theBuiltPageContainsNoWidgets(name string) error {
	page, err := s.builtPage(name)
	if err != nil {
		return err
	}
	if strings.Contains(page, "freetext-container") {
		return fmt.Errorf("expected no widgets in built page %s", name)
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "default_question_type") {
		return fmt.Errorf("expected error to mention default_question_type, got %q", errOutput)
	}
	return nil
}

func (s *featureState) builtPage(name string) (string, error) {
	if s.projectDir == "" {
		return "", fmt.Errorf("project dir is not set")
	}
	data, err := os.ReadFile(filepath.Join(s.projectDir, "site", name))
	if err != nil {
		return "", fmt.Errorf("read built page: %w", err)
	}
	return string(data), nil
}

func (s *featureState) writePage(name, contents string) error {
	if s.projectDir == "" {
		return fmt.Errorf("project dir is not set")
	}
	path := filepath.Join(s.projectDir, "docs", name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func (s *featureState) writeOptions(contents string) error {
	if s.projectDir == "" {
		return fmt.Errorf("project dir is not set")
	}
	path := filepath.Join(s.projectDir, "freetext.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write options: %w", err)
	}
	return nil
}

func validOptionsYAML() string {
	return `show_character_count: true
default_marks: 1
default_question_type: short
`
}

func invalidOptionsYAML() string {
	return `default_question_type: essay
`
}

func questionPageMarkdown() string {
	return `# Lesson

!!! freetext
    What is a goroutine?

    ---

    marks: 2
`
}

func assessmentPageMarkdown() string {
	return `# Quiz

!!! freetext-assessment
    title: Go Basics

    What is a channel good for?

    marks: 2

    ---

    What does a mutex protect?

    marks: 1
`
}

func plainPageMarkdown() string {
	return `# Notes

Nothing interactive here.
`
}
