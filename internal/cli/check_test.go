package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCheckCommandSuccess verifies check command success path.
func TestCheckCommandSuccess(t *testing.T) {
	dir := t.TempDir()
	optsPath := filepath.Join(dir, "freetext.yml")
	body := []byte(`question_class: "quiz-question"
default_marks: 2
default_question_type: long
`)
	if err := os.WriteFile(optsPath, body, 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"check", "--config", optsPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Options OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestCheckCommandFailure verifies invalid values name the failing field.
func TestCheckCommandFailure(t *testing.T) {
	dir := t.TempDir()
	optsPath := filepath.Join(dir, "freetext.yml")
	body := []byte(`default_question_type: essay
`)
	if err := os.WriteFile(optsPath, body, 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"check", "--config", optsPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Validation failed") {
		t.Fatalf("expected validation failure, got %q", err.String())
	}
	if !strings.Contains(err.String(), "default_question_type") {
		t.Fatalf("expected failing field in stderr, got %q", err.String())
	}
}

// TestCheckCommandMissingFile verifies a missing options file fails.
func TestCheckCommandMissingFile(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"check", "--config", filepath.Join(t.TempDir(), "absent.yml")}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") {
		t.Fatalf("expected validation failure, got %q", err.String())
	}
}

// TestCheckCommandRejectsUnknownKeys verifies unknown option keys fail.
func TestCheckCommandRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	optsPath := filepath.Join(dir, "freetext.yml")
	if err := os.WriteFile(optsPath, []byte("not_an_option: 1\n"), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"check", "--config", optsPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "not_an_option") {
		t.Fatalf("expected unknown key in stderr, got %q", err.String())
	}
}
