// Package linter is the syntax gate run before any structural parsing.
// It delegates to external format-specific lint tools; a file that fails
// here is never handed to the loader.
package linter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/emt/driftwatch/pkg/parser"
)

// DefaultTimeout bounds one external lint invocation. A timed-out tool is
// treated the same as a missing one.
const DefaultTimeout = 30 * time.Second

// ErrValidatorUnavailable means the external lint tool could not be run
// at all, as opposed to the file actually being invalid.
var ErrValidatorUnavailable = errors.New("syntax validator unavailable")

// SyntaxError reports a file rejected by the external validator. The
// diagnostic is the tool's captured output, kept for humans only; the
// non-zero exit code is the sole failure signal.
type SyntaxError struct {
	Path       string
	Diagnostic string
}

func (e *SyntaxError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("syntax validation failed for %s", e.Path)
	}
	return fmt.Sprintf("syntax validation failed for %s:\n%s", e.Path, e.Diagnostic)
}

// Validator checks one file's syntax. Implementations other than
// ExecValidator exist so tests can gate files without spawning processes.
type Validator interface {
	Validate(ctx context.Context, path string) error
}

// ExecValidator shells out to yamllint or jsonlint depending on format.
type ExecValidator struct {
	Format  parser.Format
	Timeout time.Duration
}

// NewExecValidator returns a validator for the given format with the
// default timeout.
func NewExecValidator(format parser.Format) *ExecValidator {
	return &ExecValidator{Format: format, Timeout: DefaultTimeout}
}

// Validate runs the external lint tool against path. Exit code 0 means
// valid; a non-zero exit yields a SyntaxError carrying the tool's
// stderr. A missing tool or a timed-out run yields
// ErrValidatorUnavailable.
func (v *ExecValidator) Validate(ctx context.Context, path string) error {
	name, args := v.command(path)

	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s not found", ErrValidatorUnavailable, name)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidatorUnavailable, name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			diagnostic = strings.TrimSpace(stdout.String())
		}
		return &SyntaxError{Path: path, Diagnostic: diagnostic}
	}

	return fmt.Errorf("%w: running %s: %v", ErrValidatorUnavailable, name, err)
}

func (v *ExecValidator) command(path string) (string, []string) {
	if v.Format == parser.FormatJSON {
		return "jsonlint", []string{"-q", path}
	}
	return "yamllint", []string{path}
}
