// Package build invokes the external loc compiler that packs the root
// directory into a release archive.
package build

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"loc-editor/internal/logger"
)

const component = "BuildTrigger"

var ErrNoRoot = errors.New("root directory is not configured")

// Result describes one compiler run.
type Result struct {
	ID       string
	Output   string
	ExitCode int
	Duration time.Duration
}

// ExitError is returned when the compiler ran but exited non-zero.
type ExitError struct {
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("compiler exited with status %d: %s", e.Code, strings.TrimSpace(e.Output))
}

type commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

type Runner struct {
	compiler string
	output   string
	logger   logger.Logger
	command  commandFunc
}

func NewRunner(compiler, output string, log logger.Logger) *Runner {
	return &Runner{
		compiler: compiler,
		output:   output,
		logger:   log,
		command:  exec.CommandContext,
	}
}

// Rebuild runs "<compiler> <root> <output>" and waits for it. There is no
// retry and no timeout; ctx is only cancelled when the application exits.
func (r *Runner) Rebuild(ctx context.Context, root string) (Result, error) {
	res := Result{ID: uuid.NewString()}
	if root == "" {
		return res, ErrNoRoot
	}

	r.logger.Info(component, "compiler started", map[string]interface{}{
		"run":      res.ID,
		"compiler": r.compiler,
		"root":     root,
		"output":   r.output,
	})

	start := time.Now()
	out, err := r.command(ctx, r.compiler, root, r.output).CombinedOutput()
	res.Duration = time.Since(start)
	res.Output = string(out)

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		err = &ExitError{Code: res.ExitCode, Output: res.Output}
	case err != nil:
		res.ExitCode = -1
		err = fmt.Errorf("failed to run compiler %s: %w", r.compiler, err)
	}

	fields := map[string]interface{}{
		"run":         res.ID,
		"exit_code":   res.ExitCode,
		"duration_ms": res.Duration.Milliseconds(),
		"output":      strings.TrimSpace(res.Output),
	}
	if err != nil {
		r.logger.Error(component, err, fields)
		return res, err
	}

	r.logger.Info(component, "compiler finished", fields)
	return res, nil
}
