// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolrun implements converter binary detection and execution.
// Implements: prd004-conversion R4-R6 (external tool strategy);
//
//	docs/ARCHITECTURE § Conversion.
package toolrun

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
)

const binPandoc = "pandoc"

// Runner provides converter operations: checking availability and running
// the tool with collected output.
type Runner interface {
	// Name returns the binary name or explicit path used to invoke the tool.
	Name() string

	// Available reports whether the tool binary exists and responds to a
	// version probe.
	Available() bool

	// Run executes the tool with the given arguments, streaming stdout and
	// stderr to the given writers. It returns the process exit code; a
	// non-nil error always carries a non-zero code.
	Run(args []string, stdout, stderr io.Writer) (int, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunCollect(name string, args []string, stdout, stderr io.Writer) (int, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCollect(name string, args []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}
	return -1, err
}

// runner implements Runner for a single converter binary.
type runner struct {
	bin  string
	exec executor
}

func (r *runner) Name() string { return r.bin }

func (r *runner) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "--version") == nil
}

func (r *runner) Run(args []string, stdout, stderr io.Writer) (int, error) {
	code, err := r.exec.RunCollect(r.bin, args, stdout, stderr)
	if err != nil {
		return code, fmt.Errorf("running %s: %w", r.bin, err)
	}
	return 0, nil
}

var defaultExec = &osExecutor{}

// Detect locates the pandoc binary. An explicit path, when given, wins over
// PATH lookup. Returns an error if the tool is missing or does not respond
// to a version probe.
func Detect(explicitPath string) (Runner, error) {
	return detect(explicitPath, defaultExec)
}

func detect(explicitPath string, exec executor) (Runner, error) {
	bin := binPandoc
	if explicitPath != "" {
		bin = explicitPath
	}

	r := &runner{bin: bin, exec: exec}
	if !r.Available() {
		return nil, fmt.Errorf(
			"converter %s not found or not operational: install pandoc or point --pandoc at the binary",
			bin,
		)
	}
	return r, nil
}
