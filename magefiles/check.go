//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
)

// Test runs the full test suite with race detection.
func Test() error {
	return run("go", "test", "-race", "./...")
}

// Vet runs static analysis across all packages.
func Vet() error {
	return run("go", "vet", "./...")
}

// run executes a command with output streamed to the terminal.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
