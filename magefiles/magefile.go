//go:build mage

// Package main contains Mage build targets for igig-sync developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "igig-sync"
	cmdPkg  = "./cmd/igig-sync"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := run("go", "build", "-ldflags", "-X main.version="+version(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return run("go", "test", "./...")
}

// Install copies the built binary into GOBIN (or GOPATH/bin).
func Install() error {
	mg.Deps(Build)

	dest := os.Getenv("GOBIN")
	if dest == "" {
		gopath, err := exec.Command("go", "env", "GOPATH").Output()
		if err != nil {
			return fmt.Errorf("go env GOPATH: %w", err)
		}
		dest = filepath.Join(string(trimNewline(gopath)), "bin")
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	data, err := os.ReadFile(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	target := filepath.Join(dest, binName)
	if err := os.WriteFile(target, data, 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	fmt.Printf("Installed %s\n", target)
	return nil
}

// Clean removes build output.
func Clean() error {
	return os.RemoveAll(binDir)
}

// version returns IGIG_SYNC_VERSION or "dev".
func version() string {
	if v := os.Getenv("IGIG_SYNC_VERSION"); v != "" {
		return v
	}
	return "dev"
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
