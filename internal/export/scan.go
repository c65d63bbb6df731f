// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/igig-sync/internal/classify"
	"github.com/pdiddy/igig-sync/pkg/types"
)

// Scan returns the names of the regular files directly under root, sorted
// by name. Subdirectories are neither listed nor descended into. Symlinks
// are included when they point at a regular file.
func Scan(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(root, entry.Name()))
			if err != nil {
				// Dangling link.
				continue
			}
			mode = info.Mode().Type()
		}
		if mode.IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Plan scans root and classifies every file found. It performs no writes.
func Plan(root string) ([]types.Decision, error) {
	names, err := Scan(root)
	if err != nil {
		return nil, err
	}
	return PlanNames(names), nil
}

// PlanNames classifies the given file names in order.
func PlanNames(names []string) []types.Decision {
	decisions := make([]types.Decision, len(names))
	for i, name := range names {
		decisions[i] = classify.Classify(name)
	}
	return decisions
}
