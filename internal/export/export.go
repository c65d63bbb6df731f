// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export copies the PDF files of a flat document directory into a
// sync-safe output directory, renaming marker-prefixed files on the way.
//
// A run is strictly sequential. The first filesystem error aborts it and
// files copied before the failure stay in place.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/igig-sync/pkg/types"
)

// Summary holds the outcome of an export run.
type Summary struct {
	Copied  int
	Renamed int
	Junk    int
	NonPDF  int
}

// Skipped returns the number of files that were not copied.
func (s Summary) Skipped() int {
	return s.Junk + s.NonPDF
}

// Total returns the number of files processed.
func (s Summary) Total() int {
	return s.Copied + s.Skipped()
}

// Exporter runs exports for one configuration.
type Exporter struct {
	cfg types.ExportConfig
	w   io.Writer
}

// New returns an Exporter that writes per-file progress lines to w.
// Empty config fields take their defaults.
func New(cfg types.ExportConfig, w io.Writer) *Exporter {
	return &Exporter{cfg: cfg.WithDefaults(), w: w}
}

// SyncDir returns the output directory path.
func (e *Exporter) SyncDir() string {
	return filepath.Join(e.cfg.RootDir, e.cfg.SyncDirName)
}

// Run creates the sync directory if needed, then classifies each file under
// the root and copies the ones that qualify. Existing files in the sync
// directory are overwritten. In dry-run mode it prints the same lines but
// writes nothing.
func (e *Exporter) Run(ctx context.Context) (Summary, error) {
	decisions, err := Plan(e.cfg.RootDir)
	if err != nil {
		return Summary{}, err
	}

	syncDir := e.SyncDir()
	if !e.cfg.DryRun {
		if err := os.MkdirAll(syncDir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("creating sync directory %s: %w", syncDir, err)
		}
	}

	var summary Summary
	for _, d := range decisions {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		switch d.Outcome {
		case types.OutcomeJunk:
			fmt.Fprintf(e.w, "Skipping junk file: %s\n", d.Name)
			summary.Junk++
			continue
		case types.OutcomeNonPDF:
			fmt.Fprintf(e.w, "Skipping non-PDF: %s\n", d.Name)
			summary.NonPDF++
			continue
		}

		fmt.Fprintf(e.w, "Copying %s -> %s\n", d.Name, d.DestName)
		if !e.cfg.DryRun {
			src := filepath.Join(e.cfg.RootDir, d.Name)
			if err := CopyFile(src, filepath.Join(syncDir, d.DestName)); err != nil {
				return summary, fmt.Errorf("copying %s: %w", d.Name, err)
			}
		}
		summary.Copied++
		if d.Outcome == types.OutcomeRenamed {
			summary.Renamed++
		}
	}

	fmt.Fprintln(e.w, "\nExport complete!")
	fmt.Fprintf(e.w, "Sync-safe files are in: %s\n", syncDir)
	return summary, nil
}
