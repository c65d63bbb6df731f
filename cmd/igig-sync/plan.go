// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/igig-sync/internal/export"
	"github.com/pdiddy/igig-sync/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan [names...]",
	Short: "Show how files would be classified and named, without copying",
	Long: `Plan classifies every file at the top level of the root directory and
prints the outcome (junk, non_pdf, book_list, renamed, unchanged) with the
name each copied file would get. Given file names as arguments, it
classifies those names instead of scanning a directory.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("format", "table", "output format: table, yaml, or json")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	var decisions []types.Decision
	if len(args) > 0 {
		decisions = export.PlanNames(args)
	} else {
		var err error
		decisions, err = export.Plan(exportConfig().RootDir)
		if err != nil {
			return err
		}
	}
	return formatPlanOutput(cmd.OutOrStdout(), decisions, format)
}

func formatPlanOutput(w io.Writer, decisions []types.Decision, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(decisions)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(decisions); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "table", "":
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}

	if len(decisions) == 0 {
		fmt.Fprintln(w, "No files found.")
		return nil
	}

	fmt.Fprintf(w, "%-10s  %-40s  %s\n", "Outcome", "Name", "Destination")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	copies := 0
	for _, d := range decisions {
		name := truncate(d.Name, 40)
		dest := d.DestName
		if dest == "" {
			dest = "-"
		} else {
			copies++
		}
		fmt.Fprintf(w, "%-10s  %-40s  %s\n", d.Outcome, name, dest)
	}

	fmt.Fprintf(w, "\n%d files, %d to copy\n", len(decisions), copies)
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
