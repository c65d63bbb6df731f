// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/igig-sync/internal/export"
)

func runExport(cmd *cobra.Command, args []string) error {
	_, err := export.New(exportConfig(), cmd.OutOrStdout()).Run(context.Background())
	return err
}
