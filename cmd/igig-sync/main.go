// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the igig-sync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/igig-sync/internal/classify"
	"github.com/pdiddy/igig-sync/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Viper keys. Each is also readable from IGIG_SYNC_<KEY>.
const (
	keyRoot    = "root"
	keySyncDir = "sync_dir"
	keyDryRun  = "dry_run"
)

// rootCmd is the base command for the igig-sync CLI. Run without a
// subcommand it performs the export.
var rootCmd = &cobra.Command{
	Use:   "igig-sync",
	Short: "Copy a document library's PDFs into a sync-safe directory",
	Long: fmt.Sprintf(`igig-sync scans the top level of a document library, skips junk sidecar
files (%s) and anything that is not a PDF,
and copies the remaining PDFs into igig_sync/ under the library root.

Files whose name starts with "!" are renamed on the way ("!b draft.pdf"
becomes "_b draft.pdf") unless they look like short book-list names
("crealbk1.pdf"), which are copied unchanged. Existing copies are
overwritten.`, strings.Join(classify.JunkSuffixes(), ", ")),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./igig-sync.yaml or ~/.config/igig-sync/igig-sync.yaml)")
	rootCmd.PersistentFlags().String("root", types.DefaultRootDir, "library directory to scan (top level only)")
	rootCmd.PersistentFlags().String("sync-dir", types.DefaultSyncDirName, "name of the output directory created under the root")
	rootCmd.Flags().Bool("dry-run", false, "print what would be copied without writing anything")
}

// initConfig binds flags, environment, and config file into viper. It runs
// before every command execution.
func initConfig() {
	viper.BindPFlag(keyRoot, rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag(keySyncDir, rootCmd.PersistentFlags().Lookup("sync-dir"))
	viper.BindPFlag(keyDryRun, rootCmd.Flags().Lookup("dry-run"))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("igig-sync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "igig-sync"))
		}
	}

	viper.SetEnvPrefix("IGIG_SYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exportConfig builds the export configuration from flags, environment,
// and config file, in that order of precedence.
func exportConfig() types.ExportConfig {
	return types.ExportConfig{
		RootDir:     viper.GetString(keyRoot),
		SyncDirName: viper.GetString(keySyncDir),
		DryRun:      viper.GetBool(keyDryRun),
	}.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
