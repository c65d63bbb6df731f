// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default values for ExportConfig.
const (
	DefaultRootDir     = "."
	DefaultSyncDirName = "igig_sync"
)

// ExportConfig holds settings for an export run.
type ExportConfig struct {
	// RootDir is the directory whose direct children are scanned
	// (default ".", the working directory at invocation time).
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// SyncDirName is the name of the output directory created under RootDir
	// (default "igig_sync").
	SyncDirName string `json:"sync_dir_name" yaml:"sync_dir_name"`

	// DryRun reports what would be copied without creating or writing anything.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.RootDir == "" {
		c.RootDir = DefaultRootDir
	}
	if c.SyncDirName == "" {
		c.SyncDirName = DefaultSyncDirName
	}
	return c
}
