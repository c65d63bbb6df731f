// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/igig-sync/pkg/types"
)

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "crealbk1.pdf", "book list")
	writeFile(t, root, "!b draft notes.pdf", "draft")
	writeFile(t, root, "notes.bookmark", "junk")
	writeFile(t, root, "report.PDF", "report")
	writeFile(t, root, "cover.jpg", "jpeg")
	writeFile(t, root, "Annual Report 2024.pdf", "annual")

	var buf bytes.Buffer
	summary, err := New(types.ExportConfig{RootDir: root}, &buf).Run(context.Background())
	require.NoError(t, err)

	syncDir := filepath.Join(root, types.DefaultSyncDirName)
	assert.Equal(t, []string{
		"Annual Report 2024.pdf",
		"_b draft notes.pdf",
		"crealbk1.pdf",
		"report.PDF",
	}, listDir(t, syncDir))

	assert.Equal(t, "draft", readFile(t, filepath.Join(syncDir, "_b draft notes.pdf")))
	assert.Equal(t, "book list", readFile(t, filepath.Join(syncDir, "crealbk1.pdf")))

	assert.Equal(t, Summary{Copied: 4, Renamed: 1, Junk: 1, NonPDF: 1}, summary)
	assert.Equal(t, 6, summary.Total())
	assert.Equal(t, 2, summary.Skipped())

	want := strings.Join([]string{
		"Copying !b draft notes.pdf -> _b draft notes.pdf",
		"Copying Annual Report 2024.pdf -> Annual Report 2024.pdf",
		"Skipping non-PDF: cover.jpg",
		"Copying crealbk1.pdf -> crealbk1.pdf",
		"Skipping junk file: notes.bookmark",
		"Copying report.PDF -> report.PDF",
		"",
		"Export complete!",
		"Sync-safe files are in: " + syncDir,
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunSkipsSubdirectories(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "deep.pdf", "deep")
	writeFile(t, root, "top.pdf", "top")

	var buf bytes.Buffer
	_, err := New(types.ExportConfig{RootDir: root}, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"top.pdf"}, listDir(t, filepath.Join(root, types.DefaultSyncDirName)))
	assert.NotContains(t, buf.String(), "nested")
	assert.NotContains(t, buf.String(), "deep.pdf")
}

func TestRunIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "!Chapter One.pdf", "one")
	writeFile(t, root, "crealbk1.pdf", "two")

	cfg := types.ExportConfig{RootDir: root, SyncDirName: "out"}
	_, err := New(cfg, &bytes.Buffer{}).Run(context.Background())
	require.NoError(t, err)
	syncDir := filepath.Join(root, "out")
	first := snapshot(t, syncDir)

	_, err = New(cfg, &bytes.Buffer{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, snapshot(t, syncDir))
	assert.Equal(t, []string{"_Chapter One.pdf", "crealbk1.pdf"}, listDir(t, syncDir))
}

func TestRunOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "paper.pdf", "new content")
	syncDir := filepath.Join(root, types.DefaultSyncDirName)
	require.NoError(t, os.Mkdir(syncDir, 0o755))
	writeFile(t, syncDir, "paper.pdf", "old content")
	writeFile(t, syncDir, "unrelated.pdf", "keep me")

	_, err := New(types.ExportConfig{RootDir: root}, &bytes.Buffer{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "new content", readFile(t, filepath.Join(syncDir, "paper.pdf")))
	assert.Equal(t, "keep me", readFile(t, filepath.Join(syncDir, "unrelated.pdf")))
}

func TestRunDryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "!b draft notes.pdf", "draft")
	writeFile(t, root, "notes.inote", "junk")

	var buf bytes.Buffer
	summary, err := New(types.ExportConfig{RootDir: root, DryRun: true}, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(root, types.DefaultSyncDirName))
	assert.Equal(t, 1, summary.Copied)
	assert.Equal(t, 1, summary.Junk)
	assert.Contains(t, buf.String(), "Copying !b draft notes.pdf -> _b draft notes.pdf")
	assert.Contains(t, buf.String(), "Skipping junk file: notes.inote")
}

func TestRunEmptyRootCreatesSyncDir(t *testing.T) {
	root := t.TempDir()

	var buf bytes.Buffer
	summary, err := New(types.ExportConfig{RootDir: root}, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, types.DefaultSyncDirName))
	assert.Zero(t, summary.Total())
	assert.Contains(t, buf.String(), "Export complete!")
}

func TestRunSyncDirIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, types.DefaultSyncDirName, "not a directory")

	_, err := New(types.ExportConfig{RootDir: root}, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating sync directory")
}

func TestRunAbortsOnCopyFailure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.pdf", "a")
	writeFile(t, root, "b.pdf", "b")
	writeFile(t, root, "c.pdf", "c")

	// A directory occupying b.pdf's destination makes its copy fail.
	syncDir := filepath.Join(root, types.DefaultSyncDirName)
	require.NoError(t, os.MkdirAll(filepath.Join(syncDir, "b.pdf", "inner"), 0o755))

	var buf bytes.Buffer
	summary, err := New(types.ExportConfig{RootDir: root}, &buf).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying b.pdf")

	assert.Equal(t, 1, summary.Copied)
	assert.FileExists(t, filepath.Join(syncDir, "a.pdf"))
	assert.NoFileExists(t, filepath.Join(syncDir, "c.pdf"))
	assert.NotContains(t, buf.String(), "Export complete!")
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, listDir(t, syncDir), "no temp files left behind")
}

func TestRunMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	_, err := New(types.ExportConfig{RootDir: root}, &bytes.Buffer{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading directory")
	assert.NoDirExists(t, root)
}

func TestRunCanceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.pdf", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := New(types.ExportConfig{RootDir: root}, &bytes.Buffer{}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Total())
}

func TestSyncDirDefaults(t *testing.T) {
	e := New(types.ExportConfig{}, &bytes.Buffer{})
	assert.Equal(t, "igig_sync", e.SyncDir())

	e = New(types.ExportConfig{RootDir: "/library", SyncDirName: "out"}, &bytes.Buffer{})
	assert.Equal(t, filepath.Join("/library", "out"), e.SyncDir())
}

func TestCopyFilePreservesMetadata(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 fake"), 0o640))
	require.NoError(t, os.Chmod(src, 0o640))
	mtime := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dst := filepath.Join(dir, "dst.pdf")
	require.NoError(t, CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime), "mtime %v, want %v", info.ModTime(), mtime)
	assert.Equal(t, "%PDF-1.4 fake", readFile(t, dst))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "gone.pdf"), filepath.Join(dir, "dst.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(dir, "dst.pdf"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, name := range listDir(t, dir) {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		out[name] = readFile(t, path) + "|" + info.Mode().String() + "|" + info.ModTime().UTC().String()
	}
	return out
}
