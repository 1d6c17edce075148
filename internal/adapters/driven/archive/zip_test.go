package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestZipper_ZipDir_RelativeEntryNames(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "widget-F_Cu.gbr"), []byte("g1"), 0600))
	require.NoError(t, os.MkdirAll(filepath.Join(src, "np2"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "np2", "widget-NPTH.drl"), []byte("d1"), 0600))
	dest := filepath.Join(t.TempDir(), "gerbers.zip")

	err := NewZipper().ZipDir(src, dest)

	require.NoError(t, err)
	names := archiveNames(t, dest)
	assert.ElementsMatch(t, []string{"widget-F_Cu.gbr", "np2/widget-NPTH.drl"}, names)
}

func TestZipper_ZipDir_SkipsArchiveInsideSource(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.gbr"), []byte("g"), 0600))
	dest := filepath.Join(src, "out.zip")

	err := NewZipper().ZipDir(src, dest)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.gbr"}, archiveNames(t, dest))
}

func TestZipper_ZipDir_EmptyDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "empty.zip")

	err := NewZipper().ZipDir(t.TempDir(), dest)

	require.NoError(t, err)
	assert.Empty(t, archiveNames(t, dest))
}

func TestZipper_ZipDir_MissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")

	err := NewZipper().ZipDir(filepath.Join(t.TempDir(), "missing"), dest)

	assert.Error(t, err)
}
