// Package archive implements the driven.Archiver port using the
// standard library zip writer.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fabworks/kifab/internal/core/ports/driven"
)

// Ensure Zipper implements the interface.
var _ driven.Archiver = (*Zipper)(nil)

// Zipper packages directory trees into deflate-compressed zip archives.
type Zipper struct{}

// NewZipper creates a new zip archiver.
func NewZipper() *Zipper {
	return &Zipper{}
}

// ZipDir writes a zip archive of src's contents to dest.
// Entry names are relative to src with forward slashes.
func (z *Zipper) ZipDir(src, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// The archive itself may land inside src; never self-include.
		if samePath(path, dest) {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("archive %s: %w", src, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalise archive: %w", err)
	}
	return out.Close()
}

// samePath compares two paths after cleaning.
func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
