package driven

// Archiver packages directory trees into archives.
type Archiver interface {
	// ZipDir writes a zip archive of src's contents to dest.
	// Archive entry names are relative to src.
	ZipDir(src, dest string) error
}
