package atomicfile

import (
	"os"
	"path/filepath"
	"strings"
)

// HasParent reports whether path names a file inside a resolvable parent directory.
// Empty paths, paths ending in a separator and filesystem roots have no parent.
func HasParent(path string) bool {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return false
	}
	switch filepath.Base(path) {
	case ".", "..", string(filepath.Separator):
		return false
	}
	return filepath.Dir(path) != path
}

// isDirectoryUsable checks that dir exists and is a directory.
// Writability is not tested here, creating the temp file is the real test.
func isDirectoryUsable(dir string) error {
	stat, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !stat.IsDir() {
		return ErrNotDir
	}
	return nil
}

// targetPerm returns the permission bits to give the replacement file:
// those of the existing target, or defaultPerm when there is none
func targetPerm(target string) os.FileMode {
	stat, err := os.Stat(target)
	if err != nil || !stat.Mode().IsRegular() {
		return defaultPerm
	}
	return stat.Mode().Perm()
}

// resolveLink returns the file a symlink at path points to.
// Anything that is not a resolvable symlink is returned unchanged.
func resolveLink(path string) string {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
