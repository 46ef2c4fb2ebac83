package filesystem

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/modsync/pkg/types"
)

// ListFiles returns the names of the regular files directly inside dir, in
// directory order. Subdirectories are skipped; symlinks are included when
// they point at a regular file.
func ListFiles(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch {
		case entry.Type().IsRegular():
			names = append(names, entry.Name())
		case entry.Type()&fs.ModeSymlink != 0:
			info, err := fsys.Stat(filepath.Join(dir, entry.Name()))
			if err == nil && info.Mode().IsRegular() {
				names = append(names, entry.Name())
			}
		}
	}
	return names, nil
}

// CopyFile copies src to dst byte for byte, creating or truncating dst
// with the permissions of src.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fsys.Create(dst, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
