package convert

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Discover expands the given paths into the list of recordings to convert.
// File arguments are kept when they carry the .edf extension; directory
// arguments are walked recursively. Anything else is ignored.
func Discover(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		st, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			if filepath.Ext(path) == ".edf" {
				files = append(files, path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == ".edf" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
