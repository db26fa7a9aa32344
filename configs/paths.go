package configs

import (
	"os"
	"path/filepath"
)

// SearchPaths lists candidate config files, most specific first: the working directory, the user
// config directory and /etc, each under the application name.
func SearchPaths(app string, names ...string) (ret []string) {
	if wd, err := os.Getwd(); err == nil {
		for _, name := range names {
			ret = append(ret, filepath.Join(wd, name))
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range names {
			ret = append(ret, filepath.Join(dir, app, name))
		}
	}
	for _, name := range names {
		ret = append(ret, filepath.Join("/etc", app, name))
	}
	return
}

// ExistingFiles filters out paths that are not regular files.
func ExistingFiles(paths []string) (ret []string) {
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}
		ret = append(ret, path)
	}
	return
}
