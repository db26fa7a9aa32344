package configs

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("myndra", "myndra.cue", ".myndra.cue")
	if len(paths) < 2 {
		t.Fatalf("got %v", paths)
	}
	if filepath.Base(paths[0]) != "myndra.cue" || filepath.Base(paths[1]) != ".myndra.cue" {
		t.Fatalf("got %v", paths)
	}
	last := paths[len(paths)-1]
	if !strings.HasPrefix(last, "/etc/myndra/") {
		t.Fatalf("got %v", last)
	}
}

func TestExistingFiles(t *testing.T) {
	files := ExistingFiles([]string{
		"testdata/project.cue",
		"testdata/missing.cue",
		"testdata",
		"testdata/user.cue",
	})
	if len(files) != 2 || files[0] != "testdata/project.cue" || files[1] != "testdata/user.cue" {
		t.Fatalf("got %v", files)
	}
}
