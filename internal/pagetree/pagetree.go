// Package pagetree lists the page files of a page directory.
package pagetree

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// DefaultExtensions are the page file extensions scanned when none are given
var DefaultExtensions = []string{".vue"}

// Scan walks fs from its root and returns the slash separated paths of every file whose
// extension is in exts, sorted. Hidden files and directories are skipped.
func Scan(fs billy.Filesystem, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	if err := walk(fs, "", exts, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func walk(fs billy.Filesystem, dir string, exts []string, files *[]string) error {
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := fs.ReadDir(readDir)
	if err != nil {
		return fmt.Errorf("read page directory %q: %w", readDir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		rel := path.Join(dir, name)
		if entry.IsDir() {
			if err := walk(fs, rel, exts, files); err != nil {
				return err
			}
			continue
		}
		if hasExtension(name, exts) {
			*files = append(*files, rel)
		}
	}
	return nil
}

func hasExtension(name string, exts []string) bool {
	ext := path.Ext(name)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ParseExtensions reads a list of extensions from a decoded configuration value.
// A missing leading dot is added.
func ParseExtensions(value any) ([]string, error) {
	var items []any
	switch v := value.(type) {
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case []any:
		items = v
	default:
		return nil, fmt.Errorf("option \"extensions\" must be a list of strings, got %T", value)
	}

	exts := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("option \"extensions\" must be a list of non-empty strings")
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		exts = append(exts, s)
	}
	return exts, nil
}
