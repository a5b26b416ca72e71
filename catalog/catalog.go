// Package catalog enumerates the card images a reading can be drawn from.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// imageExts is the set of extensions eligible for a draw.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// backNames are stems of card-back images that must never be drawn.
var backNames = map[string]bool{
	"back":      true,
	"backs":     true,
	"cardback":  true,
	"cardbacks": true,
	"shirt":     true,
	"рубашка":   true,
}

// Item is a single drawable card image.
type Item struct {
	Path string
	Stem string
}

// Catalog lists card images under a directory. It keeps no index: every call
// to List reads the directory again.
type Catalog struct {
	dir string
}

// New creates a catalog rooted at dir.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the configured root directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Exists reports whether the root directory is present.
func (c *Catalog) Exists() bool {
	info, err := os.Stat(c.dir)
	return err == nil && info.IsDir()
}

// List returns eligible items sorted by path. A missing directory yields an
// empty list and no error.
func (c *Catalog) List() ([]Item, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cards dir: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if !isFile(filepath.Join(c.dir, e.Name()), e) {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if !imageExts[strings.ToLower(ext)] {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		if isBack(stem) {
			continue
		}
		items = append(items, Item{
			Path: filepath.Join(c.dir, name),
			Stem: stem,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	return items, nil
}

// isFile reports whether the entry is a regular file, following symlinks.
// Dangling links are skipped.
func isFile(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Casers are stateful, so one is built per call.
func isBack(stem string) bool {
	return backNames[cases.Fold().String(strings.TrimSpace(stem))]
}
