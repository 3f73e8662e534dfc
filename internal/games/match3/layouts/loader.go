package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader loads layouts from a directory tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the layouts compiled into the binary.
func Builtin() *Loader {
	sub, _ := fs.Sub(builtinFS, "builtin")
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll loads every layout file below the root, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]Layout, error) {
	var out []Layout

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}
		lay, err := l.load(path)
		if err != nil {
			return nil
		}
		out = append(out, lay)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LoadByID returns the layout with the given ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, lay := range all {
		if lay.ID == id {
			return lay, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lay := range all {
		ids[i] = lay.ID
	}
	return ids, nil
}

func (l *Loader) load(path string) (Layout, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lay, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lay.FilePath = filepath.Join(l.root, path)
	if lay.ID == "" {
		lay.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lay, nil
}

// LoadFile loads a single layout file from disk.
func LoadFile(path string) (Layout, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return NewLoader(dir).load(name)
}

// Resolve loads a layout by file path, or by ID from the built-in set when
// ref does not name an existing file.
func Resolve(ref string) (Layout, error) {
	if _, err := os.Stat(ref); err == nil {
		return LoadFile(ref)
	}
	return Builtin().LoadByID(ref)
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
