package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// imageExts are the file extensions indexed as prompt icons.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".svg":  true,
}

// IndexDir walks fsys below root and returns a catalog mapping every icon's
// key to its path within fsys. root is laid out as <namespace>/<name>.<ext>,
// for example "Xbox Series/South.png". Files at other depths are skipped.
// The placeholder is the empty string.
func IndexDir(fsys fs.FS, root string) (*Catalog[string], error) {
	if root == "" {
		root = "."
	}
	cat := NewCatalog("")
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		if !imageExts[ext] {
			return nil
		}
		rel := p
		if root != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		}
		parts := strings.Split(rel, "/")
		if len(parts) != 2 {
			return nil
		}
		name := strings.TrimSuffix(parts[1], path.Ext(parts[1]))
		cat.Register(Key(parts[0], name), p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index assets %s: %w", root, err)
	}
	return cat, nil
}
