// Package files reads and writes the client's text resources under the
// configured root directory.
package files

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"loc-editor/internal/logger"
)

const component = "FileBridge"

// Document is a text file opened in the notepad window.
type Document struct {
	Path string `json:"path"` // absolute
	Data string `json:"data"`
}

// NewFile describes a file created from the add window.
type NewFile struct {
	Path     string `json:"path"`     // directory relative to the root
	FileName string `json:"fileName"` // without extension
	Text     string `json:"text"`
}

type Bridge struct {
	logger logger.Logger
}

func NewBridge(log logger.Logger) *Bridge {
	return &Bridge{logger: log}
}

// Resolve joins rel under root and rejects results outside root.
func Resolve(root, rel string) (string, error) {
	if root == "" {
		return "", ErrNoRoot
	}

	root = filepath.Clean(root)
	full := filepath.Join(root, filepath.FromSlash(rel))

	r, err := filepath.Rel(root, full)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", &Error{Op: "resolve", Path: rel, Err: ErrOutsideRoot}
	}

	return full, nil
}

// Title is the notepad window title for a document at p.
func Title(root, p string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(p), filepath.ToSlash(filepath.Clean(root)))
	return `Notepad - "` + rel + `"`
}

// Load reads the file at rel under root.
func (b *Bridge) Load(root, rel string) (Document, error) {
	full, err := Resolve(root, rel)
	if err != nil {
		return Document{}, err
	}

	data, err := ReadText(full)
	if err != nil {
		return Document{}, err
	}

	b.logger.Debug(component, "file loaded", map[string]interface{}{
		"path":  full,
		"chars": len([]rune(data)),
	})

	return Document{Path: full, Data: data}, nil
}

// Save writes doc back to its absolute path.
func (b *Bridge) Save(doc Document) error {
	if err := WriteText(doc.Path, doc.Data); err != nil {
		return err
	}

	b.logger.Info(component, "file saved", map[string]interface{}{
		"path": doc.Path,
	})
	return nil
}

// Create makes root/nf.Path if needed and writes nf.FileName.txt inside it.
// It returns the new file's path relative to root, slash separated.
func (b *Bridge) Create(root string, nf NewFile) (string, error) {
	if nf.FileName == "" || strings.ContainsAny(nf.FileName, `/\`) {
		return "", &Error{Op: "create", Path: nf.FileName, Err: ErrBadFileName}
	}

	dir, err := Resolve(root, nf.Path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &Error{Op: "mkdir", Path: dir, Err: err}
	}

	name := nf.FileName + ".txt"
	if err := WriteText(filepath.Join(dir, name), nf.Text); err != nil {
		return "", err
	}

	rel := path.Join(filepath.ToSlash(nf.Path), name)
	b.logger.Info(component, "file created", map[string]interface{}{
		"root": root,
		"file": rel,
	})

	return rel, nil
}

// List returns every .txt file under root, relative and slash separated,
// in lexical order.
func (b *Bridge) List(root string) ([]string, error) {
	if root == "" {
		return nil, ErrNoRoot
	}

	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".txt") {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, &Error{Op: "list", Path: root, Err: err}
	}

	sort.Strings(out)
	return out, nil
}
