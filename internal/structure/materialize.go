package structure

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Materialize creates the hierarchy under baseDir as local directories and
// returns how many were newly created. Existing directories are reused.
//
// Folder display names carry non-ASCII glyphs, and macOS volumes report
// such names in NFD form. Existing entries therefore compare
// NFC-normalized against the declared name, and a match reuses the entry's
// on-disk spelling instead of creating a sibling that differs only in
// normalization.
func Materialize(root *Node, baseDir string) (int, error) {
	created := 0
	var walk func(n *Node, parent string) error
	walk = func(n *Node, parent string) error {
		name, existed, err := existingName(parent, n.Name)
		if err != nil {
			return err
		}
		target := filepath.Join(parent, name)
		if !existed {
			if err := os.Mkdir(target, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			created++
		}
		for _, child := range n.Children {
			if err := walk(child, target); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, baseDir); err != nil {
		return created, err
	}
	return created, nil
}

// existingName looks for an entry of parent matching name under NFC
// normalization and returns the on-disk spelling when found.
func existingName(parent, name string) (string, bool, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false, fmt.Errorf("read directory %s: %w", parent, err)
	}
	want := norm.NFC.String(name)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if norm.NFC.String(entry.Name()) == want {
			return entry.Name(), true, nil
		}
	}
	return name, false, nil
}
