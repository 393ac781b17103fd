// Package structure generates the complete declared directory hierarchy
// from a catalog snapshot: every pack, category, model folder, and
// color-pack option the configuration names, independent of any particular
// filename.
package structure

import (
	"strings"

	"github.com/packpath/packpath/pkg/catalog"
)

// Folder-table keys the generator recognizes as pack categories.
const (
	keyVisualKey  = "KEY_VISUAL"
	techShotsKey  = "TECH_SHOTS"
	supportingKey = "SUPPORTING"
)

// colorPackFolder is the fixed branch name holding color-pack options.
const colorPackFolder = "Color Pack"

// psdFolder is the working-files child under each key-visual model folder.
const psdFolder = "PSD"

// Node is one directory in the generated hierarchy.
type Node struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children []*Node `json:"children,omitempty"`
}

// dir builds a directory node.
func dir(name string, children ...*Node) *Node {
	return &Node{Name: name, Type: "directory", Children: children}
}

// Generate builds the full declared hierarchy rooted at the catalog's root
// folder. Pure computation over the snapshot; the snapshot is not touched.
func Generate(snap *catalog.Snapshot) *Node {
	root := dir(snap.RootFolder)
	for _, pack := range snap.Packs {
		root.Children = append(root.Children, packNode(snap, pack))
	}
	return root
}

// packNode builds the subtree for a single pack: key-visual models (each
// with a PSD working folder), the color-pack branch when the pack has one,
// and tech-shot / supporting model folders unless the pack is
// color-pack-only.
func packNode(snap *catalog.Snapshot, pack catalog.Pack) *Node {
	node := dir(pack.Folder)
	ps := snap.Structure[pack.ID]

	if kvName, ok := snap.FolderName(keyVisualKey); ok {
		kv := dir(kvName)
		for _, code := range ps.KeyVisual {
			if m, ok := snap.ModelByCode(code); ok {
				kv.Children = append(kv.Children, dir(m.Folder, dir(psdFolder)))
			}
		}
		if pack.HasColorPack {
			cp := dir(colorPackFolder)
			for _, opt := range snap.ColorPacks[pack.ID].Options {
				cp.Children = append(cp.Children, dir(opt.Folder))
			}
			kv.Children = append(kv.Children, cp)
		}
		node.Children = append(node.Children, kv)
	}

	if pack.ColorPackOnly {
		return node
	}

	if techName, ok := snap.FolderName(techShotsKey); ok {
		tech := dir(techName)
		for _, code := range ps.TechShots {
			if m, ok := snap.ModelByCode(code); ok {
				tech.Children = append(tech.Children, dir(m.Folder))
			}
		}
		node.Children = append(node.Children, tech)
	}

	if supName, ok := snap.FolderName(supportingKey); ok {
		sup := dir(supName)
		for _, code := range ps.Supporting {
			if m, ok := snap.ModelByCode(code); ok {
				sup.Children = append(sup.Children, dir(m.Folder))
			}
		}
		node.Children = append(node.Children, sup)
	}

	return node
}

// FlatPaths returns every directory path in the hierarchy as a flat list,
// relative to (and excluding) the root folder.
func FlatPaths(snap *catalog.Snapshot) []string {
	var paths []string
	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		path := n.Name
		if prefix != "" {
			path = prefix + "/" + n.Name
		}
		paths = append(paths, path)
		for _, child := range n.Children {
			walk(child, path)
		}
	}
	for _, child := range Generate(snap).Children {
		walk(child, "")
	}
	return paths
}

// Render draws the hierarchy with branch connectors, the root unindented.
func Render(root *Node) string {
	var b strings.Builder
	b.WriteString(root.Name)
	renderChildren(&b, root, "")
	return b.String()
}

func renderChildren(b *strings.Builder, n *Node, prefix string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(child.Name)
		renderChildren(b, child, childPrefix)
	}
}
