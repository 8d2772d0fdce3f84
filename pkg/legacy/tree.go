// Package legacy parses the line-oriented, block-structured footprint library
// format used by older board tools. Libraries store many modules in one file;
// nested $BLOCK/$EndBLOCK markers delimit groups (modules, pads, 3-D shapes)
// and each data line carries positional fields in legacy deci-mil units unless
// the file declares millimetres.
package legacy

import "strings"

// Block marker vocabulary of the legacy format.
const (
	ModuleTag       = "$MODULE"
	ModuleEndTag    = "$EndMODULE"
	PadTag          = "$PAD"
	Shape3DTag      = "$SHAPE3D"
	blockEndPrefix  = "$End"
	blockOpenPrefix = "$"

	rootTag = "$LIBRARY"
)

// Aggregation keys for record families. All concrete text tags (T0, T1, T2…)
// are stored in arrival order under TextKey; all drawing tags (DS, DC, DA,
// DP, Dl, and Dr inside pads) under DrawKey. Other tags use their literal
// tag as key.
const (
	TextKey = "T"
	DrawKey = "D"
)

// Node is one element of the block tree built from a legacy library.
type Node struct {
	// Tag is the block marker that opened this node, or a library sentinel
	// for the tree root.
	Tag string

	// Parent is an upward reference used only for ancestor lookups such as
	// the file-scoped units declaration. Ownership runs parent -> children.
	Parent *Node

	// Children are nested blocks in document order. Siblings may repeat the
	// same tag (multiple pads).
	Children []*Node

	// Records maps an aggregation key to the tokenized data lines stored
	// under it, preserving arrival order. The first field of every stored
	// line is the concrete record tag.
	Records map[string][][]string
}

func newNode(tag string, parent *Node) *Node {
	return &Node{
		Tag:     tag,
		Parent:  parent,
		Records: make(map[string][][]string),
	}
}

func (n *Node) addRecord(key string, fields []string) {
	if len(fields) == 0 {
		return
	}
	n.Records[key] = append(n.Records[key], fields)
}

// Record returns the first record stored under key, or nil if none exists.
func (n *Node) Record(key string) []string {
	recs := n.Records[key]
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

// RecordsFor returns all records stored under key in arrival order.
func (n *Node) RecordsFor(key string) [][]string {
	return n.Records[key]
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// aggregationKey maps a concrete record tag to the key it is stored under.
func aggregationKey(tag string) string {
	switch {
	case strings.HasPrefix(tag, "T"):
		return TextKey
	case strings.HasPrefix(tag, "D"):
		return DrawKey
	}
	return tag
}

// TreeBuilder streams record lines into a block tree. It keeps a cursor over
// the current block and hands back each completed module so that at most one
// module subtree is resident at a time.
type TreeBuilder struct {
	root   *Node
	cursor *Node
}

// NewTreeBuilder returns a builder with an empty library root.
func NewTreeBuilder() *TreeBuilder {
	root := newNode(rootTag, nil)
	return &TreeBuilder{root: root, cursor: root}
}

// Root returns the library root node. File-scoped records such as the Units
// declaration live here.
func (b *TreeBuilder) Root() *Node {
	return b.root
}

// Add consumes one raw line. When the line closes a module it returns the
// completed module node and resets the tree for the next module; otherwise it
// returns nil. Malformed nesting is tolerated: a closer at the root is a
// no-op, and a module closer always resets to the root regardless of depth,
// discarding any still-open child blocks.
func (b *TreeBuilder) Add(line string) *Node {
	fields := Fields(line)
	if len(fields) == 0 {
		return nil
	}

	tag := fields[0]
	switch {
	case tag == ModuleEndTag:
		mod := b.moduleNode()
		b.reset()
		return mod

	case strings.HasPrefix(tag, blockEndPrefix):
		if b.cursor.Parent != nil {
			b.cursor = b.cursor.Parent
		}
		return nil

	case strings.HasPrefix(tag, blockOpenPrefix):
		child := newNode(tag, b.cursor)
		b.cursor.Children = append(b.cursor.Children, child)
		// Keep the opening line on the node itself so its declared name
		// can be recovered later.
		child.addRecord(tag, fields)
		b.cursor = child
		return nil
	}

	b.cursor.addRecord(aggregationKey(tag), fields)
	return nil
}

// moduleNode walks from the cursor to the node opened by a module marker.
func (b *TreeBuilder) moduleNode() *Node {
	for n := b.cursor; n != nil; n = n.Parent {
		if n.Tag == ModuleTag {
			return n
		}
	}
	return nil
}

// reset drops the finished module subtree. Root-level records (the library
// header and units declaration) survive for subsequent modules in the file.
func (b *TreeBuilder) reset() {
	b.root.Children = nil
	b.cursor = b.root
}
