//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// Shared node tree consumed by all three render backends
//
//

package blackfriday

// NodeType identifies the kind of a Node. The set is closed: renderers
// switch over it, and a type without a case of its own (including an
// unrecognized value) falls through to rendering the node's children.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeBlockCode
	NodeBlockHTML
	NodeBlockQuote
	NodeDefinition
	NodeDefinitionTitle
	NodeDefinitionData
	NodeHeader
	NodeHRule
	NodeList
	NodeListItem
	NodeParagraph
	NodeTableBlock
	NodeTableHeader
	NodeTableBody
	NodeTableRow
	NodeTableCell
	NodeFootnotesBlock
	NodeFootnoteDef
	NodeFootnoteRef
	NodeAutolink
	NodeCodeSpan
	NodeDoubleEmphasis
	NodeTripleEmphasis
	NodeEmphasis
	NodeHighlight
	NodeImage
	NodeLineBreak
	NodeLink
	NodeStrikethrough
	NodeSuperscript
	NodeMath
	NodeRawHTML
	NodeEntity
	NodeNormalText
	NodeDocHeader
	NodeMeta
	NodeDocFooter
)

// ChangeTag marks a node as produced by an (external) diff pass. Renderers
// only ever consume this tag; they never compute it.
type ChangeTag int

const (
	ChangeNone ChangeTag = iota
	ChangeInsert
	ChangeDelete
)

// AutolinkKind distinguishes the two autolink flavors a parser may emit.
type AutolinkKind int

const (
	AutolinkNone AutolinkKind = iota
	AutolinkEmail
	AutolinkURL
)

// List flags. A list is ordered xor unordered, and independently may be
// a definition list and/or "block" mode (its items get wrapped in <p>
// when not already block content).
const (
	ListFlagOrdered = 1 << iota
	ListFlagUnordered
	ListFlagDefinition
	ListFlagBlock
)

// ListItemFlags. A listitem inherits ordered/unordered/def from its list
// plus its own per-item block flag.
const (
	ListItemOrdered = 1 << iota
	ListItemUnordered
	ListItemDefinition
	ListItemBlock
)

// TableCellFlags: alignment bits plus a header marker.
const (
	TableAlignLeft = 1 << iota
	TableAlignRight
	TableAlignCenter = TableAlignLeft | TableAlignRight
	TableCellHeader  = 1 << 2
)

// Node is one element of the shared input tree. Exactly one Node per
// document has Parent == nil (the root). Children are stored in
// insertion order; Next is a convenience sibling link equivalent to
// indexing into Parent.Children.
type Node struct {
	Type     NodeType
	Parent   *Node
	Children []*Node
	Next     *Node
	Change   ChangeTag

	// --- type-specific payload; only the fields relevant to Type are set ---

	Literal string // blockcode/blockhtml/codespan/math/rawhtml/entity/normaltext text

	Lang string // blockcode

	Level int // header level, 1-based

	ListFlags int    // list
	Start     string // list: ordered-list start string, passes through literally

	ItemNum   int // listitem ordinal
	ItemFlags int // listitem

	Columns []int // table-block: per-column TableAlign* flags

	Col   int // table-cell
	Flags int // table-cell: TableAlign*|TableCellHeader

	FootnoteNum int // footnote-def / footnote-ref

	Link  string // autolink/image/link
	Title string // image/link
	Alt   string // image

	Dims        string // image: "WxH" or "W"
	AttrWidth   string // image: explicit width attribute/style value
	AttrHeight  string // image: explicit height attribute/style value

	AutolinkKind AutolinkKind

	BlockMode bool // math: block vs inline

	MetaKey string // meta
}

// NewNode allocates a detached node of the given type.
func NewNode(t NodeType) *Node {
	return &Node{Type: t}
}

// AppendChild links child as the last child of n, wiring the sibling
// chain and parent back-reference. It is the only supported mutator for
// building trees in tests and fixtures; the renderers themselves never
// mutate the tree.
func (n *Node) AppendChild(child *Node) *Node {
	child.Parent = n
	if len(n.Children) > 0 {
		n.Children[len(n.Children)-1].Next = child
	}
	n.Children = append(n.Children, child)
	return child
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// IsBlock reports whether t is one of the block-level node types, as
// opposed to an inline span. The renderers do not call it; each decides
// wrapping and vertical spacing in its own per-type switch.
func (t NodeType) IsBlock() bool {
	switch t {
	case NodeRoot, NodeBlockCode, NodeBlockHTML, NodeBlockQuote,
		NodeDefinition, NodeDefinitionTitle, NodeDefinitionData,
		NodeHeader, NodeHRule, NodeList, NodeListItem, NodeParagraph,
		NodeTableBlock, NodeTableHeader, NodeTableBody, NodeTableRow,
		NodeTableCell, NodeFootnotesBlock, NodeFootnoteDef,
		NodeDocHeader, NodeMeta, NodeDocFooter:
		return true
	default:
		return false
	}
}

// Relink recomputes Parent and Next for n and every descendant from the
// Children slices alone. It exists for trees built by decoding (JSON
// unmarshaling a Node produces Children but leaves Parent/Next zero,
// since that back-reference would make the encoding cyclic); callers
// that build trees by hand should use AppendChild instead, which keeps
// the links correct as it goes.
func Relink(n *Node) {
	if n == nil {
		return
	}
	for i, c := range n.Children {
		c.Parent = n
		if i+1 < len(n.Children) {
			c.Next = n.Children[i+1]
		} else {
			c.Next = nil
		}
		Relink(c)
	}
}

// walk depth-first visits n and every descendant in document order,
// calling visit(node) before descending into its children. It is the
// traversal primitive all three renderers implement by hand (each has
// its own switch over NodeType rather than sharing a single generic
// visitor), matching blackfriday's per-format parseBlock/parseInline
// split; nothing in the package currently calls it.
func walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		walk(c, visit)
	}
}
