//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func text(s string) *Node {
	n := NewNode(NodeNormalText)
	n.Literal = s
	return n
}

func renderHTML(t *testing.T, flags HTMLFlags, root *Node) string {
	t.Helper()
	r := NewHTMLRenderer(flags)
	out := NewBuf()
	require.NoError(t, r.Render(out, nil, root))
	return out.String()
}

func TestHTMLParagraphAndEscaping(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	p.AppendChild(text("a < b & c"))
	root.AppendChild(p)

	got := renderHTML(t, 0, root)
	require.Equal(t, "<p>a &lt; b &amp; c</p>\n", got)
}

func TestHTMLHeaderIDsAreDisambiguated(t *testing.T) {
	root := NewNode(NodeRoot)
	for i := 0; i < 2; i++ {
		h := NewNode(NodeHeader)
		h.Level = 1
		h.AppendChild(text("Same Title"))
		root.AppendChild(h)
	}
	got := renderHTML(t, HTMLHeadIDs, root)
	require.Contains(t, got, `id="Same%20Title"`)
	require.Contains(t, got, `id="Same%20Title-2"`)
}

func TestHTMLHeaderLevelClampedAndBaseOffset(t *testing.T) {
	root := NewNode(NodeRoot)
	h := NewNode(NodeHeader)
	h.Level = 10
	h.AppendChild(text("Deep"))
	root.AppendChild(h)

	got := renderHTML(t, 0, root)
	require.Contains(t, got, "<h6>")
	require.Contains(t, got, "</h6>")
}

func TestHTMLChangeTagsWrapInsDel(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	ins := text("added")
	ins.Change = ChangeInsert
	del := text("removed")
	del.Change = ChangeDelete
	p.AppendChild(ins)
	p.AppendChild(del)
	root.AppendChild(p)

	got := renderHTML(t, 0, root)
	require.Contains(t, got, "<ins>added</ins>")
	require.Contains(t, got, "<del>removed</del>")
}

func TestHTMLImageDimsPrecedence(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	img := NewNode(NodeImage)
	img.Link = "pic.png"
	img.Alt = "alt text"
	img.Dims = "100x50"
	p.AppendChild(img)
	root.AppendChild(p)

	got := renderHTML(t, 0, root)
	require.Contains(t, got, `width=100`)
	require.Contains(t, got, `height=50`)

	img.AttrWidth = "10em"
	got = renderHTML(t, 0, root)
	require.Contains(t, got, `style="width:10em;"`)
	require.NotContains(t, got, "width=100")
}

func TestHTMLDocHeaderRcsOverridesWin(t *testing.T) {
	// Metadata is assembled by the caller ahead of the render call (e.g.
	// from document frontmatter), then handed to Render alongside a tree
	// whose NodeDocHeader reads it back out; renderDocHeader itself never
	// discovers metadata by walking descendants.
	meta := NewMetaQueue()
	meta.Push("title", "My Doc")
	meta.Push("author", "Plain Author")
	meta.Push("rcsauthor", "$Author: override $")
	meta.Push("date", "2020-01-01")
	meta.Push("rcsdate", "$Date: 2024/03/05 00:00:00$")

	root := NewNode(NodeRoot)
	root.AppendChild(NewNode(NodeDocHeader))

	r := NewHTMLRenderer(HTMLStandalone)
	out := NewBuf()
	require.NoError(t, r.Render(out, meta, root))
	got := out.String()

	require.Contains(t, got, `content="override"`)
	require.Contains(t, got, `content="2024-03-05"`)
	require.NotContains(t, got, "Plain Author")
}

func TestHTMLFootnoteBacklinkSplicedBeforeFirstParagraphClose(t *testing.T) {
	root := NewNode(NodeRoot)
	block := NewNode(NodeFootnotesBlock)
	def := NewNode(NodeFootnoteDef)
	def.FootnoteNum = 1
	p := NewNode(NodeParagraph)
	p.AppendChild(text("note body"))
	def.AppendChild(p)
	block.AppendChild(def)
	root.AppendChild(block)

	got := renderHTML(t, 0, root)
	closeIdx := strings.Index(got, "</p>")
	backIdx := strings.Index(got, "rev=\"footnote\"")
	require.Greater(t, closeIdx, 0)
	require.Greater(t, backIdx, 0)
	require.Less(t, backIdx, closeIdx)
}

func TestHTMLTableCellAlignment(t *testing.T) {
	root := NewNode(NodeRoot)
	table := NewNode(NodeTableBlock)
	body := NewNode(NodeTableBody)
	row := NewNode(NodeTableRow)
	cell := NewNode(NodeTableCell)
	cell.Flags = TableAlignRight
	cell.AppendChild(text("x"))
	row.AppendChild(cell)
	body.AppendChild(row)
	table.AppendChild(body)
	root.AppendChild(table)

	got := renderHTML(t, 0, root)
	require.Contains(t, got, `align="right"`)
}

func TestHTMLAutolinkStripsMailtoFromLabelOnly(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	a := NewNode(NodeAutolink)
	a.Link = "mailto:a@b.test"
	p.AppendChild(a)
	root.AppendChild(p)

	got := renderHTML(t, 0, root)
	require.Contains(t, got, `href="mailto:a@b.test"`)
	require.Contains(t, got, `>a@b.test<`)
}
