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

func renderGemini(t *testing.T, flags GeminiFlags, root *Node) string {
	t.Helper()
	Relink(root)
	r := NewGeminiRenderer(flags)
	out := NewBuf()
	require.NoError(t, r.Render(out, nil, root))
	return out.String()
}

func paraWithLink(link, label string) (*Node, *Node) {
	p := NewNode(NodeParagraph)
	a := NewNode(NodeLink)
	a.Link = link
	a.AppendChild(text(label))
	p.AppendChild(a)
	return p, a
}

func TestGeminiStandaloneLinkParagraphEmitsInlineArrow(t *testing.T) {
	root := NewNode(NodeRoot)
	p, _ := paraWithLink("gemini://x.test/", "X")
	root.AppendChild(p)

	got := renderGemini(t, 0, root)
	require.Equal(t, "=> gemini://x.test/ X\n", got)
}

func TestGeminiInlineLinkDeferredBySectionPolicy(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	p.AppendChild(text("see "))
	a := NewNode(NodeLink)
	a.Link = "gemini://x.test/other"
	a.AppendChild(text("here"))
	p.AppendChild(a)
	p.AppendChild(text(" too"))
	root.AppendChild(p)

	got := renderGemini(t, 0, root)
	require.Contains(t, got, "see here[a] too")
	require.Contains(t, got, "=> gemini://x.test/other here [a]")
}

func TestGeminiLinkEndPolicyDefersToDocumentEnd(t *testing.T) {
	root := NewNode(NodeRoot)
	h := NewNode(NodeHeader)
	h.Level = 1
	h.AppendChild(text("Title"))
	root.AppendChild(h)

	p := NewNode(NodeParagraph)
	p.AppendChild(text("see "))
	a := NewNode(NodeLink)
	a.Link = "gemini://x.test/other"
	a.AppendChild(text("here"))
	p.AppendChild(a)
	root.AppendChild(p)

	p2, _ := paraWithLink("gemini://x.test/standalone", "Standalone")
	root.AppendChild(p2)

	got := renderGemini(t, GeminiLinkEnd, root)
	lastArrow := strings.LastIndex(got, "=> ")
	firstArrow := strings.Index(got, "=> ")
	require.NotEqual(t, -1, firstArrow)
	require.Greater(t, lastArrow, strings.Index(got, "see here"))
	require.Greater(t, firstArrow, strings.Index(got, "Standalone"), "no link line may precede the last body text")
}

func TestGeminiOrdinalTokensBase26AndRoman(t *testing.T) {
	g := NewGeminiRenderer(0)
	require.Equal(t, "a", g.ordinalToken(1))
	require.Equal(t, "z", g.ordinalToken(26))
	require.Equal(t, "aa", g.ordinalToken(27))

	gr := NewGeminiRenderer(GeminiLinkRoman)
	require.Equal(t, "i", gr.ordinalToken(1))
	require.Equal(t, "iv", gr.ordinalToken(4))
	require.Equal(t, "xii", gr.ordinalToken(12))
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= 50; n++ {
		require.Equal(t, n, fromRoman(toRoman(n)), "roman round trip for %d", n)
	}
}

func TestGeminiMetadataPreambleAndBlankLine(t *testing.T) {
	meta := NewMetaQueue()
	meta.Push("title", "Doc")
	meta.Push("author", "Jane")

	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	p.AppendChild(text("body"))
	root.AppendChild(p)
	Relink(root)

	g := NewGeminiRenderer(GeminiMetadata)
	out := NewBuf()
	require.NoError(t, g.Render(out, meta, root))
	got := out.String()
	require.Equal(t, "title: Doc\nauthor: Jane\n\nbody\n", got)
}

func TestGeminiFencedBlockCode(t *testing.T) {
	root := NewNode(NodeRoot)
	bc := NewNode(NodeBlockCode)
	bc.Literal = "x := 1\ny := 2\n"
	root.AppendChild(bc)

	got := renderGemini(t, 0, root)
	require.Equal(t, "```\nx := 1\ny := 2\n```\n", got)
}

func TestGeminiTableLayoutPadsColumns(t *testing.T) {
	root := NewNode(NodeRoot)
	table := NewNode(NodeTableBlock)
	body := NewNode(NodeTableBody)

	mkRow := func(vals ...string) *Node {
		row := NewNode(NodeTableRow)
		for _, v := range vals {
			cell := NewNode(NodeTableCell)
			cell.AppendChild(text(v))
			row.AppendChild(cell)
		}
		return row
	}
	body.AppendChild(mkRow("a", "bb"))
	body.AppendChild(mkRow("ccc", "d"))
	table.AppendChild(body)
	root.AppendChild(table)

	got := renderGemini(t, 0, root)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, len(lines[0]), len(lines[1]), "padded rows should be equal width")
}

func TestGeminiTableHeaderRuleRowMatchesDataRowWidth(t *testing.T) {
	root := NewNode(NodeRoot)
	table := NewNode(NodeTableBlock)

	head := NewNode(NodeTableHeader)
	headRow := NewNode(NodeTableRow)
	for _, v := range []string{"H1", "H2"} {
		cell := NewNode(NodeTableCell)
		cell.Flags |= TableCellHeader
		cell.AppendChild(text(v))
		headRow.AppendChild(cell)
	}
	head.AppendChild(headRow)
	table.AppendChild(head)

	body := NewNode(NodeTableBody)
	bodyRow := NewNode(NodeTableRow)
	for _, v := range []string{"a", "bb"} {
		cell := NewNode(NodeTableCell)
		cell.AppendChild(text(v))
		bodyRow.AppendChild(cell)
	}
	body.AppendChild(bodyRow)
	table.AppendChild(body)

	root.AppendChild(table)

	got := renderGemini(t, 0, root)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "---|---", lines[1])
	require.Equal(t, len(lines[0]), len(lines[1]))
}

func TestGeminiNormalizeClearsLinkInWhenLinkEndAlsoSet(t *testing.T) {
	f := (GeminiLinkIn | GeminiLinkEnd).normalize()
	require.Equal(t, GeminiLinkEnd, f)
}
