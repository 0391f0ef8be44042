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
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func renderTerm(t *testing.T, opts TermOptions, root *Node) string {
	t.Helper()
	r := NewTermRenderer(opts)
	out := NewBuf()
	require.NoError(t, r.Render(out, nil, root))
	return out.String()
}

func TestTermPlainParagraphWraps(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	p.AppendChild(text("one two three four five"))
	root.AppendChild(p)

	got := renderTerm(t, TermOptions{Cols: 10}, root)
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 10)
	}
}

func TestTermEveryEscapeSequenceIsClosedOnTheSameLine(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	strong := NewNode(NodeDoubleEmphasis)
	strong.AppendChild(text("bold word"))
	p.AppendChild(strong)
	root.AppendChild(p)

	got := renderTerm(t, TermOptions{}, root)
	for _, line := range strings.Split(got, "\n") {
		closes := strings.Count(line, "\x1b[0m")
		opens := strings.Count(line, "\x1b[") - closes
		require.Equal(t, opens, closes, "line %q must close every escape it opens", line)
	}
}

func TestTermBlockCodeIsVerbatimNotWrapped(t *testing.T) {
	root := NewNode(NodeRoot)
	bc := NewNode(NodeBlockCode)
	bc.Literal = "a very long line that would certainly wrap if treated as prose text\n"
	root.AppendChild(bc)

	got := renderTerm(t, TermOptions{Cols: 10}, root)
	plain := ansiSeq.ReplaceAllString(got, "")
	require.Contains(t, plain, "a very long line that would certainly wrap if treated as prose text")
}

func TestTermListItemMarkers(t *testing.T) {
	root := NewNode(NodeRoot)
	list := NewNode(NodeList)
	list.ListFlags = ListFlagOrdered
	for i := 1; i <= 2; i++ {
		li := NewNode(NodeListItem)
		li.ItemFlags = ListItemOrdered
		li.ItemNum = i
		li.AppendChild(text("item"))
		list.AppendChild(li)
	}
	root.AppendChild(list)

	got := renderTerm(t, TermOptions{}, root)
	plain := ansiSeq.ReplaceAllString(got, "")
	require.Contains(t, plain, "1. item")
	require.Contains(t, plain, "2. item")
}

func TestTermShortLinkElidesLongTarget(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	link := NewNode(NodeLink)
	link.Link = "https://example.test/one/two/three/four/tail.html"
	link.AppendChild(text("label"))
	p.AppendChild(link)
	root.AppendChild(p)

	got := renderTerm(t, TermOptions{Flags: TermShortLink, Cols: 120}, root)
	plain := ansiSeq.ReplaceAllString(got, "")
	require.Contains(t, plain, ".../tail.html")
	require.NotContains(t, plain, "one/two/three/four")
}

func TestTermNoLinkSuppressesTarget(t *testing.T) {
	root := NewNode(NodeRoot)
	p := NewNode(NodeParagraph)
	link := NewNode(NodeLink)
	link.Link = "https://example.test/"
	link.AppendChild(text("label"))
	p.AppendChild(link)
	root.AppendChild(p)

	got := renderTerm(t, TermOptions{Flags: TermNoLink}, root)
	plain := ansiSeq.ReplaceAllString(got, "")
	require.NotContains(t, plain, "example.test")
	require.Contains(t, plain, "label")
}

func TestTermBlockQuotePrefixOnEveryLine(t *testing.T) {
	root := NewNode(NodeRoot)
	bq := NewNode(NodeBlockQuote)
	p := NewNode(NodeParagraph)
	p.AppendChild(text("a quoted line that is long enough to wrap across more than one output line for sure"))
	bq.AppendChild(p)
	root.AppendChild(bq)

	got := renderTerm(t, TermOptions{Cols: 20}, root)
	plain := ansiSeq.ReplaceAllString(got, "")
	for _, line := range strings.Split(strings.TrimRight(plain, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, "  | "), "line %q should carry the blockquote prefix", line)
	}
}
