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
// Gemini (gemtext) backend: deferred link references, ASCII tables
//
//

package blackfriday

import (
	"strconv"
	"strings"
)

const blankStart = -1 // last_blank sentinel: "document not yet started"

// geminiLinkRef is one entry of the link-deferral queue: a weak
// reference to the node that produced it (the tree outlives the
// renderer call, per spec.md §9) plus its assigned ordinal.
type geminiLinkRef struct {
	node    *Node
	ordinal int
}

// GeminiRenderer renders a Node tree to gemtext.
type GeminiRenderer struct {
	flags     GeminiFlags
	pending   []geminiLinkRef
	counter   int
	lastBlank int
	scratch   *Buf
}

// NewGeminiRenderer allocates a Gemini renderer state.
func NewGeminiRenderer(flags GeminiFlags) *GeminiRenderer {
	return &GeminiRenderer{
		flags:     flags.normalize(),
		lastBlank: blankStart,
		scratch:   NewBuf(),
	}
}

// Reset clears per-document state so the renderer can be reused.
func (g *GeminiRenderer) Reset() {
	g.pending = nil
	g.counter = 0
	g.lastBlank = blankStart
	g.scratch.Truncate()
}

// Render walks root and writes gemtext into out.
func (g *GeminiRenderer) Render(out *Buf, meta *MetaQueue, root *Node) error {
	if meta == nil {
		meta = NewMetaQueue()
	}
	if root == nil {
		return nil
	}
	if g.flags&GeminiMetadata != 0 {
		for _, e := range meta.Entries() {
			if err := out.Printf("%s: %s\n", e.Key, e.Value); err != nil {
				return err
			}
		}
		if len(meta.Entries()) > 0 {
			if err := out.Putc('\n'); err != nil {
				return err
			}
			g.lastBlank = 2
		}
	}
	if err := g.renderNode(out, meta, root); err != nil {
		return err
	}
	if g.flags.policy() == linkPolicyEnd {
		return g.flushPending(out)
	}
	return nil
}

// vspace ensures at least n blank lines have been emitted, matching
// term.go's rndr_buf_vspace exactly (the two renderers share the
// last_blank discipline per spec.md §4.5).
func (g *GeminiRenderer) vspace(out *Buf, n int) error {
	if g.lastBlank == blankStart {
		g.lastBlank = 0
		return nil
	}
	for g.lastBlank < n {
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.lastBlank++
	}
	return nil
}

func (g *GeminiRenderer) pushLink(n *Node) int {
	g.counter++
	g.pending = append(g.pending, geminiLinkRef{node: n, ordinal: g.counter})
	return g.counter
}

func (g *GeminiRenderer) flushPending(out *Buf) error {
	for _, ref := range g.pending {
		link, label := linkTargetAndLabel(ref.node)
		if err := out.PutString("=> "); err != nil {
			return err
		}
		if err := out.PutString(link); err != nil {
			return err
		}
		if label != "" {
			if err := out.Putc(' '); err != nil {
				return err
			}
			if err := out.PutString(label); err != nil {
				return err
			}
		}
		if g.flags&GeminiLinkNoRef == 0 {
			if err := out.Printf(" [%s]", g.ordinalToken(ref.ordinal)); err != nil {
				return err
			}
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
	}
	g.pending = nil
	g.lastBlank = 0
	return nil
}

func linkTargetAndLabel(n *Node) (link, label string) {
	switch n.Type {
	case NodeLink:
		return n.Link, plainText(n)
	case NodeImage:
		return n.Link, n.Alt
	case NodeAutolink:
		return n.Link, ""
	default:
		return "", ""
	}
}

// ordinalToken formats a 1-based ordinal as either a base-26 lowercase
// letter sequence (a, b, ..., z, aa, ab, ...) or, when GeminiLinkRoman
// is set, a lowercase Roman numeral.
func (g *GeminiRenderer) ordinalToken(ord int) string {
	if g.flags&GeminiLinkRoman != 0 {
		return toRoman(ord)
	}
	return toBase26(ord)
}

func toBase26(n int) string {
	if n <= 0 {
		return ""
	}
	var digits []byte
	for n > 0 {
		n--
		digits = append([]byte{byte('a' + n%26)}, digits...)
		n /= 26
	}
	return string(digits)
}

var romanTable = []struct {
	val    int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func toRoman(n int) string {
	var sb strings.Builder
	for _, rv := range romanTable {
		for n >= rv.val {
			sb.WriteString(rv.symbol)
			n -= rv.val
		}
	}
	return sb.String()
}

// fromRoman is the inverse of toRoman, used by tests to exercise the
// §8 invariant 9 round-trip property.
func fromRoman(s string) int {
	vals := map[byte]int{'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000}
	total := 0
	prev := 0
	for i := len(s) - 1; i >= 0; i-- {
		v := vals[s[i]]
		if v < prev {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total
}

// isStandaloneLink reports whether n (a link/image/autolink) is the
// sole child of a paragraph that is itself the sole child of its
// parent, per spec.md §4.4's IS_STANDALONE_LINK predicate: the link
// already stands on its own line and needs no deferred reference.
func isStandaloneLink(n *Node) bool {
	p := n.Parent
	if p == nil || p.Type != NodeParagraph || len(p.Children) != 1 {
		return false
	}
	gp := p.Parent
	if gp == nil || len(gp.Children) != 1 {
		return false
	}
	return true
}

func (g *GeminiRenderer) renderNode(out *Buf, meta *MetaQueue, n *Node) error {
	switch n.Type {
	case NodeRoot:
		for _, c := range n.Children {
			if err := g.renderNode(out, meta, c); err != nil {
				return err
			}
		}
		return nil

	case NodeDocHeader, NodeDocFooter, NodeMeta:
		if n.Type == NodeMeta && n.Change != ChangeDelete {
			meta.Push(n.MetaKey, plainText(n))
		}
		return nil

	case NodeHeader:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		if err := out.PutString(strings.Repeat("#", clampInt(n.Level, 1, 3)) + " "); err != nil {
			return err
		}
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.lastBlank = 0
		return g.flushIfSection(out)

	case NodeParagraph:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		if len(n.Children) == 1 && isStandaloneLinkChild(n) {
			link, label := linkTargetAndLabel(n.Children[0])
			if err := out.PutString("=> " + link); err != nil {
				return err
			}
			if label != "" {
				if err := out.PutString(" " + label); err != nil {
					return err
				}
			}
			if err := out.Putc('\n'); err != nil {
				return err
			}
			g.lastBlank = 0
			return nil
		}
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.lastBlank = 0
		return g.flushIfSection(out)

	case NodeBlockQuote:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := out.PutString("> "); err != nil {
				return err
			}
			if err := g.renderNode(out, meta, c); err != nil {
				return err
			}
		}
		return g.flushIfSection(out)

	case NodeBlockCode:
		return g.renderFence(out, n.Literal)

	case NodeBlockHTML:
		return g.renderFence(out, n.Literal)

	case NodeTableBlock:
		return g.renderTable(out, meta, n)

	case NodeHRule:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		return out.PutString("----\n")

	case NodeList:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		return g.renderChildren(out, meta, n)

	case NodeListItem:
		marker := "* "
		if n.ItemFlags&ListItemOrdered != 0 {
			marker = strconv.Itoa(n.ItemNum) + ". "
		}
		if err := out.PutString(marker); err != nil {
			return err
		}
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if !out.EndsWithNewline() {
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
		g.lastBlank = 0
		return nil

	case NodeDefinition:
		return g.renderChildren(out, meta, n)

	case NodeDefinitionTitle:
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if err := out.PutString(":\n"); err != nil {
			return err
		}
		g.lastBlank = 0
		return nil

	case NodeDefinitionData:
		if err := out.PutString("  "); err != nil {
			return err
		}
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.lastBlank = 0
		return nil

	case NodeFootnotesBlock:
		if err := g.vspace(out, 2); err != nil {
			return err
		}
		return g.renderChildren(out, meta, n)

	case NodeFootnoteDef:
		if err := out.Printf("[%d] ", n.FootnoteNum); err != nil {
			return err
		}
		if err := g.renderChildren(out, meta, n); err != nil {
			return err
		}
		if !out.EndsWithNewline() {
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
		g.lastBlank = 0
		return nil

	case NodeFootnoteRef:
		return out.Printf("[%d]", n.FootnoteNum)

	case NodeAutolink, NodeImage, NodeLink:
		return g.renderLinkLike(out, n)

	case NodeCodeSpan:
		return g.putText(out, []byte("`"+n.Literal+"`"))

	case NodeLineBreak:
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.lastBlank = 0
		return nil

	case NodeEntity:
		name := strings.Trim(n.Literal, "&;")
		if cp := entityFindISO(name); cp != 0 {
			return emitUTF8(out, cp)
		}
		return g.putText(out, []byte(n.Literal))

	case NodeRawHTML:
		return nil

	case NodeMath:
		return g.putText(out, []byte(n.Literal))

	case NodeNormalText:
		return g.putText(out, []byte(n.Literal))

	default:
		return g.renderChildren(out, meta, n)
	}
}

func isStandaloneLinkChild(p *Node) bool {
	c := p.Children[0]
	switch c.Type {
	case NodeLink, NodeImage, NodeAutolink:
		return isStandaloneLink(c)
	default:
		return false
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *GeminiRenderer) flushIfSection(out *Buf) error {
	if g.flags.policy() == linkPolicySection && len(g.pending) > 0 {
		return g.flushPending(out)
	}
	return nil
}

func (g *GeminiRenderer) renderChildren(out *Buf, meta *MetaQueue, n *Node) error {
	for _, c := range n.Children {
		if err := g.renderNode(out, meta, c); err != nil {
			return err
		}
	}
	return nil
}

// renderFence brackets literal text in ``` fences, written byte-exact
// with no escaping and no wrap, per spec.md §4.4.
func (g *GeminiRenderer) renderFence(out *Buf, text string) error {
	if err := g.vspace(out, 2); err != nil {
		return err
	}
	if err := out.PutString("```\n"); err != nil {
		return err
	}
	if err := out.PutString(text); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		if err := out.Putc('\n'); err != nil {
			return err
		}
	}
	if err := out.PutString("```\n"); err != nil {
		return err
	}
	g.lastBlank = 0
	return nil
}

// putText writes text with gemtext's non-verbatim escaping: newlines
// become a space (two spaces if the preceding byte was '.'), control
// characters are dropped, and leading whitespace is suppressed if the
// previous emission already ended in whitespace (avoids stuttering
// around a just-flushed link line).
func (g *GeminiRenderer) putText(out *Buf, text []byte) error {
	for _, c := range text {
		switch {
		case c == '\n':
			if lastByteIsSpace(out) {
				continue
			}
			if lastByteIsPeriod(out) {
				if err := out.PutString("  "); err != nil {
					return err
				}
			} else {
				if err := out.Putc(' '); err != nil {
					return err
				}
			}
		case c < 0x20 && c != '\t':
			continue
		case c == ' ' || c == '\t':
			if lastByteIsSpace(out) {
				continue
			}
			if err := out.Putc(' '); err != nil {
				return err
			}
		default:
			if err := out.Putc(c); err != nil {
				return err
			}
		}
	}
	if len(text) > 0 {
		g.lastBlank = 0
	}
	return nil
}

func lastByteIsSpace(out *Buf) bool {
	if out.Len() == 0 {
		return true
	}
	c := out.Bytes()[out.Len()-1]
	return c == ' ' || c == '\t' || c == '\n'
}

func lastByteIsPeriod(out *Buf) bool {
	if out.Len() == 0 {
		return false
	}
	return out.Bytes()[out.Len()-1] == '.'
}

// renderTable implements spec.md §4.4's two-pass table layout: a
// measurement pass (with GeminiLinkIn cleared, so cells don't emit
// inline "=>" lines, and any links discovered are discarded) followed
// by a real pass that pads each cell to its column's max width and
// joins cells with " | ".
func (g *GeminiRenderer) renderTable(out *Buf, meta *MetaQueue, n *Node) error {
	if err := g.vspace(out, 2); err != nil {
		return err
	}
	rows, columns := collectTableRows(n)
	if len(rows) == 0 {
		g.lastBlank = 0
		return nil
	}
	widths := make([]int, len(columns))
	measurer := &GeminiRenderer{flags: g.flags &^ GeminiLinkIn, lastBlank: 0, scratch: NewBuf()}
	for _, row := range rows {
		for ci, cell := range row {
			scratch := NewBuf()
			for _, c := range cell.Children {
				if err := measurer.renderNode(scratch, meta, c); err != nil {
					return err
				}
			}
			if w := mbswidth(scratch.Bytes()); w > widths[ci] {
				widths[ci] = w
			}
		}
	}

	for ri, row := range rows {
		for ci, cell := range row {
			if ci > 0 {
				if err := out.PutString(" | "); err != nil {
					return err
				}
			}
			cellBuf := NewBuf()
			for _, c := range cell.Children {
				if err := g.renderNode(cellBuf, meta, c); err != nil {
					return err
				}
			}
			if err := out.PutString(padCell(cellBuf.String(), widths[ci], cell.Flags)); err != nil {
				return err
			}
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		if ri == 0 && rowIsHeader(rows, ri) {
			for ci, w := range widths {
				if ci > 0 {
					if err := out.Putc('|'); err != nil {
						return err
					}
				}
				if err := out.PutString(strings.Repeat("-", w+1)); err != nil {
					return err
				}
			}
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
	}
	g.lastBlank = 0
	return g.flushIfSection(out)
}

func rowIsHeader(rows [][]*Node, ri int) bool {
	if ri != 0 || len(rows[ri]) == 0 {
		return false
	}
	return rows[ri][0].Flags&TableCellHeader != 0
}

// collectTableRows flattens a table-block's header/body groups into a
// slice of rows (each a slice of cell nodes) and returns the per-column
// alignment flags taken from the table-block payload.
func collectTableRows(table *Node) (rows [][]*Node, columns []int) {
	columns = table.Columns
	for _, group := range table.Children {
		for _, row := range group.Children {
			var cells []*Node
			for _, cell := range row.Children {
				cells = append(cells, cell)
			}
			rows = append(rows, cells)
		}
	}
	return rows, columns
}

func padCell(s string, width int, align int) string {
	w := mbswidth([]byte(s))
	pad := width - w
	if pad <= 0 {
		return s
	}
	switch align & TableAlignCenter {
	case TableAlignRight:
		return strings.Repeat(" ", pad) + s
	case TableAlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func (g *GeminiRenderer) renderLinkLike(out *Buf, n *Node) error {
	if n.Link == "" && n.Type != NodeImage {
		return nil
	}
	label := plainText(n)
	if n.Type == NodeImage {
		label = n.Alt
	}
	if err := g.putText(out, []byte(label)); err != nil {
		return err
	}
	ord := g.pushLink(n)
	if g.flags&GeminiLinkNoRef == 0 {
		if err := out.Printf("[%s]", g.ordinalToken(ord)); err != nil {
			return err
		}
	}
	if g.flags.policy() == linkPolicyInline {
		link, lbl := linkTargetAndLabel(n)
		if err := out.Putc('\n'); err != nil {
			return err
		}
		if err := out.PutString("=> " + link); err != nil {
			return err
		}
		if lbl != "" {
			if err := out.PutString(" " + lbl); err != nil {
				return err
			}
		}
		if g.flags&GeminiLinkNoRef == 0 {
			if err := out.Printf(" [%s]", g.ordinalToken(ord)); err != nil {
				return err
			}
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		g.pending = g.pending[:len(g.pending)-1]
		g.lastBlank = 0
	}
	return nil
}
