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
// Terminal backend: ANSI-styled soft-wrapped output
//
//

package blackfriday

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultMaxCol = 80

// Sty is the accumulated set of SGR attributes for a rendering
// position, per spec.md §4.5. It wraps lipgloss.Style rather than
// hand-building "ESC[...]m" sequences: Render produces a
// self-contained, already-reset string, which satisfies §8 invariant 4
// (every ESC sequence closed by a matching ESC[0m no later than
// end-of-line) for free.
type Sty struct {
	Italic, Strike, Bold, Under bool
	Color, BgColor              lipgloss.Color
}

func (s Sty) merge(child Sty) Sty {
	out := s
	out.Italic = out.Italic || child.Italic
	out.Strike = out.Strike || child.Strike
	out.Bold = out.Bold || child.Bold
	out.Under = out.Under || child.Under
	if child.Color != "" {
		out.Color = child.Color
	}
	if child.BgColor != "" {
		out.BgColor = child.BgColor
	}
	return out
}

func (s Sty) empty() bool {
	return s == Sty{}
}

func (s Sty) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Strike {
		st = st.Strikethrough(true)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Under {
		st = st.Underline(true)
	}
	if s.Color != "" {
		st = st.Foreground(s.Color)
	}
	if s.BgColor != "" {
		st = st.Background(s.BgColor)
	}
	return st
}

// Render applies s to text, returning an ANSI sequence pre-closed by a
// trailing reset, or text unchanged if s carries no attributes.
func (s Sty) Render(text string) string {
	if s.empty() || text == "" {
		return text
	}
	return s.lipgloss().Render(text)
}

var (
	styH1        = Sty{Bold: true, Under: true}
	styHN        = Sty{Bold: true}
	styEmphasis  = Sty{Italic: true}
	styStrong    = Sty{Bold: true}
	styStrike    = Sty{Strike: true}
	styHighlight = Sty{BgColor: lipgloss.Color("3")}
	styCode      = Sty{Color: lipgloss.Color("6")}
	styLinkAlt   = Sty{Color: lipgloss.Color("4")}
	styLinkURL   = Sty{Color: lipgloss.Color("2"), Under: true}
	styInsert    = Sty{Color: lipgloss.Color("2")}
	styDelete    = Sty{Color: lipgloss.Color("1"), Strike: true}
)

// nodeSty returns the style delta node type t contributes to style
// accumulation. Most node types contribute nothing (empty Sty); the
// walk up the ancestor chain merges every non-empty delta additively.
func nodeSty(n *Node) Sty {
	switch n.Type {
	case NodeDoubleEmphasis:
		return styStrong
	case NodeTripleEmphasis:
		return styStrong.merge(styEmphasis)
	case NodeEmphasis:
		return styEmphasis
	case NodeStrikethrough:
		return styStrike
	case NodeHighlight:
		return styHighlight
	case NodeCodeSpan, NodeBlockCode:
		return styCode
	case NodeHeader:
		if n.Level <= 1 {
			return styH1
		}
		return styHN
	case NodeLink:
		return styLinkAlt
	}
	switch n.Change {
	case ChangeInsert:
		return styInsert
	case ChangeDelete:
		return styDelete
	}
	return Sty{}
}

// accumulatedSty walks n's ancestor chain, root to leaf, merging each
// ancestor's style delta, per spec.md §4.5 ("recompute style at every
// word/line boundary by walking ancestors").
func accumulatedSty(n *Node) Sty {
	var chain []*Node
	for a := n; a != nil; a = a.Parent {
		chain = append(chain, a)
	}
	var sty Sty
	for i := len(chain) - 1; i >= 0; i-- {
		sty = sty.merge(nodeSty(chain[i]))
	}
	return sty
}

// termFrame is one entry of the node stack (spec.md §3's
// stack[0..stackpos]): an ancestor currently on the descent path, and
// how many times its line-prefix has already been printed.
type termFrame struct {
	node    *Node
	printed int
}

// TermRenderer renders a Node tree to ANSI-styled, word-wrapped
// terminal output.
type TermRenderer struct {
	flags     TermFlags
	maxcol    int
	hmargin   int
	vmargin   int
	lastBlank int
	col       int
	stack     []termFrame
	noWrap    bool // disabled during table column-width measurement
}

// TermOptions configures NewTermRenderer, mirroring spec.md §6's
// opts.cols/opts.hmargin/opts.vmargin.
type TermOptions struct {
	Flags   TermFlags
	Cols    int
	HMargin int
	VMargin int
}

// NewTermRenderer allocates a terminal renderer state.
func NewTermRenderer(opts TermOptions) *TermRenderer {
	cols := opts.Cols
	if cols <= 0 {
		cols = defaultMaxCol
	}
	return &TermRenderer{
		flags:     opts.Flags,
		maxcol:    cols,
		hmargin:   opts.HMargin,
		vmargin:   opts.VMargin,
		lastBlank: blankStart,
	}
}

// Reset clears per-document state.
func (t *TermRenderer) Reset() {
	t.lastBlank = blankStart
	t.col = 0
	t.stack = nil
}

// Render walks root and writes ANSI terminal output into out.
func (t *TermRenderer) Render(out *Buf, meta *MetaQueue, root *Node) error {
	if meta == nil {
		meta = NewMetaQueue()
	}
	if root == nil {
		return nil
	}
	if t.flags&TermStandalone != 0 {
		for i := 0; i < t.vmargin; i++ {
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
	}
	return t.renderNode(out, meta, root)
}

func (t *TermRenderer) vspace(out *Buf, n int) error {
	if t.lastBlank == blankStart {
		t.lastBlank = 0
		return nil
	}
	for t.lastBlank < n {
		if err := out.Putc('\n'); err != nil {
			return err
		}
		t.lastBlank++
		t.col = 0
	}
	return nil
}

func (t *TermRenderer) nodePrefix(n *Node) (constant bool, first, cont string) {
	switch n.Type {
	case NodeRoot:
		m := strings.Repeat(" ", t.hmargin)
		return true, m, m
	case NodeBlockQuote:
		return true, "  | ", "  | "
	case NodeDefinitionData:
		return false, "  : ", "    "
	case NodeFootnoteDef:
		return false, padLeft(strconv.Itoa(n.FootnoteNum), 2) + ". ", "    "
	case NodeBlockCode, NodeBlockHTML:
		return true, "      ", "      "
	case NodeListItem:
		if n.ItemFlags&ListItemOrdered != 0 {
			return false, padLeft(strconv.Itoa(n.ItemNum), 2) + ". ", "    "
		}
		return false, "  - ", "    "
	case NodeHeader:
		m := strings.Repeat("#", clampInt(n.Level, 1, 6)) + " "
		return true, m, m
	default:
		return true, "", ""
	}
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

// pushFrame enters n's prefix scope; popFrame must be called with the
// same n once its content (including descendants) has been rendered.
func (t *TermRenderer) pushFrame(n *Node) {
	t.stack = append(t.stack, termFrame{node: n})
}

func (t *TermRenderer) popFrame() {
	if len(t.stack) > 0 {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// startLine emits every ancestor's prefix once, using the first-line
// marker if this is that ancestor's first emitted line, else the
// blank continuation form. It is called exactly when col == 0 and new
// text is about to be written.
func (t *TermRenderer) startLine(out *Buf) error {
	for i := range t.stack {
		f := &t.stack[i]
		constant, first, cont := t.nodePrefix(f.node)
		var s string
		if constant || f.printed == 0 {
			s = first
		} else {
			s = cont
		}
		f.printed++
		if s == "" {
			continue
		}
		if err := out.PutString(s); err != nil {
			return err
		}
		t.col += mbswidth([]byte(s))
	}
	return nil
}

// emitWord writes one whitespace-delimited word, wrapping to a new
// line first if it would overflow maxcol and a preceding word already
// started the line (spec.md §4.5's line/word engine).
func (t *TermRenderer) emitWord(out *Buf, word string, sty Sty) error {
	w := mbswidth([]byte(word))
	if t.col > 0 && !t.noWrap && t.col+1+w > t.maxcol {
		if err := out.Putc('\n'); err != nil {
			return err
		}
		t.col = 0
		t.lastBlank = 1
	}
	if t.col == 0 {
		if err := t.startLine(out); err != nil {
			return err
		}
	} else {
		if err := out.Putc(' '); err != nil {
			return err
		}
		t.col++
	}
	if err := out.PutString(sty.Render(word)); err != nil {
		return err
	}
	t.col += w
	t.lastBlank = 0
	return nil
}

func (t *TermRenderer) emitText(out *Buf, n *Node, text string) error {
	sty := accumulatedSty(n)
	for _, word := range strings.Fields(text) {
		if err := t.emitWord(out, word, sty); err != nil {
			return err
		}
	}
	return nil
}

// emitVerbatim bypasses wrapping entirely: splits on literal newlines
// and writes each as its own prefixed line, for blockcode/blockhtml
// content per spec.md §4.5.
func (t *TermRenderer) emitVerbatim(out *Buf, n *Node, text string) error {
	sty := accumulatedSty(n)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, line := range lines {
		if t.col != 0 {
			if err := out.Putc('\n'); err != nil {
				return err
			}
			t.col = 0
		}
		if err := t.startLine(out); err != nil {
			return err
		}
		if err := out.PutString(sty.Render(line)); err != nil {
			return err
		}
		t.col += mbswidth([]byte(line))
		if err := out.Putc('\n'); err != nil {
			return err
		}
		t.col = 0
	}
	t.lastBlank = 0
	return nil
}

func (t *TermRenderer) endLine(out *Buf) error {
	if t.col == 0 {
		return nil
	}
	if err := out.Putc('\n'); err != nil {
		return err
	}
	t.col = 0
	t.lastBlank = 1
	return nil
}

func (t *TermRenderer) renderChildren(out *Buf, meta *MetaQueue, n *Node) error {
	for _, c := range n.Children {
		if err := t.renderNode(out, meta, c); err != nil {
			return err
		}
	}
	return nil
}

func (t *TermRenderer) renderNode(out *Buf, meta *MetaQueue, n *Node) error {
	switch n.Type {
	case NodeRoot:
		t.pushFrame(n)
		err := t.renderChildren(out, meta, n)
		t.popFrame()
		if err != nil {
			return err
		}
		if err := t.endLine(out); err != nil {
			return err
		}
		return t.vspace(out, 1)

	case NodeDocHeader, NodeDocFooter:
		return nil

	case NodeMeta:
		if n.Change != ChangeDelete {
			meta.Push(n.MetaKey, plainText(n))
		}
		return t.vspace(out, 1)

	case NodeHeader, NodeBlockQuote, NodeDefinition, NodeParagraph,
		NodeTableHeader, NodeTableBody, NodeFootnotesBlock, NodeFootnoteDef:
		if err := t.vspace(out, 2); err != nil {
			return err
		}
		if n.Type == NodeFootnoteDef {
			return t.renderFootnoteDef(out, meta, n)
		}
		t.pushFrame(n)
		err := t.renderChildren(out, meta, n)
		t.popFrame()
		if err != nil {
			return err
		}
		return t.vspace(out, 2)

	case NodeDefinitionTitle, NodeHRule, NodeMath:
		if err := t.vspace(out, 1); err != nil {
			return err
		}
		if n.Type == NodeDefinitionTitle {
			if err := t.renderChildren(out, meta, n); err != nil {
				return err
			}
		} else if n.Type == NodeHRule {
			if err := t.emitText(out, n, strings.Repeat("-", 3)); err != nil {
				return err
			}
		} else {
			if err := t.emitText(out, n, n.Literal); err != nil {
				return err
			}
		}
		return t.vspace(out, 1)

	case NodeList:
		t.pushFrame(n)
		err := t.renderChildren(out, meta, n)
		t.popFrame()
		return err

	case NodeListItem, NodeTableRow:
		if err := t.vspace(out, 1); err != nil {
			return err
		}
		t.pushFrame(n)
		err := t.renderChildren(out, meta, n)
		t.popFrame()
		if err != nil {
			return err
		}
		return t.endLine(out)

	case NodeDefinitionData:
		t.pushFrame(n)
		err := t.renderChildren(out, meta, n)
		t.popFrame()
		return err

	case NodeBlockCode:
		if err := t.vspace(out, 2); err != nil {
			return err
		}
		t.pushFrame(n)
		err := t.emitVerbatim(out, n, n.Literal)
		t.popFrame()
		if err != nil {
			return err
		}
		return t.vspace(out, 2)

	case NodeBlockHTML:
		if err := t.vspace(out, 2); err != nil {
			return err
		}
		t.pushFrame(n)
		err := t.emitVerbatim(out, n, n.Literal)
		t.popFrame()
		if err != nil {
			return err
		}
		return t.vspace(out, 2)

	case NodeTableBlock:
		return t.renderTable(out, meta, n)

	case NodeTableCell:
		return t.renderChildren(out, meta, n)

	case NodeFootnoteRef:
		return t.emitText(out, n, "["+strconv.Itoa(n.FootnoteNum)+"]")

	case NodeAutolink:
		return t.renderAutolink(out, n)

	case NodeImage:
		return t.renderImage(out, n)

	case NodeLink:
		return t.renderLink(out, meta, n)

	case NodeCodeSpan:
		return t.emitText(out, n, n.Literal)

	case NodeLineBreak:
		return t.endLine(out)

	case NodeEntity:
		name := strings.Trim(n.Literal, "&;")
		if cp := entityFindISO(name); cp != 0 {
			b := NewBuf()
			_ = emitUTF8(b, cp)
			return t.emitText(out, n, b.String())
		}
		return t.emitText(out, n, n.Literal)

	case NodeRawHTML:
		return nil

	case NodeNormalText:
		return t.emitText(out, n, n.Literal)

	default:
		return t.renderChildren(out, meta, n)
	}
}

func (t *TermRenderer) renderFootnoteDef(out *Buf, meta *MetaQueue, n *Node) error {
	t.pushFrame(n)
	err := t.renderChildren(out, meta, n)
	t.popFrame()
	if err != nil {
		return err
	}
	return t.endLine(out)
}

func (t *TermRenderer) renderAutolink(out *Buf, n *Node) error {
	label := strings.TrimPrefix(n.Link, "mailto:")
	if err := t.emitText(out, n, label); err != nil {
		return err
	}
	return t.renderLinkTarget(out, n.Link)
}

func (t *TermRenderer) renderImage(out *Buf, n *Node) error {
	if t.flags&TermNoLink != 0 {
		return t.emitText(out, n, "[Image]")
	}
	return t.emitText(out, n, "[Image: "+n.Link+"]")
}

func (t *TermRenderer) renderLink(out *Buf, meta *MetaQueue, n *Node) error {
	if err := t.renderChildren(out, meta, n); err != nil {
		return err
	}
	return t.renderLinkTarget(out, n.Link)
}

func (t *TermRenderer) renderLinkTarget(out *Buf, link string) error {
	if t.flags&TermNoLink != 0 || link == "" {
		return nil
	}
	display := link
	if t.flags&TermShortLink != 0 {
		display = hbufShortlink(link, 40)
	}
	w := mbswidth([]byte(display))
	if t.col > 0 && !t.noWrap && t.col+1+w > t.maxcol {
		if err := out.Putc('\n'); err != nil {
			return err
		}
		t.col = 0
		t.lastBlank = 1
	}
	if t.col == 0 {
		if err := t.startLine(out); err != nil {
			return err
		}
	} else {
		if err := out.Putc(' '); err != nil {
			return err
		}
		t.col++
	}
	if err := out.PutString(styLinkURL.Render(display)); err != nil {
		return err
	}
	t.col += w
	t.lastBlank = 0
	return nil
}

// renderTable lays out a table with the same two-pass measure-then-pad
// algorithm as the Gemini backend (spec.md §4.5), but simulates
// mid-line state during measurement (noWrap=true) so the measuring pass
// never wraps. Its header rule row joins columns with "-+-" and fills
// each column with exactly its width in dashes.
func (t *TermRenderer) renderTable(out *Buf, meta *MetaQueue, n *Node) error {
	if err := t.vspace(out, 2); err != nil {
		return err
	}
	rows, _ := collectTableRows(n)
	if len(rows) == 0 {
		return t.vspace(out, 2)
	}
	ncol := 0
	for _, row := range rows {
		if len(row) > ncol {
			ncol = len(row)
		}
	}
	widths := make([]int, ncol)
	for _, row := range rows {
		for ci, cell := range row {
			measure := &TermRenderer{maxcol: 1 << 30, noWrap: true, lastBlank: 0}
			scratch := NewBuf()
			measure.pushFrame(cell)
			for _, c := range cell.Children {
				_ = measure.renderNode(scratch, meta, c)
			}
			measure.popFrame()
			if w := measure.col; w > widths[ci] {
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
				t.col += 3
			}
			cellBuf := NewBuf()
			sub := &TermRenderer{maxcol: 1 << 30, noWrap: true, lastBlank: 0}
			sub.pushFrame(cell)
			for _, c := range cell.Children {
				if err := sub.renderNode(cellBuf, meta, c); err != nil {
					return err
				}
			}
			sub.popFrame()
			// padCell measures the styled text; widen the target by the
			// columns the SGR sequences add over sub.col's plain width.
			extra := mbswidth(cellBuf.Bytes()) - sub.col
			if err := out.PutString(padCell(cellBuf.String(), widths[ci]+extra, cell.Flags)); err != nil {
				return err
			}
			t.col += widths[ci]
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		t.col = 0
		if ri == 0 && rowIsHeader(rows, ri) {
			for ci, w := range widths {
				if ci > 0 {
					if err := out.PutString("-+-"); err != nil {
						return err
					}
				}
				if err := out.PutString(strings.Repeat("-", w)); err != nil {
					return err
				}
			}
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
	}
	t.lastBlank = 0
	return t.vspace(out, 2)
}
