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
// HTML backend: tree walk producing well-formed HTML
//
//

package blackfriday

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s{2,}`)

// blockTagsAtStart mirrors blackfriday's blockTags table (markdown.go
// lines 75-98): the set of tag names that, when they open a listitem's
// rendered content, mean the content is already block-level and
// shouldn't be re-wrapped in <p>.
var blockTagsAtStart = []string{
	"<ul", "<ol", "<dl", "<div", "<table", "<blockquote", "<pre>", "<h", "<p>",
}

// HTMLRenderer renders a Node tree to HTML.
type HTMLRenderer struct {
	flags           HTMLFlags
	baseHeaderLevel int
	usedHeaderIDs   map[string]int
}

// NewHTMLRenderer allocates an HTML renderer state.
func NewHTMLRenderer(flags HTMLFlags) *HTMLRenderer {
	return &HTMLRenderer{
		flags:           flags,
		baseHeaderLevel: 1,
		usedHeaderIDs:   make(map[string]int),
	}
}

// Reset clears per-document state (used header ids, base level) so the
// same renderer can be reused across documents per spec.md §3's
// lifecycle note.
func (r *HTMLRenderer) Reset() {
	r.baseHeaderLevel = 1
	r.usedHeaderIDs = make(map[string]int)
}

// Render walks root and writes HTML into out. If meta is nil, an
// ephemeral queue is used internally and discarded.
func (r *HTMLRenderer) Render(out *Buf, meta *MetaQueue, root *Node) error {
	if meta == nil {
		meta = NewMetaQueue()
	}
	if root == nil {
		return nil
	}
	return r.renderNode(out, meta, root)
}

func (r *HTMLRenderer) renderNode(out *Buf, meta *MetaQueue, n *Node) error {
	raw := NewBuf()
	if err := r.renderRaw(raw, meta, n); err != nil {
		return err
	}
	switch n.Change {
	case ChangeInsert:
		if err := out.PutString("<ins>"); err != nil {
			return err
		}
		if err := out.PutOther(raw); err != nil {
			return err
		}
		return out.PutString("</ins>")
	case ChangeDelete:
		if err := out.PutString("<del>"); err != nil {
			return err
		}
		if err := out.PutOther(raw); err != nil {
			return err
		}
		return out.PutString("</del>")
	default:
		return out.PutOther(raw)
	}
}

func (r *HTMLRenderer) renderChildren(meta *MetaQueue, n *Node) (*Buf, error) {
	tmp := NewBuf()
	for _, c := range n.Children {
		if err := r.renderNode(tmp, meta, c); err != nil {
			return nil, err
		}
	}
	return tmp, nil
}

func (r *HTMLRenderer) renderRaw(out *Buf, meta *MetaQueue, n *Node) error {
	switch n.Type {
	case NodeRoot:
		standalone := r.flags&HTMLStandalone != 0
		if standalone {
			if err := out.PutString("<!DOCTYPE html><html>"); err != nil {
				return err
			}
		}
		for _, c := range n.Children {
			if err := r.renderNode(out, meta, c); err != nil {
				return err
			}
		}
		if standalone {
			return out.PutString("</html>")
		}
		return nil

	case NodeDocHeader:
		return r.renderDocHeader(out, meta)

	case NodeDocFooter:
		if r.flags&HTMLStandalone != 0 {
			return out.PutString("</body>")
		}
		return nil

	case NodeMeta:
		return r.renderMeta(meta, n)

	case NodeBlockCode:
		if out.Len() > 0 && !out.EndsWithNewline() {
			if err := out.Putc('\n'); err != nil {
				return err
			}
		}
		if err := out.PutString("<pre><code"); err != nil {
			return err
		}
		if n.Lang != "" {
			if err := out.PutString(` class="language-`); err != nil {
				return err
			}
			if err := hescHref(out, []byte(n.Lang)); err != nil {
				return err
			}
			if err := out.Putc('"'); err != nil {
				return err
			}
		}
		if err := out.Putc('>'); err != nil {
			return err
		}
		if err := hescHTML(out, []byte(n.Literal), r.flags&HTMLOwasp != 0, true, r.flags&HTMLNumEnt != 0); err != nil {
			return err
		}
		return out.PutString("</code></pre>\n")

	case NodeBlockQuote:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<blockquote>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</blockquote>\n")

	case NodeBlockHTML:
		if r.flags&HTMLSkipHTML != 0 {
			return nil
		}
		if r.flags&HTMLEscape != 0 {
			return hescHTML(out, []byte(n.Literal), r.flags&HTMLOwasp != 0, false, r.flags&HTMLNumEnt != 0)
		}
		return out.PutString(n.Literal)

	case NodeHeader:
		return r.renderHeader(out, meta, n)

	case NodeHRule:
		return out.PutString("<hr/>\n")

	case NodeList:
		return r.renderList(out, meta, n)

	case NodeListItem:
		return r.renderListItem(out, meta, n)

	case NodeDefinition:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<dl>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</dl>\n")

	case NodeDefinitionTitle:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<dt>"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</dt>\n")

	case NodeDefinitionData:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<dd>"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</dd>\n")

	case NodeParagraph:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if content.Len() == 0 {
			return nil
		}
		if err := out.PutString("<p>"); err != nil {
			return err
		}
		if r.flags&HTMLHardWrap != 0 {
			if err := out.Put(hardWrapNewlines(content.Bytes())); err != nil {
				return err
			}
		} else {
			if err := out.PutOther(content); err != nil {
				return err
			}
		}
		return out.PutString("</p>\n")

	case NodeTableBlock:
		return r.renderTable(out, meta, n)

	case NodeTableHeader:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<thead>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</thead>\n")

	case NodeTableBody:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<tbody>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</tbody>\n")

	case NodeTableRow:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<tr>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</tr>\n")

	case NodeTableCell:
		return r.renderTableCell(out, meta, n)

	case NodeFootnotesBlock:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString(`<div class="footnotes"><hr/><ol>` + "\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</ol></div>\n")

	case NodeFootnoteDef:
		return r.renderFootnoteDef(out, meta, n)

	case NodeFootnoteRef:
		return out.Printf(`<sup id="fnref%d"><a href="#fn%d" rel="footnote">%d</a></sup>`, n.FootnoteNum, n.FootnoteNum, n.FootnoteNum)

	case NodeAutolink:
		return r.renderAutolink(out, n)

	case NodeCodeSpan:
		if err := out.PutString("<code>"); err != nil {
			return err
		}
		if err := hescHTML(out, []byte(n.Literal), r.flags&HTMLOwasp != 0, false, r.flags&HTMLNumEnt != 0); err != nil {
			return err
		}
		return out.PutString("</code>")

	case NodeDoubleEmphasis:
		return r.wrapInline(out, meta, n, "strong")

	case NodeTripleEmphasis:
		content, err := r.renderChildren(meta, n)
		if err != nil {
			return err
		}
		if err := out.PutString("<strong><em>"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</em></strong>")

	case NodeEmphasis:
		return r.wrapInline(out, meta, n, "em")

	case NodeHighlight:
		return r.wrapInline(out, meta, n, "mark")

	case NodeImage:
		return r.renderImage(out, n)

	case NodeLineBreak:
		return out.PutString("<br/>\n")

	case NodeLink:
		return r.renderLink(out, meta, n)

	case NodeStrikethrough:
		return r.wrapInline(out, meta, n, "del")

	case NodeSuperscript:
		return r.wrapInline(out, meta, n, "sup")

	case NodeMath:
		tag := "span"
		if n.BlockMode {
			tag = "div"
		}
		if err := out.Printf(`<%s class="math">\(`, tag); err != nil {
			return err
		}
		if err := hescHTML(out, []byte(n.Literal), false, false, false); err != nil {
			return err
		}
		return out.Printf(`\)</%s>`, tag)

	case NodeRawHTML:
		if r.flags&HTMLSkipHTML != 0 {
			return nil
		}
		if r.flags&HTMLEscape != 0 {
			return hescHTML(out, []byte(n.Literal), r.flags&HTMLOwasp != 0, false, r.flags&HTMLNumEnt != 0)
		}
		return out.PutString(n.Literal)

	case NodeEntity:
		name := strings.Trim(n.Literal, "&;")
		cp := entityFindISO(name)
		if cp == 0 {
			return out.PutString(n.Literal)
		}
		return emitUTF8(out, cp)

	case NodeNormalText:
		return hescHTML(out, []byte(n.Literal), r.flags&HTMLOwasp != 0, false, r.flags&HTMLNumEnt != 0)

	default:
		for _, c := range n.Children {
			if err := r.renderNode(out, meta, c); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *HTMLRenderer) wrapInline(out *Buf, meta *MetaQueue, n *Node, tag string) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	if err := out.Printf("<%s>", tag); err != nil {
		return err
	}
	if err := out.PutOther(content); err != nil {
		return err
	}
	return out.Printf("</%s>", tag)
}

func hardWrapNewlines(b []byte) []byte {
	return []byte(strings.ReplaceAll(string(b), "\n", "<br/>\n"))
}

func (r *HTMLRenderer) renderMeta(meta *MetaQueue, n *Node) error {
	if n.Change == ChangeDelete {
		return nil
	}
	value := plainText(n)
	meta.Push(n.MetaKey, value)
	if equalFold(n.MetaKey, "baseheaderlevel") {
		lvl, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || lvl < 1 || lvl > 1000 {
			lvl = 1
		}
		r.baseHeaderLevel = lvl
	}
	return nil
}

// plainText concatenates the literal text of n's descendants, used for
// header ids and meta values where markup must not leak through.
func plainText(n *Node) string {
	var sb strings.Builder
	var walkText func(*Node)
	walkText = func(m *Node) {
		switch m.Type {
		case NodeNormalText, NodeCodeSpan:
			sb.WriteString(m.Literal)
		case NodeEntity:
			if cp := entityFindISO(strings.Trim(m.Literal, "&;")); cp != 0 {
				sb.WriteRune(cp)
			} else {
				sb.WriteString(m.Literal)
			}
		default:
			for _, c := range m.Children {
				walkText(c)
			}
		}
	}
	for _, c := range n.Children {
		walkText(c)
	}
	return sb.String()
}

// headerMultiValueSplit splits a meta value on runs of two or more
// whitespace characters, per spec.md §4.3's multi-valued metadata rule
// ("author", "css", etc. each become separate tags).
func headerMultiValueSplit(s string) []string {
	parts := multiSpaceRE.Split(strings.TrimSpace(s), -1)
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *HTMLRenderer) renderDocHeader(out *Buf, meta *MetaQueue) error {
	if r.flags&HTMLStandalone == 0 {
		return nil
	}
	if err := out.PutString(`<head><meta charset="utf-8"/>` +
		`<meta name="viewport" content="width=device-width,initial-scale=1"/>`); err != nil {
		return err
	}

	title := "Untitled article"
	date, hasDate := meta.Find("date")
	author, hasAuthor := meta.Find("author")

	for _, e := range meta.Entries() {
		key := strings.ToLower(e.Key)
		switch key {
		case "title":
			title = e.Value
		case "rcsdate":
			if d := rcsdate2str(e.Value); d != "" {
				date, hasDate = d, true
			}
		case "rcsauthor":
			if a := rcsauthor2str(e.Value); a != "" {
				author, hasAuthor = a, true
			}
		}
	}

	for _, e := range meta.Entries() {
		key := strings.ToLower(e.Key)
		switch key {
		case "affiliation", "copyright":
			tag := key
			if key == "affiliation" {
				tag = "creator"
			}
			if err := r.writeMultiMeta(out, tag, e.Value); err != nil {
				return err
			}
		case "css":
			for _, v := range headerMultiValueSplit(e.Value) {
				if err := out.PutString(`<link rel="stylesheet" href="`); err != nil {
					return err
				}
				if err := hescAttr(out, []byte(v)); err != nil {
					return err
				}
				if err := out.PutString(`"/>`); err != nil {
					return err
				}
			}
		case "javascript":
			for _, v := range headerMultiValueSplit(e.Value) {
				if err := out.PutString(`<script src="`); err != nil {
					return err
				}
				if err := hescAttr(out, []byte(v)); err != nil {
					return err
				}
				if err := out.PutString(`"></script>`); err != nil {
					return err
				}
			}
		}
	}

	if hasAuthor {
		if err := r.writeMultiMeta(out, "author", author); err != nil {
			return err
		}
	}

	if hasDate {
		if err := out.PutString(`<meta name="date" content="`); err != nil {
			return err
		}
		if err := hescAttr(out, []byte(date2str(date))); err != nil {
			return err
		}
		if err := out.PutString(`" scheme="YYYY-MM-DD"/>`); err != nil {
			return err
		}
	}

	if err := out.PutString("<title>"); err != nil {
		return err
	}
	if err := hescHTML(out, []byte(title), false, false, false); err != nil {
		return err
	}
	if err := out.PutString("</title>"); err != nil {
		return err
	}
	return out.PutString("</head><body>")
}

func (r *HTMLRenderer) writeMultiMeta(out *Buf, tag, value string) error {
	for _, v := range headerMultiValueSplit(value) {
		if err := out.Printf(`<meta name="%s" content="`, tag); err != nil {
			return err
		}
		if err := hescAttr(out, []byte(v)); err != nil {
			return err
		}
		if err := out.PutString(`"/>`); err != nil {
			return err
		}
	}
	return nil
}

func (r *HTMLRenderer) headerID(rawText string) string {
	var escaped Buf
	_ = hescHref(&escaped, []byte(rawText))
	id := escaped.String()
	count, seen := r.usedHeaderIDs[id]
	if !seen {
		r.usedHeaderIDs[id] = 1
		return id
	}
	count++
	r.usedHeaderIDs[id] = count
	return id + "-" + strconv.Itoa(count)
}

func (r *HTMLRenderer) renderHeader(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	level := r.baseHeaderLevel + n.Level - 1
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if err := out.Printf("<h%d", level); err != nil {
		return err
	}
	if content.Len() > 0 && r.flags&HTMLHeadIDs != 0 {
		id := r.headerID(plainText(n))
		if err := out.PutString(` id="`); err != nil {
			return err
		}
		if err := hescAttr(out, []byte(id)); err != nil {
			return err
		}
		if err := out.Putc('"'); err != nil {
			return err
		}
	}
	if err := out.Putc('>'); err != nil {
		return err
	}
	if err := out.PutOther(content); err != nil {
		return err
	}
	return out.Printf("</h%d>\n", level)
}

func (r *HTMLRenderer) renderList(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	if n.ListFlags&ListFlagDefinition != 0 {
		if err := out.PutString("<dl>\n"); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</dl>\n")
	}
	if n.ListFlags&ListFlagOrdered != 0 {
		if n.Start != "" && n.Start != "1" {
			if err := out.Printf(`<ol start="%s">`, n.Start); err != nil {
				return err
			}
		} else if err := out.PutString("<ol>"); err != nil {
			return err
		}
		if err := out.Putc('\n'); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
		return out.PutString("</ol>\n")
	}
	if err := out.PutString("<ul>\n"); err != nil {
		return err
	}
	if err := out.PutOther(content); err != nil {
		return err
	}
	return out.PutString("</ul>\n")
}

func startsWithBlockTag(s string) bool {
	for _, tag := range blockTagsAtStart {
		if strings.HasPrefix(s, tag) {
			return true
		}
	}
	return false
}

func (r *HTMLRenderer) renderListItem(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	if n.ItemFlags&ListItemDefinition != 0 {
		// definition-list items are rendered by their
		// NodeDefinitionTitle/NodeDefinitionData children directly and
		// never get an <li> wrapper.
		return out.PutOther(content)
	}
	trimmed := strings.TrimRight(content.String(), "\n")
	if n.ItemFlags&ListItemBlock != 0 && !startsWithBlockTag(trimmed) && trimmed != "" {
		trimmed = "<p>" + trimmed + "</p>"
	}
	if err := out.PutString("<li>"); err != nil {
		return err
	}
	if err := out.PutString(trimmed); err != nil {
		return err
	}
	return out.PutString("</li>\n")
}

func (r *HTMLRenderer) renderTable(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	if err := out.PutString("<table>"); err != nil {
		return err
	}
	if content.Len() > 0 {
		if err := out.Putc('\n'); err != nil {
			return err
		}
		if err := out.PutOther(content); err != nil {
			return err
		}
	}
	return out.PutString("</table>\n")
}

func (r *HTMLRenderer) renderTableCell(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	tag := "td"
	if n.Flags&TableCellHeader != 0 {
		tag = "th"
	}
	if err := out.Printf("<%s", tag); err != nil {
		return err
	}
	switch n.Flags & TableAlignCenter {
	case TableAlignLeft:
		if err := out.PutString(` align="left"`); err != nil {
			return err
		}
	case TableAlignRight:
		if err := out.PutString(` align="right"`); err != nil {
			return err
		}
	case TableAlignCenter:
		if err := out.PutString(` align="center"`); err != nil {
			return err
		}
	}
	if err := out.Putc('>'); err != nil {
		return err
	}
	if err := out.PutOther(content); err != nil {
		return err
	}
	return out.Printf("</%s>\n", tag)
}

func (r *HTMLRenderer) renderFootnoteDef(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	backlink := "&#160;<a href=\"#fnref" + strconv.Itoa(n.FootnoteNum) + "\" rev=\"footnote\">&#8617;</a>"
	body := content.String()
	idx := firstParagraphCloseIndex(body)
	var spliced string
	if idx >= 0 {
		spliced = body[:idx] + backlink + body[idx:]
	} else {
		spliced = body + backlink
	}
	if err := out.Printf(`<li id="fn%d">`, n.FootnoteNum); err != nil {
		return err
	}
	if err := out.PutString(spliced); err != nil {
		return err
	}
	return out.PutString("</li>\n")
}

// firstParagraphCloseIndex returns the byte offset of the last "</p>"
// within the first paragraph of body (i.e. the first "</p>" found), or
// -1 if body contains no "</p>".
func firstParagraphCloseIndex(body string) int {
	return strings.Index(body, "</p>")
}

func (r *HTMLRenderer) renderAutolink(out *Buf, n *Node) error {
	if n.Link == "" {
		return nil
	}
	label := n.Link
	label = strings.TrimPrefix(label, "mailto:")
	if err := out.PutString(`<a href="`); err != nil {
		return err
	}
	if err := hescHref(out, []byte(n.Link)); err != nil {
		return err
	}
	if err := out.PutString(`">`); err != nil {
		return err
	}
	if err := hescHTML(out, []byte(label), false, false, false); err != nil {
		return err
	}
	return out.PutString("</a>")
}

func (r *HTMLRenderer) renderImage(out *Buf, n *Node) error {
	if err := out.PutString(`<img src="`); err != nil {
		return err
	}
	if err := hescHref(out, []byte(n.Link)); err != nil {
		return err
	}
	if err := out.PutString(`" alt="`); err != nil {
		return err
	}
	if err := hescAttr(out, []byte(n.Alt)); err != nil {
		return err
	}
	if err := out.Putc('"'); err != nil {
		return err
	}
	switch {
	case n.AttrWidth != "" || n.AttrHeight != "":
		if err := out.PutString(` style="`); err != nil {
			return err
		}
		if n.AttrWidth != "" {
			if err := out.Printf("width:%s;", n.AttrWidth); err != nil {
				return err
			}
		}
		if n.AttrHeight != "" {
			if err := out.Printf("height:%s;", n.AttrHeight); err != nil {
				return err
			}
		}
		if err := out.Putc('"'); err != nil {
			return err
		}
	case n.Dims != "":
		if w, h, ok := parseDims(n.Dims); ok {
			if err := out.Printf(` width=%d`, w); err != nil {
				return err
			}
			if h > 0 {
				if err := out.Printf(` height=%d`, h); err != nil {
					return err
				}
			}
		}
	}
	if n.Title != "" {
		if err := out.PutString(` title="`); err != nil {
			return err
		}
		if err := hescAttr(out, []byte(n.Title)); err != nil {
			return err
		}
		if err := out.Putc('"'); err != nil {
			return err
		}
	}
	return out.PutString("/>")
}

// parseDims parses an image "dims" string of the form "W", "WxH" or
// "Wxh" into width/height integers. ok is false if w doesn't parse.
func parseDims(s string) (w, h int, ok bool) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 2 {
		h, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return w, h, true
}

func (r *HTMLRenderer) renderLink(out *Buf, meta *MetaQueue, n *Node) error {
	content, err := r.renderChildren(meta, n)
	if err != nil {
		return err
	}
	if err := out.PutString(`<a href="`); err != nil {
		return err
	}
	if err := hescHref(out, []byte(n.Link)); err != nil {
		return err
	}
	if err := out.Putc('"'); err != nil {
		return err
	}
	if n.Title != "" {
		if err := out.PutString(` title="`); err != nil {
			return err
		}
		if err := hescAttr(out, []byte(n.Title)); err != nil {
			return err
		}
		if err := out.Putc('"'); err != nil {
			return err
		}
	}
	if err := out.Putc('>'); err != nil {
		return err
	}
	if err := out.PutOther(content); err != nil {
		return err
	}
	return out.PutString("</a>")
}
