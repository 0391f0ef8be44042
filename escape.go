//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

import "fmt"

// hrefSafe holds the bytes hescHref passes through unescaped: RFC 3986
// unreserved characters plus the small set of "don't break a URL"
// punctuation lowdown's hesc_href keeps raw.
var hrefSafe = [256]bool{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		hrefSafe[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		hrefSafe[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		hrefSafe[c] = true
	}
	for _, c := range []byte("-_.~:/?#[]@!$&'()*+,;=%") {
		hrefSafe[c] = true
	}
}

// hescHTML escapes '&', '<', '>', '"', '\'' for safe inclusion in HTML
// text. When owasp is set, control characters (0x00-0x1F minus tab/nl/cr)
// are additionally dropped. When literal is set (content destined for
// <pre>), the same five characters are escaped and no others, and the
// OWASP control-char pass is skipped, since <pre> text doesn't get the
// readability trade-off OWASP mode is for. When numEnt is set, numeric character references
// (&#NN;) are emitted instead of named ones.
func hescHTML(out *Buf, src []byte, owasp, literal, numEnt bool) error {
	for _, c := range src {
		if !literal && owasp && c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			continue
		}
		var ent string
		switch c {
		case '&':
			ent = amp(numEnt, "amp", 38)
		case '<':
			ent = amp(numEnt, "lt", 60)
		case '>':
			ent = amp(numEnt, "gt", 62)
		case '"':
			ent = amp(numEnt, "quot", 34)
		case '\'':
			ent = amp(numEnt, "#39", 39)
		default:
			if err := out.Putc(c); err != nil {
				return err
			}
			continue
		}
		if err := out.PutString(ent); err != nil {
			return err
		}
	}
	return nil
}

func amp(numeric bool, name string, cp int) string {
	if numeric {
		return fmt.Sprintf("&#%d;", cp)
	}
	return "&" + name + ";"
}

// hescAttr is hescHTML tuned for quoted-attribute-value contexts: same
// escape set, never numeric-entity-preferring, since attribute values in
// lowdown's html.c are always produced with named entities.
func hescAttr(out *Buf, src []byte) error {
	return hescHTML(out, src, false, false, false)
}

// hescHref percent-encodes every byte of src outside the safe URL set.
func hescHref(out *Buf, src []byte) error {
	for _, c := range src {
		if hrefSafe[c] {
			if err := out.Putc(c); err != nil {
				return err
			}
			continue
		}
		if err := out.Printf("%%%02X", c); err != nil {
			return err
		}
	}
	return nil
}
