//
// Blackfriday Markdown Processor
// Available at http://github.com/russross/blackfriday
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blackfriday

// isoEntities maps an HTML named entity (without the leading '&' or
// trailing ';') to its Unicode code point. This is a representative
// subset of the HTML5 named character reference table, covering the
// Latin-1 supplement entities plus the common typographic and symbol
// names; unknown names resolve to 0 and the caller passes the original
// text through unchanged, per spec.md §7.
var isoEntities = map[string]rune{
	"amp": '&', "lt": '<', "gt": '>', "quot": '"', "apos": '\'',
	"nbsp": ' ', "copy": '©', "reg": '®', "trade": '™',
	"hellip": '…', "mdash": '—', "ndash": '–',
	"lsquo": '‘', "rsquo": '’', "ldquo": '“', "rdquo": '”',
	"laquo": '«', "raquo": '»',
	"eacute": 'é', "egrave": 'è', "agrave": 'à', "ccedil": 'ç',
	"uuml": 'ü', "ouml": 'ö', "auml": 'ä',
	"szlig": 'ß', "deg": '°', "plusmn": '±', "times": '×',
	"divide": '÷', "micro": 'µ', "para": '¶', "sect": '§',
	"middot": '·', "bull": '•', "dagger": '†', "Dagger": '‡',
	"permil": '‰', "euro": '€', "pound": '£', "yen": '¥',
	"cent": '¢', "larr": '←', "rarr": '→', "uarr": '↑',
	"darr": '↓', "harr": '↔', "infin": '∞', "ne": '≠',
	"le": '≤', "ge": '≥', "alpha": 'α', "beta": 'β',
	"gamma": 'γ', "delta": 'δ', "pi": 'π', "sigma": 'σ',
	"omega": 'ω',
}

// entityFindISO maps a named HTML entity (without the delimiters) to its
// Unicode code point, or returns 0 for an unknown name.
func entityFindISO(name string) rune {
	return isoEntities[name]
}

// emitUTF8 writes the UTF-8 encoding of cp into out. Per spec.md §4.2,
// surrogate halves (U+D800-U+DFFF) and code points at or above U+110000
// are silently dropped rather than encoded, and cp == 0 is a no-op (the
// caller is expected to have already checked for "unknown entity").
func emitUTF8(out *Buf, cp rune) error {
	if cp <= 0 {
		return nil
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return nil
	}
	if cp >= 0x110000 {
		return nil
	}
	switch {
	case cp < 0x80:
		return out.Putc(byte(cp))
	case cp < 0x800:
		return out.Put([]byte{
			byte(0xC0 | (cp >> 6)),
			byte(0x80 | (cp & 0x3F)),
		})
	case cp < 0x10000:
		return out.Put([]byte{
			byte(0xE0 | (cp >> 12)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		})
	default:
		return out.Put([]byte{
			byte(0xF0 | (cp >> 18)),
			byte(0x80 | ((cp >> 12) & 0x3F)),
			byte(0x80 | ((cp >> 6) & 0x3F)),
			byte(0x80 | (cp & 0x3F)),
		})
	}
}
