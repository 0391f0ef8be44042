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
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// mbswidth returns the display-column width of s, decoding it as UTF-8.
// It is the Go-idiom stand-in for lowdown's hand-rolled wcwidth: rather
// than bundling a private East-Asian-Width table (§9's suggested
// fallback for platforms without a system wcwidth), it reaches for
// go-runewidth, the same dependency the charm TUI stack in
// jinterlante1206-AleutianLocal's go.mod pulls in for exactly this
// purpose. On malformed UTF-8 it falls back to the raw byte count, per
// spec.md §4.2.
func mbswidth(s []byte) int {
	if !utf8.Valid(s) {
		return len(s)
	}
	return runewidth.StringWidth(string(s))
}

// runeWidth returns the display width of a single already-decoded
// rune, counting utf8.RuneError as one column. The renderers measure
// whole strings with mbswidth instead.
func runeWidth(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	return runewidth.RuneWidth(r)
}
