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
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestMbswidthASCII(t *testing.T) {
	require.Equal(t, 5, mbswidth([]byte("hello")))
}

func TestMbswidthWideRunes(t *testing.T) {
	require.Equal(t, 4, mbswidth([]byte("中文")))
}

func TestMbswidthInvalidUTF8FallsBackToByteLength(t *testing.T) {
	invalid := []byte{0xff, 0xfe, 0x41}
	require.Equal(t, len(invalid), mbswidth(invalid))
}

func TestRuneWidthErrorRune(t *testing.T) {
	require.Equal(t, 1, runeWidth(utf8.RuneError))
}
