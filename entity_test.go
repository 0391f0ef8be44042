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

	"github.com/stretchr/testify/require"
)

func TestEntityFindISOKnownAndUnknown(t *testing.T) {
	require.Equal(t, '©', entityFindISO("copy"))
	require.Equal(t, rune(0), entityFindISO("notareal entity"))
}

func TestEmitUTF8RoundTripsThroughDecoding(t *testing.T) {
	cases := []rune{'A', '©', '€', '中', 0x1F600}
	for _, cp := range cases {
		b := NewBuf()
		require.NoError(t, emitUTF8(b, cp))
		decoded := []rune(b.String())
		require.Len(t, decoded, 1)
		require.Equal(t, cp, decoded[0])
	}
}

func TestEmitUTF8DropsSurrogatesAndOutOfRange(t *testing.T) {
	b := NewBuf()
	require.NoError(t, emitUTF8(b, 0xD900))
	require.NoError(t, emitUTF8(b, 0x110000))
	require.NoError(t, emitUTF8(b, 0))
	require.Equal(t, 0, b.Len())
}
