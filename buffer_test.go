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

func TestBufPutAndString(t *testing.T) {
	b := NewBuf()
	require.NoError(t, b.PutString("hello "))
	require.NoError(t, b.Put([]byte("world")))
	require.NoError(t, b.Putc('!'))
	require.Equal(t, "hello world!", b.String())
	require.Equal(t, 12, b.Len())
}

func TestBufPrintf(t *testing.T) {
	b := NewBuf()
	require.NoError(t, b.Printf("%d-%s", 7, "x"))
	require.Equal(t, "7-x", b.String())
}

func TestBufPutFile(t *testing.T) {
	b := NewBuf()
	require.NoError(t, b.PutFile(strings.NewReader("from a reader")))
	require.Equal(t, "from a reader", b.String())
}

func TestBufPutOther(t *testing.T) {
	a := NewBuf()
	require.NoError(t, a.PutString("a"))
	other := NewBuf()
	require.NoError(t, other.PutString("b"))
	require.NoError(t, a.PutOther(other))
	require.Equal(t, "ab", a.String())
	require.Equal(t, "b", other.String(), "PutOther must not consume its source")
}

func TestBufTruncateRetainsCapacity(t *testing.T) {
	b := NewBuf()
	require.NoError(t, b.PutString("some text"))
	b.Truncate()
	require.Equal(t, 0, b.Len())
	require.NoError(t, b.PutString("more"))
	require.Equal(t, "more", b.String())
}

func TestBufClone(t *testing.T) {
	a := NewBuf()
	require.NoError(t, a.PutString("original"))
	c := a.Clone()
	require.NoError(t, a.PutString(" changed"))
	require.Equal(t, "original", c.String())
	require.Equal(t, "original changed", a.String())
}

func TestBufComparisons(t *testing.T) {
	a := NewBuf()
	require.NoError(t, a.PutString("prefix-rest"))
	b := NewBuf()
	require.NoError(t, b.PutString("prefix-rest"))

	require.True(t, BufEqual(a, b))
	require.True(t, BufStrEq(a, "prefix-rest"))
	require.True(t, BufPrefix(a, "prefix-"))
	require.False(t, BufPrefix(a, "nope"))
}

func TestBufEndsWithNewline(t *testing.T) {
	b := NewBuf()
	require.False(t, b.EndsWithNewline())
	require.NoError(t, b.PutString("line"))
	require.False(t, b.EndsWithNewline())
	require.NoError(t, b.Putc('\n'))
	require.True(t, b.EndsWithNewline())
}

func TestBufNilReceiverIsSafe(t *testing.T) {
	var b *Buf
	require.Equal(t, 0, b.Len())
	require.Equal(t, "", b.String())
	require.Nil(t, b.Bytes())
	require.False(t, b.EndsWithNewline())
	require.ErrorIs(t, b.PutString("x"), ErrBufferFull)
}
