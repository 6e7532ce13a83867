package tsfold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineIndex(t *testing.T) {
	li := NewLineIndex([]byte("ab\ncd\n\nef"))
	require.Equal(t, 4, li.LineCount())

	tests := []struct {
		offset    uint32
		line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0},
		{7, 3, 0},
		{9, 3, 2},
		{50, 3, 2},
	}
	for _, tt := range tests {
		line, col := li.Point(tt.offset)
		require.Equal(t, tt.line, line, "line of %d", tt.offset)
		require.Equal(t, tt.col, col, "column of %d", tt.offset)
	}

	off, ok := li.Offset(1, 1)
	require.True(t, ok)
	require.Equal(t, uint32(4), off)

	off, ok = li.Offset(3, 2)
	require.True(t, ok)
	require.Equal(t, uint32(9), off)

	_, ok = li.Offset(0, 3)
	require.False(t, ok)
	_, ok = li.Offset(4, 0)
	require.False(t, ok)
	_, ok = li.Offset(-1, 0)
	require.False(t, ok)
}

func TestLineIndexUTF16(t *testing.T) {
	// "é" is two bytes and one UTF-16 unit; "😀" is four bytes and two units.
	src := []byte("x := \"é😀\"\ny")
	li := NewLineIndex(src)

	line, col := li.PointUTF16(uint32(len("x := \"é😀")))
	require.Equal(t, 0, line)
	require.Equal(t, 9, col)

	off, ok := li.OffsetUTF16(0, 9)
	require.True(t, ok)
	require.Equal(t, uint32(len("x := \"é😀")), off)

	off, ok = li.OffsetUTF16(0, 100)
	require.True(t, ok)
	require.Equal(t, uint32(len("x := \"é😀\"")), off, "clamped to line end")

	off, ok = li.OffsetUTF16(1, 0)
	require.True(t, ok)
	require.Equal(t, uint32(len(src)-1), off)

	_, ok = li.OffsetUTF16(2, 0)
	require.False(t, ok)
}
