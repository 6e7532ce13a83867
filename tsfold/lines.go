package tsfold

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex converts between byte offsets and line/column positions of one
// source snapshot. Lines and columns are 0-based.
type LineIndex struct {
	src        []byte
	lineStarts []uint32
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []uint32{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &LineIndex{src: src, lineStarts: starts}
}

// LineCount returns the number of lines, counting a trailing empty line.
func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

func (li *LineIndex) clamp(offset uint32) uint32 {
	if int(offset) > len(li.src) {
		return uint32(len(li.src))
	}
	return offset
}

func (li *LineIndex) lineOf(offset uint32) int {
	return sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
}

// Point returns the line and byte column of offset.
func (li *LineIndex) Point(offset uint32) (line, column int) {
	offset = li.clamp(offset)
	line = li.lineOf(offset)
	return line, int(offset - li.lineStarts[line])
}

// Offset returns the byte offset of a line and byte column. It reports false
// when the position lies outside the source.
func (li *LineIndex) Offset(line, column int) (uint32, bool) {
	if line < 0 || line >= len(li.lineStarts) || column < 0 {
		return 0, false
	}
	offset := int(li.lineStarts[line]) + column
	if offset > li.lineEnd(line) {
		return 0, false
	}
	return uint32(offset), true
}

// lineEnd returns the offset of the newline ending line, or the source
// length for the last line.
func (li *LineIndex) lineEnd(line int) int {
	if line+1 < len(li.lineStarts) {
		return int(li.lineStarts[line+1]) - 1
	}
	return len(li.src)
}

// PointUTF16 is like Point but counts the column in UTF-16 code units, as
// the Language Server Protocol does.
func (li *LineIndex) PointUTF16(offset uint32) (line, column int) {
	offset = li.clamp(offset)
	line = li.lineOf(offset)
	column = utf16Len(li.src[li.lineStarts[line]:offset])
	return line, column
}

// OffsetUTF16 converts a line and UTF-16 column back to a byte offset.
// Columns past the end of the line are clamped to the line end.
func (li *LineIndex) OffsetUTF16(line, column int) (uint32, bool) {
	if line < 0 || line >= len(li.lineStarts) || column < 0 {
		return 0, false
	}
	pos := int(li.lineStarts[line])
	end := li.lineEnd(line)
	for units := 0; pos < end && units < column; {
		r, size := utf8.DecodeRune(li.src[pos:end])
		units += utf16.RuneLen(r)
		if units > column {
			break
		}
		pos += size
	}
	return uint32(pos), true
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
		b = b[size:]
	}
	return n
}
