package lexer

import (
	"sort"
	"unicode/utf8"
)

// Source is a text decoded into Unicode codepoints. All offsets used by the
// lexer, the parser and the AST index into this sequence.
type Source struct {
	runes []rune
	nl    []int
}

// NewSource decodes text into codepoints and records the offset of every
// newline. Invalid UTF-8 bytes decode to utf8.RuneError, one codepoint each.
func NewSource(text string) *Source {
	src := &Source{
		runes: make([]rune, 0, utf8.RuneCountInString(text)),
	}
	for _, r := range text {
		if r == runeNewLine {
			src.nl = append(src.nl, len(src.runes))
		}
		src.runes = append(src.runes, r)
	}
	return src
}

// Len returns the number of codepoints.
func (s *Source) Len() int {
	return len(s.runes)
}

// At returns the codepoint at offset i, or -1 when i is out of range.
func (s *Source) At(i int) rune {
	if i < 0 || i >= len(s.runes) {
		return -1
	}
	return s.runes[i]
}

// Slice returns the text of the codepoint range [start, end), clamped to the
// bounds of the source.
func (s *Source) Slice(start, end int) string {
	start = max(0, min(start, len(s.runes)))
	end = max(start, min(end, len(s.runes)))
	return string(s.runes[start:end])
}

// Excerpt returns at most n codepoints starting at offset.
func (s *Source) Excerpt(offset, n int) string {
	return s.Slice(offset, offset+n)
}

// LineCol returns the 1-based line and column of offset. Columns count
// codepoints.
func (s *Source) LineCol(offset int) (int, int) {
	i := sort.Search(len(s.nl), func(i int) bool {
		return s.nl[i] >= offset
	})
	if i == 0 {
		return 1, offset + 1
	}
	return i + 1, offset - s.nl[i-1]
}

// Line returns the text of the 1-based line n, without its newline.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.nl)+1 {
		return ""
	}
	start := 0
	if n > 1 {
		start = s.nl[n-2] + 1
	}
	end := len(s.runes)
	if n <= len(s.nl) {
		end = s.nl[n-1]
	}
	return string(s.runes[start:end])
}
