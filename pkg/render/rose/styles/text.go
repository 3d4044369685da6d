package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	fontHeightRatio = 0.22
	fontCharWidth   = 0.55
	fontSizeMin     = 9.0
	fontSizeMax     = 14.0
	lineSpacing     = 1.2
	textPadding     = 8.0
	ellipsis        = ".."
)

// FontSize returns the label font size for a block.
func FontSize(b Block) float64 {
	return max(fontSizeMin, min(fontSizeMax, b.H*fontHeightRatio))
}

// LineHeight returns the distance between wrapped label lines.
func LineHeight(b Block) float64 { return FontSize(b) * lineSpacing }

// WrapLabel breaks b.Label into lines that fit the block. Words longer than a
// line are hard-split, and the last line is truncated when the label does not
// fit.
func WrapLabel(b Block) []string {
	size := FontSize(b)
	maxChars := max(3, int((b.W-2*textPadding)/(size*fontCharWidth)))
	maxLines := max(1, int((b.H-textPadding)/(size*lineSpacing)))
	return Wrap(b.Label, maxChars, maxLines)
}

// Wrap greedily fills lines of at most maxChars runes, keeping at most
// maxLines lines.
func Wrap(s string, maxChars, maxLines int) []string {
	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > maxChars {
			flush()
			r := []rune(word)
			lines = append(lines, string(r[:maxChars]))
			word = string(r[maxChars:])
		}
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > maxChars {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	flush()

	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := []rune(lines[maxLines-1])
	if len(last)+len(ellipsis) > maxChars {
		last = last[:max(0, maxChars-len(ellipsis))]
	}
	lines[maxLines-1] = strings.TrimRight(string(last), " ") + ellipsis
	return lines
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func WrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`, EscapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("</a>")
	}
}
