package markdown

import (
	"regexp"
	"strings"
)

// The attribute classes exclude '<' and '>' so a candidate tag never spans
// another tag opener.
var rawImgRe = regexp.MustCompile(`^<img([^<>]*)\ssrc=["']([^"'<>]+)["']([^<>]*)>`)

// shortInline is the length below which lookups scan directly instead of
// building next-byte tables.
const shortInline = 256

// ParseInline tokenizes one block of prose. Priority at any position:
// code span, image, raw <img>, link, strong, emphasis.
func ParseInline(s string) []Inline {
	return parseInline(s, true)
}

func parseInline(s string, links bool) []Inline {
	var out []Inline
	var text strings.Builder
	sc := &inlineScanner{s: s}

	flush := func() {
		if text.Len() > 0 {
			out = append(out, Text{Value: text.String()})
			text.Reset()
		}
	}
	emit := func(n Inline) {
		flush()
		out = append(out, n)
	}

	for i := 0; i < len(s); {
		rest := s[i:]

		if rest[0] == '`' {
			if end := codeSpanEnd(rest); end > 0 {
				emit(CodeSpan{Code: rest[1:end]})
				i += end + 1
				continue
			}
		}

		if strings.HasPrefix(rest, "![") {
			if alt, src, end, ok := sc.bracketParen(i+1, true); ok {
				emit(Image{Alt: alt, Src: src})
				i = end
				continue
			}
		}

		if strings.HasPrefix(rest, "<img") {
			if m := sc.rawImage(i); m != nil {
				emit(RawImage{Before: m[1], Src: m[2], After: m[3]})
				i += len(m[0])
				continue
			}
		}

		if links && rest[0] == '[' {
			if label, href, end, ok := sc.linkAt(i); ok {
				emit(Link{URL: href, Content: parseInline(label, false)})
				i = end
				continue
			}
		}

		if strings.HasPrefix(rest, "**") {
			if end := delimEnd(rest, "**"); end > 0 {
				emit(Strong{Content: parseInline(rest[2:end], links)})
				i += end + 2
				continue
			}
		}

		if rest[0] == '*' {
			if end := delimEnd(rest, "*"); end > 0 {
				emit(Emphasis{Content: parseInline(rest[1:end], links)})
				i += end + 1
				continue
			}
		}

		text.WriteByte(rest[0])
		i++
	}
	flush()
	return out
}

// inlineScanner answers the bracket and tag lookups of one parseInline call
// in amortized constant time, so adversarial input such as "[a[a[a..." stays
// linear.
type inlineScanner struct {
	s    string
	next map[byte][]int32
	// labelEnds memoizes labelEnd per start offset, stored as result+2 so
	// the zero value means unknown.
	labelEnds []int
}

// index returns the offset of the first c at or after from, or -1.
func (sc *inlineScanner) index(c byte, from int) int {
	if from >= len(sc.s) {
		return -1
	}
	if len(sc.s) < shortInline {
		if k := strings.IndexByte(sc.s[from:], c); k >= 0 {
			return from + k
		}
		return -1
	}
	t, ok := sc.next[c]
	if !ok {
		t = make([]int32, len(sc.s)+1)
		t[len(sc.s)] = -1
		for k := len(sc.s) - 1; k >= 0; k-- {
			if sc.s[k] == c {
				t[k] = int32(k)
			} else {
				t[k] = t[k+1]
			}
		}
		if sc.next == nil {
			sc.next = make(map[byte][]int32, 4)
		}
		sc.next[c] = t
	}
	return int(t[from])
}

// bracketParen matches "[label](target)" with the '[' at offset at. The label
// may be empty only when allowEmpty is set; the target never is. end is the
// offset just past the ')'.
func (sc *inlineScanner) bracketParen(at int, allowEmpty bool) (label, target string, end int, ok bool) {
	if at >= len(sc.s) || sc.s[at] != '[' {
		return "", "", 0, false
	}
	rb := sc.index(']', at+1)
	if rb < 0 {
		return "", "", 0, false
	}
	if rb == at+1 && !allowEmpty {
		return "", "", 0, false
	}
	return sc.parenTarget(at, rb)
}

// linkAt is bracketParen for links, whose label may hold whole images
// (badge links such as [![ci](badge.svg)](actions)).
func (sc *inlineScanner) linkAt(at int) (label, target string, end int, ok bool) {
	rb := sc.labelEnd(at + 1)
	if rb < 0 || rb == at+1 {
		return "", "", 0, false
	}
	return sc.parenTarget(at, rb)
}

// labelEnd finds the first ']' at or after from that does not close a
// complete image. The walk is deterministic per offset, so every offset it
// visits shares the answer.
func (sc *inlineScanner) labelEnd(from int) int {
	if sc.labelEnds == nil {
		sc.labelEnds = make([]int, len(sc.s)+1)
	}
	var visited []int
	res := -1
	for j := from; j < len(sc.s); {
		if v := sc.labelEnds[j]; v != 0 {
			res = v - 2
			break
		}
		visited = append(visited, j)
		if sc.s[j] == '!' && j+1 < len(sc.s) && sc.s[j+1] == '[' {
			if _, _, end, ok := sc.bracketParen(j+1, true); ok {
				j = end
				continue
			}
		}
		if sc.s[j] == ']' {
			res = j
			break
		}
		j++
	}
	for _, k := range visited {
		sc.labelEnds[k] = res + 2
	}
	return res
}

// parenTarget expects "(target)" right after the ']' at offset rb.
func (sc *inlineScanner) parenTarget(at, rb int) (label, target string, end int, ok bool) {
	if rb+1 >= len(sc.s) || sc.s[rb+1] != '(' {
		return "", "", 0, false
	}
	rp := sc.index(')', rb+2)
	if rp <= rb+2 {
		return "", "", 0, false
	}
	return sc.s[at+1 : rb], sc.s[rb+2 : rp], rp + 1, true
}

// rawImage matches an <img> tag at offset at. The candidate ends at the
// first '>' and is rejected when another '<' opens before it.
func (sc *inlineScanner) rawImage(at int) []string {
	gt := sc.index('>', at)
	if gt < 0 {
		return nil
	}
	if lt := sc.index('<', at+1); lt >= 0 && lt < gt {
		return nil
	}
	return rawImgRe.FindStringSubmatch(sc.s[at : gt+1])
}

// codeSpanEnd returns the index of the closing backtick of a code span that
// starts at s[0], or -1. The content is non-empty and stays on one line.
func codeSpanEnd(s string) int {
	for j := 1; j < len(s); j++ {
		switch s[j] {
		case '\n':
			return -1
		case '`':
			if j == 1 {
				return -1
			}
			return j
		}
	}
	return -1
}

// delimEnd finds the closing delimiter for an opener at s[0]. The content is
// non-empty, never crosses a line, and skips over code spans.
func delimEnd(s, delim string) int {
	for j := len(delim); j < len(s); {
		switch {
		case s[j] == '\n':
			return -1
		case s[j] == '`':
			if end := codeSpanEnd(s[j:]); end > 0 {
				j += end + 1
				continue
			}
		case delim == "*" && strings.HasPrefix(s[j:], "**"):
			// strong binds first: skip a complete **...** inside emphasis
			if end := delimEnd(s[j:], "**"); end > 0 {
				j += end + 2
				continue
			}
			if j == len(delim) {
				return -1
			}
			return j
		case strings.HasPrefix(s[j:], delim):
			if j == len(delim) {
				return -1
			}
			return j
		}
		j++
	}
	return -1
}
