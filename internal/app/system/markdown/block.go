package markdown

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`^(#{1,4}) (.*)$`)
	taskRe      = regexp.MustCompile(`^(\s*)-\s+\[(\s*|[xX])\]\s+(.*)$`)
	orderedRe   = regexp.MustCompile(`^\s*(\d+)\.\s+(.*)$`)
	bulletRe    = regexp.MustCompile(`^(\s*)[-*•+]\s+(.*)$`)
	separatorRe = regexp.MustCompile(`^\s*\|[\s\-|:]*\|\s*$`)
	rawBlockRe  = regexp.MustCompile(`^<(h[1-6]|pre|ul|ol|li|div|table)`)
)

// ParseBlocks tokenizes a prose section (no fences) into blocks.
// Input is expected to be LF-normalized.
func ParseBlocks(s string) []Block {
	lines := strings.Split(s, "\n")
	var blocks []Block

	for i := 0; i < len(lines); {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			i++

		case rawBlockRe.MatchString(strings.TrimLeft(line, " \t")):
			j := i
			for j < len(lines) && strings.TrimSpace(lines[j]) != "" {
				j++
			}
			blocks = append(blocks, RawHTML{Text: strings.Join(lines[i:j], "\n")})
			i = j

		case headingRe.MatchString(line):
			m := headingRe.FindStringSubmatch(line)
			blocks = append(blocks, Heading{Level: len(m[1]), Content: ParseInline(m[2])})
			i++

		case isTableStart(lines, i):
			t, n := parseTable(lines[i:])
			blocks = append(blocks, t)
			i += n

		case listKindOf(line) >= 0:
			l, n := parseList(lines[i:])
			blocks = append(blocks, l)
			i += n

		default:
			j := i + 1
			for j < len(lines) && !startsBlock(lines, j) {
				j++
			}
			text := strings.TrimSpace(strings.Join(lines[i:j], "\n"))
			blocks = append(blocks, Paragraph{Content: ParseInline(text)})
			i = j
		}
	}
	return blocks
}

// startsBlock reports whether lines[i] ends a running paragraph.
func startsBlock(lines []string, i int) bool {
	line := lines[i]
	return strings.TrimSpace(line) == "" ||
		rawBlockRe.MatchString(strings.TrimLeft(line, " \t")) ||
		headingRe.MatchString(line) ||
		isTableStart(lines, i) ||
		listKindOf(line) >= 0
}

/* ---------------------------------- lists --------------------------------- */

// listKindOf classifies a line as a list item, or returns -1.
// Task items win over numbered items, which win over bullets.
func listKindOf(line string) ListKind {
	switch {
	case taskRe.MatchString(line):
		return ListTask
	case orderedRe.MatchString(line):
		return ListOrdered
	case bulletRe.MatchString(line):
		return ListBullet
	}
	return -1
}

func nested(indent string) bool {
	return len(strings.ReplaceAll(indent, "\t", "  ")) >= 2
}

// parseList collects consecutive items of the same kind. Blank lines between
// items do not end the list.
func parseList(lines []string) (List, int) {
	kind := listKindOf(lines[0])
	l := List{Kind: kind}

	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			j := i
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) && listKindOf(lines[j]) == kind {
				i = j
				continue
			}
			break
		}
		if listKindOf(line) != kind {
			break
		}

		var item ListItem
		switch kind {
		case ListTask:
			m := taskRe.FindStringSubmatch(line)
			item = ListItem{
				Nested:  nested(m[1]),
				Checked: strings.EqualFold(m[2], "x"),
				Content: ParseInline(m[3]),
			}
		case ListOrdered:
			m := orderedRe.FindStringSubmatch(line)
			item = ListItem{Content: ParseInline(m[2])}
		default:
			m := bulletRe.FindStringSubmatch(line)
			item = ListItem{Nested: nested(m[1]), Content: ParseInline(m[2])}
		}
		l.Items = append(l.Items, item)
		i++
	}
	return l, i
}

/* --------------------------------- tables --------------------------------- */

func isPipeRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Count(line, "|") >= 2
}

// isTableStart needs a header row and at least one more pipe row after it.
func isTableStart(lines []string, i int) bool {
	return isPipeRow(lines[i]) && i+1 < len(lines) && isPipeRow(lines[i+1])
}

func parseTable(lines []string) (Table, int) {
	t := Table{Header: splitCells(lines[0])}
	n := 1
	for n < len(lines) && isPipeRow(lines[n]) {
		if !separatorRe.MatchString(lines[n]) {
			t.Rows = append(t.Rows, splitCells(lines[n]))
		}
		n++
	}
	return t, n
}

// splitCells trims every cell and drops only the empty boundary cells
// produced by the leading and trailing pipes.
func splitCells(row string) []Cell {
	parts := strings.Split(strings.TrimSpace(row), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]Cell, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, Cell{Content: ParseInline(strings.TrimSpace(p))})
	}
	return cells
}
