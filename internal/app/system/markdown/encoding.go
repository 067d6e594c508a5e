package markdown

import (
	"regexp"
	"strings"
)

// Mojibake left behind when UTF-8 punctuation was decoded as Windows-1252.
// strings.Replacer tries the pairs in argument order at each position, so
// the three-byte sequences must stay ahead of the bare "â€" and "â" rules.
var mojibake = strings.NewReplacer(
	"â€œ", `"`,
	"â€\u009d", `"`,
	"â€™", "'",
	"â€˜", "'",
	"â€¢", "•",
	"â€\u201d", "—", // E2 80 94
	"â€\u201c", "–", // E2 80 93
	"â€", `"`,
	"â", "",
	"\r\n", "\n",
	"\r", "\n",
)

var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// RepairEncoding fixes common mojibake, normalizes line endings to LF and
// drops control characters other than tab and newline.
func RepairEncoding(s string) string {
	return controlChars.ReplaceAllString(mojibake.Replace(s), "")
}
