package portabletext

import "strings"

// PlainText renders text blocks as plain text, one paragraph per block,
// separated by blank lines. Non-text blocks are skipped.
func PlainText(blocks Blocks) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		parts = append(parts, b.text())
	}
	return strings.Join(parts, "\n\n")
}
