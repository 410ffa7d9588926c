package dispatch

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bilgisen/atlas/internal/models"
	"github.com/bilgisen/atlas/internal/portabletext"
)

var upperRun = regexp.MustCompile(`([A-Z])`)

// FormatCategoryName turns a camelCase value into a title:
// "financialServices" becomes "Financial Services".
func FormatCategoryName(s string) string {
	spaced := upperRun.ReplaceAllString(s, " $1")
	r, size := utf8.DecodeRuneInString(spaced)
	if r != utf8.RuneError {
		spaced = string(unicode.ToUpper(r)) + spaced[size:]
	}
	return strings.TrimSpace(spaced)
}

// TwoSentences keeps the first two ". "-delimited segments of s. The result
// ends with a period whenever s contained one.
func TwoSentences(s string) string {
	segments := strings.Split(s, ". ")
	if len(segments) > 2 {
		segments = segments[:2]
	}
	out := strings.Join(segments, ". ")
	if strings.Contains(s, ".") && !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

// Description extracts the card description for an item. Rich-text sources
// are flattened to plain text first.
func Description(item *models.Item) string {
	switch canonical(item.Type) {
	case models.TypeBattleCard:
		if item.Positioning.IsEmpty() {
			return ""
		}
		return TwoSentences(portabletext.PlainText(item.Positioning))
	case models.TypeKnowledgeArticle:
		if !item.Body.IsEmpty() {
			return TwoSentences(portabletext.PlainText(item.Body))
		}
	case models.TypeProductGuide:
		if item.Overview != "" {
			return TwoSentences(item.Overview)
		}
	case models.TypeDemo:
		if item.Description != "" {
			return TwoSentences(item.Description)
		}
	case models.TypePainPoint, models.TypePersona:
		if item.Description != "" {
			return item.Description
		}
	}
	return fallbackDescription(item)
}

func fallbackDescription(item *models.Item) string {
	for _, s := range []string{item.Description, item.Overview, item.Summary} {
		if s != "" {
			return s
		}
	}
	return ""
}
