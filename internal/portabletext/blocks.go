// Package portabletext decodes the CMS rich-text block format and turns it into
// plain text or sanitized HTML.
package portabletext

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Span is an inline run of text inside a block.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by key from a span's marks, such as a link.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is a single rich-text block. Non-text blocks (images, embeds) keep only
// their type.
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Blocks is a rich-text field. It also accepts a bare string, which some
// documents carry in fields that were later migrated to rich text.
type Blocks []Block

func (b *Blocks) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*b = nil
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = FromString(s)
		return nil
	}

	var raw []Block
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = raw
	return nil
}

// FromString wraps plain text into a single normal block.
func FromString(s string) Blocks {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return Blocks{{
		Type:     "block",
		Style:    "normal",
		Children: []Span{{Type: "span", Text: s}},
	}}
}

// IsEmpty reports whether the field holds no text blocks.
func (b Blocks) IsEmpty() bool {
	for _, blk := range b {
		if blk.Type == "block" {
			return false
		}
	}
	return true
}

func (b Block) text() string {
	var sb strings.Builder
	for _, s := range b.Children {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func (b Block) markDef(key string) (MarkDef, bool) {
	for _, d := range b.MarkDefs {
		if d.Key == key {
			return d, true
		}
	}
	return MarkDef{}, false
}
