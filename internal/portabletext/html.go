package portabletext

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Styles maps block styles, lists and marks to CSS classes.
type Styles struct {
	Blocks    map[string]string
	Lists     map[string]string
	ListItem  string
	Code      string
	Link      string
	Strong    string
	Emphasis  string
	Paragraph string
}

// Full is used on detail pages.
var Full = Styles{
	Blocks: map[string]string{
		"h1":         "text-3xl font-bold mt-8 mb-4",
		"h2":         "text-2xl font-semibold mt-6 mb-3",
		"h3":         "text-xl font-semibold mt-4 mb-2",
		"h4":         "text-lg font-semibold mt-3 mb-2",
		"blockquote": "border-l-4 border-gray-300 pl-4 italic my-4 text-gray-700",
	},
	Lists: map[string]string{
		"bullet": "list-disc ml-6 mb-4",
		"number": "list-decimal ml-6 mb-4",
	},
	Paragraph: "mb-4",
	ListItem:  "mb-1",
	Code:      "bg-gray-100 px-1 py-0.5 rounded text-sm font-mono",
	Link:      "text-blue-600 hover:text-blue-800 underline",
	Strong:    "font-semibold",
	Emphasis:  "italic",
}

// Compact is used in smaller sections such as pain point and demo panels.
var Compact = Styles{
	Blocks: map[string]string{
		"h1":         "text-2xl font-bold mt-6 mb-3",
		"h2":         "text-xl font-semibold mt-4 mb-2",
		"h3":         "text-lg font-semibold mt-3 mb-2",
		"blockquote": "border-l-4 border-gray-300 pl-3 italic my-3 text-gray-700",
	},
	Lists: map[string]string{
		"bullet": "list-disc ml-4 mb-3",
		"number": "list-decimal ml-4 mb-3",
	},
	Paragraph: "mb-3",
	ListItem:  "mb-1",
	Code:      "bg-gray-100 px-1 py-0.5 rounded text-sm font-mono",
	Link:      "text-blue-600 hover:text-blue-800 underline",
	Strong:    "font-semibold",
	Emphasis:  "italic",
}

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}()

// HTML renders blocks with the given styles and sanitizes the result.
func HTML(blocks Blocks, st Styles) template.HTML {
	var sb strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			sb.WriteString("</" + listTag(openList) + ">")
			openList = ""
		}
	}

	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}

		if b.ListItem != "" {
			if openList != b.ListItem {
				closeList()
				openList = b.ListItem
				sb.WriteString("<" + listTag(openList) + classAttr(st.Lists[openList]) + ">")
			}
			sb.WriteString("<li" + classAttr(st.ListItem) + ">")
			writeSpans(&sb, b, st)
			sb.WriteString("</li>")
			continue
		}
		closeList()

		tag, class := "p", st.Paragraph
		switch b.Style {
		case "h1", "h2", "h3", "h4", "blockquote":
			if c, ok := st.Blocks[b.Style]; ok {
				tag, class = b.Style, c
			}
		}
		sb.WriteString("<" + tag + classAttr(class) + ">")
		writeSpans(&sb, b, st)
		sb.WriteString("</" + tag + ">")
	}
	closeList()

	return template.HTML(policy.Sanitize(sb.String()))
}

func writeSpans(sb *strings.Builder, b Block, st Styles) {
	for _, s := range b.Children {
		open, close := "", ""
		for _, m := range s.Marks {
			var o, c string
			switch m {
			case "strong":
				o, c = "<strong"+classAttr(st.Strong)+">", "</strong>"
			case "em":
				o, c = "<em"+classAttr(st.Emphasis)+">", "</em>"
			case "code":
				o, c = "<code"+classAttr(st.Code)+">", "</code>"
			default:
				def, ok := b.markDef(m)
				if !ok || def.Type != "link" || def.Href == "" {
					continue
				}
				o = `<a href="` + html.EscapeString(def.Href) + `" rel="noopener noreferrer"` + classAttr(st.Link) + ">"
				c = "</a>"
			}
			open += o
			close = c + close
		}
		sb.WriteString(open)
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString(close)
	}
}

func listTag(kind string) string {
	if kind == "number" {
		return "ol"
	}
	return "ul"
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return ` class="` + class + `"`
}
