package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/models"
	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page. Pages are rendered into it through {{embed}}.
const Layout = "layouts/main"

//go:embed templates
var embedded embed.FS

// NewEngine returns the view engine over the embedded templates. Pages are
// named by file name without extension; partials.html only defines blocks.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(subFS(embedded, "templates")), ".html")
	engine.AddFuncMap(funcs())
	return engine
}

// Choices feeds the "options" partial of a filter dropdown.
type Choices struct {
	Current string
	Values  []string
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"card":           func(it models.Item) dispatch.Card { return dispatch.NewCard(&it) },
		"cards":          dispatch.NewCards,
		"formatCategory": dispatch.FormatCategoryName,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"choices": func(current string, values []string) Choices {
			return Choices{Current: current, Values: values}
		},
		"selected": func(a, b string) template.HTMLAttr {
			if a == b {
				return "selected"
			}
			return ""
		},
	}
}

//go:embed static
var static embed.FS

// Static returns the embedded static assets, rooted at the static directory.
func Static() fs.FS {
	return subFS(static, "static")
}

func subFS(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
