package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/a-h/templ"

	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/page"
	"github.com/linoteia/portfolio/pkg/render"
)

// Element ids shared by the shell page and the stream patches.
const (
	ContentID     = "content"
	LangSwitchID  = "lang-switch"
	ThemeToggleID = "theme-toggle"
)

//go:embed tpl/*.tmpl tpl/partials/*.tmpl
var tplFS embed.FS

var views = template.Must(
	template.New("root").Funcs(sprig.HtmlFuncMap()).ParseFS(tplFS, "tpl/shell.tmpl", "tpl/partials/*.tmpl"),
)

type contentView struct {
	Visible bool
	// HTML is built by render, which escapes every payload field.
	HTML template.HTML
}

type langButton struct {
	Code   string
	Active bool
}

type toggleView struct {
	Dark bool
}

type shellView struct {
	Lang       string
	Theme      string
	Stylesheet string
	Script     string
	BodyClass  string
	Switch     []langButton
	Toggle     toggleView
	Content    contentView
}

func execute(name string, data any) string {
	var b bytes.Buffer
	if err := views.ExecuteTemplate(&b, name, data); err != nil {
		// Views are fixed at build time.
		panic(err)
	}
	return b.String()
}

func newContentView(s page.Snapshot) contentView {
	return contentView{Visible: s.Visible, HTML: template.HTML(s.Content)}
}

func langButtons(langs *i18n.Set, active i18n.Code) []langButton {
	codes := langs.Codes()
	out := make([]langButton, 0, len(codes))
	for _, c := range codes {
		out = append(out, langButton{Code: c.String(), Active: c == active})
	}
	return out
}

// contentElement renders the content container with its visibility marker.
func contentElement(s page.Snapshot) string {
	return execute("content", newContentView(s))
}

func langSwitch(langs *i18n.Set, active i18n.Code) string {
	return execute("lang-switch", langButtons(langs, active))
}

func themeButton(theme string) string {
	return execute("theme-toggle", toggleView{Dark: theme != "light"})
}

func themeClass(s page.Snapshot) string {
	var classes []string
	if s.Fade {
		classes = append(classes, "theme-fade")
	}
	if s.FadeActive {
		classes = append(classes, "theme-fade-active")
	}
	return strings.Join(classes, " ")
}

// shellPage renders the full document for the current state of a session.
func shellPage(cfg Config, langs *i18n.Set, s page.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		theme := s.Theme
		if theme == "" {
			theme = "dark"
		}
		lang := s.Active
		if lang.IsZero() {
			lang = langs.Default()
		}
		return views.ExecuteTemplate(w, "shell", shellView{
			Lang:       lang.String(),
			Theme:      theme,
			Stylesheet: cfg.StylesheetURL,
			Script:     cfg.DatastarScript,
			BodyClass:  themeClass(s),
			Switch:     langButtons(langs, s.Active),
			Toggle:     toggleView{Dark: theme != "light"},
			Content:    newContentView(s),
		})
	})
}

// fragment adapts a rendered element for PatchElementTempl.
func fragment(html string) templ.Component {
	return render.Component(html)
}
