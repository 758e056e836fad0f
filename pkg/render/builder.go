package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/linoteia/portfolio/pkg/content"
)

// Section titles used when the payload leaves them empty.
const (
	DefaultSkillsTitle = "Skills"
	DefaultAboutTitle  = "About"
)

// Build renders the content container markup for p.
// It is pure: the same payload always yields the same fragment.
func Build(p content.Payload) string {
	return BuildWithExtras(p, Extras{})
}

// BuildWithExtras renders p and appends the enabled hero extras to the first
// section.
func BuildWithExtras(p content.Payload, x Extras) string {
	var b strings.Builder

	b.WriteString(`<section class="inner-section hero-copy">`)
	b.WriteString("<h1>" + esc(p.Title) + "</h1>")
	b.WriteString("<h2>" + esc(p.Subtitle) + "</h2>")
	if x.Portrait {
		b.WriteString(portraitHTML)
	}
	if x.CTA {
		b.WriteString(ctaHTML)
	}
	b.WriteString(`</section>`)

	b.WriteString(`<section class="inner-section">`)
	b.WriteString("<h2>" + esc(or(p.SkillsTitle, DefaultSkillsTitle)) + "</h2>")
	b.WriteString("<ul>")
	for _, s := range p.Skills {
		b.WriteString("<li>" + esc(s) + "</li>")
	}
	b.WriteString("</ul>")
	b.WriteString(`</section>`)

	b.WriteString(`<section class="inner-section">`)
	b.WriteString("<h2>" + esc(or(p.AboutTitle, DefaultAboutTitle)) + "</h2>")
	for _, para := range p.AboutParagraphs {
		b.WriteString("<p>" + esc(para) + "</p>")
	}
	b.WriteString(`</section>`)

	return b.String()
}

// Component wraps an already built fragment so it can be streamed wherever
// a templ component is expected.
func Component(fragment string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, fragment)
		return err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
