package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linoteia/portfolio/pkg/content"
	"github.com/linoteia/portfolio/pkg/feature"
	"github.com/linoteia/portfolio/pkg/render"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	html := render.Build(content.Payload{
		Title:           "Catherine Petrenko",
		Subtitle:        "System-thinking PM",
		SkillsTitle:     "Skills",
		Skills:          []string{"Leadership", "System Thinking"},
		AboutTitle:      "About",
		AboutParagraphs: []string{"Paragraph 1", "Paragraph 2"},
	})

	assert.Contains(t, html, "<h1>Catherine Petrenko</h1>")
	assert.Contains(t, html, "<h2>System-thinking PM</h2>")
	assert.Contains(t, html, "<ul><li>Leadership</li><li>System Thinking</li></ul>")
	assert.Contains(t, html, "<h2>About</h2><p>Paragraph 1</p><p>Paragraph 2</p>")
	assert.Equal(t, 3, strings.Count(html, "<section"))
}

func TestBuild_EmptyLists(t *testing.T) {
	t.Parallel()

	html := render.Build(content.EmptyFallback())

	assert.Contains(t, html, "<h2>Skills</h2>")
	assert.Contains(t, html, "<ul></ul>")
	assert.Contains(t, html, "<h2>About</h2></section>")
	assert.NotContains(t, html, "<p>")
	assert.Equal(t, 3, strings.Count(html, "<section"))
}

func TestBuild_DefaultTitles(t *testing.T) {
	t.Parallel()

	html := render.Build(content.Payload{Title: "T"})
	assert.Contains(t, html, "<h2>"+render.DefaultSkillsTitle+"</h2>")
	assert.Contains(t, html, "<h2>"+render.DefaultAboutTitle+"</h2>")
	assert.Contains(t, html, "<ul></ul>")
}

func TestBuild_Escapes(t *testing.T) {
	t.Parallel()

	html := render.Build(content.Payload{
		Title:           `<script>alert("x")</script>`,
		Subtitle:        "Tom & Jerry's",
		Skills:          []string{"<b>bold</b>"},
		AboutParagraphs: []string{`"quoted"`},
	})

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Tom &amp; Jerry&#39;s")
	assert.Contains(t, html, "&#34;quoted&#34;")
}

func TestBuild_Pure(t *testing.T) {
	t.Parallel()

	p := content.Payload{Title: "A", Skills: []string{"x"}}
	assert.Equal(t, render.Build(p), render.Build(p))
}

func TestBuildWithExtras(t *testing.T) {
	t.Parallel()

	html := render.BuildWithExtras(content.EmptyFallback(), render.Extras{Portrait: true, CTA: true})

	hero := html[:strings.Index(html, "</section>")]
	assert.Contains(t, hero, `class="portrait-figure"`)
	assert.Contains(t, hero, `data-testid="hero-cta"`)

	plain := render.Build(content.EmptyFallback())
	assert.NotContains(t, plain, "portrait-figure")
	assert.NotContains(t, plain, "hero-cta")
}

func TestResolveExtras(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, render.Extras{Portrait: true, CTA: true}, render.ResolveExtras(ctx, nil))

	flags, err := feature.NewMemoryProvider(feature.Flag{Name: render.FlagHeroPortrait, Enabled: false})
	require.NoError(t, err)
	assert.Equal(t, render.Extras{Portrait: false, CTA: true}, render.ResolveExtras(ctx, flags))
}

func TestComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Component("<p>x</p>").Render(context.Background(), &buf))
	assert.Equal(t, "<p>x</p>", buf.String())
}
