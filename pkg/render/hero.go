package render

import (
	"context"

	"github.com/linoteia/portfolio/pkg/feature"
)

// Feature flag names controlling the hero extras.
const (
	FlagHeroPortrait = "hero.portrait.enabled"
	FlagHeroCTA      = "hero.cta.enabled"
)

// Extras selects optional static markup injected into the hero section.
type Extras struct {
	Portrait bool
	CTA      bool
}

// ResolveExtras evaluates the hero flags. A flag that is not defined counts
// as enabled; a nil provider enables both.
func ResolveExtras(ctx context.Context, flags feature.Provider) Extras {
	if flags == nil {
		return Extras{Portrait: true, CTA: true}
	}
	return Extras{
		Portrait: enabled(ctx, flags, FlagHeroPortrait),
		CTA:      enabled(ctx, flags, FlagHeroCTA),
	}
}

func enabled(ctx context.Context, flags feature.Provider, name string) bool {
	on, err := flags.IsEnabled(ctx, name)
	if err != nil {
		return feature.IsNotFound(err)
	}
	return on
}

const portraitHTML = `<figure class="portrait-figure" aria-label="Catherine Petrenko, professional headshot">` +
	`<img class="portrait-img" src="/assets/img/catherine-hero.svg" ` +
	`sizes="(min-width:1024px) 560px, (min-width:640px) 420px, 300px" width="560" height="560" ` +
	`alt="Catherine Petrenko headshot" decoding="async" fetchpriority="high">` +
	`</figure>`

const ctaHTML = `<div class="hero-cta" data-testid="hero-cta">` +
	`<a class="button button-primary" href="https://www.linkedin.com/in/catherine-petrenko/" target="_blank" rel="noopener noreferrer">LinkedIn</a>` +
	`<a class="button button-tertiary" href="https://t.me/linoteia" target="_blank" rel="noopener noreferrer">Telegram</a>` +
	`</div>`
