package page

import (
	"context"
	"sync"

	"github.com/linoteia/portfolio/pkg/broadcast"
	"github.com/linoteia/portfolio/pkg/i18n"
)

// Snapshot is an immutable copy of the page surface.
type Snapshot struct {
	Revision   uint64
	Content    string
	Visible    bool
	Active     i18n.Code
	Theme      string
	Fade       bool
	FadeActive bool
}

// Page is the server-side model of the parts of the document that the
// loader, the theme toggle and the language controls touch. Safe for
// concurrent use.
type Page struct {
	mu    sync.RWMutex
	state Snapshot
	bus   *broadcast.Memory[uint64]
}

// New returns a page with a hidden, empty content container.
func New() *Page {
	return &Page{bus: broadcast.NewMemory[uint64]()}
}

// Snapshot returns the current state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Visible reports whether the content container carries the show marker.
func (p *Page) Visible() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Visible
}

// Hide removes the show marker.
func (p *Page) Hide() {
	p.update(func(s *Snapshot) bool {
		if !s.Visible {
			return false
		}
		s.Visible = false
		return true
	})
}

// Replace swaps the container markup and shows it in one revision.
func (p *Page) Replace(html string) {
	p.update(func(s *Snapshot) bool {
		s.Content = html
		s.Visible = true
		return true
	})
}

// Active returns the language whose control is marked active, or "".
func (p *Page) Active() i18n.Code {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Active
}

// SetActive marks exactly one control active. The zero code clears all.
func (p *Page) SetActive(code i18n.Code) {
	p.update(func(s *Snapshot) bool {
		if s.Active == code {
			return false
		}
		s.Active = code
		return true
	})
}

// Theme returns the data-theme attribute.
func (p *Page) Theme() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Theme
}

// SetTheme sets the data-theme attribute.
func (p *Page) SetTheme(theme string) {
	p.update(func(s *Snapshot) bool {
		if s.Theme == theme {
			return false
		}
		s.Theme = theme
		return true
	})
}

// SetFade sets or clears the fade-out marker.
func (p *Page) SetFade(on bool) {
	p.update(func(s *Snapshot) bool {
		if s.Fade == on {
			return false
		}
		s.Fade = on
		return true
	})
}

// SetFadeActive sets or clears the fade-in marker.
func (p *Page) SetFadeActive(on bool) {
	p.update(func(s *Snapshot) bool {
		if s.FadeActive == on {
			return false
		}
		s.FadeActive = on
		return true
	})
}

// ClearFade removes both theme transition markers.
func (p *Page) ClearFade() {
	p.update(func(s *Snapshot) bool {
		if !s.Fade && !s.FadeActive {
			return false
		}
		s.Fade, s.FadeActive = false, false
		return true
	})
}

// Subscribe delivers the revision of every change until ctx ends, the
// subscriber is closed or the page is closed. A slow reader only sees the
// newest revision and should read Snapshot to catch up.
func (p *Page) Subscribe(ctx context.Context) broadcast.Subscriber[uint64] {
	return p.bus.Subscribe(ctx)
}

// Close ends every subscription.
func (p *Page) Close() error {
	return p.bus.Close()
}

func (p *Page) update(fn func(*Snapshot) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !fn(&p.state) {
		return
	}
	p.state.Revision++
	p.bus.Publish(p.state.Revision)
}
