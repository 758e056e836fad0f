package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/linoteia/portfolio/pkg/i18n"
	"github.com/linoteia/portfolio/pkg/loader"
	"github.com/linoteia/portfolio/pkg/logger"
	"github.com/linoteia/portfolio/pkg/page"
)

type handlers struct {
	cfg   Config
	reg   *Registry
	langs *i18n.Set
	log   *slog.Logger
}

// SelectResponse is the JSON body of a language action for non-DataStar clients.
type SelectResponse struct {
	Status string `json:"status"`
	Lang   string `json:"lang"`
	Seq    uint64 `json:"seq"`
	Error  string `json:"error,omitempty"`
}

func (h *handlers) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	s, err := h.reg.GetOrCreate(r.Context(), VisitorFromContext(r.Context()))
	if err != nil {
		h.log.ErrorContext(r.Context(), "session init failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func (h *handlers) shell(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellPage(h.cfg, h.langs, s.Page.Snapshot()).Render(r.Context(), w); err != nil {
		h.log.WarnContext(r.Context(), "shell render failed", logger.Error(err))
	}
}

// stream pushes the session's page state to the browser: one full patch,
// then a patch per change until the client leaves or the session is evicted.
func (h *handlers) stream(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	sub := s.Page.Subscribe(ctx)
	defer sub.Close()

	sse := datastar.NewSSE(w, r)
	var prev *page.Snapshot
	for {
		snap := s.Page.Snapshot()
		if err := h.push(sse, prev, snap); err != nil {
			h.log.DebugContext(ctx, "stream closed", logger.Error(err))
			return
		}
		prev = &snap

		select {
		case <-ctx.Done():
			return
		case <-s.Done():
			return
		case _, ok := <-sub.Receive():
			if !ok {
				return
			}
		}
	}
}

func (h *handlers) push(sse *datastar.ServerSentEventGenerator, prev *page.Snapshot, cur page.Snapshot) error {
	if prev == nil || prev.Content != cur.Content || prev.Visible != cur.Visible {
		if err := sse.PatchElementTempl(fragment(contentElement(cur)), datastar.WithMode(PatchOuter)); err != nil {
			return err
		}
	}
	if prev == nil || prev.Active != cur.Active {
		if err := sse.PatchElements(langSwitch(h.langs, cur.Active)); err != nil {
			return err
		}
	}
	if prev == nil || prev.Theme != cur.Theme || prev.Fade != cur.Fade || prev.FadeActive != cur.FadeActive {
		if err := sse.MarshalAndPatchSignals(themeSignals{
			Theme:           cur.Theme,
			ThemeFade:       cur.Fade,
			ThemeFadeActive: cur.FadeActive,
		}); err != nil {
			return err
		}
		if prev == nil || prev.Theme != cur.Theme {
			if err := sse.PatchElements(themeButton(cur.Theme)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *handlers) selectLang(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	code := i18n.Code(chi.URLParam(r, "code"))

	out, err := s.Binding.SelectLanguage(ctx, code).AwaitContext(ctx)
	switch {
	case errors.Is(err, loader.ErrUnsupportedLanguage):
		h.writeJSON(w, r, http.StatusNotFound, SelectResponse{Status: "unsupported", Lang: code.String(), Error: err.Error()})
		return
	case err != nil:
		// Client went away; the selection keeps running.
		return
	}

	if IsDataStar(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	resp := SelectResponse{Status: out.Status.String(), Lang: out.Code.String(), Seq: out.Seq}
	if out.Err != nil {
		resp.Error = out.Err.Error()
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Binding.ToggleTheme(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.DebugContext(r.Context(), "response write failed", logger.Error(err))
	}
}
