package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/htmlview"
	"github.com/alexisbeaulieu97/slidepreview/internal/navigator"
	"github.com/alexisbeaulieu97/slidepreview/internal/script"
)

// maxDeckBytes bounds a deck uploaded through PUT /api/slides.
const maxDeckBytes = 8 << 20

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	cfg := s.store.Snapshot()
	nav := navigator.New(s.deck.Slides())

	data, err := htmlview.NewPageData(s.catalog.Names(), s.store.Theme(), cfg).WithDeck(nav, cfg)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if deckErr := s.deck.Err(); deckErr != nil {
		data.Error = deckErr.Error()
	}
	data.Script, err = script.Generate(nav.Slides(), cfg)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := htmlview.Page(w, data); err != nil {
		s.log.Errorw(err, "render page", "request_id", RequestID(r.Context()))
	}
}

func (s *Server) handleSlide(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	nav := navigator.New(s.deck.Slides())
	if !nav.GoTo(index) {
		writeError(w, http.StatusNotFound, fmt.Errorf("slide %d out of range (deck has %d)", index, nav.Len()))
		return
	}

	tree, _ := nav.Active(s.store.Snapshot())
	html, err := htmlview.Slide(tree, animation.ScheduledReveal)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, string(html))
}

func (s *Server) handleThumbnails(w http.ResponseWriter, r *http.Request) {
	nav := navigator.New(s.deck.Slides())
	if active := r.URL.Query().Get("active"); active != "" {
		if i, err := strconv.Atoi(active); err == nil {
			nav.GoTo(i)
		}
	}

	html, err := htmlview.Thumbnails(nav.Thumbnails(s.store.Snapshot()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, string(html))
}

type slidesResponse struct {
	Slides  slide.Sequence `json:"slides"`
	Version uint64         `json:"version"`
	Error   string         `json:"error,omitempty"`
}

func (s *Server) handleGetSlides(w http.ResponseWriter, r *http.Request) {
	slides := s.deck.Slides()
	if slides == nil {
		slides = slide.Sequence{}
	}
	resp := slidesResponse{Slides: slides, Version: s.deck.Version()}
	if err := s.deck.Err(); err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReplaceSlides(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDeckBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	slides, err := slide.Parse(body, "request")
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	for _, issue := range slides.Issues() {
		s.log.Warnw("slide kept as placeholder", "request_id", RequestID(r.Context()), "slide", issue.Index+1, "type", issue.Tag, "error", issue.Err.Error())
	}
	version := s.deck.Replace(slides)
	s.log.Infow("deck replaced", "request_id", RequestID(r.Context()), "slides", len(slides), "version", version)
	s.hub.Broadcast(Event{Kind: EventDeck, Version: version})
	writeJSON(w, http.StatusOK, slidesResponse{Slides: slides, Version: version})
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	out, err := script.Generate(s.deck.Slides(), s.store.Snapshot())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

type themesResponse struct {
	Active string   `json:"active"`
	Themes []string `json:"themes"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themesResponse{Active: s.store.Theme(), Themes: s.catalog.Names()})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Errorw(err, "request failed", "request_id", RequestID(r.Context()), "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, err)
}
