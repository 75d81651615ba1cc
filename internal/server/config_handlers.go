package server

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

type configResponse struct {
	Theme   string              `json:"theme"`
	Version uint64              `json:"version"`
	Config  style.Configuration `json:"config"`
	Fields  []editor.ColorField `json:"fields"`
}

func (s *Server) configResponse(version uint64, theme string, cfg style.Configuration) configResponse {
	return configResponse{Theme: theme, Version: version, Config: cfg, Fields: editor.Fields(cfg)}
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.configResponse(s.store.Version(), s.store.Theme(), s.store.Snapshot()))
}

// respondChange answers an edit with the configuration it produced.
func (s *Server) respondChange(w http.ResponseWriter, r *http.Request, change editor.Change, err error) {
	if err != nil {
		s.log.Debugw("edit rejected", "request_id", RequestID(r.Context()), "error", err.Error())
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.configResponse(change.Version, change.Theme, change.Config))
}

func (s *Server) handleApplyTheme(w http.ResponseWriter, r *http.Request) {
	change, err := s.store.ApplyTheme(mux.Vars(r)["name"])
	s.respondChange(w, r, change, err)
}

type colorRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleSetColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	change, err := s.store.SetColor(mux.Vars(r)["role"], req.Value)
	s.respondChange(w, r, change, err)
}

type fontsRequest struct {
	Family         *string  `json:"family"`
	SizeMultiplier *float64 `json:"fontSizeMultiplier"`
}

func (s *Server) handleSetFonts(w http.ResponseWriter, r *http.Request) {
	var req fontsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Family == nil && req.SizeMultiplier == nil {
		writeError(w, http.StatusBadRequest, slideerrors.NewValidationError("fonts", "nothing to update", nil))
		return
	}

	var (
		change editor.Change
		err    error
	)
	if req.Family != nil {
		if change, err = s.store.SetFontFamily(*req.Family); err != nil {
			s.respondChange(w, r, change, err)
			return
		}
	}
	if req.SizeMultiplier != nil {
		change, err = s.store.SetFontSizeMultiplier(*req.SizeMultiplier)
	}
	s.respondChange(w, r, change, err)
}

type footerRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSetFooter(w http.ResponseWriter, r *http.Request) {
	var req footerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.respondChange(w, r, s.store.SetFooterText(req.Text), nil)
}

type logoRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleSetLogo(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	change, err := s.store.SetLogo(mux.Vars(r)["slot"], req.URL)
	s.respondChange(w, r, change, err)
}

// handleUploadLogo accepts a multipart form with the image in "file".
func (s *Server) handleUploadLogo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, editor.MaxLogoBytes+64<<10)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, slideerrors.NewValidationError("file", "multipart field \"file\" is required", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, editor.MaxLogoBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	change, err := s.store.UploadLogo(mux.Vars(r)["slot"], header.Filename, data)
	s.respondChange(w, r, change, err)
}
