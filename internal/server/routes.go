package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(s.log), recoverer(s.log))

	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	r.HandleFunc("/slides/{index:[0-9]+}", s.handleSlide).Methods(http.MethodGet)
	r.HandleFunc("/thumbnails", s.handleThumbnails).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.hub.serve).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/config", s.handleGetConfig).Methods(http.MethodGet)
	api.HandleFunc("/config/theme/{name}", s.handleApplyTheme).Methods(http.MethodPut)
	api.HandleFunc("/config/colors/{role}", s.handleSetColor).Methods(http.MethodPatch)
	api.HandleFunc("/config/fonts", s.handleSetFonts).Methods(http.MethodPatch)
	api.HandleFunc("/config/footer", s.handleSetFooter).Methods(http.MethodPatch)
	api.HandleFunc("/config/logos/{slot}", s.handleSetLogo).Methods(http.MethodPut)
	api.HandleFunc("/config/logos/{slot}", s.handleUploadLogo).Methods(http.MethodPost)
	api.HandleFunc("/slides", s.handleGetSlides).Methods(http.MethodGet)
	api.HandleFunc("/slides", s.handleReplaceSlides).Methods(http.MethodPut)
	api.HandleFunc("/script", s.handleScript).Methods(http.MethodGet)
	api.HandleFunc("/themes", s.handleThemes).Methods(http.MethodGet)

	return r
}
