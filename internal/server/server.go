// Package server exposes the editor page, slide fragments and the style API
// over HTTP, with a websocket feed of changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/slidepreview/internal/deck"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
	"github.com/alexisbeaulieu97/slidepreview/internal/themes"
)

const shutdownTimeout = 5 * time.Second

// Server wires the editor store, theme catalog and deck into HTTP routes.
type Server struct {
	store   *editor.Store
	catalog *themes.Catalog
	deck    *deck.Holder
	log     *logger.Logger
	hub     *hub
	router  *mux.Router

	unsubscribe func()
}

// New builds the router and subscribes the websocket feed to style changes.
func New(store *editor.Store, catalog *themes.Catalog, holder *deck.Holder, log *logger.Logger) *Server {
	log = log.Named("server")
	s := &Server{
		store:   store,
		catalog: catalog,
		deck:    holder,
		log:     log,
		hub:     newHub(log),
	}
	s.router = s.routes()
	s.unsubscribe = store.Subscribe(func(c editor.Change) {
		s.hub.Broadcast(Event{Kind: EventStyle, Version: c.Version, Theme: c.Theme, Field: c.Field})
	})
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close detaches from the store and disconnects websocket clients.
func (s *Server) Close() {
	s.unsubscribe()
	s.hub.Close()
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("editor listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("editor stopped")
	return nil
}
