// Package deck loads slide sequences from files or a content service.
package deck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	slideerrors "github.com/alexisbeaulieu97/slidepreview/pkg/errors"
)

// MaxResponseBytes caps how much of a service response is read.
const MaxResponseBytes = 8 << 20

// DefaultTimeout applies when a ServiceSource has no client.
const DefaultTimeout = 60 * time.Second

// Source produces a slide sequence.
type Source interface {
	Load(ctx context.Context) (slide.Sequence, error)
	String() string
}

// FileSource reads a YAML or JSON deck from disk.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(ctx context.Context) (slide.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, slideerrors.NewSourceError(s.Path, fmt.Errorf("read deck: %w", err))
	}
	return slide.Parse(data, s.Path)
}

func (s FileSource) String() string { return s.Path }

// ServiceSource asks an external content-generation service for a deck. The
// service answers with a bare slide array or an object holding "slides".
// With a prompt the request is a POST of {"prompt": ...}, otherwise a GET.
type ServiceSource struct {
	URL    string
	Prompt string
	Client *http.Client
}

// Load performs the request and decodes the response body.
func (s ServiceSource) Load(ctx context.Context) (slide.Sequence, error) {
	req, err := s.request(ctx)
	if err != nil {
		return nil, slideerrors.NewSourceError(s.URL, err)
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, slideerrors.NewSourceError(s.URL, fmt.Errorf("request deck: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, slideerrors.NewSourceError(s.URL, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, slideerrors.NewSourceError(s.URL, fmt.Errorf("service returned %s: %s", resp.Status, snippet(body)))
	}

	slides, err := slide.Parse(body, s.URL)
	if err != nil {
		return nil, slideerrors.NewSourceError(s.URL, err)
	}
	return slides, nil
}

func (s ServiceSource) request(ctx context.Context) (*http.Request, error) {
	if s.Prompt == "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	payload, err := json.Marshal(map[string]string{"prompt": s.Prompt})
	if err != nil {
		return nil, fmt.Errorf("encode prompt: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (s ServiceSource) String() string { return s.URL }

// Static serves a fixed sequence.
type Static slide.Sequence

// Load returns the sequence.
func (s Static) Load(context.Context) (slide.Sequence, error) {
	return slide.Sequence(s), nil
}

func (s Static) String() string { return "inline" }

func snippet(body []byte) string {
	const limit = 200
	text := string(bytes.TrimSpace(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
