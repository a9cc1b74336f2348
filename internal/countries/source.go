// Package countries groups the REST Countries collection by region,
// subregion, currency or language and projects it into display views.
package countries

import (
	"context"
	"coursework/internal/apperr"
	"coursework/internal/models"
	"coursework/internal/storage"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Source yields the full country collection in fetch order.
type Source interface {
	Fetch(ctx context.Context) ([]models.Country, error)
}

// HTTPSource fetches the collection from a REST Countries compatible URL.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, apperr.Network("Could not build countries request.", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Network("Could not reach the countries API.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.Network(fmt.Sprintf("Error in request: %s", resp.Status), nil)
	}

	var out []models.Country
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Network("Countries API returned malformed JSON.", err)
	}
	return out, nil
}

// FileSource reads a previously saved snapshot of the API response.
type FileSource struct {
	doc *storage.Document[[]models.Country]
}

func NewFileSource(path string) *FileSource {
	return &FileSource{doc: storage.NewDocument[[]models.Country](path)}
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.Country, error) {
	out, err := s.doc.Load(ctx)
	if err != nil {
		return nil, apperr.Network("Could not read countries snapshot.", err)
	}
	return out, nil
}
