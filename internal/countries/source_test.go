package countries

import (
	"context"
	"coursework/internal/apperr"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiBody = `[
  {"name":{"common":"France","official":"French Republic"},"region":"Europe","subregion":"Western Europe",
   "capital":["Paris"],"currencies":{"EUR":{"name":"Euro","symbol":"€"}},"languages":{"fra":"French"},
   "flags":{"png":"https://flagcdn.com/w320/fr.png","svg":"https://flagcdn.com/fr.svg"}},
  {"name":{"common":"Antarctica"},"region":"Antarctic","currencies":{},"languages":{},"flags":{"svg":"aq.svg"}}
]`

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(apiBody))
	}))
	defer srv.Close()

	got, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "France", got[0].Name.Common)
	assert.Equal(t, "Euro", got[0].Currencies["EUR"].Name)
	assert.Equal(t, []string{"Paris"}, got[0].Capital)
	assert.Empty(t, CurrencyKeys(got[1]))
}

func TestHTTPSource_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNetwork))
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, time.Second).Fetch(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindNetwork))
}

func TestHTTPSource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSource(url, time.Second).Fetch(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindNetwork))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(apiBody), 0o644))

	got, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindNetwork))
}
