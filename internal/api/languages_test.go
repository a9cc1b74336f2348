package api

import (
	"coursework/internal/engine"
	"coursework/internal/languages"
	"coursework/internal/models"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const languagesJSON = `{
  "go": {"formattedName": "Go", "releaseDate": "2009", "paradigm": ["Concurrent", "Imperative"], "commonUses": ["Cloud services"], "wikiLink": "https://go.dev"},
  "haskell": {"formattedName": "Haskell", "releaseDate": "1990", "paradigm": ["Functional", "Lazy"], "commonUses": ["Research"], "wikiLink": "https://haskell.org"},
  "ocaml": {"formattedName": "OCaml", "releaseDate": "1996", "paradigm": ["functional", "Imperative"], "commonUses": ["Compilers"], "wikiLink": "https://ocaml.org"}
}`

func newLanguages(t *testing.T) (*echo.Echo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "languages.json")
	require.NoError(t, os.WriteFile(path, []byte(languagesJSON), 0o644))

	e := newTestEcho()
	NewLanguagesHandler(languages.NewService(path, engine.MustCollator(engine.DefaultLocale))).RegisterRoutes(e)
	return e, path
}

func TestLanguages_List(t *testing.T) {
	e, _ := newLanguages(t)

	rec := do(e, http.MethodGet, "/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[map[string]models.Language](t, rec), 3)

	rec = do(e, http.MethodGet, "/languages?paradigm=", "")
	assert.Len(t, decode[map[string]models.Language](t, rec), 3, "a blank paradigm does not filter")

	rec = do(e, http.MethodGet, "/languages?paradigm=FUNCTIONAL", "")
	all := decode[map[string]models.Language](t, rec)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "haskell")
	assert.Contains(t, all, "ocaml")

	rec = do(e, http.MethodGet, "/languages?paradigm=functional&paradigm=imperative", "")
	both := decode[map[string]models.Language](t, rec)
	assert.Len(t, both, 1)
	assert.Contains(t, both, "ocaml")
}

func TestLanguages_Get(t *testing.T) {
	e, _ := newLanguages(t)

	rec := do(e, http.MethodGet, "/languages/Go", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go (2009)\nParadigms: Concurrent, Imperative\nCommon uses: Cloud services", rec.Body.String())

	rec = do(e, http.MethodGet, "/languages/cobol", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Language 'cobol' not found.", rec.Body.String())
}

func TestLanguages_Unreadable(t *testing.T) {
	e, path := newLanguages(t)
	require.NoError(t, os.Remove(path))

	for _, target := range []string{"/languages", "/languages/go", "/paradigms"} {
		rec := do(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.Equal(t, "Server error reading languages data.", rec.Body.String(), target)
	}
}

func TestLanguages_Paradigms(t *testing.T) {
	e, _ := newLanguages(t)

	rec := do(e, http.MethodGet, "/paradigms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Concurrent", "Functional", "Imperative", "Lazy"}, decode[[]string](t, rec))
}
