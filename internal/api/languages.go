package api

import (
	"coursework/internal/apperr"
	"coursework/internal/languages"
	"net/http"

	"github.com/labstack/echo/v4"
)

const languagesReadError = "Server error reading languages data."

type LanguagesHandler struct {
	svc *languages.Service
}

func NewLanguagesHandler(svc *languages.Service) *LanguagesHandler {
	return &LanguagesHandler{svc: svc}
}

func (h *LanguagesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/languages", h.ListLanguages)
	e.GET("/languages/:name", h.GetLanguage)
	e.GET("/paradigms", h.ListParadigms)
}

// ListLanguages returns the id to language map, narrowed by every
// ?paradigm= given.
func (h *LanguagesHandler) ListLanguages(c echo.Context) error {
	langs, err := h.svc.List(c.Request().Context(), c.QueryParams()["paradigm"]...)
	if err != nil {
		return c.String(http.StatusInternalServerError, languagesReadError)
	}
	return respondJSON(c, http.StatusOK, langs)
}

// GetLanguage answers in plain text.
func (h *LanguagesHandler) GetLanguage(c echo.Context) error {
	lang, err := h.svc.Lookup(c.Request().Context(), param(c, "name"))
	switch {
	case apperr.Is(err, apperr.KindNotFound):
		return c.String(http.StatusNotFound, apperr.Message(err, ""))
	case err != nil:
		return c.String(http.StatusInternalServerError, languagesReadError)
	}
	return c.String(http.StatusOK, languages.FormatText(lang))
}

func (h *LanguagesHandler) ListParadigms(c echo.Context) error {
	paradigms, err := h.svc.Paradigms(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, languagesReadError)
	}
	return respondJSON(c, http.StatusOK, paradigms)
}
