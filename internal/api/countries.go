package api

import (
	"context"
	"coursework/internal/apperr"
	"coursework/internal/countries"
	"coursework/internal/export"
	"coursework/internal/models"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/zap"
)

const loadingMessage = "Countries are still loading."

type CountriesHandler struct {
	session *countries.Session
	logger  *zap.Logger
}

func NewCountriesHandler(session *countries.Session, logger *zap.Logger) *CountriesHandler {
	return &CountriesHandler{session: session, logger: logger}
}

func (h *CountriesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/countries", h.GetCountries)
	e.GET("/countries/export.arrow", h.ExportCountries)
	e.POST("/countries/refresh", h.RefreshCountries)
}

// Load performs the first fetch. The API answers 503 until it commits.
func (h *CountriesHandler) Load(ctx context.Context) error {
	h.logger.Info("loading countries")
	t0 := time.Now()

	n, err := h.session.Refresh(ctx)
	if err != nil {
		h.logger.Error("countries load failed", zap.Error(err))
		return err
	}
	h.logger.Info("countries loaded", zap.Int("count", n), zap.Duration("took", time.Since(t0)))
	return nil
}

// view builds a request-scoped view for ?filter=, region when absent.
func (h *CountriesHandler) view(c echo.Context) (models.CountryView, error) {
	f, err := countries.ParseFilter(c.QueryParam("filter"))
	if err != nil {
		return models.CountryView{}, err
	}
	return h.session.View(f)
}

func (h *CountriesHandler) fail(c echo.Context, err error) error {
	if errors.Is(err, countries.ErrNotLoaded) {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: loadingMessage})
	}
	return respondError(c, statusOf(err), err)
}

func (h *CountriesHandler) GetCountries(c echo.Context) error {
	view, err := h.view(c)
	if err != nil {
		return h.fail(c, err)
	}
	return respondJSON(c, http.StatusOK, view)
}

func (h *CountriesHandler) ExportCountries(c echo.Context) error {
	view, err := h.view(c)
	if err != nil {
		return h.fail(c, err)
	}
	data, rows, err := export.Encode(view)
	if err != nil {
		return err
	}
	h.logger.Info("arrow export",
		zap.String("filter", view.Filter),
		zap.Int("rows", rows),
		zap.String("size", bytes.Format(int64(len(data)))))

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="countries-%s.arrow"`, view.Filter))
	return c.Blob(http.StatusOK, export.ContentType, data)
}

type refreshResponse struct {
	Count int `json:"count"`
}

func (h *CountriesHandler) RefreshCountries(c echo.Context) error {
	n, err := h.session.Refresh(c.Request().Context())
	switch {
	case errors.Is(err, countries.ErrStale):
		return c.JSON(http.StatusConflict, errorBody{Error: "A newer refresh is in progress."})
	case apperr.Is(err, apperr.KindNetwork):
		h.logger.Warn("countries refresh failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, errorBody{Error: apperr.Message(err, "Error fetching countries.")})
	case err != nil:
		return err
	}
	return c.JSON(http.StatusAccepted, refreshResponse{Count: n})
}
