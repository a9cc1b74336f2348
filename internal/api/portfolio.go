package api

import (
	"coursework/internal/portfolio"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	resume *portfolio.Resume
	now    func() time.Time
}

func NewPortfolioHandler(resume *portfolio.Resume) *PortfolioHandler {
	return &PortfolioHandler{resume: resume, now: time.Now}
}

func (h *PortfolioHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/resume", h.GetResume)
	e.GET("/theme", h.GetTheme)
}

// GetResume shows the PDF inline; any other format downloads the TeX source.
func (h *PortfolioHandler) GetResume(c echo.Context) error {
	format := portfolio.ParseFormat(c.QueryParam("format"))
	path, err := h.resume.Path(format)
	if err != nil {
		return respondError(c, statusOf(err), err)
	}
	if format == portfolio.FormatPDF {
		return c.Inline(path, h.resume.FileName(format))
	}
	return c.Attachment(path, h.resume.FileName(format))
}

type themeResponse struct {
	Theme portfolio.Theme `json:"theme"`
}

// GetTheme answers for ?time=HH:MM, or for the server clock without it.
func (h *PortfolioHandler) GetTheme(c echo.Context) error {
	clock := c.QueryParam("time")
	if clock == "" {
		return c.JSON(http.StatusOK, themeResponse{Theme: portfolio.ThemeAt(h.now())})
	}
	theme, err := portfolio.ParseTheme(clock)
	if err != nil {
		return respondError(c, statusOf(err), err)
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}
