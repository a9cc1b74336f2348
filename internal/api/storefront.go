package api

import (
	"coursework/internal/apperr"
	"coursework/internal/catalog"
	"coursework/internal/models"
	"coursework/internal/storefront"
	"net/http"

	"github.com/labstack/echo/v4"
)

type StorefrontHandler struct {
	svc *storefront.Service
}

func NewStorefrontHandler(svc *storefront.Service) *StorefrontHandler {
	return &StorefrontHandler{svc: svc}
}

func (h *StorefrontHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.GetProducts)
	e.GET("/products/:category", h.GetProducts)
	e.GET("/products/:category/:subcategory", h.GetProducts)
	e.GET("/item/:category/:subcategory/:id", h.GetItem)
	e.GET("/faqs", h.GetFAQs)
	e.POST("/loyalty/signup", h.SignUp)
	e.POST("/loyalty/login", h.Login)
	e.POST("/feedback", h.SubmitFeedback)
	e.GET("/categories", h.GetCategories)
	e.GET("/breadcrumbs", h.GetBreadcrumbs)
	e.POST("/cart/quote", h.QuoteCart)
	e.GET("/storage-keys", h.GetStorageKeys)
}

// storefrontStatus keeps the store's contract of answering lookups that
// miss with 400.
func storefrontStatus(err error) int {
	if apperr.Is(err, apperr.KindNotFound) {
		return http.StatusBadRequest
	}
	return statusOf(err)
}

func (h *StorefrontHandler) fail(c echo.Context, err error) error {
	return respondError(c, storefrontStatus(err), err)
}

func (h *StorefrontHandler) GetProducts(c echo.Context) error {
	mode, err := catalog.ParseSortMode(c.QueryParam("sort"))
	if err != nil {
		return h.fail(c, err)
	}
	products, err := h.svc.Products(c.Request().Context(), param(c, "category"), param(c, "subcategory"), mode)
	if err != nil {
		return h.fail(c, err)
	}
	return respondJSON(c, http.StatusOK, paginate(c, products))
}

func (h *StorefrontHandler) GetItem(c echo.Context) error {
	p, err := h.svc.Item(c.Request().Context(), param(c, "category"), param(c, "subcategory"), param(c, "id"))
	if err != nil {
		return h.fail(c, err)
	}
	return respondJSON(c, http.StatusOK, p)
}

func (h *StorefrontHandler) GetFAQs(c echo.Context) error {
	faqs, err := h.svc.FAQs(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return respondJSON(c, http.StatusOK, faqs)
}

func (h *StorefrontHandler) SignUp(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := h.svc.SignUp(c.Request().Context(), req); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}

type loginResponse struct {
	Success bool               `json:"success"`
	User    models.LoyaltyUser `json:"user"`
}

func (h *StorefrontHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	user, err := h.svc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{Success: true, User: user})
}

func (h *StorefrontHandler) SubmitFeedback(c echo.Context) error {
	var req models.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := h.svc.SubmitFeedback(c.Request().Context(), req); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, successBody{Success: true})
}

func (h *StorefrontHandler) GetCategories(c echo.Context) error {
	return respondJSON(c, http.StatusOK, catalog.Categories)
}

func (h *StorefrontHandler) GetBreadcrumbs(c echo.Context) error {
	return respondJSON(c, http.StatusOK, catalog.Breadcrumbs(c.QueryParam("category"), c.QueryParam("subcategory")))
}

type quoteRequest struct {
	Items []models.CartRef `json:"items"`
}

func (h *StorefrontHandler) QuoteCart(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	quote, err := h.svc.Quote(c.Request().Context(), req.Items)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *StorefrontHandler) GetStorageKeys(c echo.Context) error {
	return respondJSON(c, http.StatusOK, map[string]string{
		"cart":      models.StorageKeyCart,
		"theme":     models.StorageKeyTheme,
		"loyalUser": models.StorageKeyLoyalUser,
	})
}
