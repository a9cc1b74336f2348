package api

import (
	"coursework/internal/engine"
	"coursework/internal/models"
	"coursework/internal/storage"
	"coursework/internal/storefront"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const productsJSON = `[
  {"id": 0, "name": "Knee Brace", "price": 34.99, "category": "prevention", "subcategory": "Bracing + Supports"},
  {"id": 1, "name": "Athletic Tape", "price": 7.5, "category": "prevention", "subcategory": "Tape + Wrapping"},
  {"id": 2, "name": "Foam Roller", "price": 24, "category": "recovery", "subcategory": "Massage Tools"}
]`

type storeFiles struct {
	products, faqs, loyalty, feedback string
}

func newStorefront(t *testing.T) (*echo.Echo, storeFiles) {
	t.Helper()
	dir := t.TempDir()
	files := storeFiles{
		products: filepath.Join(dir, "products.json"),
		faqs:     filepath.Join(dir, "faqs.json"),
		loyalty:  filepath.Join(dir, "loyalty.json"),
		feedback: filepath.Join(dir, "feedback.json"),
	}
	require.NoError(t, os.WriteFile(files.products, []byte(productsJSON), 0o644))
	require.NoError(t, os.WriteFile(files.faqs, []byte(`[{"question":"Do you ship?","answer":"Yes."}]`), 0o644))
	require.NoError(t, os.WriteFile(files.loyalty, []byte(`[{"name":"Ada","email":"ada@example.com","phone":"1","joined":"2024-01-01T00:00:00Z"}]`), 0o644))
	require.NoError(t, os.WriteFile(files.feedback, []byte(`[]`), 0o644))

	svc := storefront.NewService(storefront.Stores{
		Products: storage.NewJSONFile(files.products, storefront.ProductKey),
		FAQs:     storage.NewJSONFile(files.faqs, storefront.FAQKey),
		Loyalty:  storage.NewJSONFile(files.loyalty, storefront.LoyaltyKey),
		Feedback: storage.NewJSONFile(files.feedback, storefront.FeedbackKey),
	}, engine.MustCollator(engine.DefaultLocale), zap.NewNop(),
		storefront.WithClock(func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }))

	e := newTestEcho()
	NewStorefrontHandler(svc).RegisterRoutes(e)
	return e, files
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func productNames(ps []models.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestStorefront_Products(t *testing.T) {
	e, _ := newStorefront(t)

	rec := do(e, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Product](t, rec), 3)

	rec = do(e, http.MethodGet, "/products/prevention", "")
	assert.Equal(t, []string{"Knee Brace", "Athletic Tape"}, productNames(decode[[]models.Product](t, rec)))

	rec = do(e, http.MethodGet, "/products/prevention/Tape%20+%20Wrapping", "")
	assert.Equal(t, []string{"Athletic Tape"}, productNames(decode[[]models.Product](t, rec)))

	rec = do(e, http.MethodGet, "/products/prevention/Tape%20%2B%20Wrapping", "")
	assert.Equal(t, []string{"Athletic Tape"}, productNames(decode[[]models.Product](t, rec)))

	rec = do(e, http.MethodGet, "/products?sort=price-asc", "")
	assert.Equal(t, []string{"Athletic Tape", "Foam Roller", "Knee Brace"}, productNames(decode[[]models.Product](t, rec)))

	rec = do(e, http.MethodGet, "/products/rehab", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(e, http.MethodGet, "/products?sort=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorefront_ProductsUnreadable(t *testing.T) {
	e, files := newStorefront(t)
	require.NoError(t, os.Remove(files.products))

	rec := do(e, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Could not read products."}`, rec.Body.String())
}

func TestStorefront_Item(t *testing.T) {
	e, files := newStorefront(t)
	before := readFile(t, files.products)

	rec := do(e, http.MethodGet, "/item/prevention/Tape%20+%20Wrapping/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Athletic Tape", decode[models.Product](t, rec).Name)

	rec = do(e, http.MethodGet, "/item/prevention/Tape%20+%20Wrapping/3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
	assert.Equal(t, before, readFile(t, files.products))
}

func TestStorefront_FAQs(t *testing.T) {
	e, files := newStorefront(t)

	rec := do(e, http.MethodGet, "/faqs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.FAQ{{Question: "Do you ship?", Answer: "Yes."}}, decode[[]models.FAQ](t, rec))

	require.NoError(t, os.WriteFile(files.faqs, []byte(`{not json`), 0o644))
	rec = do(e, http.MethodGet, "/faqs", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Could not read FAQs."}`, rec.Body.String())
}

func TestStorefront_SignUp(t *testing.T) {
	e, files := newStorefront(t)

	rec := do(e, http.MethodPost, "/loyalty/signup", `{"name":"Grace","email":"grace@example.com","phone":"2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Contains(t, readFile(t, files.loyalty), `"joined": "2024-05-01T08:00:00Z"`)

	before := readFile(t, files.loyalty)
	rec = do(e, http.MethodPost, "/loyalty/signup", `{"name":"Grace","email":"grace@example.com","phone":"3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already registered."}`, rec.Body.String())
	assert.Equal(t, before, readFile(t, files.loyalty))

	rec = do(e, http.MethodPost, "/loyalty/signup", `{"name":"Bo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"All fields required."}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/loyalty/signup", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorefront_Login(t *testing.T) {
	e, _ := newStorefront(t)

	rec := do(e, http.MethodPost, "/loyalty/login", `{"email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[loginResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada", resp.User.Name)

	rec = do(e, http.MethodPost, "/loyalty/login", `{"email":""}`)
	assert.JSONEq(t, `{"error":"Email required."}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/loyalty/login", `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No account found with that email."}`, rec.Body.String())
}

func TestStorefront_Feedback(t *testing.T) {
	e, files := newStorefront(t)

	rec := do(e, http.MethodPost, "/feedback", `{"name":"Ada","email":"a@example.com","subject":"Hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"All fields are required."}`, rec.Body.String())
	assert.JSONEq(t, `[]`, readFile(t, files.feedback))

	rec = do(e, http.MethodPost, "/feedback", `{"name":"Ada","email":"a@example.com","subject":"Hi","message":"Thanks"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, readFile(t, files.feedback), `"message": "Thanks"`)
}

func TestStorefront_Navigation(t *testing.T) {
	e, _ := newStorefront(t)

	rec := do(e, http.MethodGet, "/categories", "")
	cats := decode[[]models.Category](t, rec)
	require.Len(t, cats, 3)
	assert.Equal(t, "prevention", cats[0].Slug)

	rec = do(e, http.MethodGet, "/breadcrumbs?category=recovery&subcategory=Massage+Tools", "")
	crumbs := decode[[]models.Crumb](t, rec)
	require.Len(t, crumbs, 4)
	assert.Equal(t, "Recovery", crumbs[2].Label)
	assert.Equal(t, "Massage Tools", crumbs[3].Label)

	rec = do(e, http.MethodGet, "/storage-keys", "")
	assert.JSONEq(t, `{"cart":"cart","theme":"theme","loyalUser":"loyalUser"}`, rec.Body.String())
}

func TestStorefront_Quote(t *testing.T) {
	e, _ := newStorefront(t)

	rec := do(e, http.MethodPost, "/cart/quote", `{"items":[
		{"category":"prevention","subcategory":"Tape + Wrapping","id":"1"},
		{"category":"prevention","subcategory":"Tape + Wrapping","id":"1"},
		{"category":"recovery","subcategory":"Massage Tools","id":"9"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	quote := decode[models.CartQuote](t, rec)
	assert.Len(t, quote.Lines, 2)
	assert.Len(t, quote.Missing, 1)
	assert.InDelta(t, 15.0, quote.Total, 0.001)
}
