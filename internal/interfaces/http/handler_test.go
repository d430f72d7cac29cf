package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/report"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app   *fiber.App
	store *memory.Store
}

// newTestServer levanta la API completa sobre el almacén en memoria con el catálogo de ejemplo.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Load(context.Background(), store.Categories(), store.Products(), seed.Sample()))

	reg := prometheus.NewRegistry()
	reports := report.NewReportUseCase(store.Catalog(), report.Config{MaxDepth: 10, TopN: 5, Timeout: 5 * time.Second}, report.NewMetrics(reg))
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	app.Use(apphttp.NewHTTPMetrics(reg).Middleware())
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(store.Categories(), 10),
		ProductUC:  usecase.NewProductUseCase(store.Products(), store.Categories(), 10),
		OrderUC:    usecase.NewOrderUseCase(store.Orders()),
		UserUC:     usecase.NewUserUseCase(store.Users()),
		ReportUC:   reports,
		AuthUC:     authUC,
		JWTSecret:  testJWTSecret,
	})
	return &testServer{app: app, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_ListarYObtener(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(t, body)["items"], 12)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	resp, body = s.do(t, http.MethodGet, "/api/categories/CAT101", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, body)
	assert.Equal(t, "Computers", got["category_name"])
	assert.Equal(t, "CAT001", got["parent_category"])
	assert.EqualValues(t, 1, got["level"])

	resp, body = s.do(t, http.MethodGet, "/api/categories/CAT999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, body)["code"])
}

func TestCategorias_Descendientes(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/categories/CAT001/descendants", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 8, decode(t, body)["total"])

	resp, body = s.do(t, http.MethodGet, "/api/categories/CAT001/descendants?inclusive=false&max_depth=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, decode(t, body)["total"])

	resp, _ = s.do(t, http.MethodGet, "/api/categories/CAT001/descendants?max_depth=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategorias_CrearRequiereAdmin(t *testing.T) {
	s := newTestServer(t)
	in := map[string]any{"category_id": "CAT104", "category_name": "Wearables", "parent_category": "CAT001"}

	resp, _ := s.do(t, http.MethodPost, "/api/categories", "", in)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/categories", tokenForRole(t, "customer"), in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/categories", tokenForRole(t, "admin"), in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 1, decode(t, body)["level"])

	resp, body = s.do(t, http.MethodPost, "/api/categories", tokenForRole(t, "admin"), in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode(t, body)["code"])
}

func TestCategorias_CrearValidaCuerpo(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/categories", tokenForRole(t, "admin"), map[string]any{"category_id": "X1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	got := decode(t, body)
	assert.Equal(t, "VALIDATION", got["code"])
	assert.Contains(t, got["message"], "Name")
}

func TestCategorias_DesactivarOcultaSubarbol(t *testing.T) {
	s := newTestServer(t)
	admin := tokenForRole(t, "admin")

	resp, _ := s.do(t, http.MethodDelete, "/api/categories/CAT101", admin, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/categories/CAT101", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := s.do(t, http.MethodGet, "/api/categories/CAT001/descendants", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, decode(t, body)["total"])
}

func TestCategorias_Arbol(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/categories/tree", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, decode(t, body)["total_roots"])

	resp, body = s.do(t, http.MethodGet, "/api/categories/tree?root=CAT102", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	roots := decode(t, body)["roots"].([]any)
	require.Len(t, roots, 1)
	assert.EqualValues(t, 2, roots[0].(map[string]any)["children_count"])

	resp, _ = s.do(t, http.MethodGet, "/api/categories/tree?root=CAT999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_PorCategoria(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/products/category/CAT001", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, decode(t, body)["total"])

	resp, body = s.do(t, http.MethodGet, "/api/products/category/CAT001?include_children=true", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 18, decode(t, body)["total"])
}

func TestProductos_CrearYActualizar(t *testing.T) {
	s := newTestServer(t)
	admin := tokenForRole(t, "admin")

	in := map[string]any{
		"product_id": "PROD100", "product_name": "Mouse", "product_price": "19.99",
		"product_quantity": 3, "product_category": "CAT103",
	}
	resp, body := s.do(t, http.MethodPost, "/api/products", admin, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, "59.97", decode(t, body)["inventory_value"])

	in["product_id"] = "PROD101"
	in["product_category"] = "CAT999"
	resp, _ = s.do(t, http.MethodPost, "/api/products", admin, in)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = s.do(t, http.MethodPut, "/api/products/PROD100", admin, map[string]any{"product_quantity": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 10, decode(t, body)["product_quantity"])

	resp, _ = s.do(t, http.MethodPut, "/api/products/PROD100", admin, map[string]any{"product_quantity": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_Estadisticas(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/products/aggregation/statistics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode(t, body))

	resp, _ = s.do(t, http.MethodGet, "/api/products/aggregation/by-category", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes_Jerarquia(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/reports/hierarchy", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode(t, body)["items"].([]any)
	require.Len(t, items, 3)
	byCode := map[string]map[string]any{}
	for _, it := range items {
		m := it.(map[string]any)
		byCode[m["category_id"].(string)] = m
	}
	assert.EqualValues(t, 18, byCode["CAT001"]["total_products_in_hierarchy"])
	assert.EqualValues(t, 7, byCode["CAT001"]["total_descendants"])
}

func TestReportes_Bundle(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/reports", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, body)
	for _, key := range []string{"category_stats", "hierarchy", "top_products", "distribution", "generated_at"} {
		assert.Contains(t, got, key)
	}
}

func TestReportes_AlmacenCaido(t *testing.T) {
	s := newTestServer(t)
	s.store.SetFailure(errors.New("conexión rechazada"))

	for _, path := range []string{"/api/reports/category-stats", "/api/reports/top-products", "/api/reports/distribution"} {
		resp, body := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
		assert.Equal(t, "UNAVAILABLE", decode(t, body)["code"])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth, usuarios y pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroLoginYUsuario(t *testing.T) {
	s := newTestServer(t)
	reg := map[string]any{"email": "Ana@Example.com", "password": "secreto123", "name": "Ana", "age": 30}

	resp, body := s.do(t, http.MethodPost, "/api/auth/register", "", reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	userID := decode(t, body)["id"].(string)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/register", "", reg)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "mala-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "nadie@example.com", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := "Bearer " + decode(t, body)["token"].(string)

	resp, body = s.do(t, http.MethodGet, "/api/users/"+userID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "customer", decode(t, body)["role"])

	resp, _ = s.do(t, http.MethodGet, "/api/users/otro-id", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUsuarios_FiltroNoPermitido(t *testing.T) {
	s := newTestServer(t)
	admin := tokenForRole(t, "admin")

	resp, _ := s.do(t, http.MethodGet, "/api/users?min_age=18&sort_by=age", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := s.do(t, http.MethodGet, "/api/users?password_hash=x", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, body)["code"])
}

func TestPedidos_CRUDYAgregacion(t *testing.T) {
	s := newTestServer(t)
	token := tokenForRole(t, "customer")

	resp, _ := s.do(t, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	for _, o := range []map[string]any{
		{"order_id": "ORD1", "order_value": "100.50", "user_id": "U1"},
		{"order_id": "ORD2", "order_value": "50", "user_id": "U1"},
		{"order_id": "ORD3", "order_value": "10", "user_id": "U2"},
	} {
		resp, body := s.do(t, http.MethodPost, "/api/orders", token, o)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := s.do(t, http.MethodGet, "/api/orders/user/U1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, decode(t, body)["total"])

	resp, body = s.do(t, http.MethodGet, "/api/orders/aggregation", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, body)
	assert.EqualValues(t, 3, got["total_orders"])
	assert.Equal(t, "160.5", got["total_value"])

	resp, _ = s.do(t, http.MethodDelete, "/api/orders/ORD3", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/orders/ORD3", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
