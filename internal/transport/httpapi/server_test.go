package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	"github.com/vladislavdragonenkov/orders/internal/service/order"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/orders/internal/transport/httpapi"
)

type testAPI struct {
	router  *gin.Engine
	catalog *catalog.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	entry := logrus.NewEntry(logger)

	catalogSvc := catalog.NewService(memory.NewProductRepository(), entry)
	engine := order.NewEngine(memory.NewOrderRepository(), catalogSvc, nil, nil, entry)
	server := httpapi.NewServer(engine, catalogSvc, entry)

	return &testAPI{
		router:  server.Router(nil),
		catalog: catalogSvc,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) seedProduct(t *testing.T, name string, price, vat float64) string {
	t.Helper()

	product, err := a.catalog.Create(domain.Product{Name: name, Price: price, VAT: vat})
	require.NoError(t, err)
	return product.ID
}

func orderBody(items ...map[string]any) map[string]any {
	return map[string]any{"order": map[string]any{"items": items}}
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateOrder(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 20.0, 0.1)
	productB := api.seedProduct(t, "B", 10.0, 0.1)

	rec := api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 2},
		map[string]any{"product_id": productB, "quantity": 1.5},
	))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeOrder(t, rec)
	require.NotEmpty(t, out["order_id"])
	require.InDelta(t, 55.0, out["order_price"].(float64), 1e-9)
	require.InDelta(t, 5.5, out["order_vat"].(float64), 1e-9)
	require.Len(t, out["items"], 2)
}

func TestCreateOrder_MergesDuplicates(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 2.0, 0)

	rec := api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 1},
		map[string]any{"product_id": productA, "quantity": 2},
	))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeOrder(t, rec)
	items := out["items"].([]any)
	require.Len(t, items, 1)
	merged := items[0].(map[string]any)
	require.InDelta(t, 3.0, merged["quantity"].(float64), 1e-9)
}

func TestCreateOrder_BadRequests(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 1.0, 0)

	cases := []struct {
		name string
		body any
	}{
		{
			name: "empty body",
			body: map[string]any{},
		},
		{
			name: "no items",
			body: map[string]any{"order": map[string]any{"items": []any{}}},
		},
		{
			name: "zero quantity",
			body: orderBody(map[string]any{"product_id": productA, "quantity": 0}),
		},
		{
			name: "negative quantity",
			body: orderBody(map[string]any{"product_id": productA, "quantity": -2}),
		},
		{
			name: "missing product id",
			body: orderBody(map[string]any{"quantity": 1}),
		},
		{
			name: "unknown product",
			body: orderBody(map[string]any{"product_id": "ghost", "quantity": 1}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/orders", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetOrder(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 3.0, 0.1)

	created := decodeOrder(t, api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 2},
	)))
	orderID := created["order_id"].(string)

	rec := api.do(t, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeOrder(t, rec)
	require.Equal(t, orderID, out["order_id"])
	require.InDelta(t, 6.0, out["order_price"].(float64), 1e-9)
}

func TestGetOrder_NotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/orders/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_MissingProductIsBadRequest(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 3.0, 0.1)

	created := decodeOrder(t, api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 1},
	)))
	orderID := created["order_id"].(string)

	removed, err := api.catalog.Delete(productA)
	require.NoError(t, err)
	require.True(t, removed)

	// Каталог "уехал" после создания заказа: чтение отвечает 400, не 404.
	rec := api.do(t, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrder(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 1.0, 0)
	productB := api.seedProduct(t, "B", 2.0, 0)

	created := decodeOrder(t, api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 1},
	)))
	orderID := created["order_id"].(string)

	rec := api.do(t, http.MethodPut, "/orders/"+orderID, orderBody(
		map[string]any{"product_id": productB, "quantity": 4},
	))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeOrder(t, rec)
	require.Equal(t, orderID, out["order_id"])
	require.InDelta(t, 8.0, out["order_price"].(float64), 1e-9)
	require.Len(t, out["items"], 1)
}

func TestUpdateOrder_EmptyPayloadIsNoOp(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 5.0, 0)

	created := decodeOrder(t, api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 2},
	)))
	orderID := created["order_id"].(string)

	rec := api.do(t, http.MethodPut, "/orders/"+orderID, map[string]any{})
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeOrder(t, rec)
	require.InDelta(t, 10.0, out["order_price"].(float64), 1e-9)
	require.Len(t, out["items"], 1)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 1.0, 0)

	rec := api.do(t, http.MethodPut, "/orders/missing", orderBody(
		map[string]any{"product_id": productA, "quantity": 1},
	))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrder(t *testing.T) {
	api := newTestAPI(t)
	productA := api.seedProduct(t, "A", 1.0, 0)

	created := decodeOrder(t, api.do(t, http.MethodPost, "/orders", orderBody(
		map[string]any{"product_id": productA, "quantity": 1},
	)))
	orderID := created["order_id"].(string)

	rec := api.do(t, http.MethodDelete, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/orders/"+orderID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductCRUD(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/products", map[string]any{
		"name":        "Widget",
		"price":       9.99,
		"vat":         0.2,
		"description": "a widget",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	productID := created["product_id"].(string)
	require.NotEmpty(t, productID)

	rec = api.do(t, http.MethodGet, "/products/"+productID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPut, "/products/"+productID, map[string]any{"price": 12.5})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.InDelta(t, 12.5, updated["price"].(float64), 1e-9)
	require.Equal(t, "Widget", updated["name"])

	rec = api.do(t, http.MethodDelete, "/products/"+productID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/products/"+productID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductValidation(t *testing.T) {
	api := newTestAPI(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing name",
			body: map[string]any{"price": 1.0, "vat": 0.1},
		},
		{
			name: "missing price",
			body: map[string]any{"name": "X", "vat": 0.1},
		},
		{
			name: "negative price",
			body: map[string]any{"name": "X", "price": -1.0, "vat": 0.1},
		},
		{
			name: "negative vat",
			body: map[string]any{"name": "X", "price": 1.0, "vat": -0.1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/products", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFindProducts(t *testing.T) {
	api := newTestAPI(t)
	api.seedProduct(t, "Red Chair", 10, 0.1)
	api.seedProduct(t, "Blue Chair", 12, 0.1)
	api.seedProduct(t, "Table", 30, 0.1)

	rec := api.do(t, http.MethodGet, "/products?name=chair", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 2)

	rec = api.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result, 3)
}

func TestProductVATRates(t *testing.T) {
	// Сквозная проверка расчёта: пять дешёвых позиций, НДС каждой
	// округляется на позиции до суммирования.
	api := newTestAPI(t)

	items := make([]map[string]any, 0, 5)
	for i := 0; i < 5; i++ {
		id := api.seedProduct(t, fmt.Sprintf("cheap-%d", i), 0.1, 0.1)
		items = append(items, map[string]any{"product_id": id, "quantity": 2})
	}

	rec := api.do(t, http.MethodPost, "/orders", orderBody(items...))
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeOrder(t, rec)
	require.InDelta(t, 0.10, out["order_vat"].(float64), 1e-9)
	for _, raw := range out["items"].([]any) {
		item := raw.(map[string]any)
		require.InDelta(t, 0.02, item["vat"].(float64), 1e-9)
	}
}
