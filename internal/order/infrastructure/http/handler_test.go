package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcraft-studio/marketplace-api/internal/order/application"
	"github.com/pixelcraft-studio/marketplace-api/internal/order/domain"
)

type fakeRepo struct {
	orders []domain.Order
}

func (f *fakeRepo) Insert(_ context.Context, o domain.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeRepo) ListNewestFirst(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, application.ErrOrderNotFound
}

func newServer(repo *fakeRepo) *httptest.Server {
	log := slog.New(slog.DiscardHandler)
	h := NewHandler(log, application.NewService(log, repo))
	r := chi.NewRouter()
	h.Register(r)
	return httptest.NewServer(r)
}

func TestCreateOrderSuccess(t *testing.T) {
	srv := newServer(&fakeRepo{})
	defer srv.Close()

	body := `{"customer_email":"a@b.com","items":[{"product_id":"p1","product_name":"Logo","quantity":2,"price":25.0}]}`
	resp, err := http.Post(srv.URL+"/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var o domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.Equal(t, 50.0, o.TotalAmount)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.NotEmpty(t, o.ID)
	assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt, 5*time.Second)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "p1", o.Items[0].ProductID)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{
			name:   "blank email",
			body:   `{"customer_email":"   ","items":[{"product_id":"p1","quantity":1,"price":5}]}`,
			detail: "Customer email is required",
		},
		{
			name:   "empty items",
			body:   `{"customer_email":"a@b.com","items":[]}`,
			detail: "Order must contain at least one item",
		},
		{
			name:   "missing items",
			body:   `{"customer_email":"a@b.com"}`,
			detail: "Order must contain at least one item",
		},
		{
			name:   "zero quantity",
			body:   `{"customer_email":"a@b.com","items":[{"product_id":"p1","quantity":0,"price":5}]}`,
			detail: "Item quantity must be a positive integer",
		},
		{
			name:   "negative quantity",
			body:   `{"customer_email":"a@b.com","items":[{"product_id":"p1","quantity":-2,"price":5}]}`,
			detail: "Item quantity must be a positive integer",
		},
		{
			name:   "malformed body",
			body:   `{"customer_email": 42, "items": "nope"}`,
			detail: "invalid request body",
		},
	}

	srv := newServer(&fakeRepo{})
	defer srv.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/orders", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			var e struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			assert.Equal(t, tt.detail, e.Detail)
		})
	}
}

func TestCreateOrderOmittedQuantityDefaultsToOne(t *testing.T) {
	srv := newServer(&fakeRepo{})
	defer srv.Close()

	body := `{"customer_email":"a@b.com","items":[{"product_id":"p1","product_name":"Art","price":45.0}]}`
	resp, err := http.Post(srv.URL+"/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var o domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	require.Len(t, o.Items, 1)
	assert.Equal(t, 1, o.Items[0].Quantity)
	assert.Equal(t, 45.0, o.TotalAmount)
}

func TestListOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{orders: []domain.Order{
		{ID: "old", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}}
	srv := newServer(repo)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
	assert.Equal(t, "newest", orders[0].ID)
}

func TestGetOrderNotFound(t *testing.T) {
	srv := newServer(&fakeRepo{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var e struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "Order not found", e.Detail)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	srv := newServer(&fakeRepo{})
	defer srv.Close()

	body := `{"customer_email":"a@b.com","customer_note":"gift","items":[{"product_id":"p1","product_name":"Logo","quantity":2,"price":25.0,"selected_options":{"style":"Oil Painting"}}]}`
	resp, err := http.Post(srv.URL+"/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	var created domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/orders/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created.Items, got.Items)
	assert.Equal(t, created.TotalAmount, got.TotalAmount)
	assert.Equal(t, created.CustomerEmail, got.CustomerEmail)
	assert.Equal(t, created.Status, got.Status)
}
