package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/pixelcraft-studio/marketplace-api/internal/order/application"
	"github.com/pixelcraft-studio/marketplace-api/internal/order/domain"
	"github.com/pixelcraft-studio/marketplace-api/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

type createOrderReq struct {
	CustomerEmail string         `json:"customer_email"`
	CustomerNote  string         `json:"customer_note"`
	Items         []orderItemReq `json:"items"`
}

// orderItemReq carries quantity as a pointer so an omitted field can default
// to one while an explicit zero stays zero for validation to reject.
type orderItemReq struct {
	ProductID       string         `json:"product_id"`
	ProductName     string         `json:"product_name"`
	Quantity        *int           `json:"quantity"`
	Price           float64        `json:"price"`
	SelectedOptions map[string]any `json:"selected_options"`
}

func (r orderItemReq) toDomain() domain.OrderItem {
	quantity := 1
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return domain.OrderItem{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Quantity:        quantity,
		Price:           r.Price,
		SelectedOptions: r.SelectedOptions,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, it.toDomain())
	}

	o, err := h.service.Create(ctx, application.CreateOrder{
		CustomerEmail: req.CustomerEmail,
		CustomerNote:  req.CustomerNote,
		Items:         items,
	})
	if err != nil {
		var ve *application.ValidationError
		if errors.As(err, &ve) {
			httpx.Error(w, http.StatusUnprocessableEntity, ve.Error())
			return
		}
		h.log.Error("create order failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListOrders")
	defer span.End()

	orders, err := h.service.List(ctx)
	if err != nil {
		h.log.Error("list orders failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	o, err := h.service.Get(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, application.ErrOrderNotFound) {
		httpx.Error(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		h.log.Error("get order failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}
