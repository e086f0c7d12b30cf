// Package http exposes the partner-facing REST API on echo. Handlers are
// thin: they parse input, call a command or query handler, and map core
// errors to status codes. No business logic lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	updatePriceHandler  commands.UpdateOrderPriceCommandHandler

	getOrderHandler       queries.GetOrderQueryHandler
	getPartnerOrdersQuery queries.GetPartnerOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePriceHandler commands.UpdateOrderPriceCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPartnerOrdersQuery queries.GetPartnerOrdersQueryHandler,
) *Server {
	return &Server{
		updateStatusHandler:   updateStatusHandler,
		updatePriceHandler:    updatePriceHandler,
		getOrderHandler:       getOrderHandler,
		getPartnerOrdersQuery: getPartnerOrdersQuery,
	}
}

// RegisterRoutes mounts the partner API behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, authSecret []byte) {
	api := e.Group("/api/v1", AuthMiddleware(authSecret))

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PUT("/orders/:orderID/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderID/price", s.UpdateOrderPrice)
}

type orderResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	WeightGrams   string  `json:"weight_grams"`
	PriceBefore   string  `json:"price_before"`
	PriceAfter    string  `json:"price_after"`
	PaymentURL    string  `json:"payment_url,omitempty"`
	PaymentExpiry *string `json:"payment_expires_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	WeightGrams string `json:"weight_grams,omitempty"`
}

type updatePriceRequest struct {
	Price       string `json:"price,omitempty"`
	TariffPerKg string `json:"tariff_per_kg,omitempty"`
}

type paymentLinkResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// GetOrders handles GET /api/v1/orders - lists the partner's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody("missing actor"))
	}

	query, err := queries.NewGetPartnerOrdersQuery(actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getPartnerOrdersQuery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody("missing actor"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid order id"))
	}

	query, err := queries.NewGetOrderQuery(orderID, actor.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody("missing actor"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid order id"))
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid request body"))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	weight := kernel.ZeroWeight()
	if req.WeightGrams != "" {
		grams, parseErr := decimal.NewFromString(req.WeightGrams)
		if parseErr != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid weight"))
		}
		if weight, err = kernel.NewWeight(grams); err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actor.ID, status, weight)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderPrice handles PUT /api/v1/orders/:orderID/price.
// Responds with the freshly generated payment link.
func (s *Server) UpdateOrderPrice(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody("missing actor"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid order id"))
	}

	var req updatePriceRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid request body"))
	}

	price := kernel.ZeroMoney()
	if req.Price != "" {
		amount, parseErr := decimal.NewFromString(req.Price)
		if parseErr != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid price"))
		}
		if price, err = kernel.NewMoney(amount); err != nil {
			return respondError(ctx, err)
		}
	}

	tariff := decimal.Zero
	if req.TariffPerKg != "" {
		if tariff, err = decimal.NewFromString(req.TariffPerKg); err != nil {
			return ctx.JSON(http.StatusUnprocessableEntity, errorBody("invalid tariff"))
		}
	}

	cmd, err := commands.NewUpdateOrderPriceCommand(orderID, actor.ID, price, tariff)
	if err != nil {
		return respondError(ctx, err)
	}

	link, err := s.updatePriceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentLinkResponse{
		URL:       link.URL(),
		ExpiresAt: link.ExpiresAt().Format(time.RFC3339),
	})
}

func toOrderResponse(o queries.OrderResponse) orderResponse {
	resp := orderResponse{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		WeightGrams:   o.WeightGrams.String(),
		PriceBefore:   o.PriceBefore.String(),
		PriceAfter:    o.PriceAfter.String(),
		PaymentURL:    o.PaymentURL,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
	if o.PaymentExpiry != nil {
		expiry := o.PaymentExpiry.Format(time.RFC3339)
		resp.PaymentExpiry = &expiry
	}
	return resp
}

type errorResponse struct {
	Message string `json:"message"`
}

func errorBody(message string) errorResponse {
	return errorResponse{Message: message}
}

// respondError maps core errors to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, errorBody(err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, order.ErrPriceImmutable), errors.Is(err, errs.ErrUpdateConflict):
		return ctx.JSON(http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody(err.Error()))
	case errors.Is(err, errs.ErrPaymentGateway):
		return ctx.JSON(http.StatusBadGateway, errorBody(err.Error()))
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}
