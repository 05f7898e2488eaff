// Package http exposes the order management use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		searchOrdersHandler:      searchOrdersHandler,
	}
}

// RegisterRoutes attaches the order endpoints to the echo instance.
// The search route is registered before the parameterized routes so that
// "search" is never interpreted as an order identifier.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/search", s.SearchOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// CreateOrderRequest is the payload for creating an order.
type CreateOrderRequest struct {
	CustomerEmail string          `json:"customerEmail" example:"customer@example.com"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number" example:"99.95"`
}

// UpdateOrderStatusRequest is the payload for transitioning an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" example:"Paid"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID            string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrderNumber   string          `json:"orderNumber" example:"ORD-20240115-A1B2C3D4"`
	CustomerEmail string          `json:"customerEmail" example:"customer@example.com"`
	OrderDate     time.Time       `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number" example:"99.95"`
	Status        string          `json:"status" example:"Pending"`
}

// ErrorResponse carries an HTTP error code and a human-readable message.
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"customer email is required"`
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary		Create an order
//	@Description	Creates a new order in Pending status with a generated order number.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to create"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerEmail, request.TotalAmount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromDomainOrder(createdOrder))
}

// GetOrders handles GET /api/v1/orders.
//
//	@Summary		List all orders
//	@Description	Returns every order, most recent first.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		OrderResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponses(orders))
}

// SearchOrders handles GET /api/v1/orders/search.
//
//	@Summary		Search orders
//	@Description	Filters orders by email substring, status, and inclusive date range. All filters are optional and combine with AND.
//	@Tags			orders
//	@Produce		json
//	@Param			customerEmail	query		string	false	"Email substring (case-sensitive)"
//	@Param			status			query		string	false	"Order status"	Enums(Pending, Paid, Cancelled)
//	@Param			fromDate		query		string	false	"Inclusive lower bound (RFC 3339 or YYYY-MM-DD)"
//	@Param			toDate			query		string	false	"Inclusive upper bound (RFC 3339 or YYYY-MM-DD)"
//	@Success		200				{array}		OrderResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders/search [get]
func (s *Server) SearchOrders(ctx echo.Context) error {
	var emailFilter *string
	if email := ctx.QueryParam("customerEmail"); email != "" {
		emailFilter = &email
	}

	var statusFilter *order.Status
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		statusFilter = &status
	}

	fromDate, err := parseDateParam(ctx.QueryParam("fromDate"))
	if err != nil {
		return badRequest(ctx, "fromDate: "+err.Error())
	}

	toDate, err := parseDateParam(ctx.QueryParam("toDate"))
	if err != nil {
		return badRequest(ctx, "toDate: "+err.Error())
	}

	query, err := queries.NewSearchOrdersQuery(emailFilter, statusFilter, fromDate, toDate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary		Get an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	OrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromQueryResponse(orderResp))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
//
//	@Summary		Update an order's status
//	@Description	Transitions an order to Paid or Cancelled. Transitions back to Pending, out of Cancelled, or to the current status are rejected.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order ID"
//	@Param			status	body		UpdateOrderStatusRequest	true	"Target status"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{id}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updatedOrder, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(updatedOrder))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
//
//	@Summary		Delete an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return translateError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// translateError maps application errors onto HTTP status codes.
// Missing aggregates map to 404, validation failures and rejected status
// transitions to 400, everything else to 500.
func translateError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if order.IsInvalidTransition(err) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// parseDateParam accepts RFC 3339 timestamps and bare dates.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func fromDomainOrder(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID().String(),
		OrderNumber:   o.OrderNumber().String(),
		CustomerEmail: o.CustomerEmail(),
		OrderDate:     o.OrderDate(),
		TotalAmount:   o.TotalAmount(),
		Status:        o.Status().String(),
	}
}

func fromQueryResponse(resp queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            resp.ID.String(),
		OrderNumber:   resp.OrderNumber,
		CustomerEmail: resp.CustomerEmail,
		OrderDate:     resp.OrderDate,
		TotalAmount:   resp.TotalAmount,
		Status:        resp.Status.String(),
	}
}

func fromQueryResponses(resps []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(resps))
	for i, resp := range resps {
		response[i] = fromQueryResponse(resp)
	}
	return response
}
