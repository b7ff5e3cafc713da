package http

import (
	"errors"
	"net/http"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the REST surface of the trading service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
	}
}

// RegisterRoutes attaches the order endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.GET("/orders/:orderId", s.GetOrder)
	e.DELETE("/orders/:orderId", s.CancelOrder)
}

// NewOrder is the request body for order submission.
type NewOrder struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
}

// Order is the wire representation of an order.
type Order struct {
	ID          string  `json:"orderId"`
	Symbol      string  `json:"symbol"`
	Quantity    float64 `json:"quantity"`
	OrderStatus string  `json:"orderStatus"`
}

// Error is the wire representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /orders - submits a new order.
//
//	@Summary	Submit a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body	NewOrder	true	"Order to submit"
//	@Success	201	{object}	Order
//	@Failure	400	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Symbol, newOrder.Quantity)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:          created.ID().String(),
		Symbol:      created.Symbol(),
		Quantity:    created.Quantity(),
		OrderStatus: created.Status().String(),
	})
}

// GetOrders handles GET /orders - retrieves all orders.
//
//	@Summary	List all orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	Order
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, orderResp := range orders {
		response[i] = Order{
			ID:          orderResp.ID.String(),
			Symbol:      orderResp.Symbol,
			Quantity:    orderResp.Quantity,
			OrderStatus: orderResp.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:orderId - retrieves a single order.
//
//	@Summary	Get an order by id
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order identifier"
//	@Success	200	{object}	Order
//	@Failure	404	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderResp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:          orderResp.ID.String(),
		Symbol:      orderResp.Symbol,
		Quantity:    orderResp.Quantity,
		OrderStatus: orderResp.Status.String(),
	})
}

// CancelOrder handles DELETE /orders/:orderId - cancels a pending order.
//
//	@Summary	Cancel a pending order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path	string	true	"Order identifier"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	422	{object}	Error
//	@Router		/orders/{orderId} [delete]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps application errors onto HTTP status codes. Unknown
// errors stay opaque to the client.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
