package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/generated/servers"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	newOrderPath  = "/api/v1/orders/new"
	editOrderPath = "/api/v1/orders/%s/edit"
)

// Use case handlers the server depends on.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
	}
	AdvanceOrderStepHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStepCommand) (commands.AdvanceOrderStepResult, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	OrderFormHandler interface {
		Handle(ctx context.Context, query queries.OrderFormQuery) (queries.OrderForm, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      CreateOrderHandler
	updateOrderHandler      UpdateOrderHandler
	advanceOrderStepHandler AdvanceOrderStepHandler
	deleteOrderHandler      DeleteOrderHandler

	// Query handlers
	getOrderHandler     GetOrderHandler
	listOrdersHandler   ListOrdersHandler
	orderFormHandler    OrderFormHandler
	listProductsHandler ListProductsHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderHandler UpdateOrderHandler,
	advanceOrderStepHandler AdvanceOrderStepHandler,
	deleteOrderHandler DeleteOrderHandler,
	getOrderHandler GetOrderHandler,
	listOrdersHandler ListOrdersHandler,
	orderFormHandler OrderFormHandler,
	listProductsHandler ListProductsHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		advanceOrderStepHandler: advanceOrderStepHandler,
		deleteOrderHandler:      deleteOrderHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		orderFormHandler:        orderFormHandler,
		listProductsHandler:     listProductsHandler,
		logger:                  logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders - lists every order, oldest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// CreateOrder handles POST /api/v1/orders - creates an order from a submitted form.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	intent, err := commands.ResolveIntent(intentFlags(body))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, itemSubmissions(body), intent)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return redirectAfter(ctx, intent, orderID)
}

// NewOrderForm handles GET /api/v1/orders/new - returns a blank order form.
func (s *Server) NewOrderForm(ctx echo.Context) error {
	form, err := s.orderFormHandler.Handle(ctx.Request().Context(), queries.NewNewOrderFormQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to build order form")
	}

	return ctx.JSON(http.StatusOK, toOrderForm(form))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - destroys an order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderIdParam) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	return ctx.Redirect(http.StatusSeeOther, newOrderPath)
}

// GetOrder handles GET /api/v1/orders/{orderId} - shows an order with its total.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderIdParam) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, id)
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - applies a submitted edit form.
func (s *Server) UpdateOrder(ctx echo.Context, orderId servers.OrderIdParam) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	intent, err := commands.ResolveIntent(intentFlags(body))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(id, itemSubmissions(body), intent)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update order")
	}

	return redirectAfter(ctx, intent, id)
}

// EditOrderForm handles GET /api/v1/orders/{orderId}/edit - returns the edit form.
func (s *Server) EditOrderForm(ctx echo.Context, orderId servers.OrderIdParam) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewEditOrderFormQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	form, err := s.orderFormHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to build order form")
	}

	return ctx.JSON(http.StatusOK, toOrderForm(form))
}

// AdvanceOrderStep handles POST /api/v1/orders/{orderId}/next-step - moves the
// order one step along and returns the committed step change.
func (s *Server) AdvanceOrderStep(ctx echo.Context, orderId servers.OrderIdParam) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderStepCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.advanceOrderStepHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, toStepChange(result))
}

// ListProducts handles GET /api/v1/products - returns the cached catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve products")
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// GetQueue handles GET /api/v1/queues/{step} - lists the orders of one kitchen queue.
func (s *Server) GetQueue(ctx echo.Context, step servers.Step) error {
	parsed, err := order.ParseStep(string(step))
	if err != nil {
		return badRequest(ctx, "Invalid step")
	}

	query, err := queries.NewQueueQuery(parsed)
	if err != nil {
		return badRequest(ctx, "Step "+parsed.String()+" has no queue")
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve queue")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

func (s *Server) respondWithOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(response))
}

// fail maps use case errors to responses. A missing order sends the browser back
// to the new-order form.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.Redirect(http.StatusSeeOther, newOrderPath)
	case errors.Is(err, errs.ErrVersionConflict):
		return respondError(ctx, http.StatusConflict, "Order was changed concurrently, reload and retry")
	case errors.Is(err, order.ErrInvalidTransition):
		return respondError(ctx, http.StatusUnprocessableEntity, "Order cannot move to a next step")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, message+": "+err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
		return respondError(ctx, http.StatusInternalServerError, message)
	}
}

func redirectAfter(ctx echo.Context, intent commands.Intent, orderID kernel.UUID) error {
	if intent == commands.IntentAddItem {
		return ctx.Redirect(http.StatusSeeOther, editPath(orderID))
	}
	return ctx.Redirect(http.StatusSeeOther, newOrderPath)
}

func badRequest(ctx echo.Context, message string) error {
	return respondError(ctx, http.StatusBadRequest, message)
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
