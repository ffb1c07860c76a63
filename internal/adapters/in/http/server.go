// Package http exposes the order service over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userUIDHeader carries the external identity of the caller, set by the
// authenticating gateway in front of this service.
const userUIDHeader = "X-User-Uid"

// Server handles the order REST endpoints.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersBySupplierHandler queries.GetOrdersBySupplierQueryHandler
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersBySupplierHandler queries.GetOrdersBySupplierQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrdersBySupplierHandler: getOrdersBySupplierHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes attaches the API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, okResponse("ok", nil))
}

// GetOrders handles GET /api/v1/orders. The result set narrows by the
// supplier_id or status query parameter when present; supplier_id wins if
// both are given.
func (s *Server) GetOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if supplierParam := ctx.QueryParam("supplier_id"); supplierParam != "" {
		supplierID, err := strconv.ParseInt(supplierParam, 10, 64)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse("supplier_id must be an integer"))
		}

		query, err := queries.NewGetOrdersBySupplierQuery(supplierID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}

		orders, err := s.getOrdersBySupplierHandler.Handle(reqCtx, query)
		if err != nil {
			return s.errorJSON(ctx, err)
		}

		return ctx.JSON(http.StatusOK, okResponse("orders retrieved", orders))
	}

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		query, err := queries.NewGetOrdersByStatusQuery(statusParam)
		if err != nil {
			return s.errorJSON(ctx, err)
		}

		orders, err := s.getOrdersByStatusHandler.Handle(reqCtx, query)
		if err != nil {
			return s.errorJSON(ctx, err)
		}

		return ctx.JSON(http.StatusOK, okResponse("orders retrieved", orders))
	}

	orders, err := s.getAllOrdersHandler.Handle(reqCtx, queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse("orders retrieved", orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("order id must be a positive integer"))
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse("order retrieved", detail))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	callerUID := ctx.Request().Header.Get(userUIDHeader)
	if callerUID == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse("caller identity header is missing"))
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.SupplierID, callerUID, req.DeliveryAddress, toLineInputs(req.Lines))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	detail, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, okResponse("order created", detail))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("order id must be a positive integer"))
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.Status, req.DeliveryAddress, toLineInputs(req.Lines))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	detail, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse("order updated", detail))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("order id must be a positive integer"))
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, okResponse("order deleted", nil))
}

func (s *Server) errorJSON(ctx echo.Context, err error) error {
	return ctx.JSON(errorStatus(err), errorResponse(err.Error()))
}

// errorStatus maps application errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBusinessRule),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
