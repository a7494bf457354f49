// Package http exposes the admin API over echo. Request bodies are validated
// at the boundary by the OpenAPI middleware, so the handlers only translate
// between wire DTOs and application commands.
package http

import (
	"errors"
	"net/http"

	"rentalhub/internal/core/application/usecases/commands"
	"rentalhub/internal/core/application/usecases/queries"
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the admin API handlers. It coordinates between HTTP
// handlers and application use cases.
type Server struct {
	// Command handlers
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteVendorHandler commands.DeleteVendorCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteVendorHandler commands.DeleteVendorCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		updateOrderHandler:  updateOrderHandler,
		deleteVendorHandler: deleteVendorHandler,
		getOrderHandler:     getOrderHandler,
		getOrdersHandler:    getOrdersHandler,
	}
}

// UpdateOrder handles PATCH /api/v1/orders/:id - applies a partial order
// update and triggers the follow-up notifications.
//
// This path produces only 200 or 500: persistence failure is the one fatal
// outcome, and notification failures never surface here.
//
//	@Summary		Update an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"Order ID"
//	@Param			body	body	UpdateOrderRequest	true	"Partial update"
//	@Success		200	{object}	MessageResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{id} [patch]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update order",
			Details: err.Error(),
		})
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update order",
			Details: err.Error(),
		})
	}

	patch, err := request.toPatch()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update order",
			Details: err.Error(),
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		patch,
		request.notes(),
		request.updatedBy(),
		request.assignDeliveryPartner(),
	)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update order",
			Details: err.Error(),
		})
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update order",
			Details: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order updated successfully"})
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first, with an
// optional ?status= filter.
//
//	@Summary		List orders
//	@Tags			orders
//	@Produce		json
//	@Param			status	query	string	false	"Status filter"
//	@Success		200	{array}		OrderListItem
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st := order.Status(raw)
		status = &st
	}

	query := queries.NewGetOrdersQuery(status)
	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to retrieve orders",
			Details: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, fromOrderListResponse(rows))
}

// GetOrder handles GET /api/v1/orders/:id - returns the joined order detail.
//
//	@Summary		Get an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"
//	@Success		200	{object}	OrderDetail
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Order not found",
			Details: err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to retrieve order",
			Details: err.Error(),
		})
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to retrieve order",
			Details: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, fromSnapshot(snapshot))
}

// DeleteVendor handles DELETE /api/v1/vendors/:id - removes a vendor and all
// its dependent rows in one transaction.
//
//	@Summary		Delete a vendor
//	@Tags			vendors
//	@Produce		json
//	@Param			id	path	string	true	"Vendor ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/vendors/{id} [delete]
func (s *Server) DeleteVendor(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Vendor not found",
			Details: err.Error(),
		})
	}

	cmd, err := commands.NewDeleteVendorCommand(vendorID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete vendor",
			Details: err.Error(),
		})
	}

	if err = s.deleteVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Vendor not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete vendor",
			Details: err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Vendor deleted successfully"})
}

// RegisterRoutes mounts the admin API on the given group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", s.GetOrders)
	g.GET("/orders/:id", s.GetOrder)
	g.PATCH("/orders/:id", s.UpdateOrder)
	g.DELETE("/vendors/:id", s.DeleteVendor)
}
