package http

import (
	"errors"
	"net/http"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/challan"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/generated/servers"
	"printflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	editOrderHandler     commands.EditOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	undoOrderHandler     commands.UndoOrderCommandHandler
	removeCatalogHandler commands.RemoveCatalogEntryCommandHandler

	// Query handlers
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler
	getOrderStatsHandler  queries.GetOrderStatsQueryHandler
	getCatalogHandler     queries.GetCatalogQueryHandler
	composeChallanHandler queries.ComposeChallanQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	undoOrderHandler commands.UndoOrderCommandHandler,
	removeCatalogHandler commands.RemoveCatalogEntryCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	composeChallanHandler queries.ComposeChallanQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		editOrderHandler:      editOrderHandler,
		deleteOrderHandler:    deleteOrderHandler,
		advanceOrderHandler:   advanceOrderHandler,
		undoOrderHandler:      undoOrderHandler,
		removeCatalogHandler:  removeCatalogHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		getOrderStatsHandler:  getOrderStatsHandler,
		getCatalogHandler:     getCatalogHandler,
		composeChallanHandler: composeChallanHandler,
	}
}

// ListOrders handles GET /api/v1/orders - retrieves all orders with history.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		timeline := make([]servers.TimelineItem, len(o.Timeline))
		for j, item := range o.Timeline {
			timeline[j] = servers.TimelineItem{
				Stage:     item.Stage,
				EnteredAt: item.EnteredAt,
			}
		}

		response[i] = servers.Order{
			Id:           o.ID,
			Client:       o.Client,
			Manufacturer: o.Manufacturer,
			Product:      o.Product,
			Quantity:     o.Quantity,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
			Timeline:     timeline,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.Client, newOrder.Manufacturer, newOrder.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - edits order details.
func (s *Server) UpdateOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var update servers.UpdateOrder
	if err = ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewEditOrderCommand(id, update.Client, update.Manufacturer, update.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapDomainError(ctx, handleErr, "Failed to update order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapDomainError(ctx, handleErr, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - moves an
// order to the next stage.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, order.ErrOrderAtTerminalStage) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Order is already at the final stage",
			})
		}
		return s.mapDomainError(ctx, handleErr, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UndoOrder handles POST /api/v1/orders/{orderId}/undo - reverts the latest
// stage transition.
func (s *Server) UndoOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewUndoOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.undoOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, order.ErrOrderAtInitialStage) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Order has no transition to undo",
			})
		}
		return s.mapDomainError(ctx, handleErr, "Failed to undo order transition")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderStats handles GET /api/v1/orders/stats - dashboard counters.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query := queries.NewGetOrderStatsQuery()

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute order stats",
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		Total:   stats.Total,
		Active:  stats.Active,
		ByStage: stats.ByStage,
	})
}

// GetCatalog handles GET /api/v1/catalog/{kind} - lists a registry.
func (s *Server) GetCatalog(ctx echo.Context, kind servers.CatalogKind) error {
	catalogKind, err := catalog.KindFromString(string(kind))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid catalog kind: " + err.Error(),
		})
	}

	query, err := queries.NewGetCatalogQuery(catalogKind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid catalog kind: " + err.Error(),
		})
	}

	result, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve catalog",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Catalog{Names: result.Names})
}

// DeleteCatalogName handles DELETE /api/v1/catalog/{kind}/{name} - removes
// a registered name.
func (s *Server) DeleteCatalogName(ctx echo.Context, kind servers.CatalogKind, name string) error {
	catalogKind, err := catalog.KindFromString(string(kind))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid catalog kind: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveCatalogEntryCommand(catalogKind, name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid catalog entry: " + err.Error(),
		})
	}

	if handleErr := s.removeCatalogHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapDomainError(ctx, handleErr, "Failed to remove catalog entry")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ComposeChallan handles POST /api/v1/challans - composes a printable
// challan document over the selected orders.
func (s *Server) ComposeChallan(ctx echo.Context) error {
	var body servers.ChallanRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	request, err := s.toChallanRequest(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid challan request: " + err.Error(),
		})
	}

	query, err := queries.NewComposeChallanQuery(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid challan request: " + err.Error(),
		})
	}

	result, err := s.composeChallanHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, challan.ErrNoOrdersSelected) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "No selected order exists",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compose challan",
		})
	}

	return ctx.JSON(http.StatusOK, servers.ChallanResponse{
		Document:        toChallanDocument(result.Document),
		SkippedOrderIds: result.SkippedOrderIDs,
	})
}

// toChallanRequest converts the wire representation into a domain request.
func (s *Server) toChallanRequest(body servers.ChallanRequest) (challan.Request, error) {
	typ, err := challan.TypeFromString(string(body.Type))
	if err != nil {
		return challan.Request{}, err
	}

	ids := make([]kernel.OrderID, 0, len(body.OrderIds))
	for _, raw := range body.OrderIds {
		id, idErr := kernel.OrderIDFromString(raw)
		if idErr != nil {
			return challan.Request{}, idErr
		}
		ids = append(ids, id)
	}

	var counts map[kernel.OrderID]int
	if body.PhotosDelivered != nil {
		counts = make(map[kernel.OrderID]int, len(*body.PhotosDelivered))
		for raw, count := range *body.PhotosDelivered {
			id, idErr := kernel.OrderIDFromString(raw)
			if idErr != nil {
				return challan.Request{}, idErr
			}
			counts[id] = count
		}
	}

	return challan.NewRequest(typ, ids, counts)
}

// mapDomainError maps application errors onto HTTP statuses shared by
// several endpoints.
func (s *Server) mapDomainError(ctx echo.Context, err error, fallback string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}
	if errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

// toChallanDocument converts a composed document into its wire form.
func toChallanDocument(doc challan.Document) servers.ChallanDocument {
	pages := make([]servers.ChallanPage, len(doc.Pages))
	for i, page := range doc.Pages {
		rows := make([][]string, len(page.Table.Rows))
		for j, row := range page.Table.Rows {
			rows[j] = row.Cells
		}

		wire := servers.ChallanPage{
			Letterhead:  page.Letterhead,
			Title:       page.Title,
			GeneratedAt: page.GeneratedAt,
			Table: servers.ChallanTable{
				Columns: page.Table.Columns,
				Rows:    rows,
			},
		}
		if page.Signatures != nil {
			signatories := page.Signatures.Signatories
			wire.Signatories = &signatories
		}
		if page.Checklist != nil {
			items := page.Checklist.Items
			wire.Checklist = &items
		}

		pages[i] = wire
	}

	return servers.ChallanDocument{
		Id:          openapi_types.UUID(doc.ID),
		Type:        doc.Type.String(),
		GeneratedAt: doc.GeneratedAt,
		Pages:       pages,
	}
}
