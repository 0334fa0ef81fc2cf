package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	addItemHandler       commands.AddOrderItemCommandHandler
	removeItemHandler    commands.RemoveOrderItemCommandHandler
	attachPaymentHandler commands.AttachPaymentCommandHandler

	// Query handlers
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getOrderStatusHandler    queries.GetOrderStatusQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	customerHasOrdersHandler queries.CustomerHasOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	addItemHandler commands.AddOrderItemCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	attachPaymentHandler commands.AttachPaymentCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	customerHasOrdersHandler queries.CustomerHasOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		addItemHandler:           addItemHandler,
		removeItemHandler:        removeItemHandler,
		attachPaymentHandler:     attachPaymentHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		customerHasOrdersHandler: customerHasOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var customerID *kernel.UUID
	if body.CustomerId != nil {
		id, err := kernel.FromGoogleUUID(*body.CustomerId)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
		}
		customerID = &id
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	var lineErrs []error
	for _, item := range body.Items {
		line, err := toOrderLine(item)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createResultToAPI(result))
}

// ListOrders handles GET /api/v1/orders - one page of order summaries, newest first.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var customerID *kernel.UUID
	if params.CustomerId != nil {
		id, err := kernel.FromGoogleUUID(*params.CustomerId)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
		}
		customerID = &id
	}

	query, err := queries.NewListOrdersQuery(
		valueOr(params.PageNumber, 1),
		valueOr(params.PageSize, queries.DefaultPageSize),
		customerID,
		valueOr(params.Status, ""),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if page.Failed {
		ctx.Response().Header().Set(HeaderResultDegraded, "true")
	}

	return ctx.JSON(http.StatusOK, pageToAPI(page))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, id)
}

// GetOrderStatus handles GET /api/v1/orders/{orderId}/status.
func (s *Server) GetOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderStatusQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatusResponse{
		OrderId:   status.OrderID.Bytes(),
		Status:    servers.Status(status.Status.String()),
		CreatedAt: status.CreatedAt,
		UpdatedAt: status.UpdatedAt,
	})
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UpdateStatusResult{
		Id:               result.ID.Bytes(),
		Status:           servers.Status(result.Status.String()),
		UpdatedAt:        result.UpdatedAt,
		NotificationSent: result.NotificationSent,
	})
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.AddOrderItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	line, err := toOrderLine(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(id, line)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, id)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{productId}.
func (s *Server) RemoveOrderItem(
	ctx echo.Context,
	orderID servers.OrderId,
	productID openapi_types.UUID,
) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	product, err := pathID("productId", productID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, product)
	if err != nil {
		return writeError(ctx, err)
	}

	removed, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if !removed {
		return writeError(ctx, errs.NewObjectNotFoundError("productId", product.String()))
	}

	return s.respondWithOrder(ctx, id)
}

// AttachPayment handles PUT /api/v1/orders/{orderId}/payment.
func (s *Server) AttachPayment(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.AttachPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := pathID("orderId", orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAttachPaymentCommand(id, valueOr(body.QrCode, ""), valueOr(body.PaymentPreferenceId, ""))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.attachPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, id)
}

// CustomerHasOrders handles GET /api/v1/customers/{customerId}/orders/exists.
func (s *Server) CustomerHasOrders(ctx echo.Context, customerID openapi_types.UUID) error {
	id, err := pathID("customerId", customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCustomerHasOrdersQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	exists, err := s.customerHasOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CustomerOrdersExists{Exists: exists})
}

// respondWithOrder reads the order back and renders its detail. Item commands answer
// with the whole order so clients see the recomputed total.
func (s *Server) respondWithOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if !response.Found {
		return writeError(ctx, errs.NewObjectNotFoundError("orderId", id.String()))
	}

	return ctx.JSON(http.StatusOK, detailToAPI(response.Order))
}

func pathID(name string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.FromGoogleUUID(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func toOrderLine(item servers.OrderItemRequest) (commands.OrderLine, error) {
	productID, idErr := kernel.FromGoogleUUID(item.ProductId)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("productId", idErr)
	}
	unitPrice, priceErr := kernel.MoneyFromString(item.UnitPrice)

	if err := errors.Join(idErr, priceErr); err != nil {
		return commands.OrderLine{}, err
	}

	return commands.OrderLine{
		ProductID:   productID,
		ProductName: item.ProductName,
		UnitPrice:   unitPrice,
		Quantity:    item.Quantity,
	}, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
