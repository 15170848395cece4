package http

import (
	"errors"
	"net/http"

	"algexpress/internal/core/application/usecases/commands"
	"algexpress/internal/core/application/usecases/queries"
	"algexpress/internal/core/domain/model/kernel"
	"algexpress/internal/core/domain/model/menu"
	"algexpress/internal/core/domain/model/order"
	"algexpress/internal/core/domain/model/payment"
	"algexpress/internal/generated/servers"
	"algexpress/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addOrderLineHandler   commands.AddOrderLineCommandHandler
	removeOrderLine       commands.RemoveOrderLineCommandHandler
	confirmOrderHandler   commands.ConfirmOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	recordPaymentHandler  commands.RecordPaymentCommandHandler
	processPaymentHandler commands.ProcessPaymentCommandHandler
	redeemPointsHandler   commands.RedeemLoyaltyPointsCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getOrderPaymentsHandler queries.GetOrderPaymentsQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLine commands.RemoveOrderLineCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	redeemPointsHandler commands.RedeemLoyaltyPointsCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderPaymentsHandler queries.GetOrderPaymentsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		addOrderLineHandler:     addOrderLineHandler,
		removeOrderLine:         removeOrderLine,
		confirmOrderHandler:     confirmOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		recordPaymentHandler:    recordPaymentHandler,
		processPaymentHandler:   processPaymentHandler,
		redeemPointsHandler:     redeemPointsHandler,
		getOrderHandler:         getOrderHandler,
		getOrderPaymentsHandler: getOrderPaymentsHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	kind, err := order.KindFromString(string(newOrder.Kind))
	if err != nil {
		return badRequest(ctx, "Invalid order kind: "+err.Error())
	}

	lines, err := lineInputsFromRequest(newOrder.Lines)
	if err != nil {
		return badRequest(ctx, "Invalid order line: "+err.Error())
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		kind,
		stringValue(newOrder.Address),
		stringValue(newOrder.Note),
		lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// AddOrderLine handles POST /api/v1/orders/{orderId}/lines - adds a line to a pending order.
func (s *Server) AddOrderLine(ctx echo.Context, orderId openapi_types.UUID) error {
	var newLine servers.NewOrderLine
	if err := ctx.Bind(&newLine); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	line, err := lineInputFromRequest(newLine)
	if err != nil {
		return badRequest(ctx, "Invalid order line: "+err.Error())
	}

	cmd, err := commands.NewAddOrderLineCommand(orderID, line)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	if handleErr := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to add order line")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderLine handles DELETE /api/v1/orders/{orderId}/lines/{lineId}.
func (s *Server) RemoveOrderLine(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	lineID, err := kernel.UUIDFromBytes(lineId[:])
	if err != nil {
		return badRequest(ctx, "Invalid line id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderLineCommand(orderID, lineID)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	if handleErr := s.removeOrderLine.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to remove order line")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - freezes the
// order lines and opens the delivery assignment for delivery orders.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - moves a
// confirmed order to its next preparation or dispatch status.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AdvanceOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	next, err := order.StatusFromString(string(body.Next))
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete - marks the
// order delivered and credits loyalty points to the customer.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RedeemLoyaltyPoints handles POST /api/v1/orders/{orderId}/loyalty/redeem.
func (s *Server) RedeemLoyaltyPoints(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.RedeemPoints
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRedeemLoyaltyPointsCommand(orderID, body.Points)
	if err != nil {
		return badRequest(ctx, "Invalid redemption data: "+err.Error())
	}

	if handleErr := s.redeemPointsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to redeem loyalty points")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/payments - records a payment against an order.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var newPayment servers.NewPayment
	if err := ctx.Bind(&newPayment); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(newPayment.OrderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	method, err := payment.MethodFromString(string(newPayment.Method))
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	amount, err := kernel.NewMoneyFromString(newPayment.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	tendered := kernel.Zero()
	if newPayment.Tendered != nil {
		tendered, err = kernel.NewMoneyFromString(*newPayment.Tendered)
		if err != nil {
			return badRequest(ctx, "Invalid tendered amount: "+err.Error())
		}
	}

	authRef := payment.NewAuthorizationRef(
		stringValue(newPayment.TransactionId),
		stringValue(newPayment.AuthorizationCode),
	)

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewRecordPaymentCommand(
		paymentID,
		orderID,
		method,
		amount,
		tendered,
		authRef,
		stringValue(newPayment.Note),
	)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to record payment")
	}

	return ctx.JSON(http.StatusCreated, servers.PaymentRecorded{Id: paymentID.Bytes()})
}

// ProcessPayment handles POST /api/v1/payments/{paymentId}/process.
func (s *Server) ProcessPayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	paymentID, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return badRequest(ctx, "Invalid payment id: "+err.Error())
	}

	cmd, err := commands.NewProcessPaymentCommand(paymentID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to process payment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with
// its lines and settlement state.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	lines := make([]servers.OrderLine, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = servers.OrderLine{
			Id:        line.ID.Bytes(),
			ItemName:  line.ItemName,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			Total:     line.Total.String(),
		}
	}

	approvedTotal := result.ApprovedTotal.String()
	response := servers.Order{
		Id:            result.ID.Bytes(),
		CustomerId:    result.CustomerID.Bytes(),
		Kind:          result.Kind,
		Status:        result.Status,
		Subtotal:      result.Subtotal.String(),
		DeliveryFee:   result.DeliveryFee.String(),
		Discount:      result.Discount.String(),
		Total:         result.Total.String(),
		ApprovedTotal: &approvedTotal,
		FullyPaid:     result.FullyPaid,
		OrderedAt:     result.OrderedAt,
		Lines:         lines,
	}
	if result.Note != "" {
		response.Note = &result.Note
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderPayments handles GET /api/v1/orders/{orderId}/payments.
func (s *Server) GetOrderPayments(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderPaymentsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	payments, err := s.getOrderPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve payments",
		})
	}

	response := make([]servers.Payment, len(payments))
	for i, p := range payments {
		response[i] = servers.Payment{
			Id:         p.ID.Bytes(),
			Method:     p.Method,
			Status:     p.Status,
			AmountDue:  p.AmountDue.String(),
			Change:     p.Change.String(),
			RecordedAt: p.RecordedAt,
			PaidAt:     p.PaidAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// that have not reached a terminal status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:         o.ID.Bytes(),
			CustomerId: o.CustomerID.Bytes(),
			Kind:       o.Kind,
			Status:     o.Status,
			Total:      o.Total.String(),
			OrderedAt:  o.OrderedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func lineInputsFromRequest(requested []servers.NewOrderLine) ([]commands.LineInput, error) {
	lines := make([]commands.LineInput, len(requested))
	for i, r := range requested {
		line, err := lineInputFromRequest(r)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}

func lineInputFromRequest(r servers.NewOrderLine) (commands.LineInput, error) {
	itemID, err := kernel.UUIDFromBytes(r.ItemId[:])
	if err != nil {
		return commands.LineInput{}, err
	}

	size, err := menu.SizeFromString(string(r.Size))
	if err != nil {
		return commands.LineInput{}, err
	}

	added, err := modifierIDs(r.AddedModifierIds)
	if err != nil {
		return commands.LineInput{}, err
	}

	removed, err := modifierIDs(r.RemovedModifierIds)
	if err != nil {
		return commands.LineInput{}, err
	}

	return commands.LineInput{
		ItemID:             itemID,
		Size:               size,
		Quantity:           r.Quantity,
		AddedModifierIDs:   added,
		RemovedModifierIDs: removed,
		Note:               stringValue(r.Note),
	}, nil
}

func modifierIDs(raw *[]openapi_types.UUID) ([]kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]kernel.UUID, len(*raw))
	for i, r := range *raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps a use case failure to the HTTP status it deserves.
// Unknown aggregates are 404, rejected state transitions and settlement
// rules are 409, everything else is a server fault.
func commandError(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPaymentNotProcessable),
		errors.Is(err, errs.ErrInsufficientPoints):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message + ": " + err.Error(),
	})
}
