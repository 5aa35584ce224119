// Package http provides the inbound HTTP adapter. The surface is an internal
// tool API for the owner panel and channel integrations, so requests carry
// the tenant id explicitly instead of a session.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/group"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	ensureOrderHandler      commands.EnsureOrderAndOpenGroupCommandHandler
	addItemHandler          commands.AddItemCommandHandler
	updateItemHandler       commands.UpdateItemCommandHandler
	removeItemHandler       commands.RemoveItemCommandHandler
	recordPaymentHandler    commands.RecordPaymentCommandHandler
	refundPaymentHandler    commands.RefundPaymentCommandHandler
	completeCheckoutHandler commands.CompleteCheckoutCommandHandler
	changeStatusHandler     commands.ChangeOrderStatusCommandHandler
	recalculateHandler      commands.RecalculateShippingCommandHandler
	createLabelHandler      commands.CreateShippingLabelCommandHandler

	// Query handlers
	previewShippingHandler   queries.PreviewShippingQueryHandler
	getClientBalancesHandler queries.GetClientBalancesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	ensureOrderHandler commands.EnsureOrderAndOpenGroupCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	completeCheckoutHandler commands.CompleteCheckoutCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	recalculateHandler commands.RecalculateShippingCommandHandler,
	createLabelHandler commands.CreateShippingLabelCommandHandler,
	previewShippingHandler queries.PreviewShippingQueryHandler,
	getClientBalancesHandler queries.GetClientBalancesQueryHandler,
) *Server {
	return &Server{
		ensureOrderHandler:       ensureOrderHandler,
		addItemHandler:           addItemHandler,
		updateItemHandler:        updateItemHandler,
		removeItemHandler:        removeItemHandler,
		recordPaymentHandler:     recordPaymentHandler,
		refundPaymentHandler:     refundPaymentHandler,
		completeCheckoutHandler:  completeCheckoutHandler,
		changeStatusHandler:      changeStatusHandler,
		recalculateHandler:       recalculateHandler,
		createLabelHandler:       createLabelHandler,
		previewShippingHandler:   previewShippingHandler,
		getClientBalancesHandler: getClientBalancesHandler,
	}
}

// RegisterRoutes mounts every exposed operation on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/resolutions", s.ResolveOpenGroup)
	api.POST("/items", s.AddItem)
	api.PATCH("/items/:itemID", s.UpdateItem)
	api.DELETE("/items/:itemID", s.RemoveItem)
	api.POST("/payments", s.RecordPayment)
	api.POST("/payments/:paymentID/refund", s.RefundPayment)
	api.POST("/checkouts/:token/complete", s.CompleteCheckout)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/shipping", s.RecalculateShipping)
	api.GET("/orders/:orderID/shipping/preview", s.PreviewShipping)
	api.POST("/orders/:orderID/label", s.CreateShippingLabel)
	api.GET("/clients/:clientID/balances", s.GetClientBalances)
}

// Error is the JSON error payload returned by every route.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ResolveOpenGroup handles POST /api/v1/resolutions - resolves the client's
// open order and packing group, creating them when absent.
func (s *Server) ResolveOpenGroup(ctx echo.Context) error {
	var req struct {
		OwnerID  string `json:"owner_id"`
		ClientID string `json:"client_id"`
		Channel  string `json:"channel"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}
	channel, err := group.SourceTypeFromString(req.Channel)
	if err != nil {
		return badRequest(ctx, "Invalid channel: "+err.Error())
	}

	cmd, err := commands.NewEnsureOrderAndOpenGroupCommand(ownerID, clientID, channel)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resolution, err := s.ensureOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"order_id":       resolution.OrderID.String(),
		"group_id":       resolution.GroupID.String(),
		"checkout_token": resolution.CheckoutToken.String(),
		"group_token":    resolution.GroupToken.String(),
	})
}

// AddItem handles POST /api/v1/items - appends a line item to the client's
// open packing group. Price and name may be omitted for catalog products.
func (s *Server) AddItem(ctx echo.Context) error {
	var req struct {
		OwnerID    string  `json:"owner_id"`
		ClientID   string  `json:"client_id"`
		ProductID  *string `json:"product_id"`
		Name       string  `json:"name"`
		Qty        string  `json:"qty"`
		UnitPrice  string  `json:"unit_price"`
		VatRate    string  `json:"vat_rate"`
		SourceType string  `json:"source_type"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}
	productID, err := optionalUUID(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}
	qty, err := parseQuantity(req.Qty)
	if err != nil {
		return badRequest(ctx, "Invalid qty: "+err.Error())
	}
	unitPrice, err := kernel.NewMoneyFromString(defaultAmount(req.UnitPrice))
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}
	vatRate, err := parseRate(req.VatRate)
	if err != nil {
		return badRequest(ctx, "Invalid vat rate: "+err.Error())
	}
	sourceType, err := group.SourceTypeFromString(req.SourceType)
	if err != nil {
		return badRequest(ctx, "Invalid source type: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(
		ownerID, clientID, productID, req.Name, qty, unitPrice, vatRate, sourceType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"item_id":  result.ItemID.String(),
		"order_id": result.OrderID.String(),
		"group_id": result.GroupID.String(),
	})
}

// UpdateItem handles PATCH /api/v1/items/:itemID - patches quantity, price
// or vat rate of an item in an open group. Omitted fields keep their values.
func (s *Server) UpdateItem(ctx echo.Context) error {
	var req struct {
		OwnerID   string  `json:"owner_id"`
		OrderID   string  `json:"order_id"`
		GroupID   string  `json:"group_id"`
		Qty       *string `json:"qty"`
		UnitPrice *string `json:"unit_price"`
		VatRate   *string `json:"vat_rate"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scope, err := parseItemScope(req.OwnerID, req.OrderID, req.GroupID, ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var qty *kernel.Quantity
	if req.Qty != nil {
		parsed, qtyErr := parseQuantity(*req.Qty)
		if qtyErr != nil {
			return badRequest(ctx, "Invalid qty: "+qtyErr.Error())
		}
		qty = &parsed
	}
	var unitPrice *kernel.Money
	if req.UnitPrice != nil {
		parsed, priceErr := kernel.NewMoneyFromString(*req.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid unit price: "+priceErr.Error())
		}
		unitPrice = &parsed
	}
	var vatRate *decimal.Decimal
	if req.VatRate != nil {
		parsed, rateErr := parseRate(*req.VatRate)
		if rateErr != nil {
			return badRequest(ctx, "Invalid vat rate: "+rateErr.Error())
		}
		vatRate = &parsed
	}

	cmd, err := commands.NewUpdateItemCommand(
		scope.ownerID, scope.orderID, scope.groupID, scope.itemID, qty, unitPrice, vatRate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/items/:itemID - removes an item from an
// open group. Scope arrives as query parameters.
func (s *Server) RemoveItem(ctx echo.Context) error {
	scope, err := parseItemScope(
		ctx.QueryParam("owner_id"),
		ctx.QueryParam("order_id"),
		ctx.QueryParam("group_id"),
		ctx.Param("itemID"),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRemoveItemCommand(scope.ownerID, scope.orderID, scope.groupID, scope.itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/payments - records a payment attempt
// against an order, optionally linked to a packing group. The outcome field
// defaults to settled.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req struct {
		OwnerID     string  `json:"owner_id"`
		OrderID     string  `json:"order_id"`
		GroupID     *string `json:"group_id"`
		Amount      string  `json:"amount"`
		Currency    string  `json:"currency"`
		Outcome     string  `json:"outcome"`
		ExternalRef *string `json:"external_ref"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	groupID, err := optionalUUID(req.GroupID)
	if err != nil {
		return badRequest(ctx, "Invalid group id: "+err.Error())
	}
	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}
	outcome, err := commands.PaymentOutcomeFromString(req.Outcome)
	if err != nil {
		return badRequest(ctx, "Invalid outcome: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentCommand(
		ownerID, orderID, groupID, amount, req.Currency, outcome, req.ExternalRef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RefundPayment handles POST /api/v1/payments/:paymentID/refund - reverses a
// settled payment and lowers the affected paid statuses.
func (s *Server) RefundPayment(ctx echo.Context) error {
	var req struct {
		OwnerID string `json:"owner_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentID"))
	if err != nil {
		return badRequest(ctx, "Invalid payment id: "+err.Error())
	}

	cmd, err := commands.NewRefundPaymentCommand(ownerID, paymentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteCheckout handles POST /api/v1/checkouts/:token/complete - freezes
// the open group and advances the order to awaiting payment.
func (s *Server) CompleteCheckout(ctx echo.Context) error {
	var req struct {
		OwnerID string `json:"owner_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	token, err := kernel.TokenFromString(ctx.Param("token"))
	if err != nil {
		return badRequest(ctx, "Invalid checkout token: "+err.Error())
	}

	cmd, err := commands.NewCompleteCheckoutCommand(ownerID, token)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status - applies a
// panel-driven lifecycle action to the order.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	var req struct {
		OwnerID string `json:"owner_id"`
		Action  string `json:"action"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	action, err := parseOrderAction(req.Action)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(ownerID, orderID, action)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecalculateShipping handles POST /api/v1/orders/:orderID/shipping -
// assigns a shipping method when provided and recomputes the cached cost.
func (s *Server) RecalculateShipping(ctx echo.Context) error {
	var req struct {
		OwnerID  string  `json:"owner_id"`
		MethodID *string `json:"method_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	methodID, err := optionalUUID(req.MethodID)
	if err != nil {
		return badRequest(ctx, "Invalid method id: "+err.Error())
	}

	cmd, err := commands.NewRecalculateShippingCommand(ownerID, orderID, methodID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recalculateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PreviewShipping handles GET /api/v1/orders/:orderID/shipping/preview -
// quotes every active method of the tenant against the order's weight.
func (s *Server) PreviewShipping(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.QueryParam("owner_id"))
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewPreviewShippingQuery(ownerID, orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	quotes, err := s.previewShippingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	type quoteResponse struct {
		MethodID     string `json:"method_id"`
		MethodName   string `json:"method_name"`
		TotalWeight  string `json:"total_weight"`
		PackageCount int    `json:"package_count"`
		TotalCost    string `json:"total_cost"`
	}
	response := make([]quoteResponse, len(quotes))
	for i, quote := range quotes {
		response[i] = quoteResponse{
			MethodID:     quote.MethodID.String(),
			MethodName:   quote.MethodName,
			TotalWeight:  quote.TotalWeight.String(),
			PackageCount: quote.PackageCount,
			TotalCost:    quote.TotalCost.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShippingLabel handles POST /api/v1/orders/:orderID/label - requests
// a carrier label for a ready order and marks it shipped.
func (s *Server) CreateShippingLabel(ctx echo.Context) error {
	var req struct {
		OwnerID string `json:"owner_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateShippingLabelCommand(ownerID, orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	label, err := s.createLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"tracking_number": label.TrackingNumber,
		"label_url":       label.LabelURL,
	})
}

// GetClientBalances handles GET /api/v1/clients/:clientID/balances - one
// balance line per packing group of the client.
func (s *Server) GetClientBalances(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.QueryParam("owner_id"))
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}
	clientID, err := kernel.UUIDFromString(ctx.Param("clientID"))
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	query, err := queries.NewGetClientBalancesQuery(ownerID, clientID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	balances, err := s.getClientBalancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	type balanceResponse struct {
		OrderID    string `json:"order_id"`
		GroupID    string `json:"group_id"`
		Due        string `json:"due"`
		Captured   string `json:"captured"`
		Balance    string `json:"balance"`
		PaidStatus string `json:"paid_status"`
	}
	response := make([]balanceResponse, len(balances))
	for i, balance := range balances {
		response[i] = balanceResponse{
			OrderID:    balance.OrderID.String(),
			GroupID:    balance.GroupID.String(),
			Due:        balance.Due.String(),
			Captured:   balance.Captured.String(),
			Balance:    balance.Balance.String(),
			PaidStatus: balance.PaidStatus.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type itemScope struct {
	ownerID kernel.UUID
	orderID kernel.UUID
	groupID kernel.UUID
	itemID  kernel.UUID
}

func parseItemScope(rawOwnerID, rawOrderID, rawGroupID, rawItemID string) (itemScope, error) {
	var scope itemScope
	var err error

	if scope.ownerID, err = kernel.UUIDFromString(rawOwnerID); err != nil {
		return itemScope{}, errors.New("Invalid owner id: " + err.Error())
	}
	if scope.orderID, err = kernel.UUIDFromString(rawOrderID); err != nil {
		return itemScope{}, errors.New("Invalid order id: " + err.Error())
	}
	if scope.groupID, err = kernel.UUIDFromString(rawGroupID); err != nil {
		return itemScope{}, errors.New("Invalid group id: " + err.Error())
	}
	if scope.itemID, err = kernel.UUIDFromString(rawItemID); err != nil {
		return itemScope{}, errors.New("Invalid item id: " + err.Error())
	}

	return scope, nil
}

func parseOrderAction(raw string) (commands.OrderAction, error) {
	switch raw {
	case "open_adding":
		return commands.OrderActionOpenAdding, nil
	case "open_payment":
		return commands.OrderActionOpenPayment, nil
	case "mark_ready_to_ship":
		return commands.OrderActionMarkReadyToShip, nil
	case "complete":
		return commands.OrderActionComplete, nil
	case "cancel":
		return commands.OrderActionCancel, nil
	case "archive":
		return commands.OrderActionArchive, nil
	default:
		return commands.OrderActionUnknown, errors.New("Unknown order action: " + raw)
	}
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseQuantity(raw string) (kernel.Quantity, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Quantity{}, err
	}
	return kernel.NewQuantity(value), nil
}

func parseRate(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// defaultAmount lets channel integrations omit the price for catalog
// products; the add-item handler backfills it from the catalog snapshot.
func defaultAmount(raw string) string {
	if raw == "" {
		return "0"
	}
	return raw
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures to HTTP statuses: missing or foreign
// objects read as 404, state conflicts as 409, bad values as 400.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound), errors.Is(err, order.ErrOrderOwnerMismatch):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrLockBusy),
		errors.Is(err, group.ErrCheckoutLocked),
		errors.Is(err, group.ErrCheckoutAlreadyCompleted),
		errors.Is(err, group.ErrItemAlreadyRemoved),
		errors.Is(err, commands.ErrContextMismatch),
		errors.Is(err, commands.ErrShippingMethodNotAssigned):
		code = http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
