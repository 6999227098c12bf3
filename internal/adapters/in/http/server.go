// Package http exposes the fulfillment use cases over a REST API.
// It coordinates between HTTP handlers and application use cases; all
// business rules live in the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/wallet"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	ConfirmPayment   commands.ConfirmPaymentCommandHandler
	ConfirmOrder     commands.ConfirmOrderCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	StartPreparation commands.StartPreparationCommandHandler
	MarkReady        commands.MarkReadyCommandHandler
	MarkPickedUp     commands.MarkPickedUpCommandHandler
	UpdatePriority   commands.UpdatePriorityCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	DeclineOrder     commands.DeclineOrderCommandHandler
	AssignCourier    commands.AssignCourierCommandHandler
	StartDelivery    commands.StartDeliveryCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	PostLedgerEntry  commands.PostLedgerEntryCommandHandler

	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetWalletHistory   queries.GetWalletHistoryQueryHandler
	GetWalletTotals    queries.GetWalletTotalsQueryHandler
}

// Server routes HTTP requests to command and query handlers.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders/:id/payment", s.ConfirmPayment)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/decline", s.DeclineOrder)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/start-delivery", s.StartDelivery)
	api.POST("/orders/:id/complete", s.CompleteDelivery)

	// Tickets are addressed by their order: there is exactly one per order.
	api.POST("/tickets/:id/start", s.StartPreparation)
	api.POST("/tickets/:id/ready", s.MarkReady)
	api.POST("/tickets/:id/pickup", s.MarkPickedUp)
	api.PATCH("/tickets/:id/priority", s.UpdatePriority)

	api.POST("/wallets/:id/entries", s.PostLedgerEntry)
	api.GET("/wallets/:id", s.GetWalletTotals)
	api.GET("/wallets/:id/entries", s.GetWalletHistory)

	e.GET("/health", s.Health)
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	RestaurantID string     `json:"restaurant_id"`
	Subtotal     string     `json:"subtotal"`
	DeliveryFee  string     `json:"delivery_fee"`
	Tax          string     `json:"tax"`
	Discount     string     `json:"discount"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	AwaitPayment bool       `json:"await_payment"`
}

type orderResponse struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	Status       string `json:"status"`
	RestaurantID string `json:"restaurant_id"`
	Total        string `json:"total"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant_id: "+err.Error())
	}

	charges, err := parseCharges(req)
	if err != nil {
		return badRequest(ctx, "Invalid charges: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), restaurantID, charges, req.ScheduledAt, req.AwaitPayment)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse{
		ID:           o.ID().String(),
		Number:       o.Number(),
		Status:       o.Status().String(),
		RestaurantID: o.RestaurantID().String(),
		Total:        o.Charges().Total().String(),
	})
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.ConfirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Actor string `json:"actor"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, req.Actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Actor  string `json:"actor"`
		Reason string `json:"reason"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Actor, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartPreparation handles POST /api/v1/tickets/:id/start.
func (s *Server) StartPreparation(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		PreparerName string `json:"preparer_name"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartPreparationCommand(orderID, req.PreparerName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.StartPreparation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkReady handles POST /api/v1/tickets/:id/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkReadyCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.MarkReady.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/tickets/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.MarkPickedUp.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePriority handles PATCH /api/v1/tickets/:id/priority.
func (s *Server) UpdatePriority(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Priority int `json:"priority"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePriorityCommand(orderID, req.Priority)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.UpdatePriority.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	var restaurantID *kernel.UUID
	if raw := ctx.QueryParam("restaurant_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid restaurant_id: "+err.Error())
		}
		restaurantID = &id
	}

	query, err := queries.NewGetAvailableOrdersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.h.GetAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type availableOrder struct {
		ID           string    `json:"id"`
		Number       string    `json:"number"`
		RestaurantID string    `json:"restaurant_id"`
		DeliveryFee  string    `json:"delivery_fee"`
		ReadySince   time.Time `json:"ready_since"`
	}

	response := make([]availableOrder, len(orders))
	for i, o := range orders {
		response[i] = availableOrder{
			ID:           o.ID.String(),
			Number:       o.Number,
			RestaurantID: o.RestaurantID.String(),
			DeliveryFee:  o.DeliveryFee.String(),
			ReadySince:   o.ReadySince,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - a courier claims the order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID string `json:"courier_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/orders/:id/decline - the bound courier backs out.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID   string `json:"courier_id"`
		CourierName string `json:"courier_name"`
		Reason      string `json:"reason"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, courierID, req.CourierName, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.DeclineOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/orders/:id/assign - operator override.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID string `json:"courier_id"`
		Actor     string `json:"actor"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, req.Actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.AssignCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:id/start-delivery.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID           string     `json:"courier_id"`
		EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, courierID, req.EstimatedDeliveryAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.StartDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		CourierID string `json:"courier_id"`
		Note      string `json:"note"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier_id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, courierID, req.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.h.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PostLedgerEntry handles POST /api/v1/wallets/:id/entries.
func (s *Server) PostLedgerEntry(ctx echo.Context) error {
	walletID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wallet id")
	}

	var req struct {
		Kind      string `json:"kind"`
		Amount    string `json:"amount"`
		Reference string `json:"reference"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := wallet.ParseKind(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid kind: "+err.Error())
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	cmd, err := commands.NewPostLedgerEntryCommand(walletID, kind, amount, req.Reference)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entry, err := s.h.PostLedgerEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ledgerEntryResponse(entry))
}

// GetWalletTotals handles GET /api/v1/wallets/:id.
func (s *Server) GetWalletTotals(ctx echo.Context) error {
	walletID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wallet id")
	}

	query, err := queries.NewGetWalletTotalsQuery(walletID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	totals, err := s.h.GetWalletTotals.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"wallet_id":       totals.WalletID.String(),
		"balance":         totals.Balance.String(),
		"total_earned":    totals.TotalEarned.String(),
		"total_withdrawn": totals.TotalWithdrawn.String(),
		"total_bonuses":   totals.TotalBonuses.String(),
		"total_fines":     totals.TotalFines.String(),
	})
}

// GetWalletHistory handles GET /api/v1/wallets/:id/entries.
func (s *Server) GetWalletHistory(ctx echo.Context) error {
	walletID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid wallet id")
	}

	query, err := queries.NewGetWalletHistoryQuery(walletID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.h.GetWalletHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]map[string]any, len(entries))
	for i, e := range entries {
		response[i] = map[string]any{
			"id":             e.ID.String(),
			"kind":           e.Kind.String(),
			"amount":         e.Amount.String(),
			"balance_before": e.BalanceBefore.String(),
			"balance_after":  e.BalanceAfter.String(),
			"reference":      e.Reference,
			"created_at":     e.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func ledgerEntryResponse(entry wallet.LedgerEntry) map[string]any {
	return map[string]any{
		"id":             entry.ID().String(),
		"wallet_id":      entry.WalletID().String(),
		"kind":           entry.Kind().String(),
		"amount":         entry.Amount().String(),
		"balance_before": entry.BalanceBefore().String(),
		"balance_after":  entry.BalanceAfter().String(),
		"reference":      entry.Reference(),
		"created_at":     entry.CreatedAt(),
	}
}

func parseCharges(req createOrderRequest) (order.Charges, error) {
	parts := make([]kernel.Money, 0, 4)
	for _, raw := range []string{req.Subtotal, req.DeliveryFee, req.Tax, req.Discount} {
		if raw == "" {
			raw = "0"
		}
		money, err := kernel.NewMoneyFromString(raw)
		if err != nil {
			return order.Charges{}, err
		}
		parts = append(parts, money)
	}
	return order.NewCharges(parts[0], parts[1], parts[2], parts[3])
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the core error taxonomy onto HTTP statuses. Conflicting
// state (lost claim races, illegal transitions) is 409 so clients re-list
// rather than retry blindly.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrAlreadyAssigned):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
