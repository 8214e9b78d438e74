package handlers

import (
	"fmt"
	"net/http"
	"time"

	"bistro-pos-service/internal/middleware"
	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/queue"
	"bistro-pos-service/internal/stats"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/internal/utils"
	"bistro-pos-service/pkg/response"

	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

type createOrderRequest struct {
	TableID    string `json:"tableId"`
	OrderItems []struct {
		MenuItemID string  `json:"menuItemId"`
		Quantity   int     `json:"quantity"`
		Price      float64 `json:"price"`
	} `json:"orderItems"`
}

// OrderCreate opens a new active order for a table. Route is restricted to
// serve/admin by the router.
func (h *Handler) OrderCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, _ := middleware.CurrentUser(r.Context())
	now := h.now().Format(time.RFC3339)

	order := models.Order{
		ID:          cuid.New(),
		TableID:     req.TableID,
		OrderStatus: models.OrderStatusNew,
		Timestamp:   now,
		CreatedBy:   user.ID,
		CreatedAt:   now,
	}

	err := h.Store.Update(func(d *store.Data) error {
		if _, ok := store.Find(d.Tables, func(t models.Table) bool { return t.ID == req.TableID }); !ok {
			return &apiError{status: http.StatusBadRequest, message: "Invalid table ID"}
		}
		for _, item := range req.OrderItems {
			if _, ok := store.Find(d.MenuItems, func(m models.MenuItem) bool { return m.ID == item.MenuItemID }); !ok {
				return &apiError{status: http.StatusBadRequest, message: fmt.Sprintf("Invalid menu item ID: %s", item.MenuItemID)}
			}
		}

		for _, item := range req.OrderItems {
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				ID:         fmt.Sprintf("orderItem-%s-%s", order.ID, item.MenuItemID),
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				Price:      item.Price,
			})
		}
		d.Orders = append(d.Orders, order)
		return nil
	})
	if err != nil {
		h.respondStoreError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

// OrdersToday lists active orders placed since the local start of day.
func (h *Handler) OrdersToday(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders := []models.Order{}
	h.Store.View(func(d *store.Data) {
		orders = store.Filter(d.Orders, func(o models.Order) bool {
			ts, err := time.Parse(time.RFC3339, o.Timestamp)
			if err != nil {
				return false
			}
			return !ts.Before(startOfDay)
		})
	})

	response.JSON(w, http.StatusOK, orders)
}

type updateOrderRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderUpdateStatus drives the order lifecycle: serve/admin may mark an
// order served, cashier/admin may complete it. Completion prices the order
// from the current catalog, relocates it into history and feeds the
// statistics pipeline — all under one store update so a concurrent
// completion cannot interleave with the rollover compaction.
func (h *Handler) OrderUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := readPathString(r, "id")
	var req updateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, _ := middleware.CurrentUser(r.Context())

	var exists bool
	h.Store.View(func(d *store.Data) {
		_, exists = store.Find(d.Orders, func(o models.Order) bool { return o.ID == orderID })
	})
	if !exists {
		response.Message(w, http.StatusNotFound, "Order not found")
		return
	}

	switch {
	case req.OrderStatus == models.OrderStatusServed && middleware.HasRole(user, models.RoleServe, models.RoleAdmin):
		h.markServed(w, orderID, user)
	case req.OrderStatus == models.OrderStatusCompleted && middleware.HasRole(user, models.RoleCashier, models.RoleAdmin):
		h.completeOrder(w, r, orderID, req.PaymentMethod, user)
	default:
		response.Message(w, http.StatusForbidden, "Forbidden")
	}
}

func (h *Handler) markServed(w http.ResponseWriter, orderID string, user models.User) {
	now := h.now().Format(time.RFC3339)

	var served models.Order
	err := h.Store.Update(func(d *store.Data) error {
		idx := store.FindIndex(d.Orders, func(o models.Order) bool { return o.ID == orderID })
		if idx < 0 {
			return models.ErrNotFound
		}
		d.Orders[idx].OrderStatus = models.OrderStatusServed
		d.Orders[idx].ServedBy = user.ID
		d.Orders[idx].ServedAt = now
		served = d.Orders[idx]
		return nil
	})
	if err != nil {
		h.respondStoreError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, served)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request, orderID string, paymentMethod string, user models.User) {
	if !models.ValidPaymentMethod(paymentMethod) {
		response.Message(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	now := h.now()
	var completed models.Order
	err := h.Store.Update(func(d *store.Data) error {
		idx := store.FindIndex(d.Orders, func(o models.Order) bool { return o.ID == orderID })
		if idx < 0 {
			return models.ErrNotFound
		}

		completed = d.Orders[idx]
		completed.OrderStatus = models.OrderStatusCompleted
		completed.PaymentMethod = paymentMethod
		completed.CashierID = user.ID
		completed.CompletedAt = now.Format(time.RFC3339)
		completed.TotalPrice = utils.RoundMoney(orderTotal(d, completed))

		// History append precedes the active-order removal, so a reader
		// never observes the order in neither collection.
		entry := models.OrderHistoryEntry{Order: completed, OrderID: completed.ID}
		entry.Order.ID = "history-" + completed.ID
		d.OrderHistory = append(d.OrderHistory, entry)
		d.Orders = store.Remove(d.Orders, func(o models.Order) bool { return o.ID == orderID })

		stats.UpdateDaily(d, completed, now)
		stats.Rollover(d, now)
		return nil
	})
	if err != nil {
		h.respondStoreError(w, err)
		return
	}

	if err := queue.PublishOrderCompleted(r.Context(), h.Queue, completed); err != nil {
		h.Logger.Warn("order.completed publish failed", zap.String("orderId", completed.ID), zapError(err))
	}

	response.JSON(w, http.StatusOK, completed)
}

// orderTotal prices the order from the current catalog; items whose menu
// entry has been pruned contribute nothing.
func orderTotal(d *store.Data, order models.Order) float64 {
	var total float64
	for _, item := range order.OrderItems {
		menuItem, ok := store.Find(d.MenuItems, func(m models.MenuItem) bool { return m.ID == item.MenuItemID })
		if !ok {
			continue
		}
		total += menuItem.Price * float64(item.Quantity)
	}
	return total
}
