package models

import (
	"maps"
	"slices"
)

// Record types mirror the db.json collections one to one; JSON field names
// are part of the API surface and must not change.

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Fullname    string `json:"fullname"`
	Role        string `json:"role"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleServe   = "serve"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	SubCategory string  `json:"subCategory"`
	IsAvailable bool    `json:"isAvailable"`
}

type AreaTable struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Tables []string `json:"tables"`
}

type Table struct {
	ID        string `json:"id"`
	TableName string `json:"tableName"`
	Status    string `json:"status"`
	AreaID    string `json:"areaId"`
}

type OrderItem struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"orderId"`
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

const (
	OrderStatusNew       = "new"
	OrderStatusServed    = "served"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID            string      `json:"id"`
	TableID       string      `json:"tableId"`
	OrderStatus   string      `json:"orderStatus"`
	Timestamp     string      `json:"timestamp"`
	CreatedBy     string      `json:"createdBy,omitempty"`
	CreatedAt     string      `json:"createdAt,omitempty"`
	ServedBy      string      `json:"servedBy,omitempty"`
	ServedAt      string      `json:"servedAt,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	CashierID     string      `json:"cashierId,omitempty"`
	CompletedAt   string      `json:"completedAt,omitempty"`
	TotalPrice    float64     `json:"totalPrice,omitempty"`
	OrderItems    []OrderItem `json:"orderItems"`
}

// OrderHistoryEntry is a completed order relocated wholesale into the
// orderHistory collection. The embedded order keeps its enriched fields;
// its id becomes "history-<orderId>" and the original id moves to orderId.
type OrderHistoryEntry struct {
	Order
	OrderID string `json:"orderId"`
}

type Feedback struct {
	ID        string `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online payment"
)

// PaymentMethods lists the accepted values for Order.PaymentMethod. Daily
// statistics pre-seed their payment summary with a zero entry per method.
func PaymentMethods() []string {
	return []string{PaymentMethodCash, PaymentMethodOnline}
}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods() {
		if m == method {
			return true
		}
	}
	return false
}

// DailyStatistic is the per-date rollup, identified by date (YYYY-MM-DD).
// Created lazily by the first completion of the day, mutated additively
// afterwards, removed only by rollover compaction.
type DailyStatistic struct {
	ID                   string         `json:"id"`
	Date                 string         `json:"date"`
	TotalOrders          int            `json:"totalOrders"`
	TotalRevenue         float64        `json:"totalRevenue"`
	PaymentMethodSummary map[string]int `json:"paymentMethodSummary"`
	OrdersByHour         []int          `json:"ordersByHour"`
	BestSellingItems     map[string]int `json:"bestSellingItems"`
	AverageRating        float64        `json:"averageRating"`
	TotalComments        int            `json:"totalComments"`
}

// Clone returns a copy that shares no maps or slices with the receiver.
// Handlers must hand out clones, never records aliasing the live document:
// the daily updater mutates these maps in place under the store lock, and
// encoding a shared map after the lock is released is a data race.
func (s DailyStatistic) Clone() DailyStatistic {
	s.PaymentMethodSummary = maps.Clone(s.PaymentMethodSummary)
	s.OrdersByHour = slices.Clone(s.OrdersByHour)
	s.BestSellingItems = maps.Clone(s.BestSellingItems)
	return s
}

// MonthlyStatistic is the per-month rollup, identified by YYYY-MM.
type MonthlyStatistic struct {
	ID                   string         `json:"id"`
	Year                 int            `json:"year"`
	Month                int            `json:"month"`
	TotalOrders          int            `json:"totalOrders"`
	TotalRevenue         float64        `json:"totalRevenue"`
	PaymentMethodSummary map[string]int `json:"paymentMethodSummary"`
	AverageRating        float64        `json:"averageRating"`
	TotalComments        int            `json:"totalComments"`
	BestSellingItems     map[string]int `json:"bestSellingItems"`
}

// Clone returns a copy that shares no maps with the receiver.
func (m MonthlyStatistic) Clone() MonthlyStatistic {
	m.PaymentMethodSummary = maps.Clone(m.PaymentMethodSummary)
	m.BestSellingItems = maps.Clone(m.BestSellingItems)
	return m
}

// YearlyStatistic is derived on read from the monthly records and never
// persisted. Month is always null to distinguish it from a monthly record.
type YearlyStatistic struct {
	ID                   string         `json:"id"`
	Year                 int            `json:"year"`
	Month                *int           `json:"month"`
	TotalOrders          int            `json:"totalOrders"`
	TotalRevenue         float64        `json:"totalRevenue"`
	PaymentMethodSummary map[string]int `json:"paymentMethodSummary"`
	AverageRating        float64        `json:"averageRating"`
	TotalComments        int            `json:"totalComments"`
	BestSellingItems     map[string]int `json:"bestSellingItems"`
}
