// Package stats implements the statistics aggregation pipeline: the daily
// updater fed by order completions, the monthly rollover that archives and
// compacts expired daily rows, and the on-demand yearly fold.
package stats

import (
	"time"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	hoursPerDay = 24
)

// UpdateDaily folds one just-completed order into the statistics record for
// the current date, creating the record on first use. Buckets by processing
// time (now), not by the order's own timestamps. Must be called exactly once
// per completed order; it is additive and would double-count on repeats.
func UpdateDaily(d *store.Data, order models.Order, now time.Time) {
	today := now.Format(dateLayout)

	idx := store.FindIndex(d.Statistics, func(s models.DailyStatistic) bool {
		return s.Date == today
	})
	if idx < 0 {
		d.Statistics = append(d.Statistics, newDailyStatistic(today))
		idx = len(d.Statistics) - 1
	}
	entry := &d.Statistics[idx]

	// Older seeds may carry null maps or a malformed hour histogram; start
	// those fields over rather than panic or index out of range.
	if entry.PaymentMethodSummary == nil {
		entry.PaymentMethodSummary = map[string]int{}
	}
	if entry.BestSellingItems == nil {
		entry.BestSellingItems = map[string]int{}
	}
	if len(entry.OrdersByHour) != hoursPerDay {
		entry.OrdersByHour = make([]int, hoursPerDay)
	}

	entry.TotalOrders++
	entry.TotalRevenue += orderRevenue(d, order)
	entry.PaymentMethodSummary[order.PaymentMethod]++
	entry.OrdersByHour[completionHour(order, now)]++

	for _, item := range order.OrderItems {
		menuItem, ok := store.Find(d.MenuItems, func(m models.MenuItem) bool {
			return m.ID == item.MenuItemID
		})
		if !ok {
			// Menu entry pruned since ordering; skip rather than abort.
			continue
		}
		entry.BestSellingItems[menuItem.Name] += item.Quantity
	}
}

func newDailyStatistic(date string) models.DailyStatistic {
	summary := make(map[string]int, len(models.PaymentMethods()))
	for _, method := range models.PaymentMethods() {
		summary[method] = 0
	}
	return models.DailyStatistic{
		ID:                   "stats-" + date,
		Date:                 date,
		PaymentMethodSummary: summary,
		OrdersByHour:         make([]int, hoursPerDay),
		BestSellingItems:     map[string]int{},
	}
}

// orderRevenue recomputes the order total from current catalog prices.
// Items whose menu entry no longer exists contribute nothing.
func orderRevenue(d *store.Data, order models.Order) float64 {
	var total float64
	for _, item := range order.OrderItems {
		menuItem, ok := store.Find(d.MenuItems, func(m models.MenuItem) bool {
			return m.ID == item.MenuItemID
		})
		if !ok {
			continue
		}
		total += menuItem.Price * float64(item.Quantity)
	}
	return total
}

func completionHour(order models.Order, now time.Time) int {
	completedAt, err := time.Parse(time.RFC3339, order.CompletedAt)
	if err != nil {
		return now.Hour()
	}
	return completedAt.Hour()
}
