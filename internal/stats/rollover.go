package stats

import (
	"time"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
)

// Rollover runs after every order completion. It archives the previous
// calendar month's daily rows into a monthly record the first time it sees
// them, compacts the daily collection down to the current month, and then
// recomputes the current month's aggregate from scratch. The recompute is a
// full fold over the daily rows, so repeating it without new orders is a
// no-op by construction.
func Rollover(d *store.Data, now time.Time) {
	currentMonth := now.Format(monthLayout)
	previousMonth := firstOfMonth(now).AddDate(0, -1, 0).Format(monthLayout)

	// Step 1: archive the previous month, then drop every daily row that is
	// not in the current month. The compaction is deliberately total: rows
	// older than the previous month are discarded too, never archived.
	previous := store.Filter(d.Statistics, func(s models.DailyStatistic) bool {
		return monthOf(s.Date) == previousMonth
	})
	if len(previous) > 0 {
		d.AggregatedStatistics = append(d.AggregatedStatistics, aggregateMonth(previousMonth, previous))
		d.Statistics = store.Filter(d.Statistics, func(s models.DailyStatistic) bool {
			return monthOf(s.Date) == currentMonth
		})
	}

	// Step 2: refresh the current month's aggregate in place.
	current := store.Filter(d.Statistics, func(s models.DailyStatistic) bool {
		return monthOf(s.Date) == currentMonth
	})
	if len(current) == 0 {
		return
	}
	aggregate := aggregateMonth(currentMonth, current)
	idx := store.FindIndex(d.AggregatedStatistics, func(m models.MonthlyStatistic) bool {
		return m.ID == currentMonth
	})
	if idx >= 0 {
		d.AggregatedStatistics[idx] = aggregate
	} else {
		d.AggregatedStatistics = append(d.AggregatedStatistics, aggregate)
	}
}

// aggregateMonth folds daily rows into one monthly record. The rating is the
// mean of the nonzero daily means; days without feedback do not drag it down.
func aggregateMonth(month string, days []models.DailyStatistic) models.MonthlyStatistic {
	parsed, _ := time.Parse(monthLayout, month)

	aggregate := models.MonthlyStatistic{
		ID:                   month,
		Year:                 parsed.Year(),
		Month:                int(parsed.Month()),
		PaymentMethodSummary: map[string]int{},
		BestSellingItems:     map[string]int{},
	}

	var ratingSum float64
	var ratingCount int
	for _, day := range days {
		aggregate.TotalOrders += day.TotalOrders
		aggregate.TotalRevenue += day.TotalRevenue
		aggregate.TotalComments += day.TotalComments
		for method, count := range day.PaymentMethodSummary {
			aggregate.PaymentMethodSummary[method] += count
		}
		for item, quantity := range day.BestSellingItems {
			aggregate.BestSellingItems[item] += quantity
		}
		if day.AverageRating > 0 {
			ratingSum += day.AverageRating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		aggregate.AverageRating = ratingSum / float64(ratingCount)
	}
	return aggregate
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthOf extracts YYYY-MM from an ISO date string.
func monthOf(date string) string {
	if len(date) < len(monthLayout) {
		return ""
	}
	return date[:len(monthLayout)]
}
