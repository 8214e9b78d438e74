package handlers

import (
	"net/http"
	"strconv"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/stats"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// StatisticsList returns the current month's daily statistics.
//
// Every statistics read clones the records it hands out before the View
// callback returns: the daily updater mutates the stored maps in place, and
// serializing them after the lock is released would race with completions.
func (h *Handler) StatisticsList(w http.ResponseWriter, r *http.Request) {
	currentMonth := h.now().Format(monthLayout)

	out := []models.DailyStatistic{}
	h.Store.View(func(d *store.Data) {
		for _, s := range d.Statistics {
			if len(s.Date) >= len(monthLayout) && s.Date[:len(monthLayout)] == currentMonth {
				out = append(out, s.Clone())
			}
		}
	})

	response.JSON(w, http.StatusOK, out)
}

// StatisticsToday returns today's daily record or 404 when no order has
// completed today.
func (h *Handler) StatisticsToday(w http.ResponseWriter, r *http.Request) {
	today := h.now().Format(dateLayout)

	var entry models.DailyStatistic
	var found bool
	h.Store.View(func(d *store.Data) {
		entry, found = store.Find(d.Statistics, func(s models.DailyStatistic) bool {
			return s.Date == today
		})
		entry = entry.Clone()
	})

	if !found {
		response.Message(w, http.StatusNotFound, "Statistics not found for today.")
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

// StatisticsThisWeek returns today plus the six previous days, newest
// first, skipping dates without a record.
func (h *Handler) StatisticsThisWeek(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	out := []models.DailyStatistic{}
	h.Store.View(func(d *store.Data) {
		for i := 0; i < 7; i++ {
			date := now.AddDate(0, 0, -i).Format(dateLayout)
			if entry, ok := store.Find(d.Statistics, func(s models.DailyStatistic) bool { return s.Date == date }); ok {
				out = append(out, entry.Clone())
			}
		}
	})

	response.JSON(w, http.StatusOK, out)
}

// StatisticsBestSellers ranks the current month's best-selling items. The
// per-day tallies are unbounded; truncation happens here at read time.
func (h *Handler) StatisticsBestSellers(w http.ResponseWriter, r *http.Request) {
	limit := h.Config.BestSellerLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			response.Message(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	currentMonth := h.now().Format(monthLayout)
	merged := map[string]int{}
	h.Store.View(func(d *store.Data) {
		tallies := []map[string]int{}
		for _, s := range d.Statistics {
			if len(s.Date) >= len(monthLayout) && s.Date[:len(monthLayout)] == currentMonth {
				tallies = append(tallies, s.BestSellingItems)
			}
		}
		// Merge while still holding the lock; the per-day tallies are live maps.
		merged = stats.MergeTallies(tallies...)
	})

	response.JSON(w, http.StatusOK, stats.TopSellingItems(merged, limit))
}

// AggregatedStatisticsList returns every monthly record, never null.
func (h *Handler) AggregatedStatisticsList(w http.ResponseWriter, r *http.Request) {
	out := []models.MonthlyStatistic{}
	h.Store.View(func(d *store.Data) {
		for _, m := range d.AggregatedStatistics {
			out = append(out, m.Clone())
		}
	})
	response.JSON(w, http.StatusOK, out)
}

// StatisticsYears derives the yearly rollups from the monthly records. No
// clone needed: the fold runs under the lock and allocates fresh maps.
func (h *Handler) StatisticsYears(w http.ResponseWriter, r *http.Request) {
	out := []models.YearlyStatistic{}
	h.Store.View(func(d *store.Data) {
		out = stats.Yearly(d.AggregatedStatistics)
	})
	response.JSON(w, http.StatusOK, out)
}
