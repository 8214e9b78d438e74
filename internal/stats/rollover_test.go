package stats

import (
	"reflect"
	"testing"
	"time"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
)

func day(date string, orders int, revenue float64, rating float64, comments int) models.DailyStatistic {
	return models.DailyStatistic{
		ID:           "stats-" + date,
		Date:         date,
		TotalOrders:  orders,
		TotalRevenue: revenue,
		PaymentMethodSummary: map[string]int{
			models.PaymentMethodCash:   orders,
			models.PaymentMethodOnline: 0,
		},
		OrdersByHour:     make([]int, 24),
		BestSellingItems: map[string]int{"Flat White": orders},
		AverageRating:    rating,
		TotalComments:    comments,
	}
}

func TestRolloverArchivesPreviousMonthAndCompacts(t *testing.T) {
	d := &store.Data{
		Statistics: []models.DailyStatistic{
			day("2024-04-02", 3, 30, 0, 1),   // two months old: dropped, never archived
			day("2024-05-10", 5, 57.5, 4.5, 2),
			day("2024-05-21", 2, 18, 0, 0),
			day("2024-06-03", 4, 44, 3.0, 1),
		},
	}

	Rollover(d, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	var months []string
	for _, m := range d.AggregatedStatistics {
		months = append(months, m.ID)
	}
	if !reflect.DeepEqual(months, []string{"2024-05", "2024-06"}) {
		t.Fatalf("expected may archive plus june refresh, got %v", months)
	}

	may := d.AggregatedStatistics[0]
	if may.Year != 2024 || may.Month != 5 {
		t.Fatalf("unexpected archive identity: %d-%d", may.Year, may.Month)
	}
	if may.TotalOrders != 7 || may.TotalRevenue != 75.5 || may.TotalComments != 2 {
		t.Fatalf("unexpected archive totals: %+v", may)
	}
	if may.PaymentMethodSummary[models.PaymentMethodCash] != 7 {
		t.Fatalf("expected merged payment summary, got %v", may.PaymentMethodSummary)
	}
	if may.BestSellingItems["Flat White"] != 7 {
		t.Fatalf("expected merged best sellers, got %v", may.BestSellingItems)
	}
	// Mean of the nonzero daily ratings only.
	if may.AverageRating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", may.AverageRating)
	}

	for _, s := range d.Statistics {
		if monthOf(s.Date) != "2024-06" {
			t.Fatalf("compaction left a non-current row: %s", s.Date)
		}
	}
	if len(d.Statistics) != 1 {
		t.Fatalf("expected only the june row to survive, got %d rows", len(d.Statistics))
	}
}

func TestRolloverRefreshIsIdempotent(t *testing.T) {
	d := &store.Data{
		Statistics: []models.DailyStatistic{
			day("2024-06-03", 4, 44, 3.0, 1),
			day("2024-06-04", 1, 9, 0, 0),
		},
	}
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	Rollover(d, now)
	first := make([]models.MonthlyStatistic, len(d.AggregatedStatistics))
	copy(first, d.AggregatedStatistics)

	Rollover(d, now)

	if !reflect.DeepEqual(first, d.AggregatedStatistics) {
		t.Fatalf("second rollover changed the aggregates:\nfirst:  %+v\nsecond: %+v", first, d.AggregatedStatistics)
	}
	if len(d.AggregatedStatistics) != 1 {
		t.Fatalf("expected a single june aggregate, got %d", len(d.AggregatedStatistics))
	}
}

func TestRolloverOverwritesCurrentAggregateInPlace(t *testing.T) {
	d := &store.Data{
		Statistics: []models.DailyStatistic{
			day("2024-06-03", 4, 44, 0, 0),
		},
		AggregatedStatistics: []models.MonthlyStatistic{
			{ID: "2024-06", Year: 2024, Month: 6, TotalOrders: 1, TotalRevenue: 5,
				PaymentMethodSummary: map[string]int{}, BestSellingItems: map[string]int{}},
			{ID: "2024-05", Year: 2024, Month: 5, TotalOrders: 9, TotalRevenue: 90,
				PaymentMethodSummary: map[string]int{}, BestSellingItems: map[string]int{}},
		},
	}

	Rollover(d, time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC))

	if len(d.AggregatedStatistics) != 2 {
		t.Fatalf("expected overwrite, not append: %d records", len(d.AggregatedStatistics))
	}
	june := d.AggregatedStatistics[0]
	if june.ID != "2024-06" {
		t.Fatalf("expected the june record to keep its position, got %s", june.ID)
	}
	if june.TotalOrders != 4 || june.TotalRevenue != 44 {
		t.Fatalf("expected recomputed totals, got %+v", june)
	}
}

func TestRolloverNoopWithoutPreviousMonthRows(t *testing.T) {
	d := &store.Data{
		Statistics: []models.DailyStatistic{
			// Only stale rows from two months back: step 1 finds nothing to
			// archive, so no compaction runs and the rows stay put.
			day("2024-04-02", 3, 30, 0, 0),
		},
	}

	Rollover(d, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	if len(d.AggregatedStatistics) != 0 {
		t.Fatalf("expected no aggregates, got %d", len(d.AggregatedStatistics))
	}
	if len(d.Statistics) != 1 || d.Statistics[0].Date != "2024-04-02" {
		t.Fatalf("expected the stale row to survive, got %+v", d.Statistics)
	}
}

func TestRolloverEmptyStoreIsNoop(t *testing.T) {
	d := &store.Data{}
	Rollover(d, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))
	if len(d.AggregatedStatistics) != 0 || len(d.Statistics) != 0 {
		t.Fatalf("expected untouched empty store, got %+v", d)
	}
}

func TestRolloverPreviousMonthAtMonthEnd(t *testing.T) {
	// March 31 minus one calendar month must land in February, not March.
	d := &store.Data{
		Statistics: []models.DailyStatistic{
			day("2024-02-10", 2, 20, 0, 0),
		},
	}

	Rollover(d, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC))

	if len(d.AggregatedStatistics) != 1 || d.AggregatedStatistics[0].ID != "2024-02" {
		t.Fatalf("expected a february archive, got %+v", d.AggregatedStatistics)
	}
	if len(d.Statistics) != 0 {
		t.Fatalf("expected the february rows compacted away, got %+v", d.Statistics)
	}
}
