package stats

import (
	"testing"

	"bistro-pos-service/internal/models"
)

func month(id string, year, monthNumber int, orders int, revenue float64, rating float64) models.MonthlyStatistic {
	return models.MonthlyStatistic{
		ID:                   id,
		Year:                 year,
		Month:                monthNumber,
		TotalOrders:          orders,
		TotalRevenue:         revenue,
		AverageRating:        rating,
		TotalComments:        orders / 2,
		PaymentMethodSummary: map[string]int{models.PaymentMethodCash: orders},
		BestSellingItems:     map[string]int{"Flat White": orders},
	}
}

func TestYearlySumsMonthsOfAYear(t *testing.T) {
	got := Yearly([]models.MonthlyStatistic{
		month("2024-01", 2024, 1, 10, 100, 0),
		month("2024-02", 2024, 2, 5, 50, 0),
	})

	if len(got) != 1 {
		t.Fatalf("expected one year, got %d", len(got))
	}
	year := got[0]
	if year.ID != "2024" || year.Year != 2024 || year.Month != nil {
		t.Fatalf("unexpected identity: %+v", year)
	}
	if year.TotalOrders != 15 || year.TotalRevenue != 150 {
		t.Fatalf("expected summed totals, got %+v", year)
	}
	if year.PaymentMethodSummary[models.PaymentMethodCash] != 15 {
		t.Fatalf("expected merged payment summary, got %v", year.PaymentMethodSummary)
	}
	if year.BestSellingItems["Flat White"] != 15 {
		t.Fatalf("expected merged best sellers, got %v", year.BestSellingItems)
	}
}

func TestYearlyRatingIgnoresZeroMonths(t *testing.T) {
	got := Yearly([]models.MonthlyStatistic{
		month("2024-01", 2024, 1, 1, 10, 4.5),
		month("2024-02", 2024, 2, 1, 10, 0),
		month("2024-03", 2024, 3, 1, 10, 3.0),
	})

	if got[0].AverageRating != 3.75 {
		t.Fatalf("expected mean of nonzero ratings 3.75, got %v", got[0].AverageRating)
	}
}

func TestYearlyRatingRoundsToOneDecimal(t *testing.T) {
	got := Yearly([]models.MonthlyStatistic{
		month("2024-01", 2024, 1, 1, 10, 4),
		month("2024-02", 2024, 2, 1, 10, 3),
		month("2024-03", 2024, 3, 1, 10, 3),
	})

	if got[0].AverageRating != 3.3 {
		t.Fatalf("expected 3.3, got %v", got[0].AverageRating)
	}
}

func TestYearlyGroupsAndSortsYears(t *testing.T) {
	got := Yearly([]models.MonthlyStatistic{
		month("2025-01", 2025, 1, 3, 30, 0),
		month("2024-12", 2024, 12, 7, 70, 0),
		month("2025-02", 2025, 2, 4, 40, 0),
	})

	if len(got) != 2 {
		t.Fatalf("expected two years, got %d", len(got))
	}
	if got[0].Year != 2024 || got[1].Year != 2025 {
		t.Fatalf("expected ascending year order, got %d then %d", got[0].Year, got[1].Year)
	}
	if got[1].TotalOrders != 7 {
		t.Fatalf("expected 2025 totals 7, got %d", got[1].TotalOrders)
	}
}

func TestYearlySkipsRecordsWithoutMonth(t *testing.T) {
	got := Yearly([]models.MonthlyStatistic{
		{ID: "2024", Year: 2024, Month: 0, TotalOrders: 99},
		month("2024-01", 2024, 1, 1, 10, 0),
	})

	if len(got) != 1 || got[0].TotalOrders != 1 {
		t.Fatalf("expected the monthless record ignored, got %+v", got)
	}
}

func TestYearlyOfEmptyInput(t *testing.T) {
	if got := Yearly(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
