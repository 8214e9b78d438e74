package models

import "testing"

func TestDailyStatisticCloneSharesNothing(t *testing.T) {
	original := DailyStatistic{
		ID:                   "stats-2024-06-10",
		Date:                 "2024-06-10",
		TotalOrders:          2,
		PaymentMethodSummary: map[string]int{PaymentMethodCash: 2},
		OrdersByHour:         make([]int, 24),
		BestSellingItems:     map[string]int{"Flat White": 3},
	}

	clone := original.Clone()
	original.PaymentMethodSummary[PaymentMethodCash] = 99
	original.BestSellingItems["Flat White"] = 99
	original.OrdersByHour[10] = 99

	if clone.PaymentMethodSummary[PaymentMethodCash] != 2 {
		t.Fatalf("payment summary shared with the original: %v", clone.PaymentMethodSummary)
	}
	if clone.BestSellingItems["Flat White"] != 3 {
		t.Fatalf("best-seller tally shared with the original: %v", clone.BestSellingItems)
	}
	if clone.OrdersByHour[10] != 0 {
		t.Fatalf("hour histogram shared with the original: %v", clone.OrdersByHour)
	}
}

func TestMonthlyStatisticCloneSharesNothing(t *testing.T) {
	original := MonthlyStatistic{
		ID:                   "2024-06",
		Year:                 2024,
		Month:                6,
		PaymentMethodSummary: map[string]int{PaymentMethodOnline: 5},
		BestSellingItems:     map[string]int{"Chai Latte": 4},
	}

	clone := original.Clone()
	original.PaymentMethodSummary[PaymentMethodOnline] = 99
	original.BestSellingItems["Chai Latte"] = 99

	if clone.PaymentMethodSummary[PaymentMethodOnline] != 5 || clone.BestSellingItems["Chai Latte"] != 4 {
		t.Fatalf("clone shares maps with the original: %+v", clone)
	}
}
