package stats

import (
	"sort"
	"strconv"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/utils"
)

// Yearly derives per-year rollups from the monthly records. Pure function:
// nothing is persisted and the input is not mutated. The rating is the mean
// of the nonzero monthly means, rounded to one decimal place.
func Yearly(monthly []models.MonthlyStatistic) []models.YearlyStatistic {
	years := map[int]*models.YearlyStatistic{}
	ratings := map[int][]float64{}

	for _, month := range monthly {
		if month.Month == 0 {
			continue
		}
		entry, ok := years[month.Year]
		if !ok {
			entry = &models.YearlyStatistic{
				ID:                   strconv.Itoa(month.Year),
				Year:                 month.Year,
				Month:                nil,
				PaymentMethodSummary: map[string]int{},
				BestSellingItems:     map[string]int{},
			}
			years[month.Year] = entry
		}

		entry.TotalOrders += month.TotalOrders
		entry.TotalRevenue += month.TotalRevenue
		entry.TotalComments += month.TotalComments
		for method, count := range month.PaymentMethodSummary {
			entry.PaymentMethodSummary[method] += count
		}
		for item, quantity := range month.BestSellingItems {
			entry.BestSellingItems[item] += quantity
		}
		if month.AverageRating > 0 {
			ratings[month.Year] = append(ratings[month.Year], month.AverageRating)
		}
	}

	out := make([]models.YearlyStatistic, 0, len(years))
	for year, entry := range years {
		if values := ratings[year]; len(values) > 0 {
			var sum float64
			for _, value := range values {
				sum += value
			}
			entry.AverageRating = utils.RoundRating(sum / float64(len(values)))
		}
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}
