package utils

import "github.com/shopspring/decimal"

// Round rounds to the given number of decimal places, half away from zero.
func Round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// RoundMoney rounds a currency amount to 2 decimal places.
func RoundMoney(value float64) float64 {
	return Round(value, 2)
}

// RoundRating rounds an aggregated rating mean to 1 decimal place.
func RoundRating(value float64) float64 {
	return Round(value, 1)
}
