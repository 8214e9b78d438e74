package stats

import (
	"reflect"
	"testing"
)

func TestTopSellingItems(t *testing.T) {
	tally := map[string]int{"A": 5, "B": 9, "C": 2}

	cases := []struct {
		name  string
		limit int
		want  []SellerRank
	}{
		{
			name:  "descending order",
			limit: 3,
			want:  []SellerRank{{"B", 9}, {"A", 5}, {"C", 2}},
		},
		{
			name:  "truncated",
			limit: 2,
			want:  []SellerRank{{"B", 9}, {"A", 5}},
		},
		{
			name:  "no limit returns everything",
			limit: 0,
			want:  []SellerRank{{"B", 9}, {"A", 5}, {"C", 2}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TopSellingItems(tally, tc.limit)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTopSellingItemsTieBreak(t *testing.T) {
	got := TopSellingItems(map[string]int{"Mocha": 3, "Latte": 3}, 2)
	want := []SellerRank{{"Latte", 3}, {"Mocha", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected name tie-break, got %v", got)
	}
}

func TestMergeTallies(t *testing.T) {
	got := MergeTallies(
		map[string]int{"A": 1, "B": 2},
		map[string]int{"B": 3, "C": 4},
	)
	want := map[string]int{"A": 1, "B": 5, "C": 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
